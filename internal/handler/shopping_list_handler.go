package handler

import (
	"errors"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/service"
	"meal-mosaic/pkg/response"

	"github.com/gin-gonic/gin"
)

// ShoppingListHandler handles HTTP requests for shopping list operations.
type ShoppingListHandler struct {
	service service.ShoppingListServicer
}

// NewShoppingListHandler creates a new ShoppingListHandler.
func NewShoppingListHandler(service service.ShoppingListServicer) *ShoppingListHandler {
	return &ShoppingListHandler{service: service}
}

// ListShoppingLists godoc
// @Summary      List all shopping lists
// @Description  Retrieve all shopping lists
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.ShoppingList}
// @Failure      500  {object}  response.Response
// @Router       /shopping-lists [get]
func (h *ShoppingListHandler) ListShoppingLists(c *gin.Context) {
	lists, err := h.service.ListShoppingLists(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Unable to fetch shopping lists")
		return
	}

	response.Success(c, lists)
}

// GetShoppingList godoc
// @Summary      Get shopping list by ID
// @Description  Retrieve a single shopping list by its ID
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Shopping list ID"
// @Success      200  {object}  response.Response{data=models.ShoppingList}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /shopping-lists/{id} [get]
func (h *ShoppingListHandler) GetShoppingList(c *gin.Context) {
	id := c.Param("id")

	list, err := h.service.GetShoppingList(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidShoppingListID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrShoppingListNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to fetch shopping list")
		return
	}

	response.Success(c, list)
}

// CreateShoppingList godoc
// @Summary      Create shopping list
// @Description  Validate and store a new shopping list
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]interface{}  true  "Shopping list document"
// @Success      201      {object}  response.Response{data=models.ShoppingList}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /shopping-lists [post]
func (h *ShoppingListHandler) CreateShoppingList(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	list, err := h.service.CreateShoppingList(c.Request.Context(), payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		response.InternalError(c, "Unable to create shopping list")
		return
	}

	response.Created(c, list)
}

// UpdateShoppingList godoc
// @Summary      Update shopping list
// @Description  Validate and replace an existing shopping list
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Shopping list ID"
// @Param        request  body      map[string]interface{}  true  "Shopping list document"
// @Success      200      {object}  response.Response{data=models.ShoppingList}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /shopping-lists/{id} [put]
func (h *ShoppingListHandler) UpdateShoppingList(c *gin.Context) {
	id := c.Param("id")

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	list, err := h.service.UpdateShoppingList(c.Request.Context(), id, payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		if errors.Is(err, apperrors.ErrInvalidShoppingListID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrShoppingListNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to update shopping list")
		return
	}

	response.Success(c, list)
}

// DeleteShoppingList godoc
// @Summary      Delete shopping list
// @Description  Remove a shopping list
// @Tags         shopping-lists
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Shopping list ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /shopping-lists/{id} [delete]
func (h *ShoppingListHandler) DeleteShoppingList(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteShoppingList(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidShoppingListID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrShoppingListNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to delete shopping list")
		return
	}

	response.NoContent(c)
}
