// Package handler contains HTTP handlers for the API.
package handler

import (
	"errors"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/service"
	"meal-mosaic/pkg/response"

	"github.com/gin-gonic/gin"
)

// RecipeHandler handles HTTP requests for recipe operations.
type RecipeHandler struct {
	service service.RecipeServicer
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(service service.RecipeServicer) *RecipeHandler {
	return &RecipeHandler{service: service}
}

// bindPayload reads the request body as an untyped document. Validation
// happens downstream; here only malformed JSON is rejected.
func bindPayload(c *gin.Context) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		response.BadRequest(c, "request body must be a JSON object")
		return nil, false
	}
	return payload, true
}

// rejected writes a RequestError if err carries one, reporting whether it did.
// Store-level schema rejections surface the same way as validation failures.
func rejected(c *gin.Context, err error) bool {
	var reqErr *apperrors.RequestError
	if errors.As(err, &reqErr) {
		response.Rejected(c, reqErr.Status, reqErr.Message, reqErr.Detail, reqErr.MissingFields, reqErr.InvalidFields)
		return true
	}
	if errors.Is(err, apperrors.ErrSchemaRejected) {
		response.BadRequest(c, err.Error())
		return true
	}
	return false
}

// ListRecipes godoc
// @Summary      List all recipes
// @Description  Retrieve all recipes in the catalog
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.Recipe}
// @Failure      500  {object}  response.Response
// @Router       /recipes [get]
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	recipes, err := h.service.ListRecipes(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Unable to fetch recipes")
		return
	}

	response.Success(c, recipes)
}

// GetRecipe godoc
// @Summary      Get recipe by ID
// @Description  Retrieve a single recipe by its ID
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      200  {object}  response.Response{data=models.Recipe}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /recipes/{id} [get]
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	id := c.Param("id")

	recipe, err := h.service.GetRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRecipeID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to fetch recipe")
		return
	}

	response.Success(c, recipe)
}

// CreateRecipe godoc
// @Summary      Create recipe
// @Description  Validate and store a new recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]interface{}  true  "Recipe document"
// @Success      201      {object}  response.Response{data=models.Recipe}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes [post]
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	recipe, err := h.service.CreateRecipe(c.Request.Context(), payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		response.InternalError(c, "Unable to create recipe")
		return
	}

	response.Created(c, recipe)
}

// UpdateRecipe godoc
// @Summary      Update recipe
// @Description  Validate and replace an existing recipe
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Recipe ID"
// @Param        request  body      map[string]interface{}  true  "Recipe document"
// @Success      200      {object}  response.Response{data=models.Recipe}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id} [put]
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	id := c.Param("id")

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	recipe, err := h.service.UpdateRecipe(c.Request.Context(), id, payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		if errors.Is(err, apperrors.ErrInvalidRecipeID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to update recipe")
		return
	}

	response.Success(c, recipe)
}

// DeleteRecipe godoc
// @Summary      Delete recipe
// @Description  Remove a recipe from the catalog
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Recipe ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /recipes/{id} [delete]
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteRecipe(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidRecipeID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrRecipeNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to delete recipe")
		return
	}

	response.NoContent(c)
}
