package handler

import (
	"errors"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/service"
	"meal-mosaic/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for user operations.
type UserHandler struct {
	service service.UserServicer
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service service.UserServicer) *UserHandler {
	return &UserHandler{service: service}
}

// ListUsers godoc
// @Summary      List all users
// @Description  Retrieve a list of all users
// @Tags         users
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.User}
// @Failure      500  {object}  response.Response
// @Router       /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Unable to fetch users")
		return
	}

	response.Success(c, users)
}

// GetUser godoc
// @Summary      Get user by ID
// @Description  Retrieve a single user by their ID
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  response.Response{data=models.User}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	id := c.Param("id")

	user, err := h.service.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidUserID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to fetch user")
		return
	}

	response.Success(c, user)
}

// CreateUser godoc
// @Summary      Create user
// @Description  Validate and store a new user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]interface{}  true  "User document"
// @Success      201      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	user, err := h.service.CreateUser(c.Request.Context(), payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		if errors.Is(err, apperrors.ErrUserConflict) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to create user")
		return
	}

	response.Created(c, user)
}

// UpdateUser godoc
// @Summary      Update user
// @Description  Validate and replace an existing user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "User ID"
// @Param        request  body      map[string]interface{}  true  "User document"
// @Success      200      {object}  response.Response{data=models.User}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Param("id")

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), id, payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		if errors.Is(err, apperrors.ErrInvalidUserID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUserConflict) {
			response.Conflict(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to update user")
		return
	}

	response.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete user
// @Description  Remove a user; documents owned by the user are left in place
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "User ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidUserID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrUserNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to delete user")
		return
	}

	response.NoContent(c)
}
