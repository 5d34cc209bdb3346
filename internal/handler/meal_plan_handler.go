package handler

import (
	"errors"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/service"
	"meal-mosaic/pkg/response"

	"github.com/gin-gonic/gin"
)

// MealPlanHandler handles HTTP requests for meal plan operations.
type MealPlanHandler struct {
	service service.MealPlanServicer
}

// NewMealPlanHandler creates a new MealPlanHandler.
func NewMealPlanHandler(service service.MealPlanServicer) *MealPlanHandler {
	return &MealPlanHandler{service: service}
}

// ListMealPlans godoc
// @Summary      List all meal plans
// @Description  Retrieve all meal plans
// @Tags         meal-plans
// @Accept       json
// @Produce      json
// @Success      200  {object}  response.Response{data=[]models.MealPlan}
// @Failure      500  {object}  response.Response
// @Router       /meal-plans [get]
func (h *MealPlanHandler) ListMealPlans(c *gin.Context) {
	plans, err := h.service.ListMealPlans(c.Request.Context())
	if err != nil {
		response.InternalError(c, "Unable to fetch meal plans")
		return
	}

	response.Success(c, plans)
}

// GetMealPlan godoc
// @Summary      Get meal plan by ID
// @Description  Retrieve a single meal plan by its ID
// @Tags         meal-plans
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Meal plan ID"
// @Success      200  {object}  response.Response{data=models.MealPlan}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /meal-plans/{id} [get]
func (h *MealPlanHandler) GetMealPlan(c *gin.Context) {
	id := c.Param("id")

	plan, err := h.service.GetMealPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMealPlanID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrMealPlanNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to fetch meal plan")
		return
	}

	response.Success(c, plan)
}

// CreateMealPlan godoc
// @Summary      Create meal plan
// @Description  Validate and store a new meal plan
// @Tags         meal-plans
// @Accept       json
// @Produce      json
// @Param        request  body      map[string]interface{}  true  "Meal plan document"
// @Success      201      {object}  response.Response{data=models.MealPlan}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /meal-plans [post]
func (h *MealPlanHandler) CreateMealPlan(c *gin.Context) {
	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	plan, err := h.service.CreateMealPlan(c.Request.Context(), payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		response.InternalError(c, "Unable to create meal plan")
		return
	}

	response.Created(c, plan)
}

// UpdateMealPlan godoc
// @Summary      Update meal plan
// @Description  Validate and replace an existing meal plan
// @Tags         meal-plans
// @Accept       json
// @Produce      json
// @Param        id       path      string                  true  "Meal plan ID"
// @Param        request  body      map[string]interface{}  true  "Meal plan document"
// @Success      200      {object}  response.Response{data=models.MealPlan}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Security     BearerAuth
// @Router       /meal-plans/{id} [put]
func (h *MealPlanHandler) UpdateMealPlan(c *gin.Context) {
	id := c.Param("id")

	payload, ok := bindPayload(c)
	if !ok {
		return
	}

	plan, err := h.service.UpdateMealPlan(c.Request.Context(), id, payload)
	if err != nil {
		if rejected(c, err) {
			return
		}
		if errors.Is(err, apperrors.ErrInvalidMealPlanID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrMealPlanNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to update meal plan")
		return
	}

	response.Success(c, plan)
}

// DeleteMealPlan godoc
// @Summary      Delete meal plan
// @Description  Remove a meal plan
// @Tags         meal-plans
// @Accept       json
// @Produce      json
// @Param        id   path      string  true  "Meal plan ID"
// @Success      204
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Security     BearerAuth
// @Router       /meal-plans/{id} [delete]
func (h *MealPlanHandler) DeleteMealPlan(c *gin.Context) {
	id := c.Param("id")

	err := h.service.DeleteMealPlan(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidMealPlanID) {
			response.BadRequest(c, err.Error())
			return
		}
		if errors.Is(err, apperrors.ErrMealPlanNotFound) {
			response.NotFound(c, err.Error())
			return
		}
		response.InternalError(c, "Unable to delete meal plan")
		return
	}

	response.NoContent(c)
}
