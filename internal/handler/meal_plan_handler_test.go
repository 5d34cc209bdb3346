package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/models"
	"meal-mosaic/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMealPlanHandler_CreateMealPlan(t *testing.T) {
	planID := primitive.NewObjectID()

	tests := []struct {
		name           string
		body           interface{}
		mockSetup      func(*mocks.MockMealPlanService)
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name: "valid payload",
			body: map[string]interface{}{"title": "Week 1"},
			mockSetup: func(m *mocks.MockMealPlanService) {
				m.CreateMealPlanFunc = func(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
					return &models.MealPlan{ID: planID, Title: "Week 1"}, nil
				}
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "dates out of order",
			body: map[string]interface{}{"title": "Week 1", "startDate": "2024-03-10", "endDate": "2024-03-01"},
			mockSetup: func(m *mocks.MockMealPlanService) {
				m.CreateMealPlanFunc = func(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
					return nil, &apperrors.RequestError{
						Status:        http.StatusBadRequest,
						Message:       "endDate must be on or after startDate",
						InvalidFields: []string{"startDate", "endDate"},
					}
				}
			},
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeBody(t, w)
				assert.Equal(t, "endDate must be on or after startDate", resp["error"])
			},
		},
		{
			name: "dangling recipe reference",
			body: map[string]interface{}{"title": "Week 1"},
			mockSetup: func(m *mocks.MockMealPlanService) {
				m.CreateMealPlanFunc = func(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
					return nil, &apperrors.RequestError{
						Status:  http.StatusNotFound,
						Message: "One or more recipe references were not found",
						Detail:  "2 of the referenced documents do not exist",
					}
				}
			},
			expectedStatus: http.StatusNotFound,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				resp := decodeBody(t, w)
				assert.Equal(t, "One or more recipe references were not found", resp["error"])
				assert.Equal(t, "2 of the referenced documents do not exist", resp["detail"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService := &mocks.MockMealPlanService{}
			tt.mockSetup(mockService)

			router := gin.New()
			router.POST("/meal-plans", NewMealPlanHandler(mockService).CreateMealPlan)

			w := performRequest(router, http.MethodPost, "/meal-plans", tt.body)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestMealPlanHandler_GetMealPlan(t *testing.T) {
	planID := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		mockService := &mocks.MockMealPlanService{
			GetMealPlanFunc: func(ctx context.Context, id string) (*models.MealPlan, error) {
				return &models.MealPlan{ID: planID, Title: "Week 1"}, nil
			},
		}

		router := gin.New()
		router.GET("/meal-plans/:id", NewMealPlanHandler(mockService).GetMealPlan)

		w := performRequest(router, http.MethodGet, "/meal-plans/"+planID.Hex(), nil)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		mockService := &mocks.MockMealPlanService{
			GetMealPlanFunc: func(ctx context.Context, id string) (*models.MealPlan, error) {
				return nil, apperrors.ErrInvalidMealPlanID
			},
		}

		router := gin.New()
		router.GET("/meal-plans/:id", NewMealPlanHandler(mockService).GetMealPlan)

		w := performRequest(router, http.MethodGet, "/meal-plans/xyz", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := &mocks.MockMealPlanService{
			GetMealPlanFunc: func(ctx context.Context, id string) (*models.MealPlan, error) {
				return nil, apperrors.ErrMealPlanNotFound
			},
		}

		router := gin.New()
		router.GET("/meal-plans/:id", NewMealPlanHandler(mockService).GetMealPlan)

		w := performRequest(router, http.MethodGet, "/meal-plans/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestMealPlanHandler_DeleteMealPlan(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		mockService := &mocks.MockMealPlanService{
			DeleteMealPlanFunc: func(ctx context.Context, id string) error { return nil },
		}

		router := gin.New()
		router.DELETE("/meal-plans/:id", NewMealPlanHandler(mockService).DeleteMealPlan)

		w := performRequest(router, http.MethodDelete, "/meal-plans/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("not found", func(t *testing.T) {
		mockService := &mocks.MockMealPlanService{
			DeleteMealPlanFunc: func(ctx context.Context, id string) error { return apperrors.ErrMealPlanNotFound },
		}

		router := gin.New()
		router.DELETE("/meal-plans/:id", NewMealPlanHandler(mockService).DeleteMealPlan)

		w := performRequest(router, http.MethodDelete, "/meal-plans/"+primitive.NewObjectID().Hex(), nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
