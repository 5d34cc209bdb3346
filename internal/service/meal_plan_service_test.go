package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/models"
	"meal-mosaic/internal/repository/mocks"
)

const (
	planHex       = "507f1f77bcf86cd799439031"
	planUserHex   = "507f1f77bcf86cd799439021"
	planRecipeHex = "507f1f77bcf86cd799439011"
)

func mealPlanPayload() map[string]interface{} {
	return map[string]interface{}{
		"title":     "Week of March 4",
		"user":      planUserHex,
		"startDate": "2024-03-04",
		"endDate":   "2024-03-10",
		"entries": []interface{}{
			map[string]interface{}{"date": "2024-03-04", "mealType": "lunch", "recipe": planRecipeHex},
			map[string]interface{}{"date": "2024-03-05", "mealType": "dinner", "recipe": planRecipeHex},
		},
	}
}

func TestMealPlanServiceCreateMealPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("valid plan with resolvable references", func(t *testing.T) {
		var userQuery, recipeQuery []string
		users := &mocks.MockUserRepository{
			CountByIDsFunc: func(ctx context.Context, ids []string) (int64, error) {
				userQuery = ids
				return int64(len(ids)), nil
			},
		}
		recipes := &mocks.MockRecipeRepository{
			CountByIDsFunc: func(ctx context.Context, ids []string) (int64, error) {
				recipeQuery = ids
				return int64(len(ids)), nil
			},
		}
		repo := &mocks.MockMealPlanRepository{
			CreateFunc: func(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
				return &models.MealPlan{Title: "Week of March 4"}, nil
			},
		}
		svc := NewMealPlanService(repo, users, recipes)

		plan, err := svc.CreateMealPlan(ctx, mealPlanPayload())

		require.NoError(t, err)
		assert.Equal(t, "Week of March 4", plan.Title)
		assert.Equal(t, []string{planUserHex}, userQuery)
		assert.Equal(t, []string{planRecipeHex}, recipeQuery)
	})

	t.Run("dangling recipe reference", func(t *testing.T) {
		recipes := &mocks.MockRecipeRepository{
			CountByIDsFunc: func(ctx context.Context, ids []string) (int64, error) {
				return 0, nil
			},
		}
		createCalled := false
		repo := &mocks.MockMealPlanRepository{
			CreateFunc: func(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
				createCalled = true
				return nil, nil
			},
		}
		svc := NewMealPlanService(repo, &mocks.MockUserRepository{}, recipes)

		_, err := svc.CreateMealPlan(ctx, mealPlanPayload())

		var reqErr *apperrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.Status)
		assert.Equal(t, "One or more recipe references were not found", reqErr.Message)
		assert.Equal(t, "1 of the referenced documents do not exist", reqErr.Detail)
		assert.False(t, createCalled)
	})

	t.Run("dangling user reference", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			CountByIDsFunc: func(ctx context.Context, ids []string) (int64, error) {
				return 0, nil
			},
		}
		svc := NewMealPlanService(&mocks.MockMealPlanRepository{}, users, &mocks.MockRecipeRepository{})

		_, err := svc.CreateMealPlan(ctx, mealPlanPayload())

		var reqErr *apperrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusNotFound, reqErr.Status)
		assert.Equal(t, "Referenced user not found", reqErr.Message)
	})

	t.Run("malformed user id", func(t *testing.T) {
		payload := mealPlanPayload()
		payload["user"] = "25"
		svc := NewMealPlanService(&mocks.MockMealPlanRepository{}, &mocks.MockUserRepository{}, &mocks.MockRecipeRepository{})

		_, err := svc.CreateMealPlan(ctx, payload)

		var reqErr *apperrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, http.StatusBadRequest, reqErr.Status)
		assert.Equal(t, "user must be a valid id", reqErr.Message)
	})

	t.Run("reversed date range", func(t *testing.T) {
		payload := mealPlanPayload()
		payload["startDate"] = "2024-03-10"
		payload["endDate"] = "2024-03-04"
		svc := NewMealPlanService(&mocks.MockMealPlanRepository{}, &mocks.MockUserRepository{}, &mocks.MockRecipeRepository{})

		_, err := svc.CreateMealPlan(ctx, payload)

		var reqErr *apperrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "endDate must be on or after startDate", reqErr.Message)
		assert.Equal(t, []string{"endDate"}, reqErr.InvalidFields)
	})

	t.Run("reference store failure surfaces as a plain error", func(t *testing.T) {
		users := &mocks.MockUserRepository{
			CountByIDsFunc: func(ctx context.Context, ids []string) (int64, error) {
				return 0, assert.AnError
			},
		}
		svc := NewMealPlanService(&mocks.MockMealPlanRepository{}, users, &mocks.MockRecipeRepository{})

		_, err := svc.CreateMealPlan(ctx, mealPlanPayload())

		assert.ErrorIs(t, err, assert.AnError)
		var reqErr *apperrors.RequestError
		assert.False(t, errors.As(err, &reqErr))
	})
}

func TestMealPlanServiceGetMealPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		svc := NewMealPlanService(&mocks.MockMealPlanRepository{}, &mocks.MockUserRepository{}, &mocks.MockRecipeRepository{})

		_, err := svc.GetMealPlan(ctx, "bad")

		assert.ErrorIs(t, err, apperrors.ErrInvalidMealPlanID)
	})

	t.Run("found", func(t *testing.T) {
		repo := &mocks.MockMealPlanRepository{
			FindByIDFunc: func(ctx context.Context, id primitive.ObjectID) (*models.MealPlan, error) {
				return &models.MealPlan{Title: "Week of March 4"}, nil
			},
		}
		svc := NewMealPlanService(repo, &mocks.MockUserRepository{}, &mocks.MockRecipeRepository{})

		plan, err := svc.GetMealPlan(ctx, planHex)

		require.NoError(t, err)
		assert.Equal(t, "Week of March 4", plan.Title)
	})
}

func TestMealPlanServiceUpdateMealPlan(t *testing.T) {
	ctx := context.Background()

	t.Run("replacement payload is revalidated", func(t *testing.T) {
		replaceCalled := false
		repo := &mocks.MockMealPlanRepository{
			ReplaceFunc: func(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.MealPlan, error) {
				replaceCalled = true
				return nil, nil
			},
		}
		svc := NewMealPlanService(repo, &mocks.MockUserRepository{}, &mocks.MockRecipeRepository{})

		_, err := svc.UpdateMealPlan(ctx, planHex, map[string]interface{}{"title": "partial"})

		var reqErr *apperrors.RequestError
		require.ErrorAs(t, err, &reqErr)
		assert.Equal(t, "Missing required fields", reqErr.Message)
		assert.False(t, replaceCalled)
	})

	t.Run("valid replacement", func(t *testing.T) {
		repo := &mocks.MockMealPlanRepository{
			ReplaceFunc: func(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.MealPlan, error) {
				return &models.MealPlan{Title: "Week of March 11"}, nil
			},
		}
		svc := NewMealPlanService(repo, &mocks.MockUserRepository{}, &mocks.MockRecipeRepository{})

		plan, err := svc.UpdateMealPlan(ctx, planHex, mealPlanPayload())

		require.NoError(t, err)
		assert.Equal(t, "Week of March 11", plan.Title)
	})
}

func TestMealPlanServiceDeleteMealPlan(t *testing.T) {
	svc := NewMealPlanService(&mocks.MockMealPlanRepository{}, &mocks.MockUserRepository{}, &mocks.MockRecipeRepository{})

	assert.ErrorIs(t, svc.DeleteMealPlan(context.Background(), "bad"), apperrors.ErrInvalidMealPlanID)
	assert.NoError(t, svc.DeleteMealPlan(context.Background(), planHex))
}
