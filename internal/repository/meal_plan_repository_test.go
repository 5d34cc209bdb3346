package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "meal-mosaic/internal/errors"
)

func mealPlanDoc(title string) map[string]interface{} {
	return map[string]interface{}{
		"title":     title,
		"user":      primitive.NewObjectID().Hex(),
		"startDate": "2024-03-04",
		"endDate":   "2024-03-10",
		"entries": []interface{}{
			map[string]interface{}{
				"date":     "2024-03-04",
				"mealType": "lunch",
				"recipe":   primitive.NewObjectID().Hex(),
			},
		},
	}
}

func TestMealPlanRepository_CRUD(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewMealPlanRepository(tdb.Database)
	ctx := context.Background()

	t.Run("create and read back", func(t *testing.T) {
		tdb.ClearCollection(t, "mealplans")

		created, err := repo.Create(ctx, mealPlanDoc("Week of March 4"))
		require.NoError(t, err)
		assert.Equal(t, "Week of March 4", created.Title)
		require.Len(t, created.Entries, 1)
		assert.Equal(t, "lunch", created.Entries[0].MealType)

		found, err := repo.FindByID(ctx, created.ID)
		require.NoError(t, err)
		assert.Equal(t, created.ID, found.ID)
	})

	t.Run("replace", func(t *testing.T) {
		tdb.ClearCollection(t, "mealplans")
		created, err := repo.Create(ctx, mealPlanDoc("Week of March 4"))
		require.NoError(t, err)

		replaced, err := repo.Replace(ctx, created.ID, mealPlanDoc("Week of March 11"))

		require.NoError(t, err)
		assert.Equal(t, "Week of March 11", replaced.Title)
	})

	t.Run("delete", func(t *testing.T) {
		tdb.ClearCollection(t, "mealplans")
		created, err := repo.Create(ctx, mealPlanDoc("Week of March 4"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))
		assert.ErrorIs(t, repo.Delete(ctx, created.ID), apperrors.ErrMealPlanNotFound)
	})

	t.Run("missing plan", func(t *testing.T) {
		_, err := repo.FindByID(ctx, primitive.NewObjectID())
		assert.ErrorIs(t, err, apperrors.ErrMealPlanNotFound)
	})

	t.Run("empty collection yields an empty slice", func(t *testing.T) {
		tdb.ClearCollection(t, "mealplans")

		plans, err := repo.FindAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, plans)
		assert.Empty(t, plans)
	})
}
