//go:build api

package api

import (
	"net/http"
	"testing"

	"meal-mosaic/test/api/testserver"
	"meal-mosaic/test/fixtures"
	"meal-mosaic/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateRecipe tests the POST /api/v1/recipes endpoint.
func TestCreateRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testServer.AuthToken(t)

	t.Run("creates a valid recipe", func(t *testing.T) {
		data := testServer.CreateRecipe(t, token, fixtures.RecipePayload())

		assert.Equal(t, "Tacos al Pastor", data["title"])
		assert.NotEmpty(t, data["id"])
		assert.NotEmpty(t, data["createdAt"])
	})

	t.Run("requires authentication", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/recipes", fixtures.RecipePayload())

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a payload with missing fields", func(t *testing.T) {
		payload := map[string]interface{}{"title": "Just a title"}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/recipes", token, payload)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.False(t, resp.Success)
		assert.Equal(t, "Missing required fields", resp.Error)
		assert.Equal(t,
			[]string{"cuisine", "prepTimeMinutes", "cookTimeMinutes", "servings", "ingredients", "steps"},
			resp.MissingFields)
	})

	t.Run("rejects zero servings", func(t *testing.T) {
		payload := fixtures.RecipePayload()
		payload["servings"] = 0

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/recipes", token, payload)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Numeric fields are invalid", resp.Error)
		assert.Equal(t, []string{"servings"}, resp.InvalidFields)
	})

	t.Run("rejects a non-object body", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/recipes", token, []string{"not", "an", "object"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// TestGetRecipe tests the GET /api/v1/recipes/:id endpoint.
func TestGetRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testServer.AuthToken(t)

	data := testServer.CreateRecipe(t, token, fixtures.RecipePayload())
	recipeID := testserver.GetIDFromResponse(t, data)

	t.Run("reads are public", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+recipeID, nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Tacos al Pastor", resp.Data["title"])
	})

	t.Run("second read is served from cache", func(t *testing.T) {
		first := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+recipeID, nil)
		require.Equal(t, http.StatusOK, first.Code)

		second := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+recipeID, nil)
		require.Equal(t, http.StatusOK, second.Code)

		resp := testutil.ParseAPIResponse(t, second)
		assert.Equal(t, "Tacos al Pastor", resp.Data["title"])
	})

	t.Run("malformed id", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/not-hex", nil)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Invalid recipe id", resp.Error)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/507f1f77bcf86cd799439099", nil)

		require.Equal(t, http.StatusNotFound, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Recipe not found", resp.Error)
	})
}

// TestListRecipes tests the GET /api/v1/recipes endpoint.
func TestListRecipes(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testServer.AuthToken(t)

	t.Run("empty store lists an empty array", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.ParseAPIListResponse(t, w)
		assert.True(t, resp.Success)
		assert.NotNil(t, resp.Data)
		assert.Empty(t, resp.Data)
	})

	t.Run("lists stored recipes", func(t *testing.T) {
		testServer.CreateRecipe(t, token, fixtures.RecipePayload())
		payload := fixtures.RecipePayload()
		payload["title"] = "Shoyu Ramen"
		testServer.CreateRecipe(t, token, payload)

		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes", nil)

		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.ParseAPIListResponse(t, w)
		assert.Len(t, resp.Data, 2)
	})
}

// TestUpdateRecipe tests the PUT /api/v1/recipes/:id endpoint.
func TestUpdateRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testServer.AuthToken(t)

	data := testServer.CreateRecipe(t, token, fixtures.RecipePayload())
	recipeID := testserver.GetIDFromResponse(t, data)

	t.Run("replaces the whole document", func(t *testing.T) {
		replacement := fixtures.RecipePayload()
		replacement["title"] = "Tacos de Canasta"
		replacement["servings"] = 6

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/recipes/"+recipeID, token, replacement)

		require.Equal(t, http.StatusOK, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Tacos de Canasta", resp.Data["title"])
		assert.Equal(t, float64(6), resp.Data["servings"])
	})

	t.Run("partial payloads are rejected", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/recipes/"+recipeID, token,
			map[string]interface{}{"title": "Only a title"})

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Missing required fields", resp.Error)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/recipes/507f1f77bcf86cd799439099", token, fixtures.RecipePayload())

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

// TestDeleteRecipe tests the DELETE /api/v1/recipes/:id endpoint.
func TestDeleteRecipe(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testServer.AuthToken(t)

	data := testServer.CreateRecipe(t, token, fixtures.RecipePayload())
	recipeID := testserver.GetIDFromResponse(t, data)

	t.Run("deletes an existing recipe", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/recipes/"+recipeID, token, nil)

		require.Equal(t, http.StatusNoContent, w.Code)

		read := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/recipes/"+recipeID, nil)
		assert.Equal(t, http.StatusNotFound, read.Code)
	})

	t.Run("deleting twice is not found", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/recipes/"+recipeID, token, nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
