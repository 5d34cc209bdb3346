//go:build api

package testserver

import (
	"context"
	"net/http"
	"testing"

	"meal-mosaic/test/fixtures"
	"meal-mosaic/test/testutil"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AuthToken signs a JWT for an arbitrary user id. Write routes only check
// that the token is valid, so tests mint their own instead of walking the
// OAuth flow.
func (ts *TestServer) AuthToken(t *testing.T) string {
	t.Helper()

	token, err := ts.JWTManager.GenerateToken(primitive.NewObjectID().Hex())
	require.NoError(t, err, "failed to sign test token")
	return token
}

// SeedUser inserts a user through the repository and returns its id as hex.
func (ts *TestServer) SeedUser(t *testing.T, payload map[string]interface{}) string {
	t.Helper()

	user, err := ts.UserRepo.Create(context.Background(), payload)
	require.NoError(t, err, "failed to seed user")
	return user.ID.Hex()
}

// SeedRecipe inserts a recipe through the repository and returns its id as hex.
func (ts *TestServer) SeedRecipe(t *testing.T, payload map[string]interface{}) string {
	t.Helper()

	recipe, err := ts.RecipeRepo.Create(context.Background(), payload)
	require.NoError(t, err, "failed to seed recipe")
	return recipe.ID.Hex()
}

// CreateRecipe creates a recipe via the API and returns the response data.
func (ts *TestServer) CreateRecipe(t *testing.T, token string, payload map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ts.Router, http.MethodPost, "/api/v1/recipes", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, "create recipe should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create recipe response should be successful")
	return resp.Data
}

// CreateUser creates a user via the API and returns the response data.
func (ts *TestServer) CreateUser(t *testing.T, token string, payload map[string]interface{}) map[string]interface{} {
	t.Helper()

	w := testutil.MakeAuthRequest(t, ts.Router, http.MethodPost, "/api/v1/users", token, payload)
	require.Equal(t, http.StatusCreated, w.Code, "create user should return 201, got: %s", w.Body.String())

	resp := testutil.ParseAPIResponse(t, w)
	require.True(t, resp.Success, "create user response should be successful")
	return resp.Data
}

// SeedMealPlanGraph seeds a user and a recipe and returns a valid meal plan
// payload referencing both.
func (ts *TestServer) SeedMealPlanGraph(t *testing.T) map[string]interface{} {
	t.Helper()

	userID := ts.SeedUser(t, fixtures.UserPayload())
	recipeID := ts.SeedRecipe(t, fixtures.RecipePayload())
	return fixtures.MealPlanPayload(userID, recipeID)
}

// GetIDFromResponse extracts the id field from response data.
func GetIDFromResponse(t *testing.T, data map[string]interface{}) string {
	t.Helper()

	id, ok := data["id"].(string)
	require.True(t, ok, "id should be a string in response data")
	return id
}
