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
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestCreateShoppingList tests the POST /api/v1/shopping-lists endpoint.
func TestCreateShoppingList(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testServer.AuthToken(t)

	userID := testServer.SeedUser(t, fixtures.UserPayload())

	t.Run("creates a valid list", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/shopping-lists", token,
			fixtures.ShoppingListPayload(userID))

		require.Equal(t, http.StatusCreated, w.Code, "got: %s", w.Body.String())
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Weekly groceries", resp.Data["title"])
	})

	t.Run("rejects a nameless item", func(t *testing.T) {
		payload := fixtures.ShoppingListPayload(userID)
		payload["items"] = []interface{}{
			map[string]interface{}{"name": "milk"},
			map[string]interface{}{"quantity": 3},
		}

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/shopping-lists", token, payload)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "items[1].name is required", resp.Error)
	})

	t.Run("rejects a dangling owner", func(t *testing.T) {
		payload := fixtures.ShoppingListPayload(primitive.NewObjectID().Hex())

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/shopping-lists", token, payload)

		require.Equal(t, http.StatusNotFound, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "Referenced user not found", resp.Error)
	})

	t.Run("rejects a bad due date", func(t *testing.T) {
		payload := fixtures.ShoppingListPayload(userID)
		payload["dueDate"] = "someday"

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/shopping-lists", token, payload)

		require.Equal(t, http.StatusBadRequest, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "dueDate must be a valid date when provided", resp.Error)
	})

	t.Run("accepts an optional due date", func(t *testing.T) {
		payload := fixtures.ShoppingListPayload(userID)
		payload["dueDate"] = "2024-03-08"

		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/shopping-lists", token, payload)

		require.Equal(t, http.StatusCreated, w.Code)
		resp := testutil.ParseAPIResponse(t, w)
		assert.Equal(t, "2024-03-08", resp.Data["dueDate"])
	})
}

// TestShoppingListLifecycle covers read, replace, and delete.
func TestShoppingListLifecycle(t *testing.T) {
	testServer.CleanupBetweenTests(t)
	token := testServer.AuthToken(t)

	userID := testServer.SeedUser(t, fixtures.UserPayload())

	w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/shopping-lists", token,
		fixtures.ShoppingListPayload(userID))
	require.Equal(t, http.StatusCreated, w.Code)
	listID := testserver.GetIDFromResponse(t, testutil.ParseAPIResponse(t, w).Data)

	t.Run("reads are public", func(t *testing.T) {
		r := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/shopping-lists/"+listID, nil)

		require.Equal(t, http.StatusOK, r.Code)
		resp := testutil.ParseAPIResponse(t, r)
		assert.Equal(t, "Weekly groceries", resp.Data["title"])
	})

	t.Run("replace", func(t *testing.T) {
		replacement := fixtures.ShoppingListPayload(userID)
		replacement["title"] = "Restock"

		r := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPut, "/api/v1/shopping-lists/"+listID, token, replacement)

		require.Equal(t, http.StatusOK, r.Code)
		resp := testutil.ParseAPIResponse(t, r)
		assert.Equal(t, "Restock", resp.Data["title"])
	})

	t.Run("delete", func(t *testing.T) {
		r := testutil.MakeAuthRequest(t, testServer.Router, http.MethodDelete, "/api/v1/shopping-lists/"+listID, token, nil)
		require.Equal(t, http.StatusNoContent, r.Code)

		read := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/shopping-lists/"+listID, nil)
		assert.Equal(t, http.StatusNotFound, read.Code)
	})
}
