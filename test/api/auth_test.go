//go:build api

package api

import (
	"net/http"
	"testing"

	"meal-mosaic/test/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGithubLogin tests the GET /api/v1/auth/github endpoint.
func TestGithubLogin(t *testing.T) {
	t.Run("redirects to the GitHub consent page", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/auth/github", nil)

		require.Equal(t, http.StatusFound, w.Code)
		location := w.Header().Get("Location")
		assert.Contains(t, location, "github.com/login/oauth/authorize")
		assert.Contains(t, location, "state=")
	})

	t.Run("sets the state cookie", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/auth/github", nil)

		cookies := w.Result().Cookies()
		var found bool
		for _, c := range cookies {
			if c.Name == "oauth_state" {
				found = true
				assert.NotEmpty(t, c.Value)
				assert.True(t, c.HttpOnly)
			}
		}
		assert.True(t, found, "oauth_state cookie should be set")
	})
}

// TestGithubCallback tests the GET /api/v1/auth/github/callback endpoint.
func TestGithubCallback(t *testing.T) {
	t.Run("rejects a missing state cookie", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodGet,
			"/api/v1/auth/github/callback?state=abc&code=xyz", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects a state mismatch", func(t *testing.T) {
		login := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/auth/github", nil)
		require.Equal(t, http.StatusFound, login.Code)

		req, err := http.NewRequest(http.MethodGet, "/api/v1/auth/github/callback?state=tampered&code=xyz", nil)
		require.NoError(t, err)
		for _, c := range login.Result().Cookies() {
			req.AddCookie(c)
		}

		w := testutil.ServeRequest(testServer.Router, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestAuthRequiredRoutes verifies write routes reject missing and malformed tokens.
func TestAuthRequiredRoutes(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		w := testutil.MakeRequest(t, testServer.Router, http.MethodPost, "/api/v1/recipes", map[string]interface{}{})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed token", func(t *testing.T) {
		w := testutil.MakeAuthRequest(t, testServer.Router, http.MethodPost, "/api/v1/recipes", "not-a-jwt",
			map[string]interface{}{})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// TestLogout tests the GET /api/v1/auth/logout endpoint.
func TestLogout(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/auth/logout", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

// TestAuthFailure tests the GET /api/v1/auth/failure endpoint.
func TestAuthFailure(t *testing.T) {
	w := testutil.MakeRequest(t, testServer.Router, http.MethodGet, "/api/v1/auth/failure", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
