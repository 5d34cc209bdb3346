package oauth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestAuthCodeURL(t *testing.T) {
	provider := NewGitHub("client-id", "client-secret", "http://localhost:8080/api/v1/auth/github/callback")

	raw := provider.AuthCodeURL("random-state")

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "github.com", parsed.Host)
	assert.Equal(t, "client-id", parsed.Query().Get("client_id"))
	assert.Equal(t, "random-state", parsed.Query().Get("state"))
	assert.Equal(t, "user:email", parsed.Query().Get("scope"))
	assert.Equal(t, "http://localhost:8080/api/v1/auth/github/callback", parsed.Query().Get("redirect_uri"))
}

func TestFetchProfile(t *testing.T) {
	t.Run("exchanges the code and decodes the profile", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
			require.NoError(t, r.ParseForm())
			assert.Equal(t, "good-code", r.FormValue("code"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"gho_test","token_type":"bearer"}`))
		})
		mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "Bearer gho_test", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"id":583231,"login":"octocat","email":"octocat@github.com","avatar_url":"https://example.com/a.png"}`))
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		provider := NewGitHub("id", "secret", "http://localhost/callback")
		provider.config.Endpoint = oauth2.Endpoint{
			AuthURL:  srv.URL + "/authorize",
			TokenURL: srv.URL + "/token",
		}
		provider.userURL = srv.URL + "/user"

		profile, err := provider.FetchProfile(context.Background(), "good-code")

		require.NoError(t, err)
		assert.Equal(t, int64(583231), profile.ID)
		assert.Equal(t, "octocat", profile.Login)
		assert.Equal(t, "octocat@github.com", profile.Email)
		assert.Equal(t, "https://example.com/a.png", profile.AvatarURL)
	})

	t.Run("rejected code surfaces an exchange error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "bad_verification_code", http.StatusBadRequest)
		}))
		defer srv.Close()

		provider := NewGitHub("id", "secret", "http://localhost/callback")
		provider.config.Endpoint = oauth2.Endpoint{TokenURL: srv.URL + "/token"}

		_, err := provider.FetchProfile(context.Background(), "bad-code")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "exchanging authorization code")
	})

	t.Run("non-200 profile response is an error", func(t *testing.T) {
		mux := http.NewServeMux()
		mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"access_token":"gho_test","token_type":"bearer"}`))
		})
		mux.HandleFunc("/user", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusForbidden)
		})
		srv := httptest.NewServer(mux)
		defer srv.Close()

		provider := NewGitHub("id", "secret", "http://localhost/callback")
		provider.config.Endpoint = oauth2.Endpoint{TokenURL: srv.URL + "/token"}
		provider.userURL = srv.URL + "/user"

		_, err := provider.FetchProfile(context.Background(), "code")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "returned 403")
	})
}
