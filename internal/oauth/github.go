// Package oauth implements the GitHub login flow.
package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"meal-mosaic/internal/models"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

// Provider abstracts the OAuth identity provider so handlers can be tested
// without talking to GitHub.
type Provider interface {
	// AuthCodeURL returns the URL to redirect the user to for consent.
	AuthCodeURL(state string) string
	// FetchProfile exchanges an authorization code and fetches the profile
	// of the user who granted it.
	FetchProfile(ctx context.Context, code string) (*models.GitHubProfile, error)
}

// GitHub is the production Provider backed by github.com.
type GitHub struct {
	config  *oauth2.Config
	userURL string
}

// Ensure GitHub implements Provider interface
var _ Provider = (*GitHub)(nil)

// NewGitHub creates a GitHub provider from app credentials.
func NewGitHub(clientID, clientSecret, callbackURL string) *GitHub {
	return &GitHub{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  callbackURL,
			Scopes:       []string{"user:email"},
			Endpoint:     github.Endpoint,
		},
		userURL: "https://api.github.com/user",
	}
}

// AuthCodeURL returns the GitHub consent page URL carrying the given state.
func (g *GitHub) AuthCodeURL(state string) string {
	return g.config.AuthCodeURL(state)
}

// FetchProfile exchanges the authorization code for a token and loads the
// authenticated user's profile.
func (g *GitHub) FetchProfile(ctx context.Context, code string) (*models.GitHubProfile, error) {
	token, err := g.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	client := g.config.Client(ctx, token)
	resp, err := client.Get(g.userURL)
	if err != nil {
		return nil, fmt.Errorf("fetching github profile: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github user endpoint returned %d", resp.StatusCode)
	}

	var profile models.GitHubProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding github profile: %w", err)
	}
	return &profile, nil
}
