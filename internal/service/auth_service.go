package service

import (
	"context"
	"strconv"

	"meal-mosaic/internal/models"
	"meal-mosaic/internal/oauth"
	"meal-mosaic/internal/repository"
	"meal-mosaic/pkg/auth"
)

// AuthService implements the GitHub login flow: it upserts the user tied to
// the GitHub identity and issues a JWT for them.
type AuthService struct {
	provider oauth.Provider
	users    repository.UserRepository
	tokens   auth.TokenManager
}

// NewAuthService creates a new AuthService.
func NewAuthService(provider oauth.Provider, users repository.UserRepository, tokens auth.TokenManager) *AuthService {
	return &AuthService{
		provider: provider,
		users:    users,
		tokens:   tokens,
	}
}

// LoginURL returns the GitHub consent page URL for the given state.
func (s *AuthService) LoginURL(state string) string {
	return s.provider.AuthCodeURL(state)
}

// HandleCallback completes the login: it resolves the GitHub profile behind
// the authorization code, upserts the matching user, and issues a token.
// Profiles with a private email get a noreply address derived from the login.
func (s *AuthService) HandleCallback(ctx context.Context, code string) (*models.LoginResponse, error) {
	profile, err := s.provider.FetchProfile(ctx, code)
	if err != nil {
		return nil, err
	}

	email := profile.Email
	if email == "" {
		email = profile.Login + "@users.noreply.github.com"
	}

	fields := map[string]interface{}{
		"username": profile.Login,
		"email":    email,
	}
	if profile.AvatarURL != "" {
		fields["avatarUrl"] = profile.AvatarURL
	}

	user, err := s.users.UpsertByGithubID(ctx, strconv.FormatInt(profile.ID, 10), fields)
	if err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &models.LoginResponse{Token: token, User: *user}, nil
}
