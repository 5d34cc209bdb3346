package service

import (
	"context"
	"time"

	"meal-mosaic/internal/cache"
	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/models"
	"meal-mosaic/internal/repository"
	"meal-mosaic/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const userCacheTTL = 15 * time.Minute

// UserService handles business logic for user operations.
type UserService struct {
	repo     repository.UserRepository
	cache    cache.Cache
	pipeline *validation.Pipeline
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository, cache cache.Cache) *UserService {
	return &UserService{
		repo:     repo,
		cache:    cache,
		pipeline: validation.NewUserPipeline(),
	}
}

// ListUsers retrieves all users.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.repo.FindAll(ctx)
}

// GetUser retrieves a user by ID (with caching).
func (s *UserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidUserID
	}

	cacheKey := cache.UserCacheKey(id)
	var user models.User
	found, err := s.cache.Get(ctx, cacheKey, &user)
	if err == nil && found {
		return &user, nil
	}

	dbUser, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Set(ctx, cacheKey, dbUser, userCacheTTL)

	return dbUser, nil
}

// CreateUser validates the payload and creates a user. Uniqueness conflicts
// surface as ErrUserConflict from the repository.
func (s *UserService) CreateUser(ctx context.Context, payload map[string]interface{}) (*models.User, error) {
	verdict, err := s.pipeline.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted {
		return nil, rejection(verdict)
	}

	return s.repo.Create(ctx, verdict.Payload)
}

// UpdateUser re-validates the full replacement payload and performs a
// whole-document replace.
func (s *UserService) UpdateUser(ctx context.Context, id string, payload map[string]interface{}) (*models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidUserID
	}

	verdict, err := s.pipeline.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted {
		return nil, rejection(verdict)
	}

	user, err := s.repo.Replace(ctx, objectID, verdict.Payload)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id))

	return user, nil
}

// DeleteUser removes a user. Plans and lists owned by the user are not
// cascaded.
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidUserID
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.UserCacheKey(id))

	return nil
}
