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

const recipeCacheTTL = 15 * time.Minute

// RecipeService handles business logic for recipe operations.
type RecipeService struct {
	repo     repository.RecipeRepository
	cache    cache.Cache
	pipeline *validation.Pipeline
}

// NewRecipeService creates a new RecipeService.
func NewRecipeService(repo repository.RecipeRepository, cache cache.Cache) *RecipeService {
	return &RecipeService{
		repo:     repo,
		cache:    cache,
		pipeline: validation.NewRecipePipeline(),
	}
}

// ListRecipes retrieves all recipes.
func (s *RecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	return s.repo.FindAll(ctx)
}

// GetRecipe retrieves a recipe by ID (with caching).
func (s *RecipeService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidRecipeID
	}

	cacheKey := cache.RecipeCacheKey(id)
	var recipe models.Recipe
	found, err := s.cache.Get(ctx, cacheKey, &recipe)
	if err == nil && found {
		return &recipe, nil
	}

	dbRecipe, err := s.repo.FindByID(ctx, objectID)
	if err != nil {
		return nil, err
	}

	// Cache is best effort
	_ = s.cache.Set(ctx, cacheKey, dbRecipe, recipeCacheTTL)

	return dbRecipe, nil
}

// CreateRecipe validates the payload and creates a recipe.
func (s *RecipeService) CreateRecipe(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error) {
	verdict, err := s.pipeline.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted {
		return nil, rejection(verdict)
	}

	return s.repo.Create(ctx, verdict.Payload)
}

// UpdateRecipe re-validates the full replacement payload and performs a
// whole-document replace. Partial updates are not supported.
func (s *RecipeService) UpdateRecipe(ctx context.Context, id string, payload map[string]interface{}) (*models.Recipe, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidRecipeID
	}

	verdict, err := s.pipeline.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted {
		return nil, rejection(verdict)
	}

	recipe, err := s.repo.Replace(ctx, objectID, verdict.Payload)
	if err != nil {
		return nil, err
	}

	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id))

	return recipe, nil
}

// DeleteRecipe removes a recipe. Meal plans referencing it are left alone.
func (s *RecipeService) DeleteRecipe(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidRecipeID
	}

	if err := s.repo.Delete(ctx, objectID); err != nil {
		return err
	}

	_ = s.cache.Delete(ctx, cache.RecipeCacheKey(id))

	return nil
}
