package service

import (
	"context"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/models"
	"meal-mosaic/internal/repository"
	"meal-mosaic/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealPlanService handles business logic for meal plan operations. Its
// pipeline resolves the owning user against the users store and every
// entry's recipe against the recipes store before any write.
type MealPlanService struct {
	repo     repository.MealPlanRepository
	pipeline *validation.Pipeline
}

// NewMealPlanService creates a new MealPlanService. The user and recipe
// repositories participate only as reference stores.
func NewMealPlanService(repo repository.MealPlanRepository, users repository.UserRepository, recipes repository.RecipeRepository) *MealPlanService {
	return &MealPlanService{
		repo:     repo,
		pipeline: validation.NewMealPlanPipeline(users, recipes),
	}
}

// ListMealPlans retrieves all meal plans.
func (s *MealPlanService) ListMealPlans(ctx context.Context) ([]models.MealPlan, error) {
	return s.repo.FindAll(ctx)
}

// GetMealPlan retrieves a meal plan by ID.
func (s *MealPlanService) GetMealPlan(ctx context.Context, id string) (*models.MealPlan, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidMealPlanID
	}
	return s.repo.FindByID(ctx, objectID)
}

// CreateMealPlan validates the payload, resolves its references, and creates
// the plan. A recipe or user deleted between the reference check and the
// insert is not caught; that window is accepted.
func (s *MealPlanService) CreateMealPlan(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
	verdict, err := s.pipeline.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted {
		return nil, rejection(verdict)
	}

	return s.repo.Create(ctx, verdict.Payload)
}

// UpdateMealPlan re-validates the full replacement payload, references
// included, and performs a whole-document replace.
func (s *MealPlanService) UpdateMealPlan(ctx context.Context, id string, payload map[string]interface{}) (*models.MealPlan, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidMealPlanID
	}

	verdict, err := s.pipeline.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted {
		return nil, rejection(verdict)
	}

	return s.repo.Replace(ctx, objectID, verdict.Payload)
}

// DeleteMealPlan removes a meal plan.
func (s *MealPlanService) DeleteMealPlan(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidMealPlanID
	}
	return s.repo.Delete(ctx, objectID)
}
