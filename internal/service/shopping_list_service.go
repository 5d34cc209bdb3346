package service

import (
	"context"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/models"
	"meal-mosaic/internal/repository"
	"meal-mosaic/internal/validation"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingListService handles business logic for shopping list operations.
type ShoppingListService struct {
	repo     repository.ShoppingListRepository
	pipeline *validation.Pipeline
}

// NewShoppingListService creates a new ShoppingListService. The user
// repository participates only as a reference store.
func NewShoppingListService(repo repository.ShoppingListRepository, users repository.UserRepository) *ShoppingListService {
	return &ShoppingListService{
		repo:     repo,
		pipeline: validation.NewShoppingListPipeline(users),
	}
}

// ListShoppingLists retrieves all shopping lists.
func (s *ShoppingListService) ListShoppingLists(ctx context.Context) ([]models.ShoppingList, error) {
	return s.repo.FindAll(ctx)
}

// GetShoppingList retrieves a shopping list by ID.
func (s *ShoppingListService) GetShoppingList(ctx context.Context, id string) (*models.ShoppingList, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidShoppingListID
	}
	return s.repo.FindByID(ctx, objectID)
}

// CreateShoppingList validates the payload, resolves the owning user, and
// creates the list.
func (s *ShoppingListService) CreateShoppingList(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error) {
	verdict, err := s.pipeline.Validate(ctx, payload)
	if err != nil {
		return nil, err
	}
	if !verdict.Accepted {
		return nil, rejection(verdict)
	}

	return s.repo.Create(ctx, verdict.Payload)
}

// UpdateShoppingList re-validates the full replacement payload and performs
// a whole-document replace.
func (s *ShoppingListService) UpdateShoppingList(ctx context.Context, id string, payload map[string]interface{}) (*models.ShoppingList, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, apperrors.ErrInvalidShoppingListID
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

// DeleteShoppingList removes a shopping list.
func (s *ShoppingListService) DeleteShoppingList(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return apperrors.ErrInvalidShoppingListID
	}
	return s.repo.Delete(ctx, objectID)
}
