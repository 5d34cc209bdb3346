// Package mocks provides mock implementations of repository interfaces for
// service tests.
package mocks

import (
	"context"
	"time"

	"meal-mosaic/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockRecipeRepository is a mock implementation of RecipeRepository.
type MockRecipeRepository struct {
	FindAllFunc    func(ctx context.Context) ([]models.Recipe, error)
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	CreateFunc     func(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error)
	ReplaceFunc    func(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.Recipe, error)
	DeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
	IsValidIDFunc  func(id string) bool
	CountByIDsFunc func(ctx context.Context, ids []string) (int64, error)
}

func (m *MockRecipeRepository) FindAll(ctx context.Context) ([]models.Recipe, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRecipeRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockRecipeRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.Recipe, error) {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockRecipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockRecipeRepository) IsValidID(id string) bool {
	if m.IsValidIDFunc != nil {
		return m.IsValidIDFunc(id)
	}
	return primitive.IsValidObjectID(id)
}

func (m *MockRecipeRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if m.CountByIDsFunc != nil {
		return m.CountByIDsFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	FindAllFunc          func(ctx context.Context) ([]models.User, error)
	FindByIDFunc         func(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	CreateFunc           func(ctx context.Context, payload map[string]interface{}) (*models.User, error)
	ReplaceFunc          func(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.User, error)
	DeleteFunc           func(ctx context.Context, id primitive.ObjectID) error
	UpsertByGithubIDFunc func(ctx context.Context, githubID string, fields map[string]interface{}) (*models.User, error)
	IsValidIDFunc        func(id string) bool
	CountByIDsFunc       func(ctx context.Context, ids []string) (int64, error)
}

func (m *MockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.User, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockUserRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.User, error) {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockUserRepository) UpsertByGithubID(ctx context.Context, githubID string, fields map[string]interface{}) (*models.User, error) {
	if m.UpsertByGithubIDFunc != nil {
		return m.UpsertByGithubIDFunc(ctx, githubID, fields)
	}
	return nil, nil
}

func (m *MockUserRepository) IsValidID(id string) bool {
	if m.IsValidIDFunc != nil {
		return m.IsValidIDFunc(id)
	}
	return primitive.IsValidObjectID(id)
}

func (m *MockUserRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if m.CountByIDsFunc != nil {
		return m.CountByIDsFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}

// MockMealPlanRepository is a mock implementation of MealPlanRepository.
type MockMealPlanRepository struct {
	FindAllFunc    func(ctx context.Context) ([]models.MealPlan, error)
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.MealPlan, error)
	CreateFunc     func(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error)
	ReplaceFunc    func(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.MealPlan, error)
	DeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
	IsValidIDFunc  func(id string) bool
	CountByIDsFunc func(ctx context.Context, ids []string) (int64, error)
}

func (m *MockMealPlanRepository) FindAll(ctx context.Context) ([]models.MealPlan, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockMealPlanRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MealPlan, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMealPlanRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockMealPlanRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.MealPlan, error) {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockMealPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockMealPlanRepository) IsValidID(id string) bool {
	if m.IsValidIDFunc != nil {
		return m.IsValidIDFunc(id)
	}
	return primitive.IsValidObjectID(id)
}

func (m *MockMealPlanRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if m.CountByIDsFunc != nil {
		return m.CountByIDsFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}

// MockShoppingListRepository is a mock implementation of ShoppingListRepository.
type MockShoppingListRepository struct {
	FindAllFunc    func(ctx context.Context) ([]models.ShoppingList, error)
	FindByIDFunc   func(ctx context.Context, id primitive.ObjectID) (*models.ShoppingList, error)
	CreateFunc     func(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error)
	ReplaceFunc    func(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.ShoppingList, error)
	DeleteFunc     func(ctx context.Context, id primitive.ObjectID) error
	IsValidIDFunc  func(id string) bool
	CountByIDsFunc func(ctx context.Context, ids []string) (int64, error)
}

func (m *MockShoppingListRepository) FindAll(ctx context.Context) ([]models.ShoppingList, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockShoppingListRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShoppingList, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShoppingListRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error) {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockShoppingListRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.ShoppingList, error) {
	if m.ReplaceFunc != nil {
		return m.ReplaceFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockShoppingListRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockShoppingListRepository) IsValidID(id string) bool {
	if m.IsValidIDFunc != nil {
		return m.IsValidIDFunc(id)
	}
	return primitive.IsValidObjectID(id)
}

func (m *MockShoppingListRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	if m.CountByIDsFunc != nil {
		return m.CountByIDsFunc(ctx, ids)
	}
	return int64(len(ids)), nil
}

// MockCache is a mock implementation of cache.Cache.
type MockCache struct {
	SetFunc    func(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	GetFunc    func(ctx context.Context, key string, dest interface{}) (bool, error)
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *MockCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, key, value, ttl)
	}
	return nil
}

func (m *MockCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, key, dest)
	}
	return false, nil
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}
