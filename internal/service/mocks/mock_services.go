// Package mocks provides mock implementations of service interfaces for testing.
package mocks

import (
	"context"

	"meal-mosaic/internal/models"
)

// MockRecipeService is a mock implementation of RecipeServicer.
type MockRecipeService struct {
	ListRecipesFunc  func(ctx context.Context) ([]models.Recipe, error)
	GetRecipeFunc    func(ctx context.Context, id string) (*models.Recipe, error)
	CreateRecipeFunc func(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error)
	UpdateRecipeFunc func(ctx context.Context, id string, payload map[string]interface{}) (*models.Recipe, error)
	DeleteRecipeFunc func(ctx context.Context, id string) error
}

func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]models.Recipe, error) {
	if m.ListRecipesFunc != nil {
		return m.ListRecipesFunc(ctx)
	}
	return nil, nil
}

func (m *MockRecipeService) GetRecipe(ctx context.Context, id string) (*models.Recipe, error) {
	if m.GetRecipeFunc != nil {
		return m.GetRecipeFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockRecipeService) CreateRecipe(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error) {
	if m.CreateRecipeFunc != nil {
		return m.CreateRecipeFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockRecipeService) UpdateRecipe(ctx context.Context, id string, payload map[string]interface{}) (*models.Recipe, error) {
	if m.UpdateRecipeFunc != nil {
		return m.UpdateRecipeFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockRecipeService) DeleteRecipe(ctx context.Context, id string) error {
	if m.DeleteRecipeFunc != nil {
		return m.DeleteRecipeFunc(ctx, id)
	}
	return nil
}

// MockUserService is a mock implementation of UserServicer.
type MockUserService struct {
	ListUsersFunc  func(ctx context.Context) ([]models.User, error)
	GetUserFunc    func(ctx context.Context, id string) (*models.User, error)
	CreateUserFunc func(ctx context.Context, payload map[string]interface{}) (*models.User, error)
	UpdateUserFunc func(ctx context.Context, id string, payload map[string]interface{}) (*models.User, error)
	DeleteUserFunc func(ctx context.Context, id string) error
}

func (m *MockUserService) ListUsers(ctx context.Context) ([]models.User, error) {
	if m.ListUsersFunc != nil {
		return m.ListUsersFunc(ctx)
	}
	return nil, nil
}

func (m *MockUserService) GetUser(ctx context.Context, id string) (*models.User, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockUserService) CreateUser(ctx context.Context, payload map[string]interface{}) (*models.User, error) {
	if m.CreateUserFunc != nil {
		return m.CreateUserFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockUserService) UpdateUser(ctx context.Context, id string, payload map[string]interface{}) (*models.User, error) {
	if m.UpdateUserFunc != nil {
		return m.UpdateUserFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockUserService) DeleteUser(ctx context.Context, id string) error {
	if m.DeleteUserFunc != nil {
		return m.DeleteUserFunc(ctx, id)
	}
	return nil
}

// MockMealPlanService is a mock implementation of MealPlanServicer.
type MockMealPlanService struct {
	ListMealPlansFunc  func(ctx context.Context) ([]models.MealPlan, error)
	GetMealPlanFunc    func(ctx context.Context, id string) (*models.MealPlan, error)
	CreateMealPlanFunc func(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error)
	UpdateMealPlanFunc func(ctx context.Context, id string, payload map[string]interface{}) (*models.MealPlan, error)
	DeleteMealPlanFunc func(ctx context.Context, id string) error
}

func (m *MockMealPlanService) ListMealPlans(ctx context.Context) ([]models.MealPlan, error) {
	if m.ListMealPlansFunc != nil {
		return m.ListMealPlansFunc(ctx)
	}
	return nil, nil
}

func (m *MockMealPlanService) GetMealPlan(ctx context.Context, id string) (*models.MealPlan, error) {
	if m.GetMealPlanFunc != nil {
		return m.GetMealPlanFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockMealPlanService) CreateMealPlan(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
	if m.CreateMealPlanFunc != nil {
		return m.CreateMealPlanFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockMealPlanService) UpdateMealPlan(ctx context.Context, id string, payload map[string]interface{}) (*models.MealPlan, error) {
	if m.UpdateMealPlanFunc != nil {
		return m.UpdateMealPlanFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockMealPlanService) DeleteMealPlan(ctx context.Context, id string) error {
	if m.DeleteMealPlanFunc != nil {
		return m.DeleteMealPlanFunc(ctx, id)
	}
	return nil
}

// MockAuthService is a mock implementation of AuthServicer.
type MockAuthService struct {
	LoginURLFunc       func(state string) string
	HandleCallbackFunc func(ctx context.Context, code string) (*models.LoginResponse, error)
}

func (m *MockAuthService) LoginURL(state string) string {
	if m.LoginURLFunc != nil {
		return m.LoginURLFunc(state)
	}
	return ""
}

func (m *MockAuthService) HandleCallback(ctx context.Context, code string) (*models.LoginResponse, error) {
	if m.HandleCallbackFunc != nil {
		return m.HandleCallbackFunc(ctx, code)
	}
	return nil, nil
}

// MockShoppingListService is a mock implementation of ShoppingListServicer.
type MockShoppingListService struct {
	ListShoppingListsFunc  func(ctx context.Context) ([]models.ShoppingList, error)
	GetShoppingListFunc    func(ctx context.Context, id string) (*models.ShoppingList, error)
	CreateShoppingListFunc func(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error)
	UpdateShoppingListFunc func(ctx context.Context, id string, payload map[string]interface{}) (*models.ShoppingList, error)
	DeleteShoppingListFunc func(ctx context.Context, id string) error
}

func (m *MockShoppingListService) ListShoppingLists(ctx context.Context) ([]models.ShoppingList, error) {
	if m.ListShoppingListsFunc != nil {
		return m.ListShoppingListsFunc(ctx)
	}
	return nil, nil
}

func (m *MockShoppingListService) GetShoppingList(ctx context.Context, id string) (*models.ShoppingList, error) {
	if m.GetShoppingListFunc != nil {
		return m.GetShoppingListFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockShoppingListService) CreateShoppingList(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error) {
	if m.CreateShoppingListFunc != nil {
		return m.CreateShoppingListFunc(ctx, payload)
	}
	return nil, nil
}

func (m *MockShoppingListService) UpdateShoppingList(ctx context.Context, id string, payload map[string]interface{}) (*models.ShoppingList, error) {
	if m.UpdateShoppingListFunc != nil {
		return m.UpdateShoppingListFunc(ctx, id, payload)
	}
	return nil, nil
}

func (m *MockShoppingListService) DeleteShoppingList(ctx context.Context, id string) error {
	if m.DeleteShoppingListFunc != nil {
		return m.DeleteShoppingListFunc(ctx, id)
	}
	return nil
}
