// Package service contains business logic for the application. Each service
// runs its kind's validation pipeline and, only on an accepted verdict,
// hands the original payload to the repository. Rejected verdicts surface as
// RequestError values carrying the status hint and field detail; store
// sentinels pass through untouched.
package service

import (
	"context"

	"meal-mosaic/internal/models"
)

// RecipeServicer defines the interface for recipe operations.
type RecipeServicer interface {
	ListRecipes(ctx context.Context) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, id string) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, payload map[string]interface{}) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
}

// UserServicer defines the interface for user operations.
type UserServicer interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, payload map[string]interface{}) (*models.User, error)
	UpdateUser(ctx context.Context, id string, payload map[string]interface{}) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// MealPlanServicer defines the interface for meal plan operations.
type MealPlanServicer interface {
	ListMealPlans(ctx context.Context) ([]models.MealPlan, error)
	GetMealPlan(ctx context.Context, id string) (*models.MealPlan, error)
	CreateMealPlan(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error)
	UpdateMealPlan(ctx context.Context, id string, payload map[string]interface{}) (*models.MealPlan, error)
	DeleteMealPlan(ctx context.Context, id string) error
}

// ShoppingListServicer defines the interface for shopping list operations.
type ShoppingListServicer interface {
	ListShoppingLists(ctx context.Context) ([]models.ShoppingList, error)
	GetShoppingList(ctx context.Context, id string) (*models.ShoppingList, error)
	CreateShoppingList(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error)
	UpdateShoppingList(ctx context.Context, id string, payload map[string]interface{}) (*models.ShoppingList, error)
	DeleteShoppingList(ctx context.Context, id string) error
}

// AuthServicer defines the interface for GitHub login operations.
type AuthServicer interface {
	LoginURL(state string) string
	HandleCallback(ctx context.Context, code string) (*models.LoginResponse, error)
}

// Ensure concrete types implement interfaces
var (
	_ RecipeServicer       = (*RecipeService)(nil)
	_ UserServicer         = (*UserService)(nil)
	_ MealPlanServicer     = (*MealPlanService)(nil)
	_ ShoppingListServicer = (*ShoppingListService)(nil)
	_ AuthServicer         = (*AuthService)(nil)
)
