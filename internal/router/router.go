// Package router sets up HTTP routes for the API.
package router

import (
	"net/http"

	_ "meal-mosaic/swagger" // Import generated swagger docs

	"meal-mosaic/internal/handler"
	"meal-mosaic/internal/middleware"
	"meal-mosaic/pkg/auth"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Config holds all dependencies needed to set up routes.
type Config struct {
	AuthHandler         *handler.AuthHandler
	RecipeHandler       *handler.RecipeHandler
	UserHandler         *handler.UserHandler
	MealPlanHandler     *handler.MealPlanHandler
	ShoppingListHandler *handler.ShoppingListHandler
	JWTManager          *auth.JWTManager

	// AuthBypass leaves write routes open. Local development only.
	AuthBypass bool
}

// Setup creates and configures the Gin router. Reads are public; writes
// require a valid token unless AuthBypass is set.
func Setup(cfg *Config) *gin.Engine {
	r := gin.Default()

	// Global middleware
	r.Use(middleware.CORS())

	// Swagger docs at /docs
	r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"name": "meal-mosaic", "status": "ok"})
	})

	requireAuth := middleware.Auth(cfg.JWTManager)
	if cfg.AuthBypass {
		requireAuth = func(c *gin.Context) { c.Next() }
	}

	// API v1
	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		authRoutes := v1.Group("/auth")
		{
			authRoutes.GET("/github", cfg.AuthHandler.GithubLogin)
			authRoutes.GET("/github/callback", cfg.AuthHandler.GithubCallback)
			authRoutes.GET("/failure", cfg.AuthHandler.Failure)
			authRoutes.GET("/logout", cfg.AuthHandler.Logout)
		}

		// Recipe routes
		recipes := v1.Group("/recipes")
		{
			recipes.GET("", cfg.RecipeHandler.ListRecipes)
			recipes.GET("/:id", cfg.RecipeHandler.GetRecipe)
			recipes.POST("", requireAuth, cfg.RecipeHandler.CreateRecipe)
			recipes.PUT("/:id", requireAuth, cfg.RecipeHandler.UpdateRecipe)
			recipes.DELETE("/:id", requireAuth, cfg.RecipeHandler.DeleteRecipe)
		}

		// User routes
		users := v1.Group("/users")
		{
			users.GET("", cfg.UserHandler.ListUsers)
			users.GET("/:id", cfg.UserHandler.GetUser)
			users.POST("", requireAuth, cfg.UserHandler.CreateUser)
			users.PUT("/:id", requireAuth, cfg.UserHandler.UpdateUser)
			users.DELETE("/:id", requireAuth, cfg.UserHandler.DeleteUser)
		}

		// Meal plan routes
		mealPlans := v1.Group("/meal-plans")
		{
			mealPlans.GET("", cfg.MealPlanHandler.ListMealPlans)
			mealPlans.GET("/:id", cfg.MealPlanHandler.GetMealPlan)
			mealPlans.POST("", requireAuth, cfg.MealPlanHandler.CreateMealPlan)
			mealPlans.PUT("/:id", requireAuth, cfg.MealPlanHandler.UpdateMealPlan)
			mealPlans.DELETE("/:id", requireAuth, cfg.MealPlanHandler.DeleteMealPlan)
		}

		// Shopping list routes
		shoppingLists := v1.Group("/shopping-lists")
		{
			shoppingLists.GET("", cfg.ShoppingListHandler.ListShoppingLists)
			shoppingLists.GET("/:id", cfg.ShoppingListHandler.GetShoppingList)
			shoppingLists.POST("", requireAuth, cfg.ShoppingListHandler.CreateShoppingList)
			shoppingLists.PUT("/:id", requireAuth, cfg.ShoppingListHandler.UpdateShoppingList)
			shoppingLists.DELETE("/:id", requireAuth, cfg.ShoppingListHandler.DeleteShoppingList)
		}
	}

	return r
}
