//go:build api

// Package testserver provides a fully wired test server for API integration tests.
package testserver

import (
	"context"
	"time"

	"meal-mosaic/internal/cache"
	"meal-mosaic/internal/database"
	"meal-mosaic/internal/handler"
	"meal-mosaic/internal/oauth"
	"meal-mosaic/internal/repository"
	"meal-mosaic/internal/router"
	"meal-mosaic/internal/service"
	"meal-mosaic/pkg/auth"
	"meal-mosaic/test/api/testdb"

	"github.com/gin-gonic/gin"
)

const (
	// TestJWTSecret is the JWT secret used in tests.
	TestJWTSecret = "test-secret-key-for-api-tests"
	// TestJWTExpiry is the token expiry used in tests.
	TestJWTExpiry = 15 * time.Minute
	// TestDBName is the database name used in tests.
	TestDBName = "test_api"
)

// TestServer holds all dependencies for API integration tests.
type TestServer struct {
	// Router is the Gin engine for making HTTP requests.
	Router *gin.Engine

	// Containers
	MongoDB *testdb.MongoContainer
	Redis   *testdb.RedisContainer

	// Repositories (for direct database access in tests)
	UserRepo         repository.UserRepository
	RecipeRepo       repository.RecipeRepository
	MealPlanRepo     repository.MealPlanRepository
	ShoppingListRepo repository.ShoppingListRepository

	// Services (for direct service access in tests)
	AuthService         service.AuthServicer
	RecipeService       service.RecipeServicer
	UserService         service.UserServicer
	MealPlanService     service.MealPlanServicer
	ShoppingListService service.ShoppingListServicer

	// Auth
	JWTManager *auth.JWTManager
}

// New creates a new test server with all dependencies wired up.
func New(ctx context.Context) (*TestServer, error) {
	gin.SetMode(gin.TestMode)

	mongoDB, err := testdb.SetupMongoDB(ctx, TestDBName)
	if err != nil {
		return nil, err
	}

	redisContainer, err := testdb.SetupRedis(ctx)
	if err != nil {
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	if err := database.EnsureIndexes(ctx, mongoDB.Database); err != nil {
		_ = redisContainer.Cleanup(ctx)
		_ = mongoDB.Cleanup(ctx)
		return nil, err
	}

	redisCache := cache.NewRedis(redisContainer.URI)

	jwtManager := auth.NewJWTManager(TestJWTSecret, TestJWTExpiry)

	userRepo := repository.NewUserRepository(mongoDB.Database)
	recipeRepo := repository.NewRecipeRepository(mongoDB.Database)
	mealPlanRepo := repository.NewMealPlanRepository(mongoDB.Database)
	shoppingListRepo := repository.NewShoppingListRepository(mongoDB.Database)

	// The OAuth provider points at real GitHub with throwaway credentials;
	// tests only exercise the redirect and state checks, never the exchange.
	githubProvider := oauth.NewGitHub("test-client-id", "test-client-secret",
		"http://localhost:8080/api/v1/auth/github/callback")

	authService := service.NewAuthService(githubProvider, userRepo, jwtManager)
	recipeService := service.NewRecipeService(recipeRepo, redisCache)
	userService := service.NewUserService(userRepo, redisCache)
	mealPlanService := service.NewMealPlanService(mealPlanRepo, userRepo, recipeRepo)
	shoppingListService := service.NewShoppingListService(shoppingListRepo, userRepo)

	authHandler := handler.NewAuthHandler(authService, true)
	recipeHandler := handler.NewRecipeHandler(recipeService)
	userHandler := handler.NewUserHandler(userService)
	mealPlanHandler := handler.NewMealPlanHandler(mealPlanService)
	shoppingListHandler := handler.NewShoppingListHandler(shoppingListService)

	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		RecipeHandler:       recipeHandler,
		UserHandler:         userHandler,
		MealPlanHandler:     mealPlanHandler,
		ShoppingListHandler: shoppingListHandler,
		JWTManager:          jwtManager,
	})

	return &TestServer{
		Router:              r,
		MongoDB:             mongoDB,
		Redis:               redisContainer,
		UserRepo:            userRepo,
		RecipeRepo:          recipeRepo,
		MealPlanRepo:        mealPlanRepo,
		ShoppingListRepo:    shoppingListRepo,
		AuthService:         authService,
		RecipeService:       recipeService,
		UserService:         userService,
		MealPlanService:     mealPlanService,
		ShoppingListService: shoppingListService,
		JWTManager:          jwtManager,
	}, nil
}

// Cleanup terminates all containers.
func (ts *TestServer) Cleanup(ctx context.Context) {
	if ts.Redis != nil {
		_ = ts.Redis.Cleanup(ctx)
	}
	if ts.MongoDB != nil {
		_ = ts.MongoDB.Cleanup(ctx)
	}
}
