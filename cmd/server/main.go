package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meal-mosaic/internal/cache"
	"meal-mosaic/internal/config"
	"meal-mosaic/internal/database"
	"meal-mosaic/internal/handler"
	"meal-mosaic/internal/oauth"
	"meal-mosaic/internal/repository"
	"meal-mosaic/internal/router"
	"meal-mosaic/internal/service"
	"meal-mosaic/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           Meal Mosaic API
// @version         1.0
// @description     A REST API for recipes, meal plans, and shopping lists built with Gin, MongoDB, and Redis.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.EnsureIndexes(indexCtx, mongoDB.Database); err != nil {
		log.Printf("Warning: failed to create indexes: %v", err)
	}
	indexCancel()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	recipeRepo := repository.NewRecipeRepository(mongoDB.Database)
	userRepo := repository.NewUserRepository(mongoDB.Database)
	mealPlanRepo := repository.NewMealPlanRepository(mongoDB.Database)
	shoppingListRepo := repository.NewShoppingListRepository(mongoDB.Database)

	// OAuth provider
	githubProvider := oauth.NewGitHub(cfg.GithubClientID, cfg.GithubClientSecret, cfg.GithubCallbackURL)

	// Service layer
	authService := service.NewAuthService(githubProvider, userRepo, jwtManager)
	recipeService := service.NewRecipeService(recipeRepo, redisCache)
	userService := service.NewUserService(userRepo, redisCache)
	mealPlanService := service.NewMealPlanService(mealPlanRepo, userRepo, recipeRepo)
	shoppingListService := service.NewShoppingListService(shoppingListRepo, userRepo)

	// Handler layer
	authHandler := handler.NewAuthHandler(authService, cfg.OAuthConfigured())
	recipeHandler := handler.NewRecipeHandler(recipeService)
	userHandler := handler.NewUserHandler(userService)
	mealPlanHandler := handler.NewMealPlanHandler(mealPlanService)
	shoppingListHandler := handler.NewShoppingListHandler(shoppingListService)

	if cfg.AuthBypass {
		log.Println("Warning: AUTH_BYPASS is set, write routes are unprotected")
	}

	// Router
	r := router.Setup(&router.Config{
		AuthHandler:         authHandler,
		RecipeHandler:       recipeHandler,
		UserHandler:         userHandler,
		MealPlanHandler:     mealPlanHandler,
		ShoppingListHandler: shoppingListHandler,
		JWTManager:          jwtManager,
		AuthBypass:          cfg.AuthBypass,
	})

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	log.Println("Server shutdown complete")
}
