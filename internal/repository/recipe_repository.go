package repository

import (
	"context"
	"errors"
	"time"

	apperrors "meal-mosaic/internal/errors"
	"meal-mosaic/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// RecipeRepository defines the store accessor for recipes.
type RecipeRepository interface {
	FindAll(ctx context.Context) ([]models.Recipe, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error)
	Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.Recipe, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IsValidID(id string) bool
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}

// recipeRepository implements RecipeRepository using MongoDB.
type recipeRepository struct {
	collection *mongo.Collection
}

// NewRecipeRepository creates a new RecipeRepository.
func NewRecipeRepository(db *mongo.Database) RecipeRepository {
	return &recipeRepository{collection: db.Collection("recipes")}
}

// FindAll returns all recipes.
func (r *recipeRepository) FindAll(ctx context.Context) ([]models.Recipe, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var recipes []models.Recipe
	if err := cursor.All(ctx, &recipes); err != nil {
		return nil, err
	}
	if recipes == nil {
		recipes = []models.Recipe{}
	}
	return recipes, nil
}

// FindByID finds a recipe by its ID.
func (r *recipeRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Recipe, error) {
	var recipe models.Recipe
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&recipe)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrRecipeNotFound
		}
		return nil, err
	}
	return &recipe, nil
}

// Create inserts a validated payload and returns the stored recipe.
func (r *recipeRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.Recipe, error) {
	doc := newDocument(payload, time.Now())

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, classifyWriteError(err, nil)
	}
	return r.FindByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// Replace performs a whole-document replace with the validated payload.
func (r *recipeRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.Recipe, error) {
	doc := replaceDocument(payload, time.Now())

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc})
	if err != nil {
		return nil, classifyWriteError(err, nil)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrRecipeNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a recipe. There is no referential cascade: meal plans that
// reference the recipe keep their now-dangling reference.
func (r *recipeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrRecipeNotFound
	}
	return nil
}

// IsValidID reports whether id is syntactically valid for this store.
func (r *recipeRepository) IsValidID(id string) bool {
	return isValidHexID(id)
}

// CountByIDs counts how many of the given identifiers name existing recipes
// in one batched query.
func (r *recipeRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	return countByHexIDs(ctx, r.collection, ids)
}
