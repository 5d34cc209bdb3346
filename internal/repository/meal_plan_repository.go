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

// MealPlanRepository defines the store accessor for meal plans.
type MealPlanRepository interface {
	FindAll(ctx context.Context) ([]models.MealPlan, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.MealPlan, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error)
	Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.MealPlan, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IsValidID(id string) bool
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}

// mealPlanRepository implements MealPlanRepository using MongoDB.
type mealPlanRepository struct {
	collection *mongo.Collection
}

// NewMealPlanRepository creates a new MealPlanRepository.
func NewMealPlanRepository(db *mongo.Database) MealPlanRepository {
	return &mealPlanRepository{collection: db.Collection("mealplans")}
}

// FindAll returns all meal plans.
func (r *mealPlanRepository) FindAll(ctx context.Context) ([]models.MealPlan, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var plans []models.MealPlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, err
	}
	if plans == nil {
		plans = []models.MealPlan{}
	}
	return plans, nil
}

// FindByID finds a meal plan by its ID.
func (r *mealPlanRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.MealPlan, error) {
	var plan models.MealPlan
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&plan)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrMealPlanNotFound
		}
		return nil, err
	}
	return &plan, nil
}

// Create inserts a validated payload and returns the stored meal plan. The
// references the pipeline confirmed are not re-checked here; a delete racing
// in between validation and this insert wins.
func (r *mealPlanRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.MealPlan, error) {
	doc := newDocument(payload, time.Now())

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, classifyWriteError(err, nil)
	}
	return r.FindByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// Replace performs a whole-document replace with the validated payload.
func (r *mealPlanRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.MealPlan, error) {
	doc := replaceDocument(payload, time.Now())

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc})
	if err != nil {
		return nil, classifyWriteError(err, nil)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrMealPlanNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a meal plan.
func (r *mealPlanRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrMealPlanNotFound
	}
	return nil
}

// IsValidID reports whether id is syntactically valid for this store.
func (r *mealPlanRepository) IsValidID(id string) bool {
	return isValidHexID(id)
}

// CountByIDs counts how many of the given identifiers name existing meal
// plans in one batched query.
func (r *mealPlanRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	return countByHexIDs(ctx, r.collection, ids)
}
