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

// ShoppingListRepository defines the store accessor for shopping lists.
type ShoppingListRepository interface {
	FindAll(ctx context.Context) ([]models.ShoppingList, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShoppingList, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error)
	Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.ShoppingList, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	IsValidID(id string) bool
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}

// shoppingListRepository implements ShoppingListRepository using MongoDB.
type shoppingListRepository struct {
	collection *mongo.Collection
}

// NewShoppingListRepository creates a new ShoppingListRepository.
func NewShoppingListRepository(db *mongo.Database) ShoppingListRepository {
	return &shoppingListRepository{collection: db.Collection("shoppinglists")}
}

// FindAll returns all shopping lists.
func (r *shoppingListRepository) FindAll(ctx context.Context) ([]models.ShoppingList, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var lists []models.ShoppingList
	if err := cursor.All(ctx, &lists); err != nil {
		return nil, err
	}
	if lists == nil {
		lists = []models.ShoppingList{}
	}
	return lists, nil
}

// FindByID finds a shopping list by its ID.
func (r *shoppingListRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrShoppingListNotFound
		}
		return nil, err
	}
	return &list, nil
}

// Create inserts a validated payload and returns the stored list.
func (r *shoppingListRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.ShoppingList, error) {
	doc := newDocument(payload, time.Now())

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, classifyWriteError(err, nil)
	}
	return r.FindByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// Replace performs a whole-document replace with the validated payload.
func (r *shoppingListRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.ShoppingList, error) {
	doc := replaceDocument(payload, time.Now())

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc})
	if err != nil {
		return nil, classifyWriteError(err, nil)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrShoppingListNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a shopping list.
func (r *shoppingListRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrShoppingListNotFound
	}
	return nil
}

// IsValidID reports whether id is syntactically valid for this store.
func (r *shoppingListRepository) IsValidID(id string) bool {
	return isValidHexID(id)
}

// CountByIDs counts how many of the given identifiers name existing shopping
// lists in one batched query.
func (r *shoppingListRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	return countByHexIDs(ctx, r.collection, ids)
}
