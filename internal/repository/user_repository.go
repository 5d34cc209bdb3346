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
	"go.mongodb.org/mongo-driver/mongo/options"
)

// UserRepository defines the store accessor for users.
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, payload map[string]interface{}) (*models.User, error)
	Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	UpsertByGithubID(ctx context.Context, githubID string, fields map[string]interface{}) (*models.User, error)
	IsValidID(id string) bool
	CountByIDs(ctx context.Context, ids []string) (int64, error)
}

// userRepository implements UserRepository using MongoDB.
type userRepository struct {
	collection *mongo.Collection
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *mongo.Database) UserRepository {
	return &userRepository{collection: db.Collection("users")}
}

// FindAll returns all users.
func (r *userRepository) FindAll(ctx context.Context) ([]models.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []models.User{}
	}
	return users, nil
}

// FindByID finds a user by their ID.
func (r *userRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	var user models.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// Create inserts a validated payload. Username and email uniqueness is
// pre-checked, with the store's unique indexes as the authoritative backstop
// against concurrent creators.
func (r *userRepository) Create(ctx context.Context, payload map[string]interface{}) (*models.User, error) {
	if taken, err := r.identityTaken(ctx, payload, primitive.NilObjectID); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrUserConflict
	}

	doc := newDocument(payload, time.Now())

	result, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return nil, classifyWriteError(err, apperrors.ErrUserConflict)
	}
	return r.FindByID(ctx, result.InsertedID.(primitive.ObjectID))
}

// Replace performs a whole-document replace with the validated payload.
func (r *userRepository) Replace(ctx context.Context, id primitive.ObjectID, payload map[string]interface{}) (*models.User, error) {
	if taken, err := r.identityTaken(ctx, payload, id); err != nil {
		return nil, err
	} else if taken {
		return nil, apperrors.ErrUserConflict
	}

	doc := replaceDocument(payload, time.Now())

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": doc})
	if err != nil {
		return nil, classifyWriteError(err, apperrors.ErrUserConflict)
	}
	if result.MatchedCount == 0 {
		return nil, apperrors.ErrUserNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes a user. Meal plans and shopping lists owned by the user are
// left in place; there is no cascade.
func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// UpsertByGithubID creates or refreshes the user tied to a GitHub identity
// and returns the stored document. Used by the OAuth callback.
func (r *userRepository) UpsertByGithubID(ctx context.Context, githubID string, fields map[string]interface{}) (*models.User, error) {
	now := time.Now()
	set := make(bson.M, len(fields)+2)
	for k, v := range fields {
		set[k] = v
	}
	set["githubId"] = githubID
	set["updatedAt"] = now

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var user models.User
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"githubId": githubID},
		bson.M{"$set": set, "$setOnInsert": bson.M{"createdAt": now}},
		opts,
	).Decode(&user)
	if err != nil {
		return nil, classifyWriteError(err, apperrors.ErrUserConflict)
	}
	return &user, nil
}

// IsValidID reports whether id is syntactically valid for this store.
func (r *userRepository) IsValidID(id string) bool {
	return isValidHexID(id)
}

// CountByIDs counts how many of the given identifiers name existing users in
// one batched query.
func (r *userRepository) CountByIDs(ctx context.Context, ids []string) (int64, error) {
	return countByHexIDs(ctx, r.collection, ids)
}

// identityTaken reports whether another user already holds the payload's
// username or email.
func (r *userRepository) identityTaken(ctx context.Context, payload map[string]interface{}, self primitive.ObjectID) (bool, error) {
	var clauses []bson.M
	if username, ok := payload["username"].(string); ok && username != "" {
		clauses = append(clauses, bson.M{"username": username})
	}
	if email, ok := payload["email"].(string); ok && email != "" {
		clauses = append(clauses, bson.M{"email": email})
	}
	if len(clauses) == 0 {
		return false, nil
	}

	filter := bson.M{"$or": clauses}
	if self != primitive.NilObjectID {
		filter["_id"] = bson.M{"$ne": self}
	}

	count, err := r.collection.CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
