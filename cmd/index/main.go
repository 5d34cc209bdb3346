package main

import (
	"context"
	"log"
	"time"

	"meal-mosaic/internal/config"
	"meal-mosaic/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func main() {
	log.Println("Starting migration...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	createIndexes(ctx, mongoDB.Database)

	log.Println("Migration completed successfully!")
}

func createIndexes(ctx context.Context, db *mongo.Database) {
	// Users indexes
	createIndex(ctx, db, "users", bson.D{{Key: "username", Value: 1}}, options.Index().SetUnique(true))
	createIndex(ctx, db, "users", bson.D{{Key: "email", Value: 1}}, options.Index().SetUnique(true))
	createIndex(ctx, db, "users", bson.D{{Key: "githubId", Value: 1}}, options.Index().SetUnique(true).SetSparse(true))

	// Recipes indexes
	createIndex(ctx, db, "recipes", bson.D{{Key: "author", Value: 1}}, nil)
	createIndex(ctx, db, "recipes", bson.D{{Key: "tags", Value: 1}}, nil)
	createIndex(ctx, db, "recipes", bson.D{{Key: "createdAt", Value: -1}}, nil)

	// Meal plans indexes
	createIndex(ctx, db, "mealplans", bson.D{{Key: "user", Value: 1}}, nil)
	createIndex(ctx, db, "mealplans", bson.D{{Key: "startDate", Value: 1}}, nil)

	// Shopping lists indexes
	createIndex(ctx, db, "shoppinglists", bson.D{{Key: "user", Value: 1}}, nil)
	createIndex(ctx, db, "shoppinglists", bson.D{{Key: "dueDate", Value: 1}}, nil)
}

func createIndex(ctx context.Context, db *mongo.Database, collection string, keys bson.D, opts *options.IndexOptions) {
	indexModel := mongo.IndexModel{
		Keys:    keys,
		Options: opts,
	}

	name, err := db.Collection(collection).Indexes().CreateOne(ctx, indexModel)
	if err != nil {
		log.Printf("Warning: Failed to create index on %s: %v", collection, err)
		return
	}

	log.Printf("Created index %s on %s", name, collection)
}
