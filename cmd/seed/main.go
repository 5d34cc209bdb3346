package main

import (
	"context"
	"log"
	"time"

	"meal-mosaic/internal/config"
	"meal-mosaic/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func main() {
	log.Println("Starting seed...")

	cfg := config.Load()

	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	ctx := context.Background()

	userIDs := seedUsers(ctx, mongoDB.Database)
	recipeIDs := seedRecipes(ctx, mongoDB.Database, userIDs)
	seedMealPlans(ctx, mongoDB.Database, userIDs, recipeIDs)
	seedShoppingLists(ctx, mongoDB.Database, userIDs)

	log.Println("Seed completed successfully!")
}

func clearCollection(ctx context.Context, db *mongo.Database, name string) {
	if _, err := db.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
		log.Fatalf("Failed to clear %s: %v", name, err)
	}
}

func seedUsers(ctx context.Context, db *mongo.Database) []primitive.ObjectID {
	collection := db.Collection("users")
	clearCollection(ctx, db, "users")

	now := time.Now()
	users := []interface{}{
		bson.M{
			"username":  "dana",
			"email":     "dana@example.com",
			"avatarUrl": "https://avatars.githubusercontent.com/u/1",
			"createdAt": now,
			"updatedAt": now,
		},
		bson.M{
			"username":  "sam",
			"email":     "sam@example.com",
			"createdAt": now,
			"updatedAt": now,
		},
	}

	result, err := collection.InsertMany(ctx, users)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	ids := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id.(primitive.ObjectID)
	}
	log.Printf("Seeded %d users", len(ids))
	return ids
}

func seedRecipes(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) []primitive.ObjectID {
	collection := db.Collection("recipes")
	clearCollection(ctx, db, "recipes")

	now := time.Now()
	recipes := []interface{}{
		bson.M{
			"title":           "Tacos al Pastor",
			"cuisine":         "Mexican",
			"summary":         "Marinated pork tacos with pineapple.",
			"prepTimeMinutes": 30,
			"cookTimeMinutes": 20,
			"servings":        4,
			"ingredients": []bson.M{
				{"name": "pork shoulder", "quantity": 1.5, "unit": "lb"},
				{"name": "pineapple", "quantity": 0.5, "unit": "whole"},
				{"name": "corn tortillas", "quantity": 12, "unit": "pieces"},
			},
			"steps": []string{
				"Marinate the pork overnight.",
				"Roast with pineapple until charred.",
				"Serve on warm tortillas.",
			},
			"tags":      []string{"dinner", "pork"},
			"author":    userIDs[0].Hex(),
			"createdAt": now,
			"updatedAt": now,
		},
		bson.M{
			"title":           "Shoyu Ramen",
			"cuisine":         "Japanese",
			"summary":         "Soy-based noodle soup.",
			"prepTimeMinutes": 20,
			"cookTimeMinutes": 40,
			"servings":        2,
			"ingredients": []bson.M{
				{"name": "ramen noodles", "quantity": 2, "unit": "portions"},
				{"name": "chicken stock", "quantity": 1, "unit": "l"},
				{"name": "soy sauce", "quantity": 60, "unit": "ml"},
			},
			"steps": []string{
				"Simmer the broth with aromatics.",
				"Cook noodles separately.",
				"Assemble bowls with toppings.",
			},
			"tags": []string{"dinner", "soup"},
			"nutrition": bson.M{
				"calories": 550,
				"protein":  28,
				"carbs":    72,
				"fat":      14,
			},
			"author":    userIDs[1].Hex(),
			"createdAt": now,
			"updatedAt": now,
		},
		bson.M{
			"title":           "Overnight Oats",
			"cuisine":         "American",
			"prepTimeMinutes": 5,
			"cookTimeMinutes": 0,
			"servings":        1,
			"ingredients": []bson.M{
				{"name": "rolled oats", "quantity": 50, "unit": "g"},
				{"name": "milk", "quantity": 120, "unit": "ml"},
			},
			"steps": []string{
				"Combine oats and milk in a jar.",
				"Refrigerate overnight.",
			},
			"tags":      []string{"breakfast"},
			"author":    userIDs[0].Hex(),
			"createdAt": now,
			"updatedAt": now,
		},
	}

	result, err := collection.InsertMany(ctx, recipes)
	if err != nil {
		log.Fatalf("Failed to seed recipes: %v", err)
	}

	ids := make([]primitive.ObjectID, len(result.InsertedIDs))
	for i, id := range result.InsertedIDs {
		ids[i] = id.(primitive.ObjectID)
	}
	log.Printf("Seeded %d recipes", len(ids))
	return ids
}

func seedMealPlans(ctx context.Context, db *mongo.Database, userIDs, recipeIDs []primitive.ObjectID) {
	collection := db.Collection("mealplans")
	clearCollection(ctx, db, "mealplans")

	now := time.Now()
	plans := []interface{}{
		bson.M{
			"title":     "Week of March 4",
			"user":      userIDs[0].Hex(),
			"startDate": "2024-03-04",
			"endDate":   "2024-03-10",
			"entries": []bson.M{
				{"date": "2024-03-04", "mealType": "breakfast", "recipe": recipeIDs[2].Hex()},
				{"date": "2024-03-04", "mealType": "dinner", "recipe": recipeIDs[0].Hex()},
				{"date": "2024-03-05", "mealType": "dinner", "recipe": recipeIDs[1].Hex(), "notes": "double the broth"},
			},
			"createdAt": now,
			"updatedAt": now,
		},
	}

	if _, err := collection.InsertMany(ctx, plans); err != nil {
		log.Fatalf("Failed to seed meal plans: %v", err)
	}
	log.Printf("Seeded %d meal plans", len(plans))
}

func seedShoppingLists(ctx context.Context, db *mongo.Database, userIDs []primitive.ObjectID) {
	collection := db.Collection("shoppinglists")
	clearCollection(ctx, db, "shoppinglists")

	now := time.Now()
	lists := []interface{}{
		bson.M{
			"title":   "Weekend groceries",
			"user":    userIDs[0].Hex(),
			"dueDate": "2024-03-03",
			"items": []bson.M{
				{"name": "pork shoulder", "quantity": 1.5, "unit": "lb", "checked": false},
				{"name": "pineapple", "quantity": 1, "unit": "whole", "checked": false},
				{"name": "corn tortillas", "quantity": 12, "unit": "pieces", "checked": true},
			},
			"createdAt": now,
			"updatedAt": now,
		},
	}

	if _, err := collection.InsertMany(ctx, lists); err != nil {
		log.Fatalf("Failed to seed shopping lists: %v", err)
	}
	log.Printf("Seeded %d shopping lists", len(lists))
}
