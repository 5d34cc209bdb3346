// Package fixtures provides test payload builders shared by the API and
// integration tests. Builders return fresh maps so tests can mutate them
// freely.
package fixtures

import "go.mongodb.org/mongo-driver/bson/primitive"

// RecipePayload returns a valid recipe payload.
func RecipePayload() map[string]interface{} {
	return map[string]interface{}{
		"title":           "Tacos al Pastor",
		"cuisine":         "Mexican",
		"summary":         "Marinated pork tacos with charred pineapple",
		"prepTimeMinutes": 30,
		"cookTimeMinutes": 45,
		"servings":        4,
		"ingredients": []interface{}{
			map[string]interface{}{"name": "pork shoulder", "quantity": 800, "unit": "g"},
			map[string]interface{}{"name": "pineapple", "quantity": 1},
			map[string]interface{}{"name": "corn tortillas", "quantity": 12},
		},
		"steps": []interface{}{
			"Marinate the pork overnight in the adobo.",
			"Grill until charred and slice thin.",
			"Serve on warm tortillas with pineapple.",
		},
		"tags": []interface{}{"mexican", "weeknight"},
	}
}

// UserPayload returns a valid user payload with a unique username and email.
func UserPayload() map[string]interface{} {
	suffix := primitive.NewObjectID().Hex()[:8]
	return map[string]interface{}{
		"username": "user-" + suffix,
		"email":    "user-" + suffix + "@example.com",
	}
}

// MealPlanPayload returns a valid meal plan payload owned by userID with a
// single lunch entry for recipeID.
func MealPlanPayload(userID, recipeID string) map[string]interface{} {
	return map[string]interface{}{
		"title":     "Week of March 4",
		"user":      userID,
		"startDate": "2024-03-04",
		"endDate":   "2024-03-10",
		"entries": []interface{}{
			map[string]interface{}{
				"date":     "2024-03-04",
				"mealType": "lunch",
				"recipe":   recipeID,
			},
		},
	}
}

// ShoppingListPayload returns a valid shopping list payload owned by userID.
func ShoppingListPayload(userID string) map[string]interface{} {
	return map[string]interface{}{
		"title": "Weekly groceries",
		"user":  userID,
		"items": []interface{}{
			map[string]interface{}{"name": "milk", "quantity": 2, "unit": "l"},
			map[string]interface{}{"name": "eggs", "quantity": 12},
		},
	}
}
