package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MealType enumerates the four valid meal slots. Matching is exact; case
// variants are rejected.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// MealTypes lists the valid mealType values in a stable order for
// diagnostics.
var MealTypes = []string{MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack}

// MealEntry is one slot in a meal plan. The recipe field references a Recipe
// document; existence is checked at write time only, never retroactively.
//
// Date fields are stored verbatim as submitted. The validation layer parses
// them to confirm they name a real calendar instant but never rewrites the
// payload, so the stored representation is the caller's.
type MealEntry struct {
	Date     string `json:"date" bson:"date" example:"2024-03-02"`
	MealType string `json:"mealType" bson:"mealType" example:"dinner"`
	Recipe   string `json:"recipe" bson:"recipe" example:"507f1f77bcf86cd799439011"`
	Notes    string `json:"notes,omitempty" bson:"notes,omitempty" example:"double the salsa"`
}

// MealPlan represents a meal plan document owned by a user.
type MealPlan struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439012"`
	Title     string             `json:"title" bson:"title" example:"March week one"`
	User      string             `json:"user" bson:"user" example:"507f1f77bcf86cd799439013"`
	StartDate string             `json:"startDate" bson:"startDate" example:"2024-03-01"`
	EndDate   string             `json:"endDate" bson:"endDate" example:"2024-03-07"`
	Entries   []MealEntry        `json:"entries" bson:"entries"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}
