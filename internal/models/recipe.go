// Package models defines data structures for the application.
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ingredient is a single entry in a recipe's ingredient list.
type Ingredient struct {
	Name     string   `json:"name" bson:"name" example:"Tortillas"`
	Quantity *float64 `json:"quantity,omitempty" bson:"quantity,omitempty" example:"4"`
	Unit     string   `json:"unit,omitempty" bson:"unit,omitempty" example:"pieces"`
}

// Nutrition holds optional per-serving nutrition facts.
type Nutrition struct {
	Calories float64 `json:"calories" bson:"calories" example:"420"`
	Protein  float64 `json:"protein" bson:"protein" example:"18"`
	Carbs    float64 `json:"carbs" bson:"carbs" example:"52"`
	Fat      float64 `json:"fat" bson:"fat" example:"14"`
}

// Recipe represents a recipe document.
//
// Date-free and reference-free: recipes are the only resource kind with no
// outbound references.
type Recipe struct {
	ID              primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Title           string             `json:"title" bson:"title" example:"Tacos"`
	Cuisine         string             `json:"cuisine" bson:"cuisine" example:"Mexican"`
	Summary         string             `json:"summary,omitempty" bson:"summary,omitempty" example:"Weeknight street tacos"`
	PrepTimeMinutes int                `json:"prepTimeMinutes" bson:"prepTimeMinutes" example:"10"`
	CookTimeMinutes int                `json:"cookTimeMinutes" bson:"cookTimeMinutes" example:"20"`
	Servings        int                `json:"servings" bson:"servings" example:"2"`
	Ingredients     []Ingredient       `json:"ingredients" bson:"ingredients"`
	Steps           []string           `json:"steps" bson:"steps" example:"Warm,Serve"`
	Tags            []string           `json:"tags,omitempty" bson:"tags,omitempty" example:"quick,weeknight"`
	Nutrition       *Nutrition         `json:"nutrition,omitempty" bson:"nutrition,omitempty"`
	Author          string             `json:"author,omitempty" bson:"author,omitempty" example:"dana"`
	CreatedAt       time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt       time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}
