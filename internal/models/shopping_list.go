package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ShoppingItem is a single line on a shopping list.
type ShoppingItem struct {
	Name     string   `json:"name" bson:"name" example:"Tortillas"`
	Quantity *float64 `json:"quantity,omitempty" bson:"quantity,omitempty" example:"4"`
	Unit     string   `json:"unit,omitempty" bson:"unit,omitempty" example:"pieces"`
	Checked  bool     `json:"checked" bson:"checked" example:"false"`
}

// ShoppingList represents a shopping list document owned by a user. The user
// field is an opaque identifier resolved against the users collection at
// write time. dueDate, when present, is stored verbatim as submitted.
type ShoppingList struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439014"`
	Title     string             `json:"title" bson:"title" example:"Weekly shop"`
	User      string             `json:"user" bson:"user" example:"507f1f77bcf86cd799439013"`
	DueDate   string             `json:"dueDate,omitempty" bson:"dueDate,omitempty" example:"2024-03-01"`
	Items     []ShoppingItem     `json:"items" bson:"items"`
	Notes     string             `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}
