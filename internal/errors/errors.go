// Package errors provides custom error types for the application.
package errors

import "errors"

// Recipe errors
var (
	ErrRecipeNotFound  = errors.New("Recipe not found")
	ErrInvalidRecipeID = errors.New("Invalid recipe id")
)

// User errors
var (
	ErrUserNotFound  = errors.New("User not found")
	ErrInvalidUserID = errors.New("Invalid user id")
	ErrUserConflict  = errors.New("username or email already exists")
)

// Meal plan errors
var (
	ErrMealPlanNotFound  = errors.New("Meal plan not found")
	ErrInvalidMealPlanID = errors.New("Invalid meal plan id")
)

// Shopping list errors
var (
	ErrShoppingListNotFound  = errors.New("Shopping list not found")
	ErrInvalidShoppingListID = errors.New("Invalid shopping list id")
)

// Store errors
var (
	// ErrSchemaRejected means the store refused the document for a
	// constraint the validation pipeline does not model.
	ErrSchemaRejected = errors.New("document rejected by store constraints")
)

// RequestError carries a rejected validation verdict across the service
// boundary: an HTTP status hint, a message, and the offending field names
// when the failure involves more than one field.
type RequestError struct {
	Status        int
	Message       string
	Detail        string
	MissingFields []string
	InvalidFields []string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NewRequestError builds a RequestError with just a status and message.
func NewRequestError(status int, message string) *RequestError {
	return &RequestError{Status: status, Message: message}
}
