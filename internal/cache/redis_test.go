package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecipeCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		recipeID string
		expected string
	}{
		{"objectid format", "507f1f77bcf86cd799439011", "recipe:507f1f77bcf86cd799439011"},
		{"simple id", "123", "recipe:123"},
		{"empty string", "", "recipe:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RecipeCacheKey(tt.recipeID))
		})
	}
}

func TestUserCacheKey(t *testing.T) {
	tests := []struct {
		name     string
		userID   string
		expected string
	}{
		{"objectid format", "507f1f77bcf86cd799439011", "user:507f1f77bcf86cd799439011"},
		{"simple id", "123", "user:123"},
		{"empty string", "", "user:"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, UserCacheKey(tt.userID))
		})
	}
}
