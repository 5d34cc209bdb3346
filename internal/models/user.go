package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents an account in the system. Users are created either through
// the REST API or upserted by the GitHub OAuth callback. Username and email
// are unique; githubId is unique but sparse, so API-created users without a
// GitHub identity do not collide with each other.
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty" example:"507f1f77bcf86cd799439011"`
	Username  string             `json:"username" bson:"username" example:"dana"`
	Email     string             `json:"email" bson:"email" example:"dana@example.com"`
	AvatarURL string             `json:"avatarUrl,omitempty" bson:"avatarUrl,omitempty" example:"https://avatars.githubusercontent.com/u/1"`
	GithubID  string             `json:"githubId,omitempty" bson:"githubId,omitempty" example:"583231"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt" example:"2024-01-15T09:30:00Z"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt" example:"2024-01-15T09:30:00Z"`
}

// GitHubProfile is the subset of the GitHub user API response the OAuth
// callback needs to upsert a User.
type GitHubProfile struct {
	ID        int64  `json:"id"`
	Login     string `json:"login"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
}

// LoginResponse is returned by the OAuth callback after a successful login.
type LoginResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIs..."`
	User  User   `json:"user"`
}
