package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	apperrors "meal-mosaic/internal/errors"
)

func userDoc(username, email string) map[string]interface{} {
	return map[string]interface{}{
		"username": username,
		"email":    email,
	}
}

func TestUserRepository_Create(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("stores the user with timestamps", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user, err := repo.Create(ctx, userDoc("dana", "dana@example.com"))

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.Equal(t, "dana", user.Username)
		assert.NotZero(t, user.CreatedAt)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		_, err := repo.Create(ctx, userDoc("dana", "dana@example.com"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, userDoc("dana", "other@example.com"))

		assert.ErrorIs(t, err, apperrors.ErrUserConflict)
	})

	t.Run("duplicate email conflicts", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		_, err := repo.Create(ctx, userDoc("dana", "dana@example.com"))
		require.NoError(t, err)

		_, err = repo.Create(ctx, userDoc("sam", "dana@example.com"))

		assert.ErrorIs(t, err, apperrors.ErrUserConflict)
	})
}

func TestUserRepository_Replace(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("replacing with own identity is not a conflict", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		created, err := repo.Create(ctx, userDoc("dana", "dana@example.com"))
		require.NoError(t, err)

		replaced, err := repo.Replace(ctx, created.ID, userDoc("dana", "dana@example.com"))

		require.NoError(t, err)
		assert.Equal(t, created.ID, replaced.ID)
	})

	t.Run("taking another user's email conflicts", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		_, err := repo.Create(ctx, userDoc("dana", "dana@example.com"))
		require.NoError(t, err)
		sam, err := repo.Create(ctx, userDoc("sam", "sam@example.com"))
		require.NoError(t, err)

		_, err = repo.Replace(ctx, sam.ID, userDoc("sam", "dana@example.com"))

		assert.ErrorIs(t, err, apperrors.ErrUserConflict)
	})

	t.Run("missing user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		_, err := repo.Replace(ctx, primitive.NewObjectID(), userDoc("ghost", "ghost@example.com"))

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_UpsertByGithubID(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("first login creates the user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")

		user, err := repo.UpsertByGithubID(ctx, "583231", map[string]interface{}{
			"username": "octocat",
			"email":    "octocat@github.com",
		})

		require.NoError(t, err)
		assert.False(t, user.ID.IsZero())
		assert.Equal(t, "583231", user.GithubID)
		assert.Equal(t, "octocat", user.Username)
		assert.NotZero(t, user.CreatedAt)
	})

	t.Run("repeat login refreshes the same document", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		first, err := repo.UpsertByGithubID(ctx, "583231", map[string]interface{}{
			"username": "octocat",
			"email":    "octocat@github.com",
		})
		require.NoError(t, err)

		second, err := repo.UpsertByGithubID(ctx, "583231", map[string]interface{}{
			"username": "octocat",
			"email":    "octocat@github.com",
			"avatarUrl": "https://avatars.githubusercontent.com/u/583231",
		})

		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)
		assert.Equal(t, "https://avatars.githubusercontent.com/u/583231", second.AvatarURL)
		assert.Equal(t, first.CreatedAt.Unix(), second.CreatedAt.Unix())

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}

func TestUserRepository_Delete(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	t.Run("deletes an existing user", func(t *testing.T) {
		tdb.ClearCollection(t, "users")
		created, err := repo.Create(ctx, userDoc("dana", "dana@example.com"))
		require.NoError(t, err)

		require.NoError(t, repo.Delete(ctx, created.ID))

		_, err = repo.FindByID(ctx, created.ID)
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("missing user", func(t *testing.T) {
		assert.ErrorIs(t, repo.Delete(ctx, primitive.NewObjectID()), apperrors.ErrUserNotFound)
	})
}

func TestUserRepository_CountByIDs(t *testing.T) {
	tdb := SetupTestDB(t)
	defer tdb.Cleanup(t)

	repo := NewUserRepository(tdb.Database)
	ctx := context.Background()

	tdb.ClearCollection(t, "users")
	dana, err := repo.Create(ctx, userDoc("dana", "dana@example.com"))
	require.NoError(t, err)

	count, err := repo.CountByIDs(ctx, []string{dana.ID.Hex(), primitive.NewObjectID().Hex()})

	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}
