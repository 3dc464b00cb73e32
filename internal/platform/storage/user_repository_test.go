package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dugout-server-go/internal/domain/auth/model"
)

func setupRepo(t *testing.T) *UserRepository {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return NewUserRepository(db)
}

func TestUserRepository_CreateAndFind(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.User{
		Username:     "alice",
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Nickname:     "Alice",
		Email:        "alice@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "repository assigns an id")

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, "alice", found.Username)
	assert.Equal(t, "$2a$10$fakehashfakehashfakehash", found.PasswordHash)
}

func TestUserRepository_FindMissingReturnsNil(t *testing.T) {
	repo := setupRepo(t)

	found, err := repo.FindByUsername(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_CaseSensitiveLookup(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.User{
		Username:     "alice",
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	found, err := repo.FindByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Nil(t, found, "username lookup must be case-sensitive")
}

func TestUserRepository_DuplicateUsernameRejected(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, &model.User{Username: "alice", PasswordHash: "h1"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &model.User{Username: "alice", PasswordHash: "h2"})
	assert.Error(t, err, "unique index must reject duplicate usernames")
}

func TestUserRepository_EnsureSeedUser(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	seed := model.User{
		ID:           "u1",
		Username:     "alice",
		PasswordHash: "hash",
	}
	require.NoError(t, repo.EnsureSeedUser(ctx, seed))

	// Second call is a no-op, not a duplicate insert.
	require.NoError(t, repo.EnsureSeedUser(ctx, seed))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "u1", found.ID)
}

func TestUserRepository_EnsureSeedUser_IncompleteSeedSkipped(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.EnsureSeedUser(ctx, model.User{Username: "alice"}))

	found, err := repo.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Nil(t, found, "seed without a hash must not create a user")
}
