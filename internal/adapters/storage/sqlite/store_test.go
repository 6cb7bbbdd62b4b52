package sqlite_test

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/storage/sqlite"
	"github.com/jsamuelsen11/chatbot-service/internal/domain"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "users.db")
	store, err := sqlite.Open(context.Background(), path, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpen_CreatesParentDirectory(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	assert.FileExists(t, store.Path())
}

func TestOpen_Reopen(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "users.db")

	first, err := sqlite.Open(ctx, path, nil)
	require.NoError(t, err)
	_, err = first.CreateUser(ctx, &domain.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	require.NoError(t, first.Close())

	// Migrations already applied must not run again.
	second, err := sqlite.Open(ctx, path, nil)
	require.NoError(t, err)
	defer second.Close()

	users, err := second.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "alice", users[0].Username)
}

func TestOpen_InMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store, err := sqlite.Open(ctx, ":memory:", nil)
	require.NoError(t, err)
	defer store.Close()

	_, err = store.CreateUser(ctx, &domain.User{Username: "bob", PasswordHash: "hash"})
	require.NoError(t, err)

	got, err := store.GetUserByUsername(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, "bob", got.Username)
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.CreateUser(ctx, &domain.User{Username: "alice", PasswordHash: "$2a$10$hash"})
	require.NoError(t, err)

	assert.Positive(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.Equal(t, "$2a$10$hash", created.PasswordHash)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestCreateUser_DuplicateUsername(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &domain.User{Username: "alice", PasswordHash: "one"})
	require.NoError(t, err)

	_, err = store.CreateUser(ctx, &domain.User{Username: "alice", PasswordHash: "two"})
	require.ErrorIs(t, err, domain.ErrConflict)

	got, err := store.GetUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "one", got.PasswordHash, "original row must be unchanged")
}

func TestCreateUser_ConcurrentSameUsername(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	const workers = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := store.CreateUser(ctx, &domain.User{Username: "race", PasswordHash: "h"}); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
}

func TestGetUserByUsername_NotFound(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	_, err := store.GetUserByUsername(context.Background(), "ghost")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGetUserByUsername_CaseSensitive(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.CreateUser(ctx, &domain.User{Username: "Alice", PasswordHash: "h"})
	require.NoError(t, err)

	_, err = store.GetUserByUsername(ctx, "alice")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	users, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, users)
	assert.NotNil(t, users)

	for _, name := range []string{"carol", "alice", "bob"} {
		_, err := store.CreateUser(ctx, &domain.User{Username: name, PasswordHash: "h"})
		require.NoError(t, err)
	}

	users, err = store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	assert.Equal(t, "carol", users[0].Username)
	assert.Equal(t, "alice", users[1].Username)
	assert.Equal(t, "bob", users[2].Username)
	assert.Less(t, users[0].ID, users[1].ID)
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	assert.Equal(t, "database", store.Name())
	require.NoError(t, store.HealthCheck(context.Background()))

	require.NoError(t, store.Close())
	assert.Error(t, store.HealthCheck(context.Background()))
}
