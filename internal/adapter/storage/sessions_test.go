package storage_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cocoa-apparel/storefront/internal/adapter/storage"
	"github.com/cocoa-apparel/storefront/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionFile(t *testing.T) {
	newStore := func(t *testing.T) *storage.SessionFile {
		t.Helper()
		s, err := storage.NewSessionFile(t.TempDir())
		require.NoError(t, err)
		return s
	}

	authedState := domain.AuthState{
		User: &domain.User{
			ID: "admin-1", Email: "admin@cocoa.lk", Name: "Admin User",
			Role:      domain.RoleAdmin,
			CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		IsAuthenticated: true,
	}

	t.Run("EmptyStoreIsLoggedOut", func(t *testing.T) {
		state, err := newStore(t).Load()
		require.NoError(t, err)
		assert.Nil(t, state.User)
		assert.False(t, state.IsAuthenticated)
	})

	t.Run("RoundTrip", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(authedState))

		got, err := s.Load()
		require.NoError(t, err)
		require.NotNil(t, got.User)
		assert.Equal(t, authedState.User.ID, got.User.ID)
		assert.Equal(t, domain.RoleAdmin, got.User.Role)
		assert.True(t, got.IsAuthenticated)
	})

	t.Run("ClearThenLoad", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Save(authedState))
		require.NoError(t, s.Clear())

		got, err := s.Load()
		require.NoError(t, err)
		assert.Nil(t, got.User)
		assert.False(t, got.IsAuthenticated)
	})

	t.Run("ClearWithoutRecord", func(t *testing.T) {
		assert.NoError(t, newStore(t).Clear())
	})

	t.Run("CorruptRecordDegradesToLoggedOut", func(t *testing.T) {
		dir := t.TempDir()
		s, err := storage.NewSessionFile(dir)
		require.NoError(t, err)

		err = os.WriteFile(filepath.Join(dir, "cocoa_auth.json"), []byte("{oops"), 0o600)
		require.NoError(t, err)

		got, err := s.Load()
		require.NoError(t, err)
		assert.False(t, got.IsAuthenticated)
	})
}
