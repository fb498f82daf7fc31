package auth

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"artag/internal/artag"
	"artag/internal/testutil"
)

func newTestService(t *testing.T) *Service {
	t.Helper()

	db := testutil.NewTestDatabase(t)
	sessionPath := filepath.Join(t.TempDir(), "session")

	return NewService(db, testutil.NewTestEncryptor(), artag.NewNopLogger(),
		artag.RealClock{}, testutil.NewStubIDGenerator(),
		"test-secret", time.Hour, sessionPath)
}

func TestRegister(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Register(ctx, "alice", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice", profile.Username)
	assert.NotEqual(t, "hunter22", profile.PasswordHash, "password must be stored hashed")

	t.Run("duplicate username", func(t *testing.T) {
		_, err := svc.Register(ctx, "alice", "other")
		assert.ErrorIs(t, err, artag.ErrUsernameTaken)
	})

	t.Run("blank username", func(t *testing.T) {
		_, err := svc.Register(ctx, "   ", "pw")
		assert.Error(t, err)
	})

	t.Run("blank password", func(t *testing.T) {
		_, err := svc.Register(ctx, "bob", "")
		assert.Error(t, err)
	})
}

func TestLoginAndSession(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	registered, err := svc.Register(ctx, "alice", "hunter22")
	require.NoError(t, err)

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice", "nope")
		assert.ErrorIs(t, err, artag.ErrUnauthorized)
	})

	t.Run("unknown username", func(t *testing.T) {
		_, err := svc.Login(ctx, "mallory", "hunter22")
		assert.ErrorIs(t, err, artag.ErrUnauthorized)
	})

	t.Run("login persists a resolvable session", func(t *testing.T) {
		profile, err := svc.Login(ctx, "alice", "hunter22")
		require.NoError(t, err)
		assert.Equal(t, registered.ID, profile.ID)

		userID, err := svc.CurrentUserID()
		require.NoError(t, err)
		assert.Equal(t, registered.ID, userID)

		current, err := svc.CurrentProfile(ctx)
		require.NoError(t, err)
		assert.Equal(t, "alice", current.Username)
	})

	t.Run("logout removes the session", func(t *testing.T) {
		require.NoError(t, svc.Logout())

		_, err := svc.CurrentUserID()
		assert.ErrorIs(t, err, artag.ErrNotLoggedIn)

		// Logging out twice is fine.
		assert.NoError(t, svc.Logout())
	})
}

func TestCurrentUserIDWithoutSession(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.CurrentUserID()
	assert.ErrorIs(t, err, artag.ErrNotLoggedIn)
}

func TestExpiredSession(t *testing.T) {
	db := testutil.NewTestDatabase(t)
	sessionPath := filepath.Join(t.TempDir(), "session")
	ctx := context.Background()

	// A clock far in the past makes the issued token already expired.
	pastClock := testutil.NewStubClock(time.Now().Add(-48 * time.Hour))
	svc := NewService(db, testutil.NewTestEncryptor(), artag.NewNopLogger(),
		pastClock, testutil.NewStubIDGenerator(),
		"test-secret", time.Hour, sessionPath)

	_, err := svc.Register(ctx, "alice", "hunter22")
	require.NoError(t, err)
	_, err = svc.Login(ctx, "alice", "hunter22")
	require.NoError(t, err)

	_, err = svc.CurrentUserID()
	assert.ErrorIs(t, err, artag.ErrNotLoggedIn)
}

func TestChangePassword(t *testing.T) {
	svc := newTestService(t)
	ctx := context.Background()

	profile, err := svc.Register(ctx, "alice", "oldpass")
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := svc.ChangePassword(ctx, profile.ID, "nope", "newpass")
		assert.ErrorIs(t, err, artag.ErrUnauthorized)
	})

	t.Run("changes take effect", func(t *testing.T) {
		require.NoError(t, svc.ChangePassword(ctx, profile.ID, "oldpass", "newpass"))

		_, err := svc.Login(ctx, "alice", "oldpass")
		assert.ErrorIs(t, err, artag.ErrUnauthorized)

		_, err = svc.Login(ctx, "alice", "newpass")
		assert.NoError(t, err)
	})
}
