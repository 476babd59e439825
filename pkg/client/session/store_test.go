package session

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.json")
	return New(NewFileStore(path))
}

func TestSessionLoginWritesAllKeys(t *testing.T) {
	sess := newTestSession(t)
	user := entities.User{ID: "u1", Email: "admin@example.com", Fullname: "Admin"}

	err := sess.Login(user, "acc-token", "ref-token")
	require.NoError(t, err)

	assert.Equal(t, "acc-token", sess.Token())
	assert.Equal(t, "ref-token", sess.RefreshToken())

	flag, ok := sess.store.Get(KeyIsAuthenticated)
	require.True(t, ok)
	assert.Equal(t, "true", flag)

	current, err := sess.Current()
	require.NoError(t, err)
	assert.Equal(t, "u1", current.ID)
	assert.Equal(t, "admin@example.com", current.Email)
}

func TestSessionLogoutClearsAllKeys(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.Login(entities.User{ID: "u1"}, "acc", "ref"))

	require.NoError(t, sess.Logout())

	assert.Empty(t, sess.Token())
	assert.Empty(t, sess.RefreshToken())
	_, err := sess.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionCurrentRequiresAuthenticatedFlag(t *testing.T) {
	sess := newTestSession(t)

	// user键存在但isAuthenticated缺失，仍视为未登录
	require.NoError(t, sess.store.Set(KeyUser, `{"id":"u1"}`))
	require.NoError(t, sess.store.Set(KeyAuthToken, "acc"))

	_, err := sess.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestSessionCurrentRejectsCorruptUser(t *testing.T) {
	sess := newTestSession(t)
	require.NoError(t, sess.store.Set(KeyIsAuthenticated, "true"))
	require.NoError(t, sess.store.Set(KeyUser, "not-json"))

	_, err := sess.Current()
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")

	first := NewFileStore(path)
	require.NoError(t, first.Set(KeyAuthToken, "acc"))

	second := NewFileStore(path)
	value, ok := second.Get(KeyAuthToken)
	require.True(t, ok)
	assert.Equal(t, "acc", value)
}
