package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/storage"
	"staffdesk/internal/store"
)

func TestRestoreWithValidToken(t *testing.T) {
	kv := storage.NewMemory()
	st := store.Open(kv)
	kv.Set("auth_token", "admin@example.com")

	sess := New(st, kv)
	sess.Restore()

	require.NotNil(t, sess.Current())
	assert.Equal(t, "admin@example.com", sess.Current().Email)
	assert.True(t, sess.IsAdmin())
}

func TestRestoreSkipsStaleToken(t *testing.T) {
	kv := storage.NewMemory()
	st := store.Open(kv)
	kv.Set("auth_token", "gone@example.com")

	sess := New(st, kv)
	sess.Restore()

	assert.False(t, sess.LoggedIn())
	assert.Nil(t, sess.Current())
}

func TestEstablishAndClear(t *testing.T) {
	kv := storage.NewMemory()
	st := store.Open(kv)
	sess := New(st, kv)

	sess.Establish("admin@example.com")
	token, ok := kv.Get("auth_token")
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", token)

	sess.Clear()
	_, ok = kv.Get("auth_token")
	assert.False(t, ok)
	assert.Nil(t, sess.Current())
}

func TestCurrentReflectsLatestEdit(t *testing.T) {
	kv := storage.NewMemory()
	st := store.Open(kv)
	sess := New(st, kv)
	sess.Establish("admin@example.com")

	st.Mutate(func(db *store.Database) {
		db.AccountByEmail("admin@example.com").FirstName = "Renamed"
	})

	assert.Equal(t, "Renamed", sess.Current().FirstName)
}

func TestPendingMarker(t *testing.T) {
	kv := storage.NewMemory()
	sess := New(store.Open(kv), kv)

	_, ok := sess.Pending()
	assert.False(t, ok)

	sess.RememberPending("a@x.com")
	email, ok := sess.Pending()
	require.True(t, ok)
	assert.Equal(t, "a@x.com", email)

	sess.ClearPending()
	_, ok = sess.Pending()
	assert.False(t, ok)
}
