package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/router"
	"staffdesk/internal/store"
)

func TestLoginValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.h.Login("", "hello123!")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	_, err = f.h.Login("admin@example.com", "")
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.False(t, f.session.LoggedIn())
}

func TestLoginWrongPassword(t *testing.T) {
	f := newFixture(t)

	_, err := f.h.Login("admin@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidLogin)
	assert.False(t, f.session.LoggedIn())
}

func TestLoginUnverifiedAccountFails(t *testing.T) {
	f := newFixture(t)
	_, err := f.h.Register("A", "B", "a@x.com", "secret1")
	require.NoError(t, err)

	_, err = f.h.Login("a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidLogin)
	assert.False(t, f.session.LoggedIn())
}

func TestLoginSuccess(t *testing.T) {
	f := newFixture(t)

	page, err := f.h.Login("admin@example.com", "hello123!")
	require.NoError(t, err)
	assert.Equal(t, router.PageProfile, page)
	assert.True(t, f.session.IsAdmin())

	// remembered token persisted for restore-on-startup
	token, ok := f.kv.Get("auth_token")
	require.True(t, ok)
	assert.Equal(t, "admin@example.com", token)
}

func TestRegisterValidation(t *testing.T) {
	f := newFixture(t)

	_, err := f.h.Register("", "B", "a@x.com", "secret1")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = f.h.Register("A", "B", "a@x.com", "short")
	assert.ErrorIs(t, err, ErrShortPassword)

	assert.Len(t, f.store.DB().Accounts, 1)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	f := newFixture(t)

	_, err := f.h.Register("A", "B", "admin@example.com", "secret1")
	assert.ErrorIs(t, err, ErrEmailTaken)

	// the original account is unchanged
	require.Len(t, f.store.DB().Accounts, 1)
	assert.Equal(t, "hello123!", f.store.DB().Accounts[0].Password)
}

func TestRegisterSuccess(t *testing.T) {
	f := newFixture(t)

	page, err := f.h.Register("A", "B", "a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, router.PageVerifyEmail, page)

	a := f.store.DB().AccountByEmail("a@x.com")
	require.NotNil(t, a)
	assert.Equal(t, store.RoleUser, a.Role)
	assert.False(t, a.Verified)

	pending, ok := f.session.Pending()
	require.True(t, ok)
	assert.Equal(t, "a@x.com", pending)
}

func TestVerify(t *testing.T) {
	f := newFixture(t)
	_, err := f.h.Register("A", "B", "a@x.com", "secret1")
	require.NoError(t, err)

	page, err := f.h.Verify()
	require.NoError(t, err)
	assert.Equal(t, router.PageLogin, page)
	assert.True(t, f.store.DB().AccountByEmail("a@x.com").Verified)

	_, ok := f.session.Pending()
	assert.False(t, ok)

	// a second verify has nothing pending and redirects to register
	page, err = f.h.Verify()
	assert.ErrorIs(t, err, ErrNoPending)
	assert.Equal(t, router.PageRegister, page)
}

func TestVerifyWithoutAccount(t *testing.T) {
	f := newFixture(t)
	f.session.RememberPending("gone@x.com")

	page, err := f.h.Verify()
	assert.ErrorIs(t, err, ErrAccountNotFound)
	assert.Equal(t, router.PageRegister, page)
}

func TestLogout(t *testing.T) {
	f := newFixture(t)
	_, err := f.h.Login("admin@example.com", "hello123!")
	require.NoError(t, err)

	page := f.h.Logout()
	assert.Equal(t, router.PageHome, page)
	assert.False(t, f.session.LoggedIn())
	_, ok := f.kv.Get("auth_token")
	assert.False(t, ok)
}

// Register, verify, login, then try an admin page: the whole journey from
// the landing page of a fresh user.
func TestEndToEndUserJourney(t *testing.T) {
	f := newFixture(t)

	_, err := f.h.Register("A", "B", "a@x.com", "secret1")
	require.NoError(t, err)
	_, err = f.h.Verify()
	require.NoError(t, err)

	page, err := f.h.Login("a@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, router.PageProfile, page)

	cur := f.session.Current()
	require.NotNil(t, cur)
	assert.Equal(t, store.RoleUser, cur.Role)
	assert.True(t, cur.Verified)

	// role user never lands on admin pages
	assert.Equal(t, router.PageHome, f.h.Route("#/accounts"))
	assert.Equal(t, router.PageHome, f.h.Route("#/employees"))
	assert.Equal(t, router.PageHome, f.h.Route("#/department"))
	assert.Equal(t, router.PageRequests, f.h.Route("#/requests"))
}

func TestRouteAnonymous(t *testing.T) {
	f := newFixture(t)

	for _, fragment := range []string{"#/profile", "#/accounts", "#/employees", "#/department", "#/requests"} {
		assert.Equal(t, router.PageLogin, f.h.Route(fragment), "fragment %s", fragment)
	}
	assert.Equal(t, router.PageHome, f.h.Route("#/"))
}
