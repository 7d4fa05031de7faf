// Package handlers implements the mutation handlers behind every UI
// action: validate input, mutate the document through the store chokepoint,
// and tell the shell where to navigate. Handlers leave document and session
// unchanged on failure; returned errors carry the user-visible message.
package handlers

import (
	"errors"
	"time"

	"staffdesk/internal/router"
	"staffdesk/internal/session"
	"staffdesk/internal/store"
)

// Dialogs is the blocking confirm/alert/prompt surface. The browser
// implementation maps to window dialogs; tests script the replies.
type Dialogs interface {
	Alert(msg string)
	Confirm(msg string) bool
	// Prompt returns ok=false when the dialog was cancelled.
	Prompt(msg, def string) (value string, ok bool)
}

var (
	ErrMissingCredentials = errors.New("Please enter email and password")
	ErrInvalidLogin       = errors.New("Invalid email or password, or account not verified")
	ErrMissingFields      = errors.New("Please fill in all fields")
	ErrShortPassword      = errors.New("Password must be at least 6 characters")
	ErrEmailTaken         = errors.New("Email already registered")
	ErrNoPending          = errors.New("No pending verification. Please register first.")
	ErrAccountNotFound    = errors.New("Account not found. Please register again.")
	ErrSelfDelete         = errors.New("Cannot delete your own account!")
	ErrUnknownEmail       = errors.New("Email not found in accounts!")
	ErrNoItems            = errors.New("Please add at least one item")
	ErrNoSession          = errors.New("Please log in first")
	ErrBadIndex           = errors.New("Entry no longer exists")
)

type Handlers struct {
	Store   *store.Store
	Session *session.Session
	Dialogs Dialogs

	now func() time.Time
}

func New(s *store.Store, sess *session.Session, d Dialogs) *Handlers {
	return &Handlers{Store: s, Session: sess, Dialogs: d, now: time.Now}
}

// Route resolves a fragment and applies the session guard, returning the
// page the shell should activate.
func (h *Handlers) Route(fragment string) router.Page {
	p := router.Resolve(fragment)
	return router.Guard(p, h.Session.LoggedIn(), h.Session.IsAdmin())
}

func (h *Handlers) db() *store.Database {
	return h.Store.DB()
}
