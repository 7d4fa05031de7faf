// Package session tracks the current principal and the two auth-adjacent
// persisted markers: the remembered-session token and the pending email
// verification marker.
package session

import (
	"staffdesk/internal/storage"
	"staffdesk/internal/store"
)

// Storage keys. The remembered token and the pending marker are both plain
// emails; presence implies the state, absence clears it.
const (
	tokenKey   = "auth_token"
	pendingKey = "unverified_email"
)

type Session struct {
	store *store.Store
	kv    storage.KV
	email string
}

func New(s *store.Store, kv storage.KV) *Session {
	return &Session{store: s, kv: kv}
}

// Restore establishes a session from the remembered token without a
// password check. A token that no longer resolves to an account is silently
// skipped.
func (s *Session) Restore() {
	token, ok := s.kv.Get(tokenKey)
	if !ok {
		return
	}
	if s.store.DB().AccountByEmail(token) != nil {
		s.email = token
	}
}

// Establish logs the principal in and remembers it across restarts.
func (s *Session) Establish(email string) {
	s.email = email
	s.kv.Set(tokenKey, email)
}

// Clear logs out and forgets the remembered token.
func (s *Session) Clear() {
	s.email = ""
	s.kv.Del(tokenKey)
}

// Current re-resolves the principal by email on every read, so edits to the
// account record are reflected immediately. Nil when logged out or when the
// account has been deleted out from under the session.
func (s *Session) Current() *store.Account {
	if s.email == "" {
		return nil
	}
	return s.store.DB().AccountByEmail(s.email)
}

// LoggedIn reports whether a principal is established, even if its account
// record has since been removed.
func (s *Session) LoggedIn() bool {
	return s.email != ""
}

// IsAdmin reports whether the current principal resolves to an admin.
func (s *Session) IsAdmin() bool {
	a := s.Current()
	return a != nil && a.Role == store.RoleAdmin
}

// RememberPending marks email as awaiting verification.
func (s *Session) RememberPending(email string) {
	s.kv.Set(pendingKey, email)
}

// Pending returns the email awaiting verification, if any.
func (s *Session) Pending() (string, bool) {
	return s.kv.Get(pendingKey)
}

// ClearPending removes the verification marker.
func (s *Session) ClearPending() {
	s.kv.Del(pendingKey)
}
