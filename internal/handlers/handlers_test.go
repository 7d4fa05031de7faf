package handlers

import (
	"testing"
	"time"

	"staffdesk/internal/session"
	"staffdesk/internal/storage"
	"staffdesk/internal/store"
)

type promptReply struct {
	value string
	ok    bool
}

// scriptDialogs replays queued replies and records every alert.
type scriptDialogs struct {
	prompts  []promptReply
	confirms []bool
	alerts   []string
}

func (d *scriptDialogs) Alert(msg string) {
	d.alerts = append(d.alerts, msg)
}

func (d *scriptDialogs) Confirm(string) bool {
	if len(d.confirms) == 0 {
		return false
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v
}

func (d *scriptDialogs) Prompt(_, _ string) (string, bool) {
	if len(d.prompts) == 0 {
		return "", false
	}
	r := d.prompts[0]
	d.prompts = d.prompts[1:]
	return r.value, r.ok
}

type fixture struct {
	kv      *storage.Memory
	store   *store.Store
	session *session.Session
	dialogs *scriptDialogs
	h       *Handlers
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	kv := storage.NewMemory()
	st := store.Open(kv)
	sess := session.New(st, kv)
	d := &scriptDialogs{}
	h := New(st, sess, d)
	h.now = func() time.Time {
		return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	}
	return &fixture{kv: kv, store: st, session: sess, dialogs: d, h: h}
}

// registerVerified pushes a verified user account straight into the
// document.
func (f *fixture) registerVerified(first, last, email, password string) {
	f.store.Mutate(func(db *store.Database) {
		db.Accounts = append(db.Accounts, store.Account{
			FirstName: first,
			LastName:  last,
			Email:     email,
			Password:  password,
			Role:      store.RoleUser,
			Verified:  true,
		})
	})
}
