package handlers

import (
	"staffdesk/internal/router"
	"staffdesk/internal/store"
)

// Login matches email and password against a verified account. Plaintext
// comparison, as in the original data model.
func (h *Handlers) Login(email, password string) (router.Page, error) {
	if email == "" || password == "" {
		return "", ErrMissingCredentials
	}

	for i := range h.db().Accounts {
		a := &h.db().Accounts[i]
		if a.Email == email && a.Password == password && a.Verified {
			h.Session.Establish(a.Email)
			h.Dialogs.Alert("Login successful! Welcome, " + a.FirstName)
			return router.PageProfile, nil
		}
	}

	return "", ErrInvalidLogin
}

// Register appends an unverified user account and remembers its email as
// pending verification.
func (h *Handlers) Register(firstName, lastName, email, password string) (router.Page, error) {
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return "", ErrMissingFields
	}
	if len(password) < 6 {
		return "", ErrShortPassword
	}
	// case-sensitive exact match, a known gap kept for compatibility
	if h.db().AccountByEmail(email) != nil {
		return "", ErrEmailTaken
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Accounts = append(db.Accounts, store.Account{
			FirstName: firstName,
			LastName:  lastName,
			Email:     email,
			Password:  password,
			Role:      store.RoleUser,
			Verified:  false,
		})
	})
	h.Session.RememberPending(email)

	h.Dialogs.Alert("Registration successful! Please verify your email.")
	return router.PageVerifyEmail, nil
}

// Verify marks the pending account as verified. Failures redirect to the
// register page without touching the document.
func (h *Handlers) Verify() (router.Page, error) {
	pending, ok := h.Session.Pending()
	if !ok {
		return router.PageRegister, ErrNoPending
	}

	if h.db().AccountByEmail(pending) == nil {
		return router.PageRegister, ErrAccountNotFound
	}

	h.Store.Mutate(func(db *store.Database) {
		db.AccountByEmail(pending).Verified = true
	})
	h.Session.ClearPending()

	h.Dialogs.Alert("Email verified! You can now login.")
	return router.PageLogin, nil
}

// Logout clears the session and the remembered token.
func (h *Handlers) Logout() router.Page {
	h.Session.Clear()
	h.Dialogs.Alert("You have been logged out")
	return router.PageHome
}
