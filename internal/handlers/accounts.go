package handlers

import "staffdesk/internal/store"

// EditAccount collects new name and role values over prompts. All-or-
// nothing: a cancelled or empty reply abandons the edit without a partial
// update.
func (h *Handlers) EditAccount(index int) error {
	if index < 0 || index >= len(h.db().Accounts) {
		return ErrBadIndex
	}
	a := h.db().Accounts[index]

	firstName, ok := h.Dialogs.Prompt("First Name:", a.FirstName)
	if !ok || firstName == "" {
		return nil
	}
	lastName, ok := h.Dialogs.Prompt("Last Name:", a.LastName)
	if !ok || lastName == "" {
		return nil
	}
	role, ok := h.Dialogs.Prompt("Role (admin/user):", a.Role)
	if !ok || role == "" {
		return nil
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Accounts[index].FirstName = firstName
		db.Accounts[index].LastName = lastName
		db.Accounts[index].Role = role
	})
	h.Dialogs.Alert("Account updated!")
	return nil
}

// ResetPassword prompts for a replacement password, refusing anything
// shorter than six characters.
func (h *Handlers) ResetPassword(index int) error {
	if index < 0 || index >= len(h.db().Accounts) {
		return ErrBadIndex
	}

	password, ok := h.Dialogs.Prompt("Enter new password (min 6 chars):", "")
	if !ok || len(password) < 6 {
		return ErrShortPassword
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Accounts[index].Password = password
	})
	h.Dialogs.Alert("Password reset!")
	return nil
}

// DeleteAccount removes an account after confirmation. Deleting the account
// behind the active session is refused.
func (h *Handlers) DeleteAccount(index int) error {
	if index < 0 || index >= len(h.db().Accounts) {
		return ErrBadIndex
	}
	a := h.db().Accounts[index]

	if cur := h.Session.Current(); cur != nil && cur.Email == a.Email {
		return ErrSelfDelete
	}

	if !h.Dialogs.Confirm("Delete " + a.Email + "?") {
		return nil
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Accounts = append(db.Accounts[:index], db.Accounts[index+1:]...)
	})
	h.Dialogs.Alert("Account deleted!")
	return nil
}
