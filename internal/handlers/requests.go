package handlers

import (
	"fmt"
	"strings"

	"staffdesk/internal/store"
)

// SubmitRequest appends a pending request for the current session. Rows
// with empty names are discarded; quantities are floored at one.
func (h *Handlers) SubmitRequest(reqType string, items []store.RequestItem) error {
	cur := h.Session.Current()
	if cur == nil {
		return ErrNoSession
	}

	var kept []store.RequestItem
	for _, item := range items {
		name := strings.TrimSpace(item.Name)
		if name == "" {
			continue
		}
		qty := item.Qty
		if qty < 1 {
			qty = 1
		}
		kept = append(kept, store.RequestItem{Name: name, Qty: qty})
	}
	if len(kept) == 0 {
		return ErrNoItems
	}

	now := h.now()
	h.Store.Mutate(func(db *store.Database) {
		db.Requests = append(db.Requests, store.Request{
			ID:            fmt.Sprintf("REQ-%d", now.UnixMilli()),
			Type:          reqType,
			Items:         kept,
			Status:        store.StatusPending,
			Date:          now.Format("2006-01-02"),
			EmployeeEmail: cur.Email,
		})
	})

	h.Dialogs.Alert("Request submitted successfully!")
	return nil
}

// MyRequests returns the session's own requests in insertion order. Other
// principals' requests are never included.
func (h *Handlers) MyRequests() []store.Request {
	cur := h.Session.Current()
	if cur == nil {
		return nil
	}

	var mine []store.Request
	for _, r := range h.db().Requests {
		if r.EmployeeEmail == cur.Email {
			mine = append(mine, r)
		}
	}
	return mine
}
