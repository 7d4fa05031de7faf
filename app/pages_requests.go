package main

import (
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"staffdesk/internal/store"
)

var requestTypes = []string{"Equipment", "Office Supplies", "Leave", "Other"}

func (c *Shell) renderRequests() app.UI {
	mine := c.h.MyRequests()

	return app.Div().Class("page page-requests").Body(
		app.H2().Text("My Requests"),
		app.Button().Class("btn btn-primary").Text("New Request").
			OnClick(func(ctx app.Context, e app.Event) {
				c.openRequestModal()
			}),
		app.If(len(mine) == 0, func() app.UI {
			return app.P().ID("no-requests-msg").Class("text-muted").
				Text("You have no requests yet.")
		}).Else(func() app.UI {
			return c.renderRequestsTable(mine)
		}),
		app.If(c.requestOpen, func() app.UI {
			return c.renderRequestModal()
		}),
	)
}

func (c *Shell) renderRequestsTable(mine []store.Request) app.UI {
	return app.Table().Class("table").Body(
		app.THead().Body(
			app.Tr().Body(
				app.Th().Text("ID"),
				app.Th().Text("Type"),
				app.Th().Text("Items"),
				app.Th().Text("Date"),
				app.Th().Text("Status"),
			),
		),
		app.TBody().ID("requests-tbody").Body(
			app.Range(mine).Slice(func(i int) app.UI {
				r := mine[i]
				var parts []string
				for _, item := range r.Items {
					parts = append(parts, item.Name+" ("+strconv.Itoa(item.Qty)+")")
				}
				return app.Tr().Body(
					app.Th().Scope("row").Text(r.ID),
					app.Td().Text(r.Type),
					app.Td().Text(strings.Join(parts, ", ")),
					app.Td().Title(submittedAgo(r.Date)).Text(r.Date),
					app.Td().Body(
						app.Span().Class(statusBadgeClass(r.Status)).Text(r.Status),
					),
				)
			}),
		),
	)
}

// submittedAgo turns the stored calendar date into a relative age for the
// date cell tooltip.
func submittedAgo(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return humanize.Time(t)
}

func statusBadgeClass(status string) string {
	switch status {
	case store.StatusPending:
		return "badge bg-warning text-dark"
	case store.StatusApproved:
		return "badge bg-success"
	case store.StatusRejected:
		return "badge bg-danger"
	default:
		return "badge bg-secondary"
	}
}

func (c *Shell) openRequestModal() {
	c.requestType = requestTypes[0]
	c.items = []itemRow{{qty: 1}}
	c.requestOpen = true
}

func (c *Shell) renderRequestModal() app.UI {
	return app.Div().Class("modal-backdrop").Body(
		app.Div().ID("requestModal").Class("modal-card").Body(
			app.H4().Text("New Request"),
			app.Select().ID("request-type").Class("form-select").
				OnChange(func(ctx app.Context, e app.Event) {
					c.requestType = e.Get("target").Get("value").String()
				}).
				Body(
				app.Range(requestTypes).Slice(func(i int) app.UI {
					return app.Option().Value(requestTypes[i]).Text(requestTypes[i]).
						Selected(requestTypes[i] == c.requestType)
				}),
			),
			app.Div().ID("items-container").Body(
				app.Range(c.items).Slice(func(i int) app.UI {
					return c.renderItemRow(i)
				}),
			),
			app.Button().Class("btn btn-outline-secondary btn-sm").Text("Add item").
				OnClick(func(ctx app.Context, e app.Event) {
					c.items = append(c.items, itemRow{qty: 1})
				}),
			app.Div().Class("modal-actions").Body(
				app.Button().Class("btn btn-primary").Text("Submit").OnClick(c.onSubmitRequest),
				app.Button().Class("btn btn-secondary").Text("Cancel").
					OnClick(func(ctx app.Context, e app.Event) {
						c.requestOpen = false
					}),
			),
		),
	)
}

func (c *Shell) renderItemRow(i int) app.UI {
	row := c.items[i]

	return app.Div().Class("input-group mb-2").Body(
		app.Input().Type("text").Class("form-control item-name").
			Placeholder("Item name").Value(row.name).
			OnInput(func(ctx app.Context, e app.Event) {
				c.items[i].name = e.Get("target").Get("value").String()
			}),
		app.Input().Type("number").Class("form-control item-qty").
			Min(1).Value(strconv.Itoa(row.qty)).
			OnInput(func(ctx app.Context, e app.Event) {
				qty, err := strconv.Atoi(e.Get("target").Get("value").String())
				if err != nil || qty < 1 {
					qty = 1
				}
				c.items[i].qty = qty
			}),
		app.Button().Class("btn btn-outline-danger").Text("×").
			OnClick(func(ctx app.Context, e app.Event) {
				c.removeItemRow(i)
			}),
	)
}

// removeItemRow keeps at least one row in the form.
func (c *Shell) removeItemRow(i int) {
	if len(c.items) <= 1 {
		c.dialogs.Alert("You need at least one item")
		return
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
}

func (c *Shell) onSubmitRequest(ctx app.Context, e app.Event) {
	items := make([]store.RequestItem, 0, len(c.items))
	for _, row := range c.items {
		items = append(items, store.RequestItem{Name: row.name, Qty: row.qty})
	}

	if err := c.h.SubmitRequest(c.requestType, items); err != nil {
		c.dialogs.Alert(err.Error())
		return
	}
	c.requestOpen = false
}
