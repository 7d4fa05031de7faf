package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"staffdesk/internal/handlers"
	"staffdesk/internal/router"
	"staffdesk/internal/session"
	"staffdesk/internal/store"
)

// Shell is the whole single-page application: it boots the document store
// and session from localStorage, listens for hash changes, applies the
// access policy and renders the active page.
type Shell struct {
	app.Compo

	store   *store.Store
	session *session.Session
	h       *handlers.Handlers
	dialogs browserDialogs

	page router.Page

	// one-shot "email verified" banner on the login page
	justVerified bool

	// employee add/edit form
	empFormOpen bool
	empMode     handlers.EmployeeEdit
	empID       string
	empEmail    string
	empPosition string
	empDeptID   int

	// request compose modal
	requestOpen bool
	requestType string
	items       []itemRow
}

type itemRow struct {
	name string
	qty  int
}

func (c *Shell) OnInit() {
	c.page = router.PageHome
	c.empMode = handlers.EmployeeCreate()
	c.requestType = "Equipment"
}

func (c *Shell) OnMount(ctx app.Context) {
	kv := browserKV{}
	c.store = store.Open(kv)
	c.session = session.New(c.store, kv)
	c.session.Restore()
	c.h = handlers.New(c.store, c.session, c.dialogs)

	app.Window().Call("addEventListener", "hashchange", app.FuncOf(func(this app.Value, args []app.Value) any {
		ctx.Dispatch(func(ctx app.Context) {
			c.route(ctx)
		})
		return nil
	}))

	ctx.Dispatch(func(ctx app.Context) {
		c.route(ctx)
	})
}

// route resolves the current fragment, applies the guard and activates the
// page. A redirected target re-enters through the hashchange listener.
func (c *Shell) route(ctx app.Context) {
	fragment := app.Window().Get("location").Get("hash").String()
	p := router.Resolve(fragment)
	target := router.Guard(p, c.session.LoggedIn(), c.session.IsAdmin())
	if target != p {
		c.navigate(target)
		return
	}
	if p != router.PageLogin {
		c.justVerified = false
	}
	c.page = p
}

func (c *Shell) navigate(p router.Page) {
	app.Window().Get("location").Set("hash", router.Fragment(p))
}

func (c *Shell) Render() app.UI {
	if c.h == nil {
		return app.Div().Class("loading-overlay").Body(
			app.Div().Class("loading-spinner"),
		)
	}

	return app.Div().Class("shell").Body(
		c.renderNav(),
		c.renderPage(),
	)
}

func (c *Shell) renderPage() app.UI {
	switch c.page {
	case router.PageLogin:
		return c.renderLogin()
	case router.PageRegister:
		return c.renderRegister()
	case router.PageVerifyEmail:
		return c.renderVerifyEmail()
	case router.PageProfile:
		return c.renderProfile()
	case router.PageAccounts:
		return c.renderAccounts()
	case router.PageDepartment:
		return c.renderDepartments()
	case router.PageEmployees:
		return c.renderEmployees()
	case router.PageRequests:
		return c.renderRequests()
	default:
		return c.renderHome()
	}
}

func (c *Shell) renderNav() app.UI {
	cur := c.session.Current()

	link := func(label string, p router.Page) app.UI {
		cls := "nav-link"
		if c.page == p {
			cls += " active"
		}
		return app.A().Class(cls).Href(router.Fragment(p)).Text(label)
	}

	items := []app.UI{link("Home", router.PageHome)}

	if cur == nil {
		items = append(items,
			link("Login", router.PageLogin),
			link("Register", router.PageRegister),
		)
	} else {
		items = append(items,
			link("Profile", router.PageProfile),
			link("Requests", router.PageRequests),
		)
		if cur.Role == store.RoleAdmin {
			items = append(items,
				link("Accounts", router.PageAccounts),
				link("Departments", router.PageDepartment),
				link("Employees", router.PageEmployees),
			)
		}
		items = append(items,
			app.Span().Class("nav-username").Text(cur.FirstName),
			app.A().Class("nav-link").Href("#logout").Text("Logout").
				OnClick(func(ctx app.Context, e app.Event) {
					e.PreventDefault()
					c.navigate(c.h.Logout())
				}),
		)
	}

	return app.Nav().Class("navbar").Body(
		app.Span().Class("brand").Text("StaffDesk"),
		app.Div().Class("links").Body(items...),
	)
}
