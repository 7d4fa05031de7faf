package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"staffdesk/internal/router"
)

func (c *Shell) renderHome() app.UI {
	return app.Div().Class("page page-home").Body(
		app.H1().Text("Welcome to StaffDesk"),
		app.P().Text("Manage accounts, departments, employees and requests in one place."),
		app.Button().Class("btn btn-primary getstarted-btn").Text("Get Started").
			OnClick(func(ctx app.Context, e app.Event) {
				c.navigate(router.PageRegister)
			}),
	)
}

func (c *Shell) renderLogin() app.UI {
	return app.Div().Class("page page-login").Body(
		app.H2().Text("Login"),
		app.If(c.justVerified, func() app.UI {
			return app.Div().Class("alert alert-success").
				Text("Email verified! You can now login.")
		}),
		app.Input().ID("login-email").Type("email").Class("form-control").
			Placeholder("Email"),
		app.Input().ID("login-password").Type("password").Class("form-control").
			Placeholder("Password"),
		app.Button().Class("btn btn-primary").Text("Login").OnClick(c.onLogin),
		app.P().Body(
			app.Text("No account yet? "),
			app.A().Href(router.Fragment(router.PageRegister)).Text("Register"),
		),
	)
}

func (c *Shell) onLogin(ctx app.Context, e app.Event) {
	page, err := c.h.Login(inputValue("login-email"), inputValue("login-password"))
	if err != nil {
		c.dialogs.Alert(err.Error())
		return
	}
	c.navigate(page)
}

func (c *Shell) renderRegister() app.UI {
	return app.Div().Class("page page-register").Body(
		app.H2().Text("Register"),
		app.Input().ID("reg-firstname").Type("text").Class("form-control").
			Placeholder("First Name"),
		app.Input().ID("reg-lastname").Type("text").Class("form-control").
			Placeholder("Last Name"),
		app.Input().ID("reg-email").Type("email").Class("form-control").
			Placeholder("Email"),
		app.Input().ID("reg-password").Type("password").Class("form-control").
			Placeholder("Password (min 6 chars)"),
		app.Button().Class("btn btn-success").Text("Register").OnClick(c.onRegister),
		app.P().Body(
			app.Text("Already registered? "),
			app.A().Href(router.Fragment(router.PageLogin)).Text("Login"),
		),
	)
}

func (c *Shell) onRegister(ctx app.Context, e app.Event) {
	page, err := c.h.Register(
		inputValue("reg-firstname"),
		inputValue("reg-lastname"),
		inputValue("reg-email"),
		inputValue("reg-password"),
	)
	if err != nil {
		c.dialogs.Alert(err.Error())
		return
	}
	c.navigate(page)
}

func (c *Shell) renderVerifyEmail() app.UI {
	pending, _ := c.session.Pending()

	return app.Div().Class("page page-verify").Body(
		app.H2().Text("Verify your email"),
		app.P().Body(
			app.Text("A verification link was sent to "),
			app.Strong().ID("verify-email-display").Text(pending),
			app.Text(". For this demo, press the button below."),
		),
		app.Button().Class("btn btn-success").Text("I have verified my email").
			OnClick(c.onVerify),
	)
}

func (c *Shell) onVerify(ctx app.Context, e app.Event) {
	page, err := c.h.Verify()
	if err != nil {
		c.dialogs.Alert(err.Error())
		c.navigate(page)
		return
	}
	c.justVerified = true
	c.navigate(page)
}

func (c *Shell) renderProfile() app.UI {
	cur := c.session.Current()
	if cur == nil {
		return app.Div().Class("page")
	}

	return app.Div().Class("page page-profile").Body(
		app.Div().Class("insideprofile").Body(
			app.H3().Text(cur.FirstName+" "+cur.LastName),
			app.P().Body(
				app.Strong().Text("Email: "),
				app.Span().Text(cur.Email),
			),
			app.P().Body(
				app.Strong().Text("Role: "),
				app.Span().Text(cur.Role),
			),
			app.Button().Class("btn btn-outline-primary").Text("Edit Profile").
				OnClick(func(ctx app.Context, e app.Event) {
					c.dialogs.Alert("Edit Profile - Not implemented")
				}),
		),
	)
}
