package main

import (
	"strconv"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"staffdesk/internal/handlers"
)

func (c *Shell) renderAccounts() app.UI {
	accounts := c.store.DB().Accounts

	return app.Div().Class("page page-accounts").Body(
		app.H2().Text("Accounts"),
		app.Button().Class("btn btn-success").Text("Add Account").
			OnClick(func(ctx app.Context, e app.Event) {
				c.dialogs.Alert("Add Account - Use Register page to create new accounts")
			}),
		app.Table().Class("table").Body(
			app.THead().Body(
				app.Tr().Body(
					app.Th().Text("Name"),
					app.Th().Text("Email"),
					app.Th().Text("Role"),
					app.Th().Text("Verified"),
					app.Th().Text("Actions"),
				),
			),
			app.TBody().Body(
				app.Range(accounts).Slice(func(i int) app.UI {
					a := accounts[i]
					verified := "❌"
					if a.Verified {
						verified = "✅"
					}
					return app.Tr().Body(
						app.Td().Text(a.FirstName+" "+a.LastName),
						app.Td().Text(a.Email),
						app.Td().Text(a.Role),
						app.Td().Text(verified),
						app.Td().Body(
							app.Button().Class("btn btn-outline-primary btn-sm").Text("Edit").
								OnClick(func(ctx app.Context, e app.Event) {
									c.alertErr(c.h.EditAccount(i))
								}),
							app.Button().Class("btn btn-outline-warning btn-sm").Text("Reset PW").
								OnClick(func(ctx app.Context, e app.Event) {
									c.alertErr(c.h.ResetPassword(i))
								}),
							app.Button().Class("btn btn-outline-danger btn-sm").Text("Delete").
								OnClick(func(ctx app.Context, e app.Event) {
									c.alertErr(c.h.DeleteAccount(i))
								}),
						),
					)
				}),
			),
		),
	)
}

func (c *Shell) renderDepartments() app.UI {
	departments := c.store.DB().Departments

	return app.Div().Class("page page-department").Body(
		app.H2().Text("Departments"),
		app.Button().Class("btn btn-success").Text("Add Department").
			OnClick(func(ctx app.Context, e app.Event) {
				c.h.AddDepartment()
			}),
		app.Table().Class("table").Body(
			app.THead().Body(
				app.Tr().Body(
					app.Th().Text("ID"),
					app.Th().Text("Name"),
					app.Th().Text("Description"),
					app.Th().Text("Actions"),
				),
			),
			app.TBody().Body(
				app.Range(departments).Slice(func(i int) app.UI {
					d := departments[i]
					return app.Tr().Body(
						app.Th().Scope("row").Text(strconv.Itoa(d.ID)),
						app.Td().Text(d.Name),
						app.Td().Text(d.Description),
						app.Td().Body(
							app.Button().Class("btn btn-outline-primary btn-sm").Text("Edit").
								OnClick(func(ctx app.Context, e app.Event) {
									c.alertErr(c.h.EditDepartment(i))
								}),
							app.Button().Class("btn btn-outline-danger btn-sm").Text("Delete").
								OnClick(func(ctx app.Context, e app.Event) {
									c.alertErr(c.h.DeleteDepartment(i))
								}),
						),
					)
				}),
			),
		),
	)
}

func (c *Shell) renderEmployees() app.UI {
	employees := c.store.DB().Employees

	return app.Div().Class("page page-employees").Body(
		app.H2().Text("Employees"),
		app.Button().Class("btn btn-success").Text("Add Employee").
			OnClick(func(ctx app.Context, e app.Event) {
				c.openEmployeeForm(handlers.EmployeeCreate())
			}),
		app.If(c.empFormOpen, func() app.UI {
			return c.renderEmployeeForm()
		}),
		app.Table().Class("table").Body(
			app.THead().Body(
				app.Tr().Body(
					app.Th().Text("ID"),
					app.Th().Text("Email"),
					app.Th().Text("Position"),
					app.Th().Text("Department"),
					app.Th().Text("Actions"),
				),
			),
			app.TBody().Body(
				app.Range(employees).Slice(func(i int) app.UI {
					emp := employees[i]
					return app.Tr().Body(
						app.Th().Scope("row").Text(emp.ID),
						app.Td().Text(emp.Email),
						app.Td().Text(emp.Position),
						app.Td().Text(c.store.DB().DepartmentName(emp.DepartmentID)),
						app.Td().Body(
							app.Button().Class("btn btn-outline-primary btn-sm").Text("Edit").
								OnClick(func(ctx app.Context, e app.Event) {
									c.openEmployeeForm(handlers.EmployeeAt(i))
								}),
							app.Button().Class("btn btn-outline-danger btn-sm").Text("Delete").
								OnClick(func(ctx app.Context, e app.Event) {
									c.alertErr(c.h.DeleteEmployee(i))
								}),
						),
					)
				}),
			),
		),
	)
}

func (c *Shell) openEmployeeForm(mode handlers.EmployeeEdit) {
	c.empMode = mode
	c.empID = ""
	c.empEmail = ""
	c.empPosition = ""
	c.empDeptID = 0

	if index, editing := mode.Editing(); editing {
		emp := c.store.DB().Employees[index]
		c.empID = emp.ID
		c.empEmail = emp.Email
		c.empPosition = emp.Position
		c.empDeptID = emp.DepartmentID
	} else if depts := c.store.DB().Departments; len(depts) > 0 {
		// the dropdown shows the first department, so the form state must too
		c.empDeptID = depts[0].ID
	}
	c.empFormOpen = true
}

func (c *Shell) renderEmployeeForm() app.UI {
	title := "Add Employee"
	if _, editing := c.empMode.Editing(); editing {
		title = "Edit Employee"
	}

	departments := c.store.DB().Departments

	return app.Div().ID("employee-form-container").Class("card").Body(
		app.H4().ID("employee-form-title").Text(title),
		app.Input().ID("emp-id").Type("text").Class("form-control").
			Placeholder("Employee ID").Value(c.empID).
			OnInput(func(ctx app.Context, e app.Event) {
				c.empID = e.Get("target").Get("value").String()
			}),
		app.Input().ID("emp-email").Type("email").Class("form-control").
			Placeholder("Account email").Value(c.empEmail).
			OnInput(func(ctx app.Context, e app.Event) {
				c.empEmail = e.Get("target").Get("value").String()
			}),
		app.Input().ID("emp-position").Type("text").Class("form-control").
			Placeholder("Position").Value(c.empPosition).
			OnInput(func(ctx app.Context, e app.Event) {
				c.empPosition = e.Get("target").Get("value").String()
			}),
		app.Select().ID("emp-department").Class("form-select").
			OnChange(func(ctx app.Context, e app.Event) {
				c.empDeptID, _ = strconv.Atoi(e.Get("target").Get("value").String())
			}).
			Body(
			app.Range(departments).Slice(func(i int) app.UI {
				d := departments[i]
				return app.Option().Value(strconv.Itoa(d.ID)).Text(d.Name).
					Selected(d.ID == c.empDeptID)
			}),
		),
		app.Button().Class("btn btn-primary").Text("Save").OnClick(c.onSaveEmployee),
		app.Button().Class("btn btn-secondary").Text("Cancel").
			OnClick(func(ctx app.Context, e app.Event) {
				c.closeEmployeeForm()
			}),
	)
}

func (c *Shell) onSaveEmployee(ctx app.Context, e app.Event) {
	err := c.h.SaveEmployee(c.empMode, c.empID, c.empEmail, c.empPosition, c.empDeptID)
	if err != nil {
		c.dialogs.Alert(err.Error())
		return
	}
	c.closeEmployeeForm()
}

func (c *Shell) closeEmployeeForm() {
	c.empFormOpen = false
	c.empMode = handlers.EmployeeCreate()
}

// alertErr surfaces a handler failure; nil means the handler already said
// everything it had to say.
func (c *Shell) alertErr(err error) {
	if err != nil {
		c.dialogs.Alert(err.Error())
	}
}
