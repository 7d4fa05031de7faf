package handlers

import "staffdesk/internal/store"

// EmployeeEdit selects the employee form target: creating a new row or
// editing an existing one. It replaces the original positional -1 sentinel
// with an explicit mode.
type EmployeeEdit struct {
	editing bool
	index   int
}

func EmployeeCreate() EmployeeEdit {
	return EmployeeEdit{}
}

func EmployeeAt(index int) EmployeeEdit {
	return EmployeeEdit{editing: true, index: index}
}

// Editing returns the target index when the mode edits an existing row.
func (e EmployeeEdit) Editing() (int, bool) {
	return e.index, e.editing
}

// SaveEmployee validates the shared add/edit form and applies it according
// to mode. The email must belong to an existing account; the employee id
// and the department reference are deliberately unchecked beyond presence.
func (h *Handlers) SaveEmployee(mode EmployeeEdit, id, email, position string, departmentID int) error {
	if id == "" || email == "" || position == "" || departmentID == 0 {
		return ErrMissingFields
	}

	if h.db().AccountByEmail(email) == nil {
		return ErrUnknownEmail
	}

	index, editing := mode.Editing()
	if editing {
		if index < 0 || index >= len(h.db().Employees) {
			return ErrBadIndex
		}
		h.Store.Mutate(func(db *store.Database) {
			db.Employees[index] = store.Employee{
				ID:           id,
				Email:        email,
				Position:     position,
				DepartmentID: departmentID,
			}
		})
		h.Dialogs.Alert("Employee updated!")
		return nil
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Employees = append(db.Employees, store.Employee{
			ID:           id,
			Email:        email,
			Position:     position,
			DepartmentID: departmentID,
		})
	})
	h.Dialogs.Alert("Employee added!")
	return nil
}

// DeleteEmployee removes an employee row after confirmation.
func (h *Handlers) DeleteEmployee(index int) error {
	if index < 0 || index >= len(h.db().Employees) {
		return ErrBadIndex
	}

	if !h.Dialogs.Confirm("Delete employee " + h.db().Employees[index].ID + "?") {
		return nil
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Employees = append(db.Employees[:index], db.Employees[index+1:]...)
	})
	h.Dialogs.Alert("Employee deleted!")
	return nil
}
