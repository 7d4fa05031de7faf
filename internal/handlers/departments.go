package handlers

import "staffdesk/internal/store"

// AddDepartment is an explicit stub; departments only exist through seed
// data.
func (h *Handlers) AddDepartment() {
	h.Dialogs.Alert("Not implemented")
}

// EditDepartment collects a new name and description over prompts,
// all-or-nothing.
func (h *Handlers) EditDepartment(index int) error {
	if index < 0 || index >= len(h.db().Departments) {
		return ErrBadIndex
	}
	d := h.db().Departments[index]

	name, ok := h.Dialogs.Prompt("Name:", d.Name)
	if !ok || name == "" {
		return nil
	}
	description, ok := h.Dialogs.Prompt("Description:", d.Description)
	if !ok || description == "" {
		return nil
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Departments[index].Name = name
		db.Departments[index].Description = description
	})
	h.Dialogs.Alert("Department updated!")
	return nil
}

// DeleteDepartment removes a department after confirmation. Employees
// referencing it keep their departmentId; the display layer shows "N/A".
func (h *Handlers) DeleteDepartment(index int) error {
	if index < 0 || index >= len(h.db().Departments) {
		return ErrBadIndex
	}

	if !h.Dialogs.Confirm("Delete " + h.db().Departments[index].Name + "?") {
		return nil
	}

	h.Store.Mutate(func(db *store.Database) {
		db.Departments = append(db.Departments[:index], db.Departments[index+1:]...)
	})
	h.Dialogs.Alert("Department deleted!")
	return nil
}
