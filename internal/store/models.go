package store

// Account roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// Request statuses.
const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Account is a login principal. Email is the de-facto primary key; the
// password is stored in plaintext, a known limitation of the demo data
// model that login compares against verbatim.
type Account struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Role      string `json:"role"`
	Verified  bool   `json:"verified"`
}

type Department struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Employee references an Account by email and a Department by id. Neither
// reference is enforced after creation; a dangling departmentId renders as
// "N/A".
type Employee struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	Position     string `json:"position"`
	DepartmentID int    `json:"departmentId"`
}

type RequestItem struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type Request struct {
	ID            string        `json:"id"`
	Type          string        `json:"type"`
	Items         []RequestItem `json:"items"`
	Status        string        `json:"status"`
	Date          string        `json:"date"`
	EmployeeEmail string        `json:"employeeEmail"`
}

// Database is the whole persisted document.
type Database struct {
	Accounts    []Account    `json:"accounts"`
	Departments []Department `json:"departments"`
	Employees   []Employee   `json:"employees"`
	Requests    []Request    `json:"requests"`
}

// AccountByEmail returns the account with the exact (case-sensitive) email,
// or nil.
func (d *Database) AccountByEmail(email string) *Account {
	for i := range d.Accounts {
		if d.Accounts[i].Email == email {
			return &d.Accounts[i]
		}
	}
	return nil
}

// DepartmentByID returns the first department with the given id, or nil.
func (d *Database) DepartmentByID(id int) *Department {
	for i := range d.Departments {
		if d.Departments[i].ID == id {
			return &d.Departments[i]
		}
	}
	return nil
}

// DepartmentName resolves a department id for display, falling back to
// "N/A" for dangling references.
func (d *Database) DepartmentName(id int) string {
	if dept := d.DepartmentByID(id); dept != nil {
		return dept.Name
	}
	return "N/A"
}
