package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staffdesk/internal/storage"
)

func TestOpenSeedsWhenEmpty(t *testing.T) {
	kv := storage.NewMemory()
	s := Open(kv)

	require.Len(t, s.DB().Accounts, 1)
	admin := s.DB().Accounts[0]
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.True(t, admin.Verified)
	assert.Len(t, s.DB().Departments, 2)
	assert.Empty(t, s.DB().Employees)
	assert.Empty(t, s.DB().Requests)

	// seed data is persisted immediately
	_, ok := kv.Get(Key)
	assert.True(t, ok)
}

func TestOpenFallsBackOnCorruptBlob(t *testing.T) {
	kv := storage.NewMemory()
	kv.Set(Key, "{not json")

	s := Open(kv)
	assert.Len(t, s.DB().Accounts, 1)

	// the corrupt blob was replaced with a valid document
	raw, _ := kv.Get(Key)
	assert.Contains(t, raw, "admin@example.com")
}

func TestMutatePersists(t *testing.T) {
	kv := storage.NewMemory()
	s := Open(kv)

	s.Mutate(func(db *Database) {
		db.Accounts = append(db.Accounts, Account{
			FirstName: "A", LastName: "B",
			Email: "a@x.com", Password: "secret1",
			Role: RoleUser,
		})
	})

	reopened := Open(kv)
	require.Len(t, reopened.DB().Accounts, 2)
	assert.Equal(t, "a@x.com", reopened.DB().Accounts[1].Email)
}

func TestRoundTrip(t *testing.T) {
	kv := storage.NewMemory()
	s := Open(kv)
	s.Mutate(func(db *Database) {
		db.Employees = append(db.Employees, Employee{
			ID: "E-1", Email: "admin@example.com", Position: "Lead", DepartmentID: 1,
		})
		db.Requests = append(db.Requests, Request{
			ID:            "REQ-1",
			Type:          "Equipment",
			Items:         []RequestItem{{Name: "Laptop", Qty: 1}, {Name: "Mouse", Qty: 2}},
			Status:        StatusPending,
			Date:          "2026-08-28",
			EmployeeEmail: "admin@example.com",
		})
	})

	reopened := Open(kv)
	assert.Equal(t, s.DB(), reopened.DB())
}

func TestLookups(t *testing.T) {
	s := Open(storage.NewMemory())

	assert.NotNil(t, s.DB().AccountByEmail("admin@example.com"))
	assert.Nil(t, s.DB().AccountByEmail("Admin@example.com")) // case-sensitive
	assert.Nil(t, s.DB().AccountByEmail("missing@example.com"))

	assert.Equal(t, "Engineering", s.DB().DepartmentName(1))
	assert.Equal(t, "N/A", s.DB().DepartmentName(99))
}
