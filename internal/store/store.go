// Package store holds the application document: one in-memory object
// mirrored to the key-value layer on every mutation.
package store

import (
	"encoding/json"
	"fmt"
	"log"

	"staffdesk/internal/storage"
)

// Key the document is persisted under.
const Key = "staffdesk_db_v1"

// Store owns the document. All mutation goes through Mutate so memory and
// storage are never inconsistent after a handler returns.
type Store struct {
	kv storage.KV
	db *Database
}

// Open loads the document from kv, seeding and persisting defaults when the
// blob is absent or unparsable.
func Open(kv storage.KV) *Store {
	s := &Store{kv: kv}

	raw, ok := kv.Get(Key)
	if ok {
		var db Database
		if err := json.Unmarshal([]byte(raw), &db); err == nil {
			s.db = &db
			return s
		}
		log.Printf("stored document unreadable, reseeding")
	}

	s.db = seed()
	s.persist()
	return s
}

// DB exposes the document for reads. Callers must not mutate through it;
// use Mutate.
func (s *Store) DB() *Database {
	return s.db
}

// Mutate applies fn to the document and persists the whole document before
// returning.
func (s *Store) Mutate(fn func(*Database)) {
	fn(s.db)
	s.persist()
}

func (s *Store) persist() {
	raw, err := json.Marshal(s.db)
	if err != nil {
		log.Printf("persist document: %v", err)
		return
	}
	s.kv.Set(Key, string(raw))
}

// Dump returns the document as indented JSON, for the dump maintenance
// mode.
func (s *Store) Dump() (string, error) {
	raw, err := json.MarshalIndent(s.db, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal document: %w", err)
	}
	return string(raw), nil
}

// seed is the default document: one verified admin plus two departments.
func seed() *Database {
	return &Database{
		Accounts: []Account{
			{
				FirstName: "Admin",
				LastName:  "User",
				Email:     "admin@example.com",
				Password:  "hello123!",
				Role:      RoleAdmin,
				Verified:  true,
			},
		},
		Departments: []Department{
			{ID: 1, Name: "Engineering", Description: "Software development team"},
			{ID: 2, Name: "HR", Description: "Human resources team"},
		},
		Employees: []Employee{},
		Requests:  []Request{},
	}
}
