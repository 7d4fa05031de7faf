// Package storage is the persistent key-value layer behind the document
// store. Values are opaque strings; writes are last-write-wins with no
// expiry and no transactions.
package storage

// KV is the contract every store implementation satisfies. The browser
// implementation lives in the app package because it needs the go-app
// runtime; Memory and SQLite live here.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Del(key string)
}

// Memory is a map-backed KV for tests and throwaway sessions.
type Memory struct {
	values map[string]string
}

func NewMemory() *Memory {
	return &Memory{values: make(map[string]string)}
}

func (m *Memory) Get(key string) (string, bool) {
	v, ok := m.values[key]
	return v, ok
}

func (m *Memory) Set(key, value string) {
	m.values[key] = value
}

func (m *Memory) Del(key string) {
	delete(m.values, key)
}
