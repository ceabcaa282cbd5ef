// Package history records the outcome of past check cycles. It exists for
// diagnostics and host UIs ("when did we last see an update?"); nothing in it
// survives a process restart.
package history

import (
	"errors"
	"sync"
	"time"

	"github.com/hupe1980/upcheck/core"
	"github.com/hupe1980/upcheck/version"
)

// ErrNotFound is returned when no record exists for the given id, or when
// Latest is called on an empty store.
var ErrNotFound = errors.New("cycle record not found")

// Record captures one completed check cycle.
type Record struct {
	ID       string
	Time     time.Time
	Result   core.Result
	Version  string
	Tag      version.Tag
	Provider string
}

// Store persists cycle records. Implementations must be safe for concurrent
// use.
type Store interface {
	Append(record Record) error
	Get(id string) (Record, error)
	List() ([]Record, error)
	Latest() (Record, error)
}

// InMemoryStore is a trivial in-process Store implementation useful for
// tests, examples and single-process hosts. It keeps records in insertion
// order guarded by an RWMutex and returns copies so callers cannot mutate
// internal state. It does not enforce retention limits or eviction.
type InMemoryStore struct {
	mu      sync.RWMutex
	records []Record
	byID    map[string]int
}

// NewInMemoryStore returns an empty in-memory cycle record store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{byID: make(map[string]int)}
}

// Append stores the record, assigning an ID and timestamp when missing.
func (s *InMemoryStore) Append(record Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if record.ID == "" {
		record.ID = core.NewID()
	}
	if record.Time.IsZero() {
		record.Time = time.Now().UTC()
	}

	s.byID[record.ID] = len(s.records)
	s.records = append(s.records, record)
	return nil
}

// Get returns the record with the given id or ErrNotFound.
func (s *InMemoryStore) Get(id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return s.records[idx], nil
}

// List returns a snapshot of all records in insertion order. The slice is
// safe for caller mutation.
func (s *InMemoryStore) List() ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

// Latest returns the most recently appended record or ErrNotFound.
func (s *InMemoryStore) Latest() (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.records) == 0 {
		return Record{}, ErrNotFound
	}
	return s.records[len(s.records)-1], nil
}
