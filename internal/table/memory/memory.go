// Package memory provides an in-memory table source and sink, used by
// tests and as a seed backend.
package memory

import (
	"context"
	"fmt"
	"sync"

	"umsatz/internal/table"
)

// Store implements table.Source and table.Sink against process memory.
type Store struct {
	mu    sync.Mutex
	input table.Table
	views map[string]table.Table
}

var (
	_ table.Source = (*Store)(nil)
	_ table.Sink   = (*Store)(nil)
)

func New(input table.Table) *Store {
	return &Store{input: input.Clone(), views: map[string]table.Table{}}
}

// Read returns a copy of the seeded input table.
func (s *Store) Read(_ context.Context) (table.Table, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.input.Header) == 0 {
		return table.Table{}, fmt.Errorf("memory source: no input table seeded")
	}
	return s.input.Clone(), nil
}

// WriteView stores a copy of the view under its name, replacing any
// previous snapshot.
func (s *Store) WriteView(_ context.Context, name string, t table.Table) error {
	if name == "" {
		return fmt.Errorf("memory sink: empty view name")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.views[name] = t.Clone()
	return nil
}

// View returns the last snapshot written under name.
func (s *Store) View(name string) (table.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.views[name]
	if !ok {
		return table.Table{}, false
	}
	return t.Clone(), true
}
