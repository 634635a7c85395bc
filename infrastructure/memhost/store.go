package memhost

import (
	"context"
	stdErrors "errors"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/robotkit/robotkit-sdk/domain/ports"
)

// ErrNotFound is returned by the reference host for missing entities and labels.
var ErrNotFound = stdErrors.New("not found")

// numbered is an entity of a numbered server.
type numbered interface {
	ports.Instance
	Number() int
}

// store is the numbered collection behind every server. It implements
// ports.Container and ports.MultiOperator except for the Instance methods.
type store[E numbered] struct {
	items  map[int]E
	family string
	mu     sync.Mutex
	depth  int
	scopes int
}

func newStore[E numbered](family string) *store[E] {
	return &store[E]{family: family, items: make(map[int]E)}
}

func (s *store[E]) missing(id int) error {
	return fmt.Errorf("%s %d: %w", s.family, id, ErrNotFound)
}

func (s *store[E]) lookup(id int) (E, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.items[id]
	return e, ok
}

func (s *store[E]) put(e E) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[e.Number()] = e
}

// insert adds e, failing when its number is taken.
func (s *store[E]) insert(e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.Number() <= 0 {
		return fmt.Errorf("%s number must be positive, got %d", s.family, e.Number())
	}
	if _, exists := s.items[e.Number()]; exists {
		return fmt.Errorf("%s %d already exists", s.family, e.Number())
	}
	s.items[e.Number()] = e
	return nil
}

// ids returns the numbers in use, ascending.
func (s *store[E]) ids() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Sorted(maps.Keys(s.items))
}

// Get returns the entity numbered id.
func (s *store[E]) Get(_ context.Context, id int) (ports.Instance, error) {
	e, ok := s.lookup(id)
	if !ok {
		return nil, s.missing(id)
	}
	return e, nil
}

// Exist reports whether an entity numbered id exists.
func (s *store[E]) Exist(_ context.Context, id int) (bool, error) {
	_, ok := s.lookup(id)
	return ok, nil
}

// Delete removes the entity numbered id.
func (s *store[E]) Delete(_ context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.items[id]; !ok {
		return s.missing(id)
	}
	delete(s.items, id)
	return nil
}

// GetMany returns the entities of sel, in selection order.
func (s *store[E]) GetMany(_ context.Context, sel ports.Selection) ([]ports.Instance, error) {
	out := make([]ports.Instance, 0, sel.Count())
	for i := 1; i <= sel.Count(); i++ {
		e, ok := s.lookup(sel.Get(i))
		if !ok {
			return out, s.missing(sel.Get(i))
		}
		out = append(out, e)
	}
	return out, nil
}

// DeleteMany removes the entities of sel. Missing entities are skipped.
func (s *store[E]) DeleteMany(_ context.Context, sel ports.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 1; i <= sel.Count(); i++ {
		delete(s.items, sel.Get(i))
	}
	return nil
}

// FreeNumber returns the lowest positive number not in use.
func (s *store[E]) FreeNumber(_ context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 1
	for {
		if _, used := s.items[n]; !used {
			return n, nil
		}
		n++
	}
}

// Len returns the number of entities.
func (s *store[E]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// BeginMultiOperation opens a multi-operation scope. Scopes nest.
func (s *store[E]) BeginMultiOperation(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.depth++
	return nil
}

// EndMultiOperation closes the innermost multi-operation scope.
func (s *store[E]) EndMultiOperation(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.depth == 0 {
		return fmt.Errorf("%s: no multi-operation in progress", s.family)
	}
	s.depth--
	if s.depth == 0 {
		s.scopes++
	}
	return nil
}

// InMultiOperation reports whether a multi-operation scope is open.
func (s *store[E]) InMultiOperation() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.depth > 0
}

// MultiOperations returns the number of completed outermost scopes.
func (s *store[E]) MultiOperations() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scopes
}
