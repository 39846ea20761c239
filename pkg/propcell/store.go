package propcell

import (
	"fmt"
	"sync"
)

// Store is a per-object registry of property cells, populated lazily: one
// cell per distinct property accessed. A store belongs to exactly one
// owner and lives as long as it does. The map is guarded for concurrent
// readers, but coordinating concurrent mutators is the caller's
// obligation.
type Store struct {
	owner any

	mu       sync.RWMutex
	cells    map[uint64]graphNode
	building map[uint64]bool
}

// NewStore creates a store owned by owner. The owner reference is handed
// to cached getters and type-level watchers.
func NewStore(owner any) *Store {
	return &Store{owner: owner}
}

// Owner returns the object this store belongs to.
func (s *Store) Owner() any { return s.owner }

// Has reports whether the cell for d has been materialized. It never
// forces creation.
func (s *Store) Has(d Def) bool {
	_, ok := s.lookup(d.defID())
	return ok
}

func (s *Store) lookup(id uint64) (graphNode, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c, ok := s.cells[id]
	return c, ok
}

// install commits a freshly built cell, rechecking for a racing insert.
// The first cell installed for an id wins; later builds are discarded.
func (s *Store) install(id uint64, c graphNode) graphNode {
	s.mu.Lock()
	defer s.mu.Unlock()
	if prior, ok := s.cells[id]; ok {
		return prior
	}
	if s.cells == nil {
		s.cells = make(map[uint64]graphNode)
	}
	s.cells[id] = c
	return c
}

// beginBuild marks a cached definition as mid-resolution on this store.
// Returns false if it is already being resolved, which means a dependency
// path led back to the definition itself.
func (s *Store) beginBuild(id uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.building[id] {
		return false
	}
	if s.building == nil {
		s.building = make(map[uint64]bool)
	}
	s.building[id] = true
	return true
}

func (s *Store) endBuild(id uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.building, id)
}

// Holder is implemented by objects that expose a property store. It is
// the contract path resolution uses to cross from one object's graph into
// another's.
type Holder interface {
	PropertyStore() *Store
}

// StoreOf returns owner's property store. Accepts a *Store directly or
// any Holder; anything else fails with ErrUnknownProperty.
func StoreOf(owner any) (*Store, error) {
	switch v := owner.(type) {
	case *Store:
		return v, nil
	case Holder:
		if s := v.PropertyStore(); s != nil {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %T does not expose a property store", ErrUnknownProperty, owner)
}

// EnsureStore lazily creates the store pointed at by slot. The usual
// Holder implementation is a one-liner:
//
//	func (m *Model) PropertyStore() *propcell.Store {
//	    return propcell.EnsureStore(&m.store, m)
//	}
func EnsureStore(slot **Store, owner any) *Store {
	if *slot == nil {
		*slot = NewStore(owner)
	}
	return *slot
}
