// Package store owns the single application state snapshot. Collections are
// replaced wholesale on every change; nothing outside Apply mutates them.
package store

import (
	"sync"

	"github.com/fekuna/omnipos-console/internal/model"
)

type Snapshot struct {
	Products  []model.Product
	Orders    []model.Order
	Customers []model.Customer
}

// Clone returns a snapshot whose slices share nothing with s.
func (s Snapshot) Clone() Snapshot {
	return Snapshot{
		Products:  append([]model.Product(nil), s.Products...),
		Orders:    append([]model.Order(nil), s.Orders...),
		Customers: append([]model.Customer(nil), s.Customers...),
	}
}

type Store struct {
	mu   sync.Mutex
	snap Snapshot
	seed Snapshot
	rev  uint64
}

func New(seed Snapshot) *Store {
	return &Store{snap: seed.Clone(), seed: seed.Clone()}
}

func (s *Store) View() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Revision increases by one on every committed change.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rev
}

// Apply runs fn against a copy of the current snapshot and installs the result
// only when fn succeeds. Calls are serialized.
func (s *Store) Apply(fn func(Snapshot) (Snapshot, error)) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.snap.Clone())
	if err != nil {
		return s.snap.Clone(), err
	}
	s.snap = next.Clone()
	s.rev++
	return next, nil
}

// Reset restores the seed data.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = s.seed.Clone()
	s.rev++
}
