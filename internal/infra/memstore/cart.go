// Package memstore holds the ephemeral per-user cart sessions. Carts do
// not survive a process restart; the booking a checkout produces is the
// only durable artifact.
package memstore

import (
	"sync"

	"workhive/internal/domain/cart"

	"github.com/google/uuid"
)

type CartStore struct {
	mu sync.Mutex
	m  map[uuid.UUID]cart.State
}

func NewCartStore() *CartStore {
	return &CartStore{m: make(map[uuid.UUID]cart.State)}
}

// Get returns the user's current cart, or a fresh one if none exists.
func (s *CartStore) Get(userID uuid.UUID) cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.get(userID)
}

// Update applies fn under the store lock, so concurrent requests for the
// same user observe actions in dispatch order and never a half-applied
// state.
func (s *CartStore) Update(userID uuid.UUID, fn func(cart.State) cart.State) cart.State {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := fn(s.get(userID))
	s.m[userID] = next
	return next
}

func (s *CartStore) Clear(userID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, userID)
}

func (s *CartStore) get(userID uuid.UUID) cart.State {
	st, ok := s.m[userID]
	if !ok {
		return cart.NewState()
	}
	return st
}
