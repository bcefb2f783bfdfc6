// Package cart owns the per-session shopping cart state. It is the single
// authoritative holder of cart lines: all mutation routes through the Store,
// and reads return snapshots so no caller can bypass it.
package cart

import (
	"sync"

	"github.com/buildline/storefront/internal/storefront/core/domain/entity"
)

// Subscriber is notified after every cart mutation with a snapshot of the
// session's new state. Subscribers must not call back into the Store.
type Subscriber func(sessionID string, cart entity.Cart)

// Store holds one cart per browsing session, in memory only. No operation
// errors: inputs are sanitized to maintain the cart invariants rather than
// rejected. Stock is advisory display data and is not enforced here.
type Store struct {
	mu    sync.RWMutex
	carts map[string]*entity.Cart
	subs  []Subscriber
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*entity.Cart)}
}

// Subscribe registers fn to run after every mutation of any session's cart.
func (s *Store) Subscribe(fn Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// AddItem merges quantity into the session's existing line for the product
// or appends a new line. Non-positive quantities are clamped up to 1.
func (s *Store) AddItem(sessionID string, p entity.Product, quantity int) entity.Cart {
	return s.mutate(sessionID, func(c *entity.Cart) {
		c.Add(p, quantity)
	})
}

// UpdateQuantity sets the line's quantity; a quantity below 1 removes the
// line. No-op when the product is not in the cart.
func (s *Store) UpdateQuantity(sessionID, productID string, quantity int) entity.Cart {
	return s.mutate(sessionID, func(c *entity.Cart) {
		c.SetQuantity(productID, quantity)
	})
}

// RemoveItem deletes the line if present. Removal is idempotent.
func (s *Store) RemoveItem(sessionID, productID string) entity.Cart {
	return s.mutate(sessionID, func(c *entity.Cart) {
		c.Remove(productID)
	})
}

// Clear empties the session's cart. Called by the checkout workflow after a
// confirmed successful submission, and by the explicit clear endpoint.
func (s *Store) Clear(sessionID string) entity.Cart {
	return s.mutate(sessionID, func(c *entity.Cart) {
		c.Clear()
	})
}

// Get returns a snapshot of the session's cart. Sessions that never added
// an item read as an empty cart.
func (s *Store) Get(sessionID string) entity.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.carts[sessionID]; ok {
		return c.Snapshot()
	}
	return entity.Cart{}
}

func (s *Store) mutate(sessionID string, fn func(*entity.Cart)) entity.Cart {
	s.mu.Lock()
	c, ok := s.carts[sessionID]
	if !ok {
		c = &entity.Cart{}
		s.carts[sessionID] = c
	}
	fn(c)
	snapshot := c.Snapshot()
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(sessionID, snapshot)
	}
	return snapshot
}
