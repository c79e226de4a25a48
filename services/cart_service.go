package services

import (
	"sync"

	"table-tap/models"
)

// CartService holds one cart per authenticated user. Mutations go through
// the pure reducers on models.Cart; the service only swaps snapshots, so a
// reader never observes a half-applied change.
type CartService struct {
	mu    sync.RWMutex
	carts map[int]models.Cart
}

func NewCartService() *CartService {
	return &CartService{carts: make(map[int]models.Cart)}
}

func (s *CartService) Get(userID int) models.Cart {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.carts[userID]
}

func (s *CartService) AddItem(userID int, item models.MenuItem) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.carts[userID].Add(item)
	s.carts[userID] = next
	return next
}

// RemoveItem deletes the whole line. Absent ids are a silent no-op; in a UI
// double-clicking a remove button must not surface an error.
func (s *CartService) RemoveItem(userID int, itemID string) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.carts[userID].Remove(itemID)
	s.carts[userID] = next
	return next
}

func (s *CartService) UpdateQuantity(userID int, itemID string, quantity int) models.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.carts[userID].UpdateQuantity(itemID, quantity)
	s.carts[userID] = next
	return next
}

func (s *CartService) Clear(userID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, userID)
}

// Drain atomically returns the user's cart and empties it, or returns
// ErrEmptyCart leaving nothing mutated. Checkout builds on this so that
// order creation and cart reset happen together or not at all.
func (s *CartService) Drain(userID int) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[userID]
	if cart.IsEmpty() {
		return models.Cart{}, ErrEmptyCart
	}
	delete(s.carts, userID)
	return cart, nil
}
