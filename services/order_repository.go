package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"table-tap/models"
)

// OrderRepository abstracts order storage so the lifecycle rules can be
// tested against memory and the fetch path can stand in for a remote call.
type OrderRepository interface {
	Save(order models.Order)
	// Find stands at the simulated-network boundary: implementations may
	// delay and must honor ctx cancellation so an abandoned tracking view
	// does not receive a late result.
	Find(ctx context.Context, id string) (models.Order, error)
	Get(id string) (models.Order, error)
	// Transition applies a status change atomically: the current status is
	// re-read and validated under the write lock, so two concurrent patches
	// can never both pass the same transition check.
	Transition(id string, next models.OrderStatus) (models.Order, error)
	ListByUser(userID int) []models.Order
	List() []models.Order
}

// MemoryOrderRepository is the in-process order store. Latency, when set,
// simulates the round trip of a real backend on Find.
type MemoryOrderRepository struct {
	mu      sync.RWMutex
	orders  map[string]models.Order
	Latency time.Duration
}

func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: make(map[string]models.Order)}
}

func (r *MemoryOrderRepository) Save(order models.Order) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.ID] = order
}

func (r *MemoryOrderRepository) Find(ctx context.Context, id string) (models.Order, error) {
	if r.Latency > 0 {
		select {
		case <-time.After(r.Latency):
		case <-ctx.Done():
			return models.Order{}, ctx.Err()
		}
	}
	return r.Get(id)
}

func (r *MemoryOrderRepository) Get(id string) (models.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	order, ok := r.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	return order, nil
}

func (r *MemoryOrderRepository) Transition(id string, next models.OrderStatus) (models.Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	order, ok := r.orders[id]
	if !ok {
		return models.Order{}, ErrOrderNotFound
	}
	if !order.Status.CanTransitionTo(next) {
		return models.Order{}, ErrInvalidTransition
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	r.orders[id] = order
	return order, nil
}

func (r *MemoryOrderRepository) ListByUser(userID int) []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := []models.Order{}
	for _, order := range r.orders {
		if order.UserID == userID {
			result = append(result, order)
		}
	}
	sortOrdersNewestFirst(result)
	return result
}

func (r *MemoryOrderRepository) List() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]models.Order, 0, len(r.orders))
	for _, order := range r.orders {
		result = append(result, order)
	}
	sortOrdersNewestFirst(result)
	return result
}

func sortOrdersNewestFirst(orders []models.Order) {
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}
