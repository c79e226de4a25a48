package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"table-tap/models"

	"github.com/google/uuid"
)

// OrderService owns the order lifecycle: checkout from a cart, status
// progression, and lookups for both the customer tracking view and the
// admin order table.
type OrderService struct {
	repo     OrderRepository
	carts    *CartService
	finances *FinanceService

	// fetchTimeout bounds each attempt of the tracking fetch; the lookup
	// is retried once before giving up with ErrOrderFetchTimeout.
	fetchTimeout time.Duration
}

func NewOrderService(repo OrderRepository, carts *CartService, finances *FinanceService, fetchTimeout time.Duration) *OrderService {
	if fetchTimeout <= 0 {
		fetchTimeout = 3 * time.Second
	}
	return &OrderService{
		repo:         repo,
		carts:        carts,
		finances:     finances,
		fetchTimeout: fetchTimeout,
	}
}

func newOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.New().String()[:8])
}

// Checkout turns the user's cart into a pending order. Draining the cart is
// atomic: an empty cart returns ErrEmptyCart with nothing mutated, and a
// successful checkout always leaves the cart cleared.
func (s *OrderService) Checkout(userID int, customerName string, req models.CheckoutRequest) (models.Order, error) {
	cart, err := s.carts.Drain(userID)
	if err != nil {
		return models.Order{}, err
	}

	items := make([]models.OrderItem, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		items = append(items, models.OrderItem{
			ItemID:   line.Item.ID,
			Name:     line.Item.Name,
			Quantity: line.Quantity,
			Price:    line.Item.Price,
		})
	}

	now := time.Now()
	order := models.Order{
		ID:                  newOrderID(),
		UserID:              userID,
		CustomerName:        customerName,
		TableNumber:         req.TableNumber,
		Items:               items,
		Total:               cart.Total(),
		Status:              models.StatusPending,
		PaymentMethod:       req.PaymentMethod,
		SpecialInstructions: req.SpecialInstructions,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	s.repo.Save(order)
	return order, nil
}

// Get is the order-tracking fetch: each attempt is bounded by fetchTimeout
// and a deadline gets one retry, so a slow backend surfaces as a recoverable
// error instead of an indefinite spinner.
func (s *OrderService) Get(ctx context.Context, id string) (models.Order, error) {
	for attempt := 0; attempt < 2; attempt++ {
		fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
		order, err := s.repo.Find(fetchCtx, id)
		cancel()

		if errors.Is(err, context.DeadlineExceeded) {
			continue
		}
		return order, err
	}
	return models.Order{}, ErrOrderFetchTimeout
}

// Tracking wraps Get with the step-indicator view the order page renders.
func (s *OrderService) Tracking(ctx context.Context, id string) (models.OrderTracking, error) {
	order, err := s.Get(ctx, id)
	if err != nil {
		return models.OrderTracking{}, err
	}
	return models.OrderTracking{
		Order:       order,
		Steps:       models.StatusSteps,
		CurrentStep: order.Status.StepIndex(),
		Cancelled:   order.Status == models.StatusCancelled,
	}, nil
}

// UpdateStatus applies the transition rule: one forward step along the
// progression, or cancellation while non-terminal. Everything else is
// rejected with ErrInvalidTransition. The check-and-set runs atomically in
// the repository, so concurrent patches cannot both complete an order and
// book its revenue twice. Completing an order records its revenue in the
// finance ledger.
func (s *OrderService) UpdateStatus(id string, next models.OrderStatus) (models.Order, error) {
	if !next.Valid() {
		return models.Order{}, ErrInvalidStatus
	}

	order, err := s.repo.Transition(id, next)
	if err != nil {
		return models.Order{}, err
	}

	if next == models.StatusCompleted && s.finances != nil {
		s.finances.RecordOrderRevenue(order)
	}
	return order, nil
}

// History lists the user's orders newest first, optionally filtered by
// status ("" or "all" means no filter).
func (s *OrderService) History(userID int, status string) []models.Order {
	orders := s.repo.ListByUser(userID)
	return filterOrders(orders, status, "")
}

// ListAll serves the admin order table with optional status filter and
// id/customer search.
func (s *OrderService) ListAll(status, search string) []models.Order {
	return filterOrders(s.repo.List(), status, search)
}

func filterOrders(orders []models.Order, status, search string) []models.Order {
	if (status == "" || strings.EqualFold(status, "all")) && search == "" {
		return orders
	}

	result := []models.Order{}
	for _, order := range orders {
		if status != "" && !strings.EqualFold(status, "all") && string(order.Status) != strings.ToLower(status) {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(fmt.Sprintf("%s %s", order.ID, order.CustomerName))
			if !strings.Contains(haystack, strings.ToLower(search)) {
				continue
			}
		}
		result = append(result, order)
	}
	return result
}
