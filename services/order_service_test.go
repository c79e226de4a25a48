package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"table-tap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupOrders(t *testing.T) (*OrderService, *MemoryOrderRepository, *CartService, *FinanceService) {
	repo := NewMemoryOrderRepository()
	carts := NewCartService()
	finances := NewFinanceService()
	orders := NewOrderService(repo, carts, finances, time.Second)
	return orders, repo, carts, finances
}

func TestOrderService_Checkout(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	carts.AddItem(1, testFries)

	order, err := orders.Checkout(1, "Jane Doe", models.CheckoutRequest{PaymentMethod: "cash"})
	require.NoError(t, err)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, 1, order.UserID)
	assert.Equal(t, "Jane Doe", order.CustomerName)
	assert.Equal(t, models.StatusPending, order.Status)
	assert.Equal(t, "cash", order.PaymentMethod)
	require.Len(t, order.Items, 2)
	assert.InDelta(t, 14.98, order.Total, 0.001)

	// Checkout drains the cart.
	assert.True(t, carts.Get(1).IsEmpty())
}

func TestOrderService_Checkout_EmptyCart(t *testing.T) {
	orders, repo, _, _ := setupOrders(t)

	_, err := orders.Checkout(1, "Jane Doe", models.CheckoutRequest{})

	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, repo.List())
}

func TestOrderService_Get(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	found, err := orders.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestOrderService_Get_NotFound(t *testing.T) {
	orders, _, _, _ := setupOrders(t)

	_, err := orders.Get(context.Background(), "ORD-MISSING")

	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_Get_TimesOutAfterRetry(t *testing.T) {
	repo := NewMemoryOrderRepository()
	repo.Latency = 100 * time.Millisecond
	carts := NewCartService()
	orders := NewOrderService(repo, carts, nil, 10*time.Millisecond)

	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	start := time.Now()
	_, err = orders.Get(context.Background(), created.ID)
	elapsed := time.Since(start)

	assert.ErrorIs(t, err, ErrOrderFetchTimeout)
	// Two bounded attempts, not an indefinite wait on the full latency.
	assert.Less(t, elapsed, 100*time.Millisecond)
}

func TestOrderService_Get_SucceedsWithinTimeout(t *testing.T) {
	repo := NewMemoryOrderRepository()
	repo.Latency = 5 * time.Millisecond
	carts := NewCartService()
	orders := NewOrderService(repo, carts, nil, time.Second)

	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	found, err := orders.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
}

func TestOrderService_Tracking(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	tracking, err := orders.Tracking(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, tracking.Order.ID)
	assert.Equal(t, models.StatusSteps, tracking.Steps)
	assert.Equal(t, 0, tracking.CurrentStep)
	assert.False(t, tracking.Cancelled)
}

func TestOrderService_Tracking_CancelledOrder(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	_, err = orders.UpdateStatus(created.ID, models.StatusCancelled)
	require.NoError(t, err)

	tracking, err := orders.Tracking(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, tracking.Cancelled)
	assert.Equal(t, -1, tracking.CurrentStep)
}

func TestOrderService_UpdateStatus_FullProgression(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
		order, err := orders.UpdateStatus(created.ID, next)
		require.NoError(t, err)
		assert.Equal(t, next, order.Status)
	}
}

func TestOrderService_UpdateStatus_RejectsSkippedStep(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	_, err = orders.UpdateStatus(created.ID, models.StatusReady)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Rejected transitions leave the order untouched.
	order, err := orders.Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestOrderService_UpdateStatus_RejectsLeavingTerminal(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	_, err = orders.UpdateStatus(created.ID, models.StatusCancelled)
	require.NoError(t, err)

	_, err = orders.UpdateStatus(created.ID, models.StatusPreparing)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	_, err = orders.UpdateStatus(created.ID, models.OrderStatus("shipped"))
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	orders, _, _, _ := setupOrders(t)

	_, err := orders.UpdateStatus("ORD-MISSING", models.StatusPreparing)
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderService_CompletionRecordsRevenue(t *testing.T) {
	orders, _, carts, finances := setupOrders(t)
	carts.AddItem(1, testBurger)
	carts.AddItem(1, testFries)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
		_, err := orders.UpdateStatus(created.ID, next)
		require.NoError(t, err)
	}

	txns := finances.List()
	require.Len(t, txns, 1)
	assert.Equal(t, models.TxnOrder, txns[0].Category)
	assert.InDelta(t, 14.98, txns[0].Amount, 0.001)
}

func TestOrderService_ConcurrentCompletionRecordsRevenueOnce(t *testing.T) {
	orders, _, carts, finances := setupOrders(t)
	carts.AddItem(1, testBurger)
	created, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	for _, next := range []models.OrderStatus{models.StatusPreparing, models.StatusReady} {
		_, err := orders.UpdateStatus(created.ID, next)
		require.NoError(t, err)
	}

	var wg sync.WaitGroup
	var mu sync.Mutex
	successCount := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := orders.UpdateStatus(created.ID, models.StatusCompleted); err == nil {
				mu.Lock()
				successCount++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successCount)
	assert.Len(t, finances.List(), 1)
}

func TestOrderService_History(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)

	carts.AddItem(1, testBurger)
	first, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	carts.AddItem(2, testFries)
	_, err = orders.Checkout(2, "", models.CheckoutRequest{})
	require.NoError(t, err)

	history := orders.History(1, "")
	require.Len(t, history, 1)
	assert.Equal(t, first.ID, history[0].ID)
}

func TestOrderService_History_StatusFilter(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)

	carts.AddItem(1, testBurger)
	first, err := orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)
	carts.AddItem(1, testFries)
	_, err = orders.Checkout(1, "", models.CheckoutRequest{})
	require.NoError(t, err)

	_, err = orders.UpdateStatus(first.ID, models.StatusCancelled)
	require.NoError(t, err)

	cancelled := orders.History(1, "cancelled")
	require.Len(t, cancelled, 1)
	assert.Equal(t, first.ID, cancelled[0].ID)

	all := orders.History(1, "all")
	assert.Len(t, all, 2)
}

func TestOrderService_ListAll_Search(t *testing.T) {
	orders, _, carts, _ := setupOrders(t)

	carts.AddItem(1, testBurger)
	_, err := orders.Checkout(1, "Jane Doe", models.CheckoutRequest{})
	require.NoError(t, err)
	carts.AddItem(2, testFries)
	_, err = orders.Checkout(2, "John Smith", models.CheckoutRequest{})
	require.NoError(t, err)

	result := orders.ListAll("", "jane")
	require.Len(t, result, 1)
	assert.Equal(t, "Jane Doe", result[0].CustomerName)

	assert.Len(t, orders.ListAll("", ""), 2)
	assert.Empty(t, orders.ListAll("completed", ""))
}
