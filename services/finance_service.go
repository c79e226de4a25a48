package services

import (
	"fmt"
	"sync"
	"time"

	"table-tap/models"

	"github.com/google/uuid"
)

// FinanceService is the transaction ledger behind the admin finances page.
// Order revenue flows in automatically when an order completes; staff,
// stock, and utility expenses are entered by hand.
type FinanceService struct {
	mu           sync.RWMutex
	transactions []models.Transaction
}

func NewFinanceService() *FinanceService {
	return &FinanceService{}
}

func (s *FinanceService) Add(req models.CreateTransactionRequest) models.Transaction {
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Date:        time.Now(),
		Description: req.Description,
		Amount:      req.Amount,
		Category:    models.TransactionCategory(req.Category),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txn)
	return txn
}

// RecordOrderRevenue books a completed order into the ledger.
func (s *FinanceService) RecordOrderRevenue(order models.Order) models.Transaction {
	txn := models.Transaction{
		ID:          uuid.New().String(),
		Date:        time.Now(),
		Description: fmt.Sprintf("Order %s", order.ID),
		Amount:      order.Total,
		Category:    models.TxnOrder,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = append(s.transactions, txn)
	return txn
}

func (s *FinanceService) List() []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]models.Transaction, len(s.transactions))
	copy(result, s.transactions)
	return result
}

// Summary treats order-category amounts as revenue and everything else as
// expenses.
func (s *FinanceService) Summary() models.FinancialSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var summary models.FinancialSummary
	for _, txn := range s.transactions {
		if txn.Category == models.TxnOrder {
			summary.TotalRevenue += txn.Amount
		} else {
			summary.TotalExpenses += txn.Amount
		}
	}
	summary.NetProfit = summary.TotalRevenue - summary.TotalExpenses
	return summary
}

// Projection compares this month's revenue against last month's and sets a
// 10% growth target for next month.
func (s *FinanceService) Projection(now time.Time) models.FinancialProjection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	currentStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	lastStart := currentStart.AddDate(0, -1, 0)

	var current, last float64
	for _, txn := range s.transactions {
		if txn.Category != models.TxnOrder {
			continue
		}
		switch {
		case !txn.Date.Before(currentStart):
			current += txn.Amount
		case !txn.Date.Before(lastStart):
			last += txn.Amount
		}
	}

	base := last
	if base == 0 {
		base = current
	}
	return models.FinancialProjection{
		NextMonthTarget:         base * 1.1,
		CurrentMonthPerformance: current,
		LastMonthPerformance:    last,
	}
}
