package models

import "time"

type TransactionCategory string

const (
	TxnOrder     TransactionCategory = "order"
	TxnStaff     TransactionCategory = "staff"
	TxnStock     TransactionCategory = "stock"
	TxnUtilities TransactionCategory = "utilities"
	TxnOther     TransactionCategory = "other"
)

func (c TransactionCategory) Valid() bool {
	switch c {
	case TxnOrder, TxnStaff, TxnStock, TxnUtilities, TxnOther:
		return true
	}
	return false
}

type Transaction struct {
	ID          string              `json:"id"`
	Date        time.Time           `json:"date"`
	Description string              `json:"description"`
	Amount      float64             `json:"amount"`
	Category    TransactionCategory `json:"category"`
}

type FinancialSummary struct {
	TotalRevenue  float64 `json:"total_revenue"`
	TotalExpenses float64 `json:"total_expenses"`
	NetProfit     float64 `json:"net_profit"`
}

type FinancialProjection struct {
	NextMonthTarget         float64 `json:"next_month_target"`
	CurrentMonthPerformance float64 `json:"current_month_performance"`
	LastMonthPerformance    float64 `json:"last_month_performance"`
}
