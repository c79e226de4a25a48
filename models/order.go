package models

import "time"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusPreparing OrderStatus = "preparing"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// StatusSteps is the ordered progression rendered as the tracking step
// indicator. Cancelled is not a step; it renders as a terminal badge.
var StatusSteps = []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusCompleted}

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// StepIndex returns the position of s in StatusSteps, or -1 for cancelled
// and unknown statuses.
func (s OrderStatus) StepIndex() int {
	for i, step := range StatusSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// CanTransitionTo reports whether the move from s to next is legal: one
// forward step along StatusSteps, or cancellation of any non-terminal order.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == StatusCancelled {
		return true
	}
	return next.StepIndex() == s.StepIndex()+1
}

type OrderItem struct {
	ItemID   string  `json:"item_id,omitempty"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

type Order struct {
	ID                  string      `json:"id"`
	UserID              int         `json:"user_id"`
	CustomerName        string      `json:"customer_name,omitempty"`
	TableNumber         *int        `json:"table_number,omitempty"`
	Items               []OrderItem `json:"items"`
	Total               float64     `json:"total"`
	Status              OrderStatus `json:"status"`
	PaymentMethod       string      `json:"payment_method,omitempty"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	CreatedAt           time.Time   `json:"created_at"`
	UpdatedAt           time.Time   `json:"updated_at"`
}
