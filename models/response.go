package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginationResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

// OrderTracking is the customer-facing view of an order: the order itself
// plus the step indicator derived from its status. Cancelled orders carry a
// step index of -1 and are rendered as a badge instead of a step.
type OrderTracking struct {
	Order       Order         `json:"order"`
	Steps       []OrderStatus `json:"steps"`
	CurrentStep int           `json:"current_step"`
	Cancelled   bool          `json:"cancelled"`
}
