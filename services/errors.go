package services

import "errors"

var (
	// ErrEmptyCart is returned by checkout when there is nothing to order.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrOrderFetchTimeout is returned when the order lookup exceeded its
	// deadline on both attempts. Recoverable: the caller simply retries.
	ErrOrderFetchTimeout = errors.New("order lookup timed out")

	// ErrInvalidTransition rejects status changes outside the forward
	// progression and the cancel-from-non-terminal escape hatch.
	ErrInvalidTransition = errors.New("invalid order status transition")

	ErrOrderNotFound       = errors.New("order not found")
	ErrItemNotFound        = errors.New("menu item not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredential   = errors.New("invalid email or password")
	ErrInvalidStatus       = errors.New("unknown order status")
	ErrTableNotFound       = errors.New("table not found")
	ErrTableNumberTaken    = errors.New("table number already in use")
	ErrInventoryNotFound   = errors.New("inventory item not found")
	ErrReservationNotFound = errors.New("reservation not found")
)
