package order

import "errors"

// Domain errors for order.
var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderNotEditable  = errors.New("order can no longer be edited")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidStatus     = errors.New("invalid order status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
