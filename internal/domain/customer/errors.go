package customer

import "errors"

// Domain errors for customer.
var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrNameRequired     = errors.New("customer name is required")
	ErrPhoneRequired    = errors.New("customer phone is required")
)
