package handlers

import "errors"

// Sentinel errors surfaced from transactional closures; the handler layer
// maps them onto HTTP statuses so callers can tell their own faults from
// backing-store failures.
var (
	ErrDuplicateCartLine = errors.New("cart line already exists for this product")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid order status transition")
	ErrConcurrentUpdate  = errors.New("order was modified concurrently")
)
