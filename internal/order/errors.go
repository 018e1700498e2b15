package order

import "errors"

var (
	ErrNotFound     = errors.New("order not found")
	ErrInvalidInput = errors.New("invalid order input")

	// ErrChefPhoneMissing is returned by Place when the order was persisted
	// but the chef has no notification phone configured, so no WhatsApp link
	// could be produced.
	ErrChefPhoneMissing = errors.New("restaurant phone number not configured")
)
