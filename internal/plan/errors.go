package plan

import "errors"

var (
	// ErrInvalidReference is returned when a provider external_reference does
	// not carry a recognizable plan prefix and chef email.
	ErrInvalidReference = errors.New("unrecognized plan reference")

	// ErrInvalidNotification is returned for webhook payloads missing the
	// resource id or carrying one of the wrong shape.
	ErrInvalidNotification = errors.New("invalid webhook notification")

	// ErrUnknownPlanKind is returned for catalog entries or checkout requests
	// naming a plan kind that does not exist.
	ErrUnknownPlanKind = errors.New("unknown plan kind")
)
