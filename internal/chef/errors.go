package chef

import "errors"

var (
	ErrNotFound           = errors.New("chef not found")
	ErrEmailTaken         = errors.New("chef email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidInput       = errors.New("invalid chef input")
	ErrPlanInactive       = errors.New("chef plan inactive or expired")
)
