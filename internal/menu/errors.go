package menu

import "errors"

var (
	ErrNotFound     = errors.New("menu item not found")
	ErrInvalidInput = errors.New("invalid menu item input")
)
