package domain

import "errors"

// Sentinel errors used throughout the application.
var (
	ErrUnknownVariant = errors.New("unknown page variant: must be stage1 or classic")
)
