package errors

import "errors"

// Sentinel failures surfaced by repositories and use cases. The handler
// layer maps them onto HTTP status codes; their messages are user-safe.
var (
	ErrAlreadyExists      = errors.New("Email already registered")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrMissingFields      = errors.New("All fields are required")
	ErrPasswordMismatch   = errors.New("Passwords do not match")
	ErrPasswordTooShort   = errors.New("Password must be at least 6 characters long")
	ErrEmptyOrder         = errors.New("name, phone and at least one item are required")
	ErrInvalidLineItem    = errors.New("each item needs a name and a positive quantity")
	ErrInvalidStatus      = errors.New("invalid order status")
	ErrUnknownRole        = errors.New("unknown role")
)
