package auctionerrors

import "errors"

// Lookup and referential-integrity errors
var (
	ErrNotFound      = errors.New("not found")
	ErrUnknownSeller = errors.New("seller does not exist")
	ErrUnknownItem   = errors.New("item does not exist")
	ErrUnknownBuyer  = errors.New("buyer does not exist")
)

// Identity errors
var (
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrInvalidCredential = errors.New("incorrect password")
)

// Business logic errors
var (
	ErrValidation = errors.New("invalid input")
	ErrBidTooLow  = errors.New("bid amount too low")
)

// Storage-layer failures (connection or transport level)
var (
	ErrStorageUnavailable = errors.New("storage unavailable")
)
