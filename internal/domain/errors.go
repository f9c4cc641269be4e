package domain

import "errors"

var (
	// Account errors
	ErrAccountNotFound = errors.New("account not found")
	ErrAccountExists   = errors.New("account number already exists")
	ErrAccountInactive = errors.New("account is inactive")

	// Movement errors
	ErrMovementNotFound    = errors.New("movement not found")
	ErrInvalidMovementKind = errors.New("invalid movement kind")
	ErrInsufficientFunds   = errors.New("insufficient funds")

	// Customer errors
	ErrCustomerNotFound = errors.New("customer not found")
	ErrCustomerExists   = errors.New("customer already exists")

	// Event errors
	ErrUnknownEventType = errors.New("unknown customer event type")

	// ErrInvalidInput marks request-level validation failures; wrap it with
	// the offending field for context.
	ErrInvalidInput = errors.New("invalid input")
)
