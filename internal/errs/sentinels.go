// Package errs contains sentinel errors used across layers for stable error mapping.
package errs

import "errors"

// Common sentinels across repo/service layers.
var (
	// ErrNotFound indicates the requested entity (record, expert) does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotRegistered indicates the address is not a registered expert.
	ErrNotRegistered = errors.New("not registered")

	// ErrUnauthorized indicates the caller identity does not match the one the operation requires.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrInsufficientBalance indicates a shortfall of remaining credits, funds or allowance.
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrInvalidAmount indicates a zero, negative, overflowing or out-of-range numeric argument.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrInvalidArgument indicates a malformed non-numeric argument (empty pointer, bad address).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAuthenticationFailed indicates a bad signature, stale or reused nonce, wrong domain/chain
	// or an invalid session token.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrAccessDenied indicates a valid session whose subject is not entitled to the record.
	ErrAccessDenied = errors.New("access denied")

	// ErrRateLimited indicates temporary login lock due to rate limiting.
	ErrRateLimited = errors.New("rate limited")

	// ErrAlreadyExists indicates a unique constraint violation (e.g., nonce already consumed).
	ErrAlreadyExists = errors.New("already exists")
)
