package model

import "errors"

// Common errors used across the application
var (
	// Choice errors
	ErrInvalidChoice = errors.New("invalid choice")

	// Identity errors
	ErrInvalidName      = errors.New("player name must be 2-20 characters")
	ErrIdentityNotFound = errors.New("identity not found")

	// Session errors
	ErrNotLoggedIn = errors.New("not logged in")

	// Play errors
	ErrPlayInProgress = errors.New("a play is already in progress")
	ErrRequestFailed  = errors.New("request failed")

	// Store errors
	ErrKeyNotFound = errors.New("key not found")
)
