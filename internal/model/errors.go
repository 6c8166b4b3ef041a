package model

import "errors"

// Common errors used across the application
var (
	// Session errors
	ErrSessionNotFound = errors.New("session not found")

	// Team errors
	ErrTeamNotFound       = errors.New("team not found")
	ErrNameSpaceExhausted = errors.New("unable to generate enough unique team names")

	// Board errors
	ErrMalformedBoard  = errors.New("malformed board: expected a 5x5 matrix")
	ErrInvalidPosition = errors.New("invalid board position")

	// Coordinate mapper errors: caller-contract violations, not
	// recoverable runtime conditions
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidPointValue = errors.New("invalid point value")

	// Question errors
	ErrQuestionNotFound = errors.New("question not found")
)
