package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrAuthFailed       = fmt.Errorf("authentication failed")
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrInvalidToken     = fmt.Errorf("invalid or expired token")
	ErrWrongPassword    = fmt.Errorf("incorrect password")
	ErrTimeout          = fmt.Errorf("operation timed out")

	// Account errors
	ErrValidation   = fmt.Errorf("invalid input")
	ErrEmailTaken   = fmt.Errorf("user already exists")
	ErrUserNotFound = fmt.Errorf("user not found")
	ErrWeakPassword = fmt.Errorf("password does not meet policy")

	// Catalog and upstream errors
	ErrFetchFailed  = fmt.Errorf("failed to fetch from catalog provider")
	ErrSongNotFound = fmt.Errorf("song not found")

	// Input validation errors
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
