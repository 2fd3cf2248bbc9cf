package services

import "errors"

var (
	ErrUserExists         = errors.New("username or email already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")

	ErrBabyNotFound    = errors.New("baby not found")
	ErrNotBabyOwner    = errors.New("baby does not belong to this user")
	ErrInvalidBabyData = errors.New("name, birthdate and gender are required")

	ErrBloodSugarNotFound      = errors.New("blood sugar record not found")
	ErrLevelOutOfRange         = errors.New("blood sugar level must be between 0 and 500")
	ErrMeasurementTimeRequired = errors.New("measurementTime is required")

	ErrQuantityNotPositive = errors.New("quantity must be a positive number of grams")
	ErrInvalidTheme        = errors.New("theme must be light or dark")

	// Returned by the combined feeding+blood-sugar log when either insert
	// failed; both rows have been rolled back.
	ErrFeedingTxFailed = errors.New("feeding log transaction failed")
)
