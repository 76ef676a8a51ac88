package services

import "errors"

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("email or password incorrect")

	// ErrMealNotFound covers both a missing id and a meal owned by someone
	// else; callers must not be able to tell the two apart.
	ErrMealNotFound = errors.New("meal not found")

	ErrEmptyUpdate = errors.New("no data to edit")
)
