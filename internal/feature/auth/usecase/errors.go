// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user with an email that already exists.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned on login when the email or password is wrong.
	// It is deliberately identical for "no such user" and "wrong password".
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenNotFound is returned when a token cannot be found by its value.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenRevoked is returned when attempting to use a revoked token.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrUnauthenticated is returned when a request carries no usable token.
	// Missing, unknown and revoked tokens all collapse into this error.
	ErrUnauthenticated = errors.New("unauthenticated")
)
