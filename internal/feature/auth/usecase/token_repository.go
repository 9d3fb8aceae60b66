package usecase

import (
	"context"

	"auth_backend/internal/feature/auth/domain/entity"
)

// TokenRepository abstracts the persistence layer for auth tokens.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type TokenRepository interface {
	// Create persists a newly issued token to the storage.
	Create(ctx context.Context, token *entity.AuthToken) error

	// FindByID retrieves a token by its ID (the token value).
	// Returns ErrTokenNotFound if no such token exists.
	FindByID(ctx context.Context, id string) (*entity.AuthToken, error)

	// Revoke marks a single token as revoked by setting RevokedAt.
	// Returns ErrTokenNotFound if no such token exists.
	Revoke(ctx context.Context, id string) error
}
