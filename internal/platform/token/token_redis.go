// Package token provides the Redis-backed implementation of the
// usecase.TokenRepository interface.
package token

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"

	"github.com/redis/go-redis/v9"
)

// revokedTTL bounds how long a revoked token remains readable for auditing.
const revokedTTL = 24 * time.Hour

// TokenRedis implements usecase.TokenRepository using Redis.
type TokenRedis struct {
	client *redis.Client
	prefix string
}

// Compile-time check to ensure TokenRedis implements TokenRepository.
var _ usecase.TokenRepository = (*TokenRedis)(nil)

// NewTokenRedis creates a new TokenRedis instance.
func NewTokenRedis(client *redis.Client, prefix string) *TokenRedis {
	return &TokenRedis{
		client: client,
		prefix: prefix,
	}
}

// tokenKey returns the Redis key for a token.
func (r *TokenRedis) tokenKey(id string) string {
	return fmt.Sprintf("%s:%s", r.prefix, id)
}

// Create persists a newly issued token to Redis.
// Active tokens carry no TTL because tokens never expire on their own.
func (r *TokenRedis) Create(ctx context.Context, token *entity.AuthToken) error {
	data, err := json.Marshal(token)
	if err != nil {
		return fmt.Errorf("failed to marshal token: %w", err)
	}

	return r.client.Set(ctx, r.tokenKey(token.ID), data, 0).Err()
}

// FindByID retrieves a token by its value.
func (r *TokenRedis) FindByID(ctx context.Context, id string) (*entity.AuthToken, error) {
	data, err := r.client.Get(ctx, r.tokenKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}

	var token entity.AuthToken
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to unmarshal token: %w", err)
	}

	return &token, nil
}

// Revoke marks a single token as revoked.
// The read-modify-write runs under WATCH so two concurrent revokes of the
// same token cannot both observe it active; the loser reports
// ErrTokenNotFound.
func (r *TokenRedis) Revoke(ctx context.Context, id string) error {
	key := r.tokenKey(id)

	err := r.client.Watch(ctx, func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Bytes()
		if err != nil {
			if err == redis.Nil {
				return usecase.ErrTokenNotFound
			}
			return err
		}

		var token entity.AuthToken
		if err := json.Unmarshal(data, &token); err != nil {
			return fmt.Errorf("failed to unmarshal token: %w", err)
		}
		if token.IsRevoked() {
			return usecase.ErrTokenNotFound
		}

		now := time.Now()
		token.RevokedAt = &now

		payload, err := json.Marshal(token)
		if err != nil {
			return fmt.Errorf("failed to marshal token: %w", err)
		}

		// Keep short TTL for revoked tokens (for audit purposes)
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, revokedTTL)
			return nil
		})
		return err
	}, key)

	if err == redis.TxFailedErr {
		// A concurrent revoke won the race; the token is no longer active.
		return usecase.ErrTokenNotFound
	}
	return err
}
