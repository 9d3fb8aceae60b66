// Package adapters provides repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
	"auth_backend/internal/feature/auth/usecase"

	"gorm.io/gorm"
)

// tokenMySQL is a MySQL implementation of the TokenRepository interface.
// It serves as the fallback store when Redis is unavailable.
type tokenMySQL struct {
	db *gorm.DB
}

// Compile-time check to ensure tokenMySQL implements TokenRepository.
var _ usecase.TokenRepository = (*tokenMySQL)(nil)

// NewTokenMySQL creates a new instance of tokenMySQL.
func NewTokenMySQL(db *gorm.DB) *tokenMySQL {
	return &tokenMySQL{db: db}
}

// Create persists a newly issued token to the database.
func (r *tokenMySQL) Create(ctx context.Context, token *entity.AuthToken) error {
	model := TokenModelFromEntity(token)
	return r.db.WithContext(ctx).Create(model).Error
}

// FindByID retrieves a token by its value.
func (r *tokenMySQL) FindByID(ctx context.Context, id string) (*entity.AuthToken, error) {
	var model TokenModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrTokenNotFound
		}
		return nil, err
	}
	return model.ToEntity(), nil
}

// Revoke marks a single token as revoked by its value.
// Already-revoked tokens are not matched, so revoking twice reports
// ErrTokenNotFound on the second attempt.
func (r *tokenMySQL) Revoke(ctx context.Context, id string) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&TokenModel{}).
		Where("id = ? AND revoked_at IS NULL", id).
		Update("revoked_at", now)

	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return usecase.ErrTokenNotFound
	}
	return nil
}
