// Package di wires concrete implementations into the usecase interfaces.
package di

import (
	"auth_backend/internal/feature/auth/adapters"
	"auth_backend/internal/feature/auth/usecase"
	"auth_backend/internal/platform/token"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// NewTokenRepository creates a TokenRepository implementation.
// If Redis is available, it returns a Redis-backed implementation.
// Otherwise, it falls back to MySQL.
func NewTokenRepository(rdb *redis.Client, db *gorm.DB) usecase.TokenRepository {
	if rdb != nil {
		return token.NewTokenRedis(rdb, "token")
	}
	return adapters.NewTokenMySQL(db)
}
