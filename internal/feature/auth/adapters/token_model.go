package adapters

import (
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
)

// TokenModel is the GORM model for the auth_tokens table.
type TokenModel struct {
	ID        string     `gorm:"primaryKey;size:64"`
	UserID    uint       `gorm:"index;not null"`
	CreatedAt time.Time  `gorm:"not null"`
	RevokedAt *time.Time `gorm:"index"`
}

// TableName returns the table name for GORM.
func (TokenModel) TableName() string {
	return "auth_tokens"
}

// ToEntity converts the GORM model to a domain entity.
func (m *TokenModel) ToEntity() *entity.AuthToken {
	return &entity.AuthToken{
		ID:        m.ID,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		RevokedAt: m.RevokedAt,
	}
}

// TokenModelFromEntity converts a domain entity to a GORM model.
func TokenModelFromEntity(t *entity.AuthToken) *TokenModel {
	return &TokenModel{
		ID:        t.ID,
		UserID:    t.UserID,
		CreatedAt: t.CreatedAt,
		RevokedAt: t.RevokedAt,
	}
}
