package dto

import (
	"time"

	"auth_backend/internal/feature/auth/domain/entity"
)

// UserResp is the client-facing representation of a user.
// The password hash is never included.
type UserResp struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResp builds a UserResp from a domain user.
func NewUserResp(u *entity.User) UserResp {
	return UserResp{
		ID:        u.ID,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}

// AuthUserResp is the /login success payload: the user plus the freshly
// issued bearer token. The token value is returned to the client exactly
// once, here.
type AuthUserResp struct {
	User  UserResp `json:"user"`
	Token string   `json:"token"`
}
