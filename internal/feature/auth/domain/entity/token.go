package entity

import "time"

// AuthToken represents an opaque bearer token issued at login.
// Its ID is the token value itself (64-character hex string); clients
// present it on every authenticated request.
type AuthToken struct {
	ID        string     // Token value (64-character hex string)
	UserID    uint       // Owning user ID
	CreatedAt time.Time  // Token issuance time
	RevokedAt *time.Time // Revocation time (nil while active)
}

// IsRevoked returns true if the token has been revoked.
func (t *AuthToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsValid returns true if the token can still authenticate requests.
// Tokens carry no expiry; revocation is the only terminal state.
func (t *AuthToken) IsValid() bool {
	return !t.IsRevoked()
}
