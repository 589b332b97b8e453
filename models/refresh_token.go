package models

import "time"

// RefreshToken stores only the SHA-256 hash of the opaque token handed to
// the client. One row per user; re-login replaces it.
type RefreshToken struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex" json:"user_id"`
	Token     string    `gorm:"size:64;index" json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
