package models

import "time"

// Stages of the forgot-password flow. Strictly linear: a record moves
// requested -> verified -> consumed and never backwards.
const (
	ResetStageRequested = "requested"
	ResetStageVerified  = "verified"
	ResetStageConsumed  = "consumed"
)

// PasswordReset holds one in-flight OTP reset per email. The OTP itself is
// stored bcrypt-hashed; only the last issued code for an email is valid.
type PasswordReset struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"index;size:254" json:"email"`
	OTPHash   string    `gorm:"size:255" json:"-"`
	Stage     string    `gorm:"size:20;default:requested" json:"stage"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
