package services

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abh4y369/ServNex-App/models"
	"github.com/Abh4y369/ServNex-App/utils"
)

var (
	ErrIncompleteOTP     = errors.New("Enter complete OTP")
	ErrInvalidOTP        = errors.New("Invalid OTP")
	ErrOTPExpired        = errors.New("OTP expired, request a new one")
	ErrNoResetInProgress = errors.New("no reset in progress for this email")
	ErrOTPNotVerified    = errors.New("verify the OTP before setting a new password")
	ErrPasswordMismatch  = errors.New("Passwords do not match")
)

const otpTTL = 10 * time.Minute

// PasswordResetService drives the strictly linear forgot-password flow:
// send-otp -> verify-otp -> reset-password. Each step requires the record
// to be in the stage the previous step left it in; there is no way back.
type PasswordResetService struct {
	DB *gorm.DB
	// SendEmail is swappable for tests; defaults to utils.SendOTPEmail.
	SendEmail func(email, code string) error
}

func NewPasswordResetService(db *gorm.DB) *PasswordResetService {
	return &PasswordResetService{DB: db, SendEmail: utils.SendOTPEmail}
}

// SendOTP issues a fresh 6-digit code for the account, replacing any
// earlier in-flight reset for the same email.
func (s *PasswordResetService) SendOTP(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return errors.New("Email is required")
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	// Only the newest code counts; stale records for the email are dropped.
	if err := s.DB.Where("email = ?", email).Delete(&models.PasswordReset{}).Error; err != nil {
		return err
	}
	reset := models.PasswordReset{
		Email:     email,
		OTPHash:   string(hash),
		Stage:     models.ResetStageRequested,
		ExpiresAt: time.Now().Add(otpTTL),
	}
	if err := s.DB.Create(&reset).Error; err != nil {
		return err
	}

	return s.SendEmail(email, code)
}

// VerifyOTP checks the assembled 6-digit code and advances the record to
// the verified stage. Codes shorter than 6 digits are rejected before any
// lookup happens.
func (s *PasswordResetService) VerifyOTP(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !utils.IsValidOTPFormat(code) {
		return ErrIncompleteOTP
	}

	var reset models.PasswordReset
	err := s.DB.Where("email = ? AND stage = ?", email, models.ResetStageRequested).First(&reset).Error
	if err != nil {
		return ErrNoResetInProgress
	}
	if time.Now().After(reset.ExpiresAt) {
		return ErrOTPExpired
	}
	if bcrypt.CompareHashAndPassword([]byte(reset.OTPHash), []byte(code)) != nil {
		return ErrInvalidOTP
	}

	reset.Stage = models.ResetStageVerified
	return s.DB.Save(&reset).Error
}

// ResetPassword completes the flow. It requires a verified, unexpired
// record and matching password fields; a mismatch is rejected without
// touching the user row.
func (s *PasswordResetService) ResetPassword(email, password, confirm string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if password == "" || confirm == "" {
		return errors.New("All fields are required")
	}
	if password != confirm {
		return ErrPasswordMismatch
	}

	var reset models.PasswordReset
	err := s.DB.Where("email = ? AND stage = ?", email, models.ResetStageVerified).First(&reset).Error
	if err != nil {
		return ErrOTPNotVerified
	}
	if time.Now().After(reset.ExpiresAt) {
		return ErrOTPExpired
	}

	var user models.User
	if err := s.DB.Where("email = ?", email).First(&user).Error; err != nil {
		return ErrUserNotFound
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hash)
	if err := s.DB.Save(&user).Error; err != nil {
		return err
	}

	reset.Stage = models.ResetStageConsumed
	return s.DB.Save(&reset).Error
}
