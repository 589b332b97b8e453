package utils

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Abh4y369/ServNex-App/models"
)

type Claims struct {
	UserID      uint   `json:"userId"`
	AccountType string `json:"accountType"`
	Role        string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func jwtSecret() []byte {
	return []byte(EnvOrDefault("JWT_SECRET", "servnex-dev-secret"))
}

// CreateAccessToken signs a short-lived HS256 token carrying the user id,
// account type and business role.
func CreateAccessToken(u models.User) (string, error) {
	claims := Claims{
		UserID:      u.ID,
		AccountType: u.AccountType,
		Role:        u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

func ValidateAccessToken(tokenStr string) (*Claims, error) {
	if tokenStr == "" {
		return nil, errors.New("missing token")
	}
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return jwtSecret(), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GenerateRefreshToken returns the raw token for the client and its SHA-256
// hash for storage.
func GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err = rand.Read(b); err != nil {
		return "", "", err
	}
	raw = hex.EncodeToString(b)
	sum := sha256.Sum256([]byte(raw))
	return raw, hex.EncodeToString(sum[:]), nil
}

// SaveRefreshToken upserts the user's single refresh token row.
func SaveRefreshToken(db *gorm.DB, userID uint, hash string, expiresAt time.Time) error {
	var existing models.RefreshToken
	err := db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		existing.Token = hash
		existing.ExpiresAt = expiresAt
		return db.Save(&existing).Error
	}
	return db.Create(&models.RefreshToken{
		UserID:    userID,
		Token:     hash,
		ExpiresAt: expiresAt,
	}).Error
}

func ValidateRefreshToken(db *gorm.DB, raw string) (*models.RefreshToken, error) {
	sum := sha256.Sum256([]byte(raw))
	hash := hex.EncodeToString(sum[:])

	var rt models.RefreshToken
	err := db.Where("token = ? AND expires_at > ?", hash, time.Now()).First(&rt).Error
	if err != nil {
		return nil, errors.New("invalid or expired refresh token")
	}
	return &rt, nil
}

func DeleteRefreshToken(db *gorm.DB, raw string) error {
	sum := sha256.Sum256([]byte(raw))
	hash := hex.EncodeToString(sum[:])
	return db.Where("token = ?", hash).Delete(&models.RefreshToken{}).Error
}

// EnvOrDefault returns ENV value or fallback default.
func EnvOrDefault(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}
