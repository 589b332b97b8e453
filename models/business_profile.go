package models

import (
	"time"

	"gorm.io/gorm"
)

// BusinessProfile is the listing submitted from the two-step business
// onboarding form (category, then name/city/area/description).
type BusinessProfile struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	UserID      uint           `gorm:"index" json:"-"`
	Category    string         `gorm:"size:20" json:"category"`
	Name        string         `gorm:"size:80" json:"name"`
	City        string         `gorm:"size:60" json:"city"`
	Area        string         `gorm:"size:120" json:"area"`
	Description string         `gorm:"type:text" json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"-"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}
