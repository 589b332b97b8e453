package models

import (
	"time"

	"gorm.io/gorm"
)

type Restaurant struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	OwnerID  *uint    `gorm:"index" json:"-"`
	Name     string   `gorm:"size:120" json:"name"`
	City     string   `gorm:"size:60;index" json:"city"`
	Area     string   `gorm:"size:120" json:"area"`
	Badge    string   `gorm:"size:40" json:"badge"`
	CuisineType string `gorm:"column:cuisine_type;size:60" json:"cuisine_type"`
	PriceRange  string `gorm:"size:10" json:"price_range"` // "$", "$$", "$$$"
	AverageCostForTwo float64 `gorm:"column:average_cost_for_two" json:"average_cost_for_two"`
	Rating   float64  `json:"rating"`
	Description string `gorm:"type:text" json:"description"`

	Image          string `gorm:"size:500" json:"image"`
	InteriorImage1 string `gorm:"size:500" json:"interior_image1"`
	InteriorImage2 string `gorm:"size:500" json:"interior_image2"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
