package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	OwnerID   *uint          `gorm:"index" json:"-"`
	Name      string         `gorm:"size:120" json:"name"`
	City      string         `gorm:"size:60;index" json:"city"`
	Area      string         `gorm:"size:120" json:"area"`
	Badge     string         `gorm:"size:40" json:"badge"`
	Price     float64        `json:"price"`
	OldPrice  *float64       `json:"old_price,omitempty"`
	Rating    float64        `json:"rating"`
	TotalRooms int           `gorm:"column:total_rooms" json:"total_rooms"`
	Description string       `gorm:"type:text" json:"description"`

	Image      string `gorm:"size:500" json:"image"`
	RoomImage1 string `gorm:"size:500" json:"room_image1"`
	RoomImage2 string `gorm:"size:500" json:"room_image2"`

	// JSON array of amenity names, e.g. ["WiFi","Pool","Parking"].
	Amenities datatypes.JSON `json:"amenities"`

	CreatedAt time.Time      `json:"-"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
