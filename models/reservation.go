package models

import (
	"time"

	"gorm.io/gorm"
)

type Reservation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ReferenceCode string    `gorm:"size:64;uniqueIndex" json:"reference_code"`
	UserID        uint      `gorm:"index" json:"-"`
	RestaurantID  uint      `gorm:"index" json:"restaurant"`
	ReservationDate time.Time `gorm:"column:reservation_date" json:"-"`
	ReservationTime string  `gorm:"column:reservation_time;size:5" json:"reservation_time"` // "19:30"
	NumberOfGuests int      `gorm:"column:number_of_guests" json:"number_of_guests"`
	Tables        int       `json:"tables"`
	SpecialRequests string  `gorm:"type:text" json:"special_requests"`
	// Display estimate only: average_cost_for_two x guests/2.
	EstimatedCost float64 `gorm:"column:estimated_cost" json:"estimated_cost"`
	Status        string  `gorm:"size:20;default:confirmed" json:"status"`

	Restaurant Restaurant `gorm:"foreignKey:RestaurantID" json:"-"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
