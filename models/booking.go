package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. Only "cancelled" is excluded from availability math.
const (
	BookingStatusConfirmed = "confirmed"
	BookingStatusPending   = "pending"
	BookingStatusCancelled = "cancelled"
)

type Booking struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	ReferenceCode string     `gorm:"size:64;uniqueIndex" json:"reference_code"`
	UserID        uint       `gorm:"index" json:"-"`
	HotelID       uint       `gorm:"index" json:"hotel"`
	CheckIn       time.Time  `gorm:"column:check_in" json:"-"`
	CheckOut      time.Time  `gorm:"column:check_out" json:"-"`
	NumberOfGuests int       `gorm:"column:number_of_guests" json:"number_of_guests"`
	RoomsBooked   int        `gorm:"column:rooms_booked" json:"rooms_booked"`
	Nights        int        `json:"nights"`
	// Display estimate only; the charge is settled elsewhere.
	TotalCost float64 `gorm:"column:total_cost" json:"total_cost"`
	Status    string  `gorm:"size:20;default:confirmed" json:"status"`

	Hotel Hotel `gorm:"foreignKey:HotelID" json:"-"`
	User  User  `gorm:"foreignKey:UserID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
