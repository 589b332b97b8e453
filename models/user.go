package models

import (
	"time"

	"gorm.io/gorm"
)

// Account types as sent by the signup form.
const (
	AccountTypeUser     = "user"
	AccountTypeBusiness = "business"
)

// Business roles accepted by the role-switch step. Saloon and the other
// verticals are "coming soon" on the frontend but the role values are
// already accepted here.
const (
	RoleHotel      = "Hotel"
	RoleRestaurant = "Restorent"
	RoleSaloon     = "Saloon"
)

type User struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	FirstName string         `gorm:"size:150" json:"first_name"`
	Email     string         `gorm:"uniqueIndex;size:254" json:"email"`
	Phone     string         `gorm:"size:20" json:"phone"`
	Password  string         `gorm:"size:255" json:"-"` // bcrypt hash, never serialized
	AccountType string       `gorm:"size:20;default:user" json:"account_type"`
	Role      string         `gorm:"size:20" json:"role,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
