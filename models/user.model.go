package models

import (
	"time"
)

// User is a buyer account. Deletion is unconditional; orders keep their
// denormalized snapshots and are never cascaded.
type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// Login
	Username string `gorm:"size:50" json:"username"`
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	// Profile
	Name         string     `gorm:"size:100" json:"name"`
	MobileNumber string     `gorm:"size:20" json:"mobile_number"`
	DateOfBirth  *time.Time `json:"date_of_birth"`
	Country      string     `gorm:"size:100" json:"country"`
	Role         string     `gorm:"default:'user';size:20" json:"role"` // user, shop

	// Account recovery
	SecurityQuestion string `gorm:"size:255" json:"security_question"`
	SecurityAnswer   string `gorm:"size:255" json:"-"`

	// Shipping address
	Street          string `gorm:"size:255" json:"street"`
	City            string `gorm:"size:100" json:"city"`
	State           string `gorm:"size:100" json:"state"`
	Zipcode         string `gorm:"size:20" json:"zipcode"`
	ShippingCountry string `gorm:"size:100" json:"shipping_country"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
