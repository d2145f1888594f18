package models

import "time"

// Shop is a seller account, a credential class separate from User.
type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ShopName string `gorm:"size:100;not null" json:"shop_name"`
	Email    string `gorm:"unique;not null;size:100" json:"email"`
	Password string `gorm:"not null" json:"-"`

	OwnerName    string `gorm:"size:100" json:"owner_name"`
	MobileNumber string `gorm:"size:20" json:"mobile_number"`
	Address      string `gorm:"type:text" json:"address"`
	Country      string `gorm:"size:100" json:"country"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
