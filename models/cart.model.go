package models

import "time"

// CartItem is one pending line in a buyer's shopping bag. The composite
// unique index closes the duplicate-add race at the store level: two
// concurrent adds for the same (user, product) cannot both land.
type CartItem struct {
	ID         uint `gorm:"primaryKey" json:"id"`
	UserID     uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID  uint `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	CategoryID uint `json:"category_id"`
	ShopID     uint `gorm:"index" json:"shop_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`

	// Product snapshot taken at add time
	ProductName  string  `gorm:"size:255" json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
