package models

import "time"

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "PLACED"
	OrderStatusConfirmed OrderStatus = "CONFIRMED"
	OrderStatusShipped   OrderStatus = "SHIPPED"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

// orderTransitions is the closed transition table:
// PLACED → CONFIRMED → SHIPPED → DELIVERED, with CANCELLED reachable from
// any non-terminal state. DELIVERED and CANCELLED are terminal.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPlaced:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusConfirmed: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:   {OrderStatusDelivered, OrderStatusCancelled},
	OrderStatusDelivered: {},
	OrderStatusCancelled: {},
}

// Valid reports whether s is a known order status.
func (s OrderStatus) Valid() bool {
	_, ok := orderTransitions[s]
	return ok
}

// CanTransition reports whether the order may move from s to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, t := range orderTransitions[s] {
		if t == next {
			return true
		}
	}
	return false
}

// CustomerOrder is the buyer-facing ledger entry. OrderID correlates it
// with exactly one SellerOrder; the two rows always carry equal statuses.
type CustomerOrder struct {
	OrderID   string `gorm:"primaryKey;size:36" json:"order_id"`
	UserID    uint   `gorm:"not null;index;uniqueIndex:idx_order_user_idem" json:"user_id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	ShopID    uint   `gorm:"not null" json:"shop_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	// Product snapshot at placement time
	ProductName  string  `gorm:"size:255" json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`

	Status OrderStatus `gorm:"size:20;not null" json:"status"`

	// Caller-supplied deduplication key, unique per buyer; empty when the
	// caller opted out.
	IdempotencyKey *string `gorm:"size:64;uniqueIndex:idx_order_user_idem" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SellerOrder is the seller-facing ledger entry for the same order id,
// carrying the buyer's shipment snapshot so the shop can fulfil without
// reading the users table.
type SellerOrder struct {
	OrderID   string `gorm:"primaryKey;size:36" json:"order_id"`
	ShopID    uint   `gorm:"not null;index" json:"shop_id"`
	UserID    uint   `gorm:"not null" json:"user_id"`
	ProductID uint   `gorm:"not null" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	// Buyer shipment snapshot
	BuyerName       string `gorm:"size:100" json:"buyer_name"`
	BuyerMobile     string `gorm:"size:20" json:"buyer_mobile"`
	Street          string `gorm:"size:255" json:"street"`
	City            string `gorm:"size:100" json:"city"`
	State           string `gorm:"size:100" json:"state"`
	Zipcode         string `gorm:"size:20" json:"zipcode"`
	ShippingCountry string `gorm:"size:100" json:"shipping_country"`

	// Product snapshot at placement time
	ProductName  string  `gorm:"size:255" json:"product_name"`
	ProductImage string  `json:"product_image"`
	ProductPrice float64 `json:"product_price"`

	Status OrderStatus `gorm:"size:20;not null" json:"status"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
