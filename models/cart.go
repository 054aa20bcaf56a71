package models

import "time"

// CartItem is a line item inside a cart snapshot. Price and quantity are
// stored as sent; the service does not validate them.
type CartItem struct {
	ProductName string  `json:"product_name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
}

// Cart is the single cart document per user. Every sync replaces the whole
// item list; items carry no identity across syncs.
type Cart struct {
	UserID    string     `json:"user_id" gorm:"primaryKey"`
	Items     []CartItem `json:"items" gorm:"serializer:json"`
	UpdatedAt time.Time  `json:"updated_at"`
}
