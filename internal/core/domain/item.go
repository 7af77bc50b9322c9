package domain

import (
	"errors"
	"time"
)

var (
	ErrItemNotFound    = errors.New("item not found")
	ErrItemExists      = errors.New("item already exists")
	ErrInvalidQuantity = errors.New("quantity cannot be negative")
)

// Item is a single stock-keeping unit tracked by the inventory.
type Item struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	SKU         string    `json:"sku" bson:"sku"`
	Name        string    `json:"name" bson:"name"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	Quantity    int64     `json:"quantity" bson:"quantity"`
	UnitPrice   float64   `json:"unit_price" bson:"unit_price"`
	Currency    string    `json:"currency" bson:"currency"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
