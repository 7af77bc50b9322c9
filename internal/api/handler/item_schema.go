package handler

import "time"

// --- Request / Response types ---

type createItemRequest struct {
	SKU         string  `json:"sku"         validate:"required"`
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"    validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price"  validate:"required,gt=0"`
	Currency    string  `json:"currency"    validate:"required,len=3"`
}

type updateItemRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description"`
	Quantity    int64   `json:"quantity"    validate:"gte=0"`
	UnitPrice   float64 `json:"unit_price"  validate:"required,gt=0"`
	Currency    string  `json:"currency"    validate:"required,len=3"`
}

// itemResponse is the transport view of an item. Intentionally separate from
// the domain type so the JSON contract is not coupled to internal changes.
type itemResponse struct {
	ID          string    `json:"id"`
	SKU         string    `json:"sku"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Quantity    int64     `json:"quantity"`
	UnitPrice   float64   `json:"unit_price"`
	Currency    string    `json:"currency"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listItemsResponse struct {
	Data       []itemResponse     `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}
