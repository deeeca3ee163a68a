package handler

import "time"

// --- Request types ---

// createSweetRequest binds the multipart form fields of POST /api/sweets.
// Price and Quantity are pointers so that an absent field is distinguishable
// from an explicit zero.
type createSweetRequest struct {
	Name     string   `form:"name"     validate:"required"`
	Category string   `form:"category" validate:"required"`
	Price    *float64 `form:"price"    validate:"required,gte=0"`
	Quantity *int64   `form:"quantity" validate:"required,gte=0"`
	Image    string   `form:"image"` // external URL, used when no file is uploaded
}

// updateSweetRequest binds the multipart form fields of PUT /api/sweets/:id.
// Every field is optional; only supplied fields are written.
type updateSweetRequest struct {
	Name     *string  `form:"name"`
	Category *string  `form:"category"`
	Price    *float64 `form:"price"    validate:"omitempty,gte=0"`
	Quantity *int64   `form:"quantity" validate:"omitempty,gte=0"`
	Image    *string  `form:"image"`
}

type purchaseRequest struct {
	// Quantity defaults to 1 when omitted.
	Quantity *int64 `json:"quantity" validate:"omitempty,gte=1"`
}

type restockRequest struct {
	// Quantity is validated by the service after the lookup so that a missing
	// sweet reports 404 ahead of a bad quantity.
	Quantity int64 `json:"quantity"`
}

// --- Response types ---
// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type sweetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
