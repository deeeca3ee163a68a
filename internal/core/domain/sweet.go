package domain

import (
	"errors"
	"time"
)

var ErrSweetNotFound = errors.New("sweet not found")
var ErrInsufficientStock = errors.New("insufficient stock")
var ErrOutOfStock = errors.New("out of stock")
var ErrInvalidQuantity = errors.New("valid quantity is required")
var ErrInvalidPrice = errors.New("price must be zero or greater")

// ErrStoreUnavailable signals that the backing store could not be reached.
// Repositories reclassify driver connection failures into this error so
// callers never have to inspect driver internals.
var ErrStoreUnavailable = errors.New("store unavailable")

// Sweet is an inventory item. Quantity is the available stock and is never
// allowed to go negative: a purchase that would drive it below zero is
// rejected, not clamped.
type Sweet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
