package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// SweetUpdate carries the fields of a partial update. Nil pointers mean
// "leave untouched"; only supplied fields are written.
type SweetUpdate struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
	Image    *string
}

// IsEmpty reports whether the update would change nothing.
func (u SweetUpdate) IsEmpty() bool {
	return u.Name == nil && u.Category == nil && u.Price == nil && u.Quantity == nil && u.Image == nil
}

// SweetRepository defines persistence operations for sweets.
type SweetRepository interface {
	Create(ctx context.Context, s *domain.Sweet) (*domain.Sweet, error)
	FindByID(ctx context.Context, id string) (*domain.Sweet, error)
	List(ctx context.Context) ([]*domain.Sweet, error)
	// Update applies a partial update and returns the resulting document.
	// Returns domain.ErrSweetNotFound when id does not resolve.
	Update(ctx context.Context, id string, update SweetUpdate) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	// DecrementQuantity atomically subtracts n from the stock, but only when
	// the current quantity is at least n ("decrement only if current >= n").
	// Returns domain.ErrInsufficientStock when the guard fails and
	// domain.ErrSweetNotFound when id does not resolve.
	DecrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error)
	// IncrementQuantity atomically adds n to the stock.
	IncrementQuantity(ctx context.Context, id string, n int64) (*domain.Sweet, error)
}
