package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CreateSweetInput carries all data needed to create a new sweet.
// ImageRef is the stored path of an uploaded image, or empty.
type CreateSweetInput struct {
	Name     string
	Category string
	Price    float64
	Quantity int64
	ImageRef string
}

// UpdateSweetInput carries a partial update. Nil fields are left untouched.
type UpdateSweetInput struct {
	Name     *string
	Category *string
	Price    *float64
	Quantity *int64
	ImageRef *string
}

// SweetService defines use-case operations for the inventory.
type SweetService interface {
	List(ctx context.Context) ([]*domain.Sweet, error)
	Create(ctx context.Context, input CreateSweetInput) (*domain.Sweet, error)
	Update(ctx context.Context, id string, input UpdateSweetInput) (*domain.Sweet, error)
	Delete(ctx context.Context, id string) error
	// Purchase decrements stock by quantity (>= 1), bounded at zero.
	Purchase(ctx context.Context, id string, quantity int64) (*domain.Sweet, error)
	// Restock increments stock by quantity (>= 1).
	Restock(ctx context.Context, id string, quantity int64) (*domain.Sweet, error)
}
