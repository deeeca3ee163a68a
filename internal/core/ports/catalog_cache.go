package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// CatalogCache caches the full sweet listing. Implementations are expected
// to be best-effort: a cache failure must never fail the request.
type CatalogCache interface {
	// Get returns the cached listing, or (nil, false) on a miss.
	Get(ctx context.Context) ([]*domain.Sweet, bool)
	Set(ctx context.Context, sweets []*domain.Sweet)
	// Invalidate drops the cached listing. Called after every mutation.
	Invalidate(ctx context.Context)
}
