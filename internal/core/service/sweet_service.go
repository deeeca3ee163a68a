package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/api/metrics"
	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// SweetService implements the inventory use cases. All stock arithmetic is
// delegated to the repository's atomic conditional updates; the service owns
// validation, failure classification and cache invalidation.
type SweetService struct {
	repo   ports.SweetRepository
	cache  ports.CatalogCache
	logger zerolog.Logger
}

func NewSweetService(repo ports.SweetRepository, cache ports.CatalogCache, logger zerolog.Logger) *SweetService {
	return &SweetService{repo: repo, cache: cache, logger: logger}
}

// List returns every sweet, unfiltered. Filtering is a client concern.
func (s *SweetService) List(ctx context.Context) ([]*domain.Sweet, error) {
	if s.cache != nil {
		if sweets, ok := s.cache.Get(ctx); ok {
			metrics.CatalogCacheTotal.WithLabelValues("hit").Inc()
			return sweets, nil
		}
		metrics.CatalogCacheTotal.WithLabelValues("miss").Inc()
	}

	sweets, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, sweets)
	}
	return sweets, nil
}

// Create persists a new sweet. Each call creates a distinct record.
func (s *SweetService) Create(ctx context.Context, input ports.CreateSweetInput) (*domain.Sweet, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domain.ErrMissingFields
	}
	if input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	now := time.Now().UTC()
	sweet := &domain.Sweet{
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Quantity:  input.Quantity,
		Image:     input.ImageRef,
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repo.Create(ctx, sweet)
	if err != nil {
		s.logger.Error().Err(err).Str("name", input.Name).Msg("failed to create sweet")
		return nil, err
	}

	s.invalidate(ctx)
	metrics.SweetsCreatedTotal.WithLabelValues(created.Category).Inc()
	s.logger.Info().Str("sweet_id", created.ID).Str("name", created.Name).Msg("sweet created")
	return created, nil
}

// Update overwrites only the supplied fields.
func (s *SweetService) Update(ctx context.Context, id string, input ports.UpdateSweetInput) (*domain.Sweet, error) {
	if input.Price != nil && *input.Price < 0 {
		return nil, domain.ErrInvalidPrice
	}
	if input.Quantity != nil && *input.Quantity < 0 {
		return nil, domain.ErrInvalidQuantity
	}

	updated, err := s.repo.Update(ctx, id, ports.SweetUpdate{
		Name:     input.Name,
		Category: input.Category,
		Price:    input.Price,
		Quantity: input.Quantity,
		Image:    input.ImageRef,
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return updated, nil
}

// Delete removes a sweet permanently. No tombstone is kept.
func (s *SweetService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

// Purchase decrements stock by quantity. The repository applies the decrement
// as an atomic "only if current >= quantity" update, so concurrent purchases
// can never drive stock negative. On a failed guard the current document is
// re-read to classify the failure: insufficient stock is checked before out
// of stock.
func (s *SweetService) Purchase(ctx context.Context, id string, quantity int64) (*domain.Sweet, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	sweet, err := s.repo.DecrementQuantity(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			reason, cerr := s.classifyStockFailure(ctx, id, quantity)
			if cerr != nil {
				return nil, cerr
			}
			metrics.StockConflictsTotal.WithLabelValues(reason).Inc()
			if reason == "out_of_stock" {
				return nil, domain.ErrOutOfStock
			}
			return nil, domain.ErrInsufficientStock
		}
		return nil, err
	}

	s.invalidate(ctx)
	metrics.PurchasesTotal.WithLabelValues(sweet.Category).Inc()
	s.logger.Info().
		Str("sweet_id", sweet.ID).
		Int64("quantity", quantity).
		Int64("remaining", sweet.Quantity).
		Msg("sweet purchased")
	return sweet, nil
}

// classifyStockFailure decides which stock error a failed purchase reports.
// Insufficient stock is deliberately checked before out of stock, so for any
// request of one or more units a zero-quantity sweet reports insufficient
// stock. The out-of-stock branch only fires for the residual cases.
func (s *SweetService) classifyStockFailure(ctx context.Context, id string, quantity int64) (string, error) {
	sweet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if sweet.Quantity < quantity {
		return "insufficient_stock", nil
	}
	if sweet.Quantity <= 0 {
		return "out_of_stock", nil
	}
	// The guard failed but stock now suffices: another caller restocked in
	// between. Report insufficient stock rather than retrying.
	return "insufficient_stock", nil
}

// Restock increments stock by quantity. Absence is reported before an
// invalid quantity: a missing sweet is 404 even when the quantity is bad.
func (s *SweetService) Restock(ctx context.Context, id string, quantity int64) (*domain.Sweet, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	sweet, err := s.repo.IncrementQuantity(ctx, id, quantity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	metrics.RestocksTotal.WithLabelValues(sweet.Category).Inc()
	s.logger.Info().
		Str("sweet_id", sweet.ID).
		Int64("quantity", quantity).
		Int64("total", sweet.Quantity).
		Msg("sweet restocked")
	return sweet, nil
}

func (s *SweetService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
