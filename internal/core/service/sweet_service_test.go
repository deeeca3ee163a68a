package service

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweetshop/inventory-system/internal/core/domain"
	"github.com/sweetshop/inventory-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubSweetRepo struct {
	sweets map[string]*domain.Sweet
	nextID int
}

func newStubSweetRepo() *stubSweetRepo {
	return &stubSweetRepo{sweets: make(map[string]*domain.Sweet)}
}

func (r *stubSweetRepo) seed(s domain.Sweet) string {
	r.nextID++
	id := "sweet_" + strconv.Itoa(r.nextID)
	s.ID = id
	r.sweets[id] = &s
	return id
}

func (r *stubSweetRepo) Create(_ context.Context, s *domain.Sweet) (*domain.Sweet, error) {
	clone := *s
	r.nextID++
	clone.ID = "sweet_" + strconv.Itoa(r.nextID)
	r.sweets[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubSweetRepo) FindByID(_ context.Context, id string) (*domain.Sweet, error) {
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSweetRepo) List(_ context.Context) ([]*domain.Sweet, error) {
	out := make([]*domain.Sweet, 0, len(r.sweets))
	for _, s := range r.sweets {
		clone := *s
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubSweetRepo) Update(_ context.Context, id string, update ports.SweetUpdate) (*domain.Sweet, error) {
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	if update.Name != nil {
		s.Name = *update.Name
	}
	if update.Category != nil {
		s.Category = *update.Category
	}
	if update.Price != nil {
		s.Price = *update.Price
	}
	if update.Quantity != nil {
		s.Quantity = *update.Quantity
	}
	if update.Image != nil {
		s.Image = *update.Image
	}
	s.UpdatedAt = time.Now().UTC()
	clone := *s
	return &clone, nil
}

func (r *stubSweetRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.sweets[id]; !ok {
		return domain.ErrSweetNotFound
	}
	delete(r.sweets, id)
	return nil
}

// DecrementQuantity mirrors the real Mongo conditional update: the decrement
// only applies when the current quantity covers the request.
func (r *stubSweetRepo) DecrementQuantity(_ context.Context, id string, n int64) (*domain.Sweet, error) {
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	if s.Quantity < n {
		return nil, domain.ErrInsufficientStock
	}
	s.Quantity -= n
	clone := *s
	return &clone, nil
}

func (r *stubSweetRepo) IncrementQuantity(_ context.Context, id string, n int64) (*domain.Sweet, error) {
	s, ok := r.sweets[id]
	if !ok {
		return nil, domain.ErrSweetNotFound
	}
	s.Quantity += n
	clone := *s
	return &clone, nil
}

// countingCache records cache traffic for assertions.
type countingCache struct {
	cached      []*domain.Sweet
	gets        int
	sets        int
	invalidates int
}

func (c *countingCache) Get(_ context.Context) ([]*domain.Sweet, bool) {
	c.gets++
	if c.cached == nil {
		return nil, false
	}
	return c.cached, true
}

func (c *countingCache) Set(_ context.Context, sweets []*domain.Sweet) {
	c.sets++
	c.cached = sweets
}

func (c *countingCache) Invalidate(_ context.Context) {
	c.invalidates++
	c.cached = nil
}

func newSweetService(repo ports.SweetRepository, cache ports.CatalogCache) *SweetService {
	return NewSweetService(repo, cache, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Create / Update / Delete
// ---------------------------------------------------------------------------

func TestSweetService_Create_Success(t *testing.T) {
	repo := newStubSweetRepo()
	svc := newSweetService(repo, nil)

	sweet, err := svc.Create(context.Background(), ports.CreateSweetInput{
		Name:     "Gulab Jamun",
		Category: "indian",
		Price:    2.5,
		Quantity: 10,
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if sweet.ID == "" {
		t.Fatalf("expected generated id")
	}
	if sweet.Image != "" {
		t.Fatalf("expected empty image default, got %q", sweet.Image)
	}

	// Round-trip: the stored record carries identical field values.
	stored, err := repo.FindByID(context.Background(), sweet.ID)
	if err != nil {
		t.Fatalf("FindByID failed: %v", err)
	}
	if stored.Name != "Gulab Jamun" || stored.Category != "indian" || stored.Price != 2.5 || stored.Quantity != 10 {
		t.Fatalf("stored record differs: %+v", stored)
	}
}

func TestSweetService_Create_Validation(t *testing.T) {
	repo := newStubSweetRepo()
	svc := newSweetService(repo, nil)

	if _, err := svc.Create(context.Background(), ports.CreateSweetInput{Category: "c", Price: 1, Quantity: 1}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateSweetInput{Name: "n", Price: 1, Quantity: 1}); err != domain.ErrMissingFields {
		t.Fatalf("expected ErrMissingFields for missing category, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateSweetInput{Name: "n", Category: "c", Price: -1, Quantity: 1}); err != domain.ErrInvalidPrice {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateSweetInput{Name: "n", Category: "c", Price: 1, Quantity: -1}); err != domain.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSweetService_Update_Partial(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Fudge", Category: "chocolate", Price: 3, Quantity: 4})
	svc := newSweetService(repo, nil)

	price := 3.5
	updated, err := svc.Update(context.Background(), id, ports.UpdateSweetInput{Price: &price})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Price != 3.5 {
		t.Fatalf("price not updated: %v", updated.Price)
	}
	if updated.Name != "Fudge" || updated.Quantity != 4 {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestSweetService_Update_NotFound(t *testing.T) {
	svc := newSweetService(newStubSweetRepo(), nil)

	name := "x"
	if _, err := svc.Update(context.Background(), "missing", ports.UpdateSweetInput{Name: &name}); err != domain.ErrSweetNotFound {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestSweetService_Delete_Twice(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Toffee", Category: "caramel", Price: 1, Quantity: 1})
	svc := newSweetService(repo, nil)

	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), id); err != domain.ErrSweetNotFound {
		t.Fatalf("expected ErrSweetNotFound on second delete, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Purchase / Restock
// ---------------------------------------------------------------------------

func TestSweetService_Purchase_Decrements(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Laddu", Category: "indian", Price: 1, Quantity: 5})
	svc := newSweetService(repo, nil)

	sweet, err := svc.Purchase(context.Background(), id, 3)
	if err != nil {
		t.Fatalf("Purchase returned error: %v", err)
	}
	if sweet.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", sweet.Quantity)
	}

	// Repeat on the result: 2 < 3 fails with insufficient stock and leaves
	// the quantity unchanged (no partial decrement).
	if _, err := svc.Purchase(context.Background(), id, 3); err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	stored, _ := repo.FindByID(context.Background(), id)
	if stored.Quantity != 2 {
		t.Fatalf("quantity changed on failed purchase: %d", stored.Quantity)
	}
}

// A zero-quantity sweet reports insufficient stock for any request of one or
// more units: the insufficient check runs before the out-of-stock check.
func TestSweetService_Purchase_ZeroStockOrdering(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Barfi", Category: "indian", Price: 1, Quantity: 0})
	svc := newSweetService(repo, nil)

	if _, err := svc.Purchase(context.Background(), id, 1); err != domain.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestSweetService_Purchase_NotFound(t *testing.T) {
	svc := newSweetService(newStubSweetRepo(), nil)

	if _, err := svc.Purchase(context.Background(), "missing", 1); err != domain.ErrSweetNotFound {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

func TestSweetService_Purchase_InvalidQuantity(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Halwa", Category: "indian", Price: 1, Quantity: 5})
	svc := newSweetService(repo, nil)

	if _, err := svc.Purchase(context.Background(), id, 0); err != domain.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for 0, got %v", err)
	}
	if _, err := svc.Purchase(context.Background(), id, -2); err != domain.ErrInvalidQuantity {
		t.Fatalf("expected ErrInvalidQuantity for -2, got %v", err)
	}
}

func TestSweetService_Restock_Increments(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Jalebi", Category: "indian", Price: 1, Quantity: 0})
	svc := newSweetService(repo, nil)

	sweet, err := svc.Restock(context.Background(), id, 10)
	if err != nil {
		t.Fatalf("Restock returned error: %v", err)
	}
	if sweet.Quantity != 10 {
		t.Fatalf("expected quantity 10, got %d", sweet.Quantity)
	}
}

func TestSweetService_Restock_InvalidQuantity(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Peda", Category: "indian", Price: 1, Quantity: 3})
	svc := newSweetService(repo, nil)

	for _, n := range []int64{0, -5} {
		if _, err := svc.Restock(context.Background(), id, n); err != domain.ErrInvalidQuantity {
			t.Fatalf("expected ErrInvalidQuantity for %d, got %v", n, err)
		}
	}
	stored, _ := repo.FindByID(context.Background(), id)
	if stored.Quantity != 3 {
		t.Fatalf("quantity changed on failed restock: %d", stored.Quantity)
	}
}

// Absence wins over an invalid quantity.
func TestSweetService_Restock_NotFoundBeforeValidation(t *testing.T) {
	svc := newSweetService(newStubSweetRepo(), nil)

	if _, err := svc.Restock(context.Background(), "missing", 0); err != domain.ErrSweetNotFound {
		t.Fatalf("expected ErrSweetNotFound, got %v", err)
	}
}

// ---------------------------------------------------------------------------
// Catalog cache
// ---------------------------------------------------------------------------

func TestSweetService_List_PopulatesAndServesCache(t *testing.T) {
	repo := newStubSweetRepo()
	repo.seed(domain.Sweet{Name: "Nougat", Category: "french", Price: 2, Quantity: 7})
	cache := &countingCache{}
	svc := newSweetService(repo, cache)

	first, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(first) != 1 {
		t.Fatalf("expected 1 sweet, got %d", len(first))
	}
	if cache.sets != 1 {
		t.Fatalf("expected cache to be populated once, sets=%d", cache.sets)
	}

	// Second call is served from the cache.
	if _, err := svc.List(context.Background()); err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if cache.gets != 2 || cache.sets != 1 {
		t.Fatalf("expected cache hit on second list: gets=%d sets=%d", cache.gets, cache.sets)
	}
}

func TestSweetService_MutationsInvalidateCache(t *testing.T) {
	repo := newStubSweetRepo()
	id := repo.seed(domain.Sweet{Name: "Caramel", Category: "caramel", Price: 1, Quantity: 9})
	cache := &countingCache{}
	svc := newSweetService(repo, cache)

	if _, err := svc.Purchase(context.Background(), id, 1); err != nil {
		t.Fatalf("purchase failed: %v", err)
	}
	if _, err := svc.Restock(context.Background(), id, 2); err != nil {
		t.Fatalf("restock failed: %v", err)
	}
	if err := svc.Delete(context.Background(), id); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if cache.invalidates != 3 {
		t.Fatalf("expected 3 invalidations, got %d", cache.invalidates)
	}
}
