package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stubs
// ---------------------------------------------------------------------------

type stubProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
	listErr  error
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int64]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	r.nextID++
	created := *p
	created.ID = r.nextID
	r.products[created.ID] = &created
	clone := created
	return &clone, nil
}

func (r *stubProductRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Product, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []domain.Product{}
	for _, p := range r.products {
		if p.UserID == ownerID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Delete(_ context.Context, ownerID, productID int64) error {
	p, ok := r.products[productID]
	if !ok || p.UserID != ownerID {
		return domain.ErrProductNotFound
	}
	delete(r.products, productID)
	return nil
}

type stubCache struct {
	entries       map[int64][]domain.Product
	invalidations int
	getErr        error
}

func newStubCache() *stubCache {
	return &stubCache{entries: make(map[int64][]domain.Product)}
}

func (c *stubCache) Get(_ context.Context, ownerID int64) ([]domain.Product, bool, error) {
	if c.getErr != nil {
		return nil, false, c.getErr
	}
	products, ok := c.entries[ownerID]
	return products, ok, nil
}

func (c *stubCache) Set(_ context.Context, ownerID int64, products []domain.Product) error {
	c.entries[ownerID] = products
	return nil
}

func (c *stubCache) Invalidate(_ context.Context, ownerID int64) error {
	delete(c.entries, ownerID)
	c.invalidations++
	return nil
}

func TestCatalogService_Create_Validation(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), nil, zerolog.Nop())

	cases := []struct {
		name  string
		price float64
	}{
		{"", 1.0},
		{"Widget", -0.01},
		{"Widget", math.NaN()},
		{"Widget", math.Inf(1)},
	}
	for _, tc := range cases {
		if _, err := svc.Create(context.Background(), 1, tc.name, tc.price); !errors.Is(err, domain.ErrInvalidProduct) {
			t.Fatalf("Create(%q, %v): expected ErrInvalidProduct, got %v", tc.name, tc.price, err)
		}
	}
}

func TestCatalogService_Create_ZeroPriceAllowed(t *testing.T) {
	svc := NewCatalogService(newStubProductRepo(), nil, zerolog.Nop())

	product, err := svc.Create(context.Background(), 1, "Freebie", 0)
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if product.ID == 0 || product.Price != 0 {
		t.Fatalf("unexpected product: %+v", product)
	}
}

func TestCatalogService_List_OwnerScoped(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 1, "A's widget", 9.99); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), 2, "B's widget", 5); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	listA, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listA) != 1 || listA[0].Name != "A's widget" {
		t.Fatalf("owner 1 sees %+v", listA)
	}

	listB, err := svc.List(context.Background(), 2)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(listB) != 1 || listB[0].Name != "B's widget" {
		t.Fatalf("owner 2 sees %+v", listB)
	}
}

func TestCatalogService_List_CacheHit(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubCache()
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	cached := []domain.Product{{ID: 99, Name: "Cached", Price: 1}}
	cache.entries[1] = cached

	// Force a repo failure so a cache miss would be visible.
	repo.listErr = errors.New("repo should not be hit")

	got, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(got) != 1 || got[0].ID != 99 {
		t.Fatalf("expected cached products, got %+v", got)
	}
}

func TestCatalogService_List_CacheErrorFallsBack(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubCache()
	cache.getErr = errors.New("redis down")
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 1, "Widget", 2); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	got, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("cache failure must not surface, got %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected repository fallback, got %+v", got)
	}
}

func TestCatalogService_WritesInvalidateCache(t *testing.T) {
	repo := newStubProductRepo()
	cache := newStubCache()
	svc := NewCatalogService(repo, cache, zerolog.Nop())

	product, err := svc.Create(context.Background(), 1, "Widget", 2)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if cache.invalidations != 1 {
		t.Fatalf("expected 1 invalidation after create, got %d", cache.invalidations)
	}

	if err := svc.Delete(context.Background(), 1, product.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if cache.invalidations != 2 {
		t.Fatalf("expected 2 invalidations after delete, got %d", cache.invalidations)
	}
}

// Deleting a row that never existed and deleting another owner's row must
// be the same outcome.
func TestCatalogService_Delete_NotFoundIndistinguishable(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	other, err := svc.Create(context.Background(), 2, "Foreign", 3)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	missing := svc.Delete(context.Background(), 1, 12345)
	foreign := svc.Delete(context.Background(), 1, other.ID)

	if !errors.Is(missing, domain.ErrProductNotFound) {
		t.Fatalf("missing id: expected ErrProductNotFound, got %v", missing)
	}
	if !errors.Is(foreign, domain.ErrProductNotFound) {
		t.Fatalf("foreign id: expected ErrProductNotFound, got %v", foreign)
	}
}

func TestCatalogService_Delete_SecondDeleteIsNotFound(t *testing.T) {
	repo := newStubProductRepo()
	svc := NewCatalogService(repo, nil, zerolog.Nop())

	product, err := svc.Create(context.Background(), 1, "Widget", 2)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.Delete(context.Background(), 1, product.ID); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	if err := svc.Delete(context.Background(), 1, product.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("second delete: expected ErrProductNotFound, got %v", err)
	}
}
