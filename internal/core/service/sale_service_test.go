package service

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/domain"
	"github.com/Sgarrido33/devsecops-pos-pipeline/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repository
// ---------------------------------------------------------------------------

type stubSaleRepo struct {
	sales     []domain.Sale
	itemCount int
	nextID    int64
	createErr error
}

func (r *stubSaleRepo) Create(_ context.Context, sale *domain.Sale) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	sale.ID = r.nextID
	for i := range sale.Items {
		sale.Items[i].SaleID = sale.ID
	}
	r.sales = append(r.sales, *sale)
	r.itemCount += len(sale.Items)
	return nil
}

func (r *stubSaleRepo) ListByOwner(_ context.Context, ownerID int64) ([]domain.Sale, error) {
	out := []domain.Sale{}
	// Newest-first, like the real repository's ORDER BY created_at DESC.
	for i := len(r.sales) - 1; i >= 0; i-- {
		if r.sales[i].UserID == ownerID {
			out = append(out, r.sales[i])
		}
	}
	return out, nil
}

func TestSaleService_Create_TotalIsSumOfLines(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := NewSaleService(repo, zerolog.Nop())

	sale, err := svc.Create(context.Background(), 1, []ports.CartItemInput{
		{Name: "Widget", Price: 9.99, Quantity: 2},
		{Name: "Gadget", Price: 5, Quantity: 3},
		{Name: "Freebie", Price: 0, Quantity: 1},
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	want := 9.99*2 + 5*3
	if math.Abs(sale.Total-want) > 1e-9 {
		t.Fatalf("total = %v, want %v", sale.Total, want)
	}
	if sale.ID == 0 {
		t.Fatalf("expected server-assigned id")
	}
	if sale.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp")
	}
	if len(sale.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(sale.Items))
	}
	if sale.Items[0].ProductName != "Widget" || sale.Items[0].Quantity != 2 {
		t.Fatalf("unexpected first item: %+v", sale.Items[0])
	}
}

func TestSaleService_Create_EmptyCart(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := NewSaleService(repo, zerolog.Nop())

	for _, cart := range [][]ports.CartItemInput{nil, {}} {
		if _, err := svc.Create(context.Background(), 1, cart); !errors.Is(err, domain.ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	}

	// Nothing may be persisted on rejection.
	if len(repo.sales) != 0 || repo.itemCount != 0 {
		t.Fatalf("expected zero persisted rows, got %d sales / %d items", len(repo.sales), repo.itemCount)
	}
}

func TestSaleService_Create_InvalidItems(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := NewSaleService(repo, zerolog.Nop())

	cases := []ports.CartItemInput{
		{Name: "", Price: 1, Quantity: 1},
		{Name: "Widget", Price: -1, Quantity: 1},
		{Name: "Widget", Price: math.NaN(), Quantity: 1},
		{Name: "Widget", Price: math.Inf(1), Quantity: 1},
		{Name: "Widget", Price: 1, Quantity: 0},
		{Name: "Widget", Price: 1, Quantity: -2},
	}
	for _, bad := range cases {
		cart := []ports.CartItemInput{
			{Name: "Good", Price: 2, Quantity: 1},
			bad,
		}
		if _, err := svc.Create(context.Background(), 1, cart); !errors.Is(err, domain.ErrInvalidItem) {
			t.Fatalf("item %+v: expected ErrInvalidItem, got %v", bad, err)
		}
	}

	if len(repo.sales) != 0 || repo.itemCount != 0 {
		t.Fatalf("expected zero persisted rows, got %d sales / %d items", len(repo.sales), repo.itemCount)
	}
}

func TestSaleService_Create_RepositoryErrorPropagates(t *testing.T) {
	repoErr := errors.New("storage down")
	repo := &stubSaleRepo{createErr: repoErr}
	svc := NewSaleService(repo, zerolog.Nop())

	_, err := svc.Create(context.Background(), 1, []ports.CartItemInput{
		{Name: "Widget", Price: 1, Quantity: 1},
	})
	if !errors.Is(err, repoErr) {
		t.Fatalf("expected storage error to propagate, got %v", err)
	}
}

func TestSaleService_List_OwnerScopedNewestFirst(t *testing.T) {
	repo := &stubSaleRepo{}
	svc := NewSaleService(repo, zerolog.Nop())

	if _, err := svc.Create(context.Background(), 1, []ports.CartItemInput{{Name: "First", Price: 1, Quantity: 1}}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), 2, []ports.CartItemInput{{Name: "Other", Price: 1, Quantity: 1}}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(context.Background(), 1, []ports.CartItemInput{{Name: "Second", Price: 1, Quantity: 1}}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	sales, err := svc.List(context.Background(), 1)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(sales) != 2 {
		t.Fatalf("expected 2 sales for owner 1, got %d", len(sales))
	}
	if sales[0].Items[0].ProductName != "Second" || sales[1].Items[0].ProductName != "First" {
		t.Fatalf("expected newest-first ordering, got %+v", sales)
	}
}
