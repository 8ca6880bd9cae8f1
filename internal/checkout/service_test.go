package checkout

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/streetcart/cart-engine/internal/cart"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
)

func TestServiceQuoteEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, cart.NewStore(cart.StoreOptions{}), &stubPricing{})

	_, err := svc.Quote(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error for empty cart, got %v", err)
	}
}

func TestServiceQuoteSuccess(t *testing.T) {
	t.Parallel()

	store := cart.NewStore(cart.StoreOptions{})
	if err := store.AddItem(context.Background(), "v1", "p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	pricing := &stubPricing{quote: &Quote{TotalPayable: decimal.NewFromInt(90)}}
	svc := newTestService(t, store, pricing)

	quote, err := svc.Quote(context.Background())
	if err != nil {
		t.Fatalf("quote failed: %v", err)
	}
	if !quote.TotalPayable.Equal(decimal.NewFromInt(90)) {
		t.Fatalf("unexpected total payable %s", quote.TotalPayable)
	}
	if len(pricing.snapshots) != 1 || pricing.snapshots[0].Cart[0].Vendor != "v1" {
		t.Fatalf("pricing client should receive the cart snapshot, got %+v", pricing.snapshots)
	}
}

func TestServiceQuoteFailureLeavesCartUntouched(t *testing.T) {
	t.Parallel()

	store := cart.NewStore(cart.StoreOptions{})
	if err := store.AddItem(context.Background(), "v1", "p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	pricing := &stubPricing{err: pkgerrors.New(pkgerrors.CodePricing, "authority down")}
	svc := newTestService(t, store, pricing)

	_, err := svc.Quote(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodePricing {
		t.Fatalf("expected pricing error, got %v", err)
	}
	if got := store.Quantity("v1", "p1"); got != 2 {
		t.Fatalf("failed quote must preserve the cart for retry, got quantity %d", got)
	}
}

func TestServiceConfirmClearsCartOnce(t *testing.T) {
	t.Parallel()

	store := cart.NewStore(cart.StoreOptions{})
	if err := store.AddItem(context.Background(), "v1", "p1", 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	svc := newTestService(t, store, &stubPricing{})

	if err := svc.Confirm(context.Background()); err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if got := store.Totals(); got.TotalItems != 0 || got.TotalVendors != 0 {
		t.Fatalf("confirm must clear the cart, got %+v", got)
	}

	// A second confirmation has no cart to settle.
	err := svc.Confirm(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error on repeat confirm, got %v", err)
	}
}

func TestNewServiceValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewService(nil, &stubPricing{}, nil); err == nil {
		t.Fatal("expected error for nil store")
	}
	if _, err := NewService(cart.NewStore(cart.StoreOptions{}), nil, nil); err == nil {
		t.Fatal("expected error for nil pricing client")
	}
}

func newTestService(t *testing.T, store cartStore, pricing pricingClient) Service {
	t.Helper()
	svc, err := NewService(store, pricing, nil)
	if err != nil {
		t.Fatalf("new service failed: %v", err)
	}
	return svc
}

type stubPricing struct {
	quote     *Quote
	err       error
	snapshots []cart.Snapshot
}

func (s *stubPricing) Quote(ctx context.Context, snap cart.Snapshot) (*Quote, error) {
	s.snapshots = append(s.snapshots, snap)
	if s.err != nil {
		return nil, s.err
	}
	if s.quote != nil {
		return s.quote, nil
	}
	return &Quote{}, nil
}
