package checkout

import (
	"context"
	"fmt"

	"github.com/streetcart/cart-engine/internal/cart"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
	"github.com/streetcart/cart-engine/pkg/logger"
)

type cartStore interface {
	Snapshot() cart.Snapshot
	Clear(ctx context.Context)
}

type pricingClient interface {
	Quote(ctx context.Context, snap cart.Snapshot) (*Quote, error)
}

// Service reconciles the cart against the external pricing authority.
type Service interface {
	Quote(ctx context.Context) (*Quote, error)
	Confirm(ctx context.Context) error
}

type service struct {
	store   cartStore
	pricing pricingClient
	logg    *logger.Logger
}

// NewService builds the checkout reconciliation service.
func NewService(store cartStore, pricing pricingClient, logg *logger.Logger) (Service, error) {
	if store == nil {
		return nil, fmt.Errorf("cart store required")
	}
	if pricing == nil {
		return nil, fmt.Errorf("pricing client required")
	}
	return &service{store: store, pricing: pricing, logg: logg}, nil
}

// Quote snapshots the cart and asks the authority to price it. On failure the
// cart is left untouched so the user can retry.
func (s *service) Quote(ctx context.Context) (*Quote, error) {
	snap := s.store.Snapshot()
	if len(snap.Cart) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	quote, err := s.pricing.Quote(ctx, snap)
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "checkout.quote_failed", err)
		}
		return nil, err
	}
	return quote, nil
}

// Confirm is invoked once payment success is signaled externally; it clears
// the cart, which also erases the persisted snapshot.
func (s *service) Confirm(ctx context.Context) error {
	snap := s.store.Snapshot()
	if len(snap.Cart) == 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "cart is already empty")
	}
	s.store.Clear(ctx)
	if s.logg != nil {
		s.logg.Info(ctx, "checkout.confirmed")
	}
	return nil
}
