package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/streetcart/cart-engine/internal/cart"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
	"github.com/streetcart/cart-engine/pkg/logger"
)

// Synchronizer loads the initial cart from durable storage and mirrors every
// subsequent mutation back to it. It implements cart.Sink.
type Synchronizer struct {
	store Storage
	logg  *logger.Logger
}

// NewSynchronizer builds a synchronizer over the chosen backend.
func NewSynchronizer(store Storage, logg *logger.Logger) (*Synchronizer, error) {
	if store == nil {
		return nil, fmt.Errorf("storage backend required")
	}
	return &Synchronizer{store: store, logg: logg}, nil
}

// Seed restores the cart from storage. Missing, unreadable, or structurally
// invalid snapshots all recover to an empty cart; Seed never fails.
func (s *Synchronizer) Seed(ctx context.Context) *cart.Cart {
	raw, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &cart.Cart{}
		}
		if s.logg != nil {
			s.logg.Warn(ctx, "snapshot unreadable, starting empty: "+err.Error())
		}
		return &cart.Cart{}
	}

	snap, err := cart.DecodeSnapshot(raw)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "snapshot corrupt, starting empty: "+err.Error())
		}
		return &cart.Cart{}
	}

	restored, err := cart.FromSnapshot(snap)
	if err != nil {
		if s.logg != nil {
			s.logg.Warn(ctx, "snapshot rejected, starting empty: "+err.Error())
		}
		return &cart.Cart{}
	}
	return restored
}

// Persist overwrites the stored snapshot with the cart's current state.
func (s *Synchronizer) Persist(ctx context.Context, snap cart.Snapshot) error {
	raw, err := snap.Encode()
	if err != nil {
		return err
	}
	if err := s.store.Save(ctx, raw); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "persist snapshot")
	}
	return nil
}

// Erase removes the stored snapshot entirely.
func (s *Synchronizer) Erase(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "erase snapshot")
	}
	return nil
}
