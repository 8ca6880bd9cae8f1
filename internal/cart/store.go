package cart

import (
	"context"
	"sync"

	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
	"github.com/streetcart/cart-engine/pkg/logger"
	"github.com/streetcart/cart-engine/pkg/metrics"
)

// Mutation labels reported to metrics.
const (
	OpAddItem     = "add_item"
	OpSetQuantity = "set_quantity"
	OpRemoveItem  = "remove_item"
	OpClear       = "clear"
)

// Sink mirrors each successful mutation into durable storage. Implementations
// must treat Persist as a full overwrite of the previous snapshot.
type Sink interface {
	Persist(ctx context.Context, snap Snapshot) error
	Erase(ctx context.Context) error
}

// Store owns the cart aggregate and provides its only mutation path. All
// operations are atomic: readers never observe a half-applied mutation.
type Store struct {
	mu      sync.Mutex
	cart    Cart
	sink    Sink
	logg    *logger.Logger
	metrics *metrics.CartMetrics
}

// StoreOptions configures a Store. Every field is optional; a zero options
// value yields an empty, non-persisting store (useful in tests).
type StoreOptions struct {
	Seed    *Cart
	Sink    Sink
	Logger  *logger.Logger
	Metrics *metrics.CartMetrics
}

// NewStore builds the shared cart store, seeded from restored state when given.
func NewStore(opts StoreOptions) *Store {
	s := &Store{
		sink:    opts.Sink,
		logg:    opts.Logger,
		metrics: opts.Metrics,
	}
	if opts.Seed != nil {
		s.cart = *opts.Seed
	}
	return s
}

// AddItem merges quantity onto an existing line or inserts a new one, creating
// the vendor basket on demand. Repeated adds accumulate.
func (s *Store) AddItem(ctx context.Context, vendorID, productID string, quantity int) error {
	if vendorID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "vendor id is required")
	}
	if productID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least one")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.add(vendorID, productID, quantity)
	s.persistLocked(ctx, OpAddItem)
	return nil
}

// SetQuantity overwrites a line's quantity. Below one it removes the line;
// absent pairs are a no-op.
func (s *Store) SetQuantity(ctx context.Context, vendorID, productID string, quantity int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.setQuantity(vendorID, productID, quantity)
	s.persistLocked(ctx, OpSetQuantity)
}

// RemoveItem drops the matching line and collapses an emptied basket. Absent
// pairs are a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, vendorID, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.remove(vendorID, productID)
	s.persistLocked(ctx, OpRemoveItem)
}

// Clear resets the cart and erases the persisted snapshot unconditionally.
// Invoked on explicit cart-clear and on logout.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = Cart{}
	s.metrics.IncMutation(OpClear)
	s.metrics.SetSnapshotItems(0)
	if s.sink == nil {
		return
	}
	if err := s.sink.Erase(ctx); err != nil {
		s.metrics.IncStorageError(OpClear)
		if s.logg != nil {
			s.logg.Error(ctx, "cart.erase_failed", err)
		}
	}
}

// Snapshot returns the current persisted-form view of the cart.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Snapshot()
}

// persistLocked mirrors the mutated cart to the sink. Write failures are
// logged and swallowed; the in-memory cart stays the session's source of
// truth. Callers hold s.mu so snapshot writes land in mutation order.
func (s *Store) persistLocked(ctx context.Context, op string) {
	s.metrics.IncMutation(op)
	snap := s.cart.Snapshot()
	s.metrics.SetSnapshotItems(snap.TotalItems())
	if s.sink == nil {
		return
	}
	if err := s.sink.Persist(ctx, snap); err != nil {
		s.metrics.IncStorageError(op)
		if s.logg != nil {
			s.logg.Error(ctx, "cart.persist_failed", err)
		}
	}
}
