package cart

// Read-only selectors. Each recomputes from the store's current state under
// the store lock, so no view can trail a completed mutation.

// Totals returns the cart-wide item and vendor counts.
func (s *Store) Totals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.totals()
}

// Quantity returns the line quantity for the pair, or zero when absent.
func (s *Store) Quantity(vendorID, productID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.quantity(vendorID, productID)
}

// Contains reports whether the vendor/product pair is in the cart.
func (s *Store) Contains(vendorID, productID string) bool {
	return s.Quantity(vendorID, productID) > 0
}

// VendorBasket returns a copy of the basket for one vendor, if present.
func (s *Store) VendorBasket(vendorID string) (VendorBasket, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if bi := s.cart.basketIndex(vendorID); bi >= 0 {
		return s.cart.Baskets[bi].clone(), true
	}
	return VendorBasket{}, false
}

// Vendors lists vendor IDs in basket insertion order.
func (s *Store) Vendors() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.cart.Baskets))
	for i := range s.cart.Baskets {
		out = append(out, s.cart.Baskets[i].VendorID)
	}
	return out
}
