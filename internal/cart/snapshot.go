package cart

import (
	"encoding/json"

	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
)

// Snapshot is the persisted and wire form of the cart. It carries only
// identifiers and quantities; pricing belongs to the checkout authority.
type Snapshot struct {
	Cart []VendorSnapshot `json:"cart"`
}

// VendorSnapshot is one vendor basket in snapshot form.
type VendorSnapshot struct {
	Vendor   string            `json:"vendor"`
	Products []ProductSnapshot `json:"products"`
}

// ProductSnapshot is one line item in snapshot form.
type ProductSnapshot struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Snapshot renders the aggregate into its persisted form.
func (c *Cart) Snapshot() Snapshot {
	snap := Snapshot{Cart: make([]VendorSnapshot, 0, len(c.Baskets))}
	for i := range c.Baskets {
		basket := &c.Baskets[i]
		vendor := VendorSnapshot{
			Vendor:   basket.VendorID,
			Products: make([]ProductSnapshot, 0, len(basket.Items)),
		}
		for _, item := range basket.Items {
			vendor.Products = append(vendor.Products, ProductSnapshot{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
			})
		}
		snap.Cart = append(snap.Cart, vendor)
	}
	return snap
}

// TotalItems sums line quantities across the snapshot.
func (s Snapshot) TotalItems() int {
	total := 0
	for _, vendor := range s.Cart {
		for _, product := range vendor.Products {
			total += product.Quantity
		}
	}
	return total
}

// Encode serializes the snapshot for durable storage.
func (s Snapshot) Encode() ([]byte, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode snapshot")
	}
	return raw, nil
}

// DecodeSnapshot parses raw persisted bytes. Malformed JSON or a payload that
// violates the cart's structural rules yields CodeCorruptState so the caller
// can recover to an empty cart.
func DecodeSnapshot(raw []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, pkgerrors.Wrap(pkgerrors.CodeCorruptState, err, "parse snapshot")
	}
	if err := snap.validate(); err != nil {
		return Snapshot{}, err
	}
	return snap, nil
}

func (s Snapshot) validate() error {
	seenVendors := make(map[string]struct{}, len(s.Cart))
	for _, vendor := range s.Cart {
		if vendor.Vendor == "" {
			return pkgerrors.New(pkgerrors.CodeCorruptState, "snapshot vendor id empty")
		}
		if _, dup := seenVendors[vendor.Vendor]; dup {
			return pkgerrors.New(pkgerrors.CodeCorruptState, "snapshot vendor duplicated")
		}
		seenVendors[vendor.Vendor] = struct{}{}

		if len(vendor.Products) == 0 {
			return pkgerrors.New(pkgerrors.CodeCorruptState, "snapshot vendor basket empty")
		}
		seenProducts := make(map[string]struct{}, len(vendor.Products))
		for _, product := range vendor.Products {
			if product.ProductID == "" {
				return pkgerrors.New(pkgerrors.CodeCorruptState, "snapshot product id empty")
			}
			if _, dup := seenProducts[product.ProductID]; dup {
				return pkgerrors.New(pkgerrors.CodeCorruptState, "snapshot product duplicated")
			}
			seenProducts[product.ProductID] = struct{}{}
			if product.Quantity < 1 {
				return pkgerrors.New(pkgerrors.CodeCorruptState, "snapshot quantity below one")
			}
		}
	}
	return nil
}

// FromSnapshot rebuilds the aggregate from a validated snapshot.
func FromSnapshot(snap Snapshot) (*Cart, error) {
	if err := snap.validate(); err != nil {
		return nil, err
	}
	c := &Cart{Baskets: make([]VendorBasket, 0, len(snap.Cart))}
	for _, vendor := range snap.Cart {
		basket := VendorBasket{
			VendorID: vendor.Vendor,
			Items:    make([]LineItem, 0, len(vendor.Products)),
		}
		for _, product := range vendor.Products {
			basket.Items = append(basket.Items, LineItem{
				ProductID: product.ProductID,
				Quantity:  product.Quantity,
			})
		}
		c.Baskets = append(c.Baskets, basket)
	}
	return c, nil
}
