package cart

// Cart is the root aggregate: vendor baskets in insertion order. Vendor
// identity is unique across baskets and product identity is unique within a
// basket; a quantity is always >= 1 and an emptied basket is dropped.
type Cart struct {
	Baskets []VendorBasket
}

// VendorBasket holds every line item the user intends to order from one vendor.
type VendorBasket struct {
	VendorID string
	Items    []LineItem
}

// LineItem is a single product selection.
type LineItem struct {
	ProductID string
	Quantity  int
}

// Totals aggregates cart-wide counts for badge style consumers.
type Totals struct {
	TotalItems   int `json:"total_items"`
	TotalVendors int `json:"total_vendors"`
}

func (c *Cart) basketIndex(vendorID string) int {
	for i := range c.Baskets {
		if c.Baskets[i].VendorID == vendorID {
			return i
		}
	}
	return -1
}

func (b *VendorBasket) itemIndex(productID string) int {
	for i := range b.Items {
		if b.Items[i].ProductID == productID {
			return i
		}
	}
	return -1
}

// add accumulates quantity onto an existing line or appends a new one,
// creating the vendor basket on demand. Callers validate inputs first.
func (c *Cart) add(vendorID, productID string, quantity int) {
	bi := c.basketIndex(vendorID)
	if bi < 0 {
		c.Baskets = append(c.Baskets, VendorBasket{
			VendorID: vendorID,
			Items:    []LineItem{{ProductID: productID, Quantity: quantity}},
		})
		return
	}
	basket := &c.Baskets[bi]
	if ii := basket.itemIndex(productID); ii >= 0 {
		basket.Items[ii].Quantity += quantity
		return
	}
	basket.Items = append(basket.Items, LineItem{ProductID: productID, Quantity: quantity})
}

// setQuantity overwrites the line quantity when present; quantities below one
// remove the line instead. Absent vendor/product pairs are left untouched.
func (c *Cart) setQuantity(vendorID, productID string, quantity int) {
	if quantity < 1 {
		c.remove(vendorID, productID)
		return
	}
	bi := c.basketIndex(vendorID)
	if bi < 0 {
		return
	}
	basket := &c.Baskets[bi]
	if ii := basket.itemIndex(productID); ii >= 0 {
		basket.Items[ii].Quantity = quantity
	}
}

// remove drops the matching line item and collapses the basket when it empties.
func (c *Cart) remove(vendorID, productID string) {
	bi := c.basketIndex(vendorID)
	if bi < 0 {
		return
	}
	basket := &c.Baskets[bi]
	ii := basket.itemIndex(productID)
	if ii < 0 {
		return
	}
	basket.Items = append(basket.Items[:ii], basket.Items[ii+1:]...)
	if len(basket.Items) == 0 {
		c.Baskets = append(c.Baskets[:bi], c.Baskets[bi+1:]...)
	}
}

func (c *Cart) quantity(vendorID, productID string) int {
	bi := c.basketIndex(vendorID)
	if bi < 0 {
		return 0
	}
	if ii := c.Baskets[bi].itemIndex(productID); ii >= 0 {
		return c.Baskets[bi].Items[ii].Quantity
	}
	return 0
}

func (c *Cart) totals() Totals {
	t := Totals{TotalVendors: len(c.Baskets)}
	for i := range c.Baskets {
		for _, item := range c.Baskets[i].Items {
			t.TotalItems += item.Quantity
		}
	}
	return t
}

func (b VendorBasket) clone() VendorBasket {
	out := VendorBasket{VendorID: b.VendorID}
	out.Items = make([]LineItem, len(b.Items))
	copy(out.Items, b.Items)
	return out
}
