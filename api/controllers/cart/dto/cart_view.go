package cartdto

// CartView is the full cart projection returned to UI collaborators.
type CartView struct {
	Vendors []VendorBasketView `json:"vendors"`
	Totals  TotalsView         `json:"totals"`
}

// VendorBasketView lists one vendor's line items.
type VendorBasketView struct {
	VendorID string         `json:"vendor_id"`
	Items    []LineItemView `json:"items"`
}

// LineItemView is a single product-and-quantity pair.
type LineItemView struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// TotalsView backs badge counters.
type TotalsView struct {
	TotalItems   int `json:"total_items"`
	TotalVendors int `json:"total_vendors"`
}

// ItemStatusView backs per-product "in cart" indicators.
type ItemStatusView struct {
	InCart   bool `json:"in_cart"`
	Quantity int  `json:"quantity"`
}
