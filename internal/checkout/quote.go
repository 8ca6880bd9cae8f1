package checkout

import (
	"github.com/shopspring/decimal"
)

// Quote is the authoritative pricing the authority computed for one cart
// snapshot. The engine displays these values and never recomputes them.
type Quote struct {
	Orders       []VendorOrder   `json:"orders"`
	TotalPayable decimal.Decimal `json:"total_payable"`
}

// VendorOrder is the priced order for a single vendor basket.
type VendorOrder struct {
	VendorID          string          `json:"vendor"`
	Items             []PricedItem    `json:"items"`
	Subtotal          decimal.Decimal `json:"subtotal"`
	Discount          decimal.Decimal `json:"discount"`
	PackagingCharge   decimal.Decimal `json:"packaging_charge"`
	DeliveryCharge    decimal.Decimal `json:"delivery_charge"`
	ConvenienceCharge decimal.Decimal `json:"convenience_charge"`
	Total             decimal.Decimal `json:"total"`
}

// PricedItem is one line item with its authoritative unit pricing.
type PricedItem struct {
	ProductID string          `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}
