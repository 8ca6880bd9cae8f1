package cartdto

// AddItemRequest adds quantity of one product to a vendor basket. Quantity
// defaults to one when omitted.
type AddItemRequest struct {
	VendorID  string `json:"vendor_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
}

// SetQuantityRequest overwrites a line's quantity; zero removes the line.
type SetQuantityRequest struct {
	VendorID  string `json:"vendor_id" validate:"required"`
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"required,min=0"`
}
