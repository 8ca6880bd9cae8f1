package cart

import (
	cartdto "github.com/streetcart/cart-engine/api/controllers/cart/dto"
	cartsvc "github.com/streetcart/cart-engine/internal/cart"
)

func newCartView(snap cartsvc.Snapshot, totals cartsvc.Totals) cartdto.CartView {
	vendors := make([]cartdto.VendorBasketView, 0, len(snap.Cart))
	for _, vendor := range snap.Cart {
		items := make([]cartdto.LineItemView, 0, len(vendor.Products))
		for _, product := range vendor.Products {
			items = append(items, cartdto.LineItemView{
				ProductID: product.ProductID,
				Quantity:  product.Quantity,
			})
		}
		vendors = append(vendors, cartdto.VendorBasketView{
			VendorID: vendor.Vendor,
			Items:    items,
		})
	}
	return cartdto.CartView{
		Vendors: vendors,
		Totals:  newTotalsView(totals),
	}
}

func newTotalsView(totals cartsvc.Totals) cartdto.TotalsView {
	return cartdto.TotalsView{
		TotalItems:   totals.TotalItems,
		TotalVendors: totals.TotalVendors,
	}
}

func newVendorBasketView(basket cartsvc.VendorBasket) cartdto.VendorBasketView {
	items := make([]cartdto.LineItemView, 0, len(basket.Items))
	for _, item := range basket.Items {
		items = append(items, cartdto.LineItemView{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}
	return cartdto.VendorBasketView{VendorID: basket.VendorID, Items: items}
}
