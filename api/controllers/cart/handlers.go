package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	cartdto "github.com/streetcart/cart-engine/api/controllers/cart/dto"
	"github.com/streetcart/cart-engine/api/responses"
	"github.com/streetcart/cart-engine/api/validators"
	cartsvc "github.com/streetcart/cart-engine/internal/cart"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
	"github.com/streetcart/cart-engine/pkg/logger"
)

// CartFetch returns the full cart projection.
func CartFetch(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(store.Snapshot(), store.Totals()))
	}
}

// CartAddItem merges quantity of one product into the cart.
func CartAddItem(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload cartdto.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		quantity := 1
		if payload.Quantity != nil {
			quantity = *payload.Quantity
		}

		if err := store.AddItem(r.Context(), payload.VendorID, payload.ProductID, quantity); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, newCartView(store.Snapshot(), store.Totals()))
	}
}

// CartSetQuantity overwrites a line's quantity; zero behaves like removal.
func CartSetQuantity(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload cartdto.SetQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		store.SetQuantity(r.Context(), payload.VendorID, payload.ProductID, *payload.Quantity)
		responses.WriteSuccess(w, newCartView(store.Snapshot(), store.Totals()))
	}
}

// CartRemoveItem drops one line item; absent pairs are a no-op.
func CartRemoveItem(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		vendorID := chi.URLParam(r, "vendorID")
		productID := chi.URLParam(r, "productID")
		store.RemoveItem(r.Context(), vendorID, productID)
		responses.WriteSuccess(w, newCartView(store.Snapshot(), store.Totals()))
	}
}

// CartClear empties the cart and erases the persisted snapshot. The session
// boundary invokes this on logout as well.
func CartClear(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		store.Clear(r.Context())
		responses.WriteSuccess(w, newCartView(store.Snapshot(), store.Totals()))
	}
}

// CartTotals backs badge counters with item and vendor counts.
func CartTotals(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}
		responses.WriteSuccess(w, newTotalsView(store.Totals()))
	}
}

// CartVendorBasket lists one vendor's line items.
func CartVendorBasket(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		vendorID := chi.URLParam(r, "vendorID")
		basket, ok := store.VendorBasket(vendorID)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "vendor basket not found"))
			return
		}
		responses.WriteSuccess(w, newVendorBasketView(basket))
	}
}

// CartItemStatus backs per-product "in cart" indicators.
func CartItemStatus(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		vendorID := chi.URLParam(r, "vendorID")
		productID := chi.URLParam(r, "productID")
		quantity := store.Quantity(vendorID, productID)
		responses.WriteSuccess(w, cartdto.ItemStatusView{
			InCart:   quantity > 0,
			Quantity: quantity,
		})
	}
}
