package controllers

import (
	"net/http"

	"github.com/streetcart/cart-engine/api/responses"
	"github.com/streetcart/cart-engine/internal/checkout"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
	"github.com/streetcart/cart-engine/pkg/logger"
)

// CheckoutQuote snapshots the cart and returns the authority's pricing. The
// cart is untouched either way, so a failed quote can simply be retried.
func CheckoutQuote(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		quote, err := svc.Quote(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, quote)
	}
}

// CheckoutConfirm clears the cart after an externally signaled payment
// success.
func CheckoutConfirm(svc checkout.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		if err := svc.Confirm(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "confirmed"})
	}
}
