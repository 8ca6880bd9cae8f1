package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/streetcart/cart-engine/internal/checkout"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
)

type stubCheckoutService struct {
	quote      *checkout.Quote
	quoteErr   error
	confirmErr error
	confirmed  int
}

func (s *stubCheckoutService) Quote(ctx context.Context) (*checkout.Quote, error) {
	return s.quote, s.quoteErr
}

func (s *stubCheckoutService) Confirm(ctx context.Context) error {
	s.confirmed++
	return s.confirmErr
}

func TestCheckoutQuoteSuccess(t *testing.T) {
	quote := &checkout.Quote{
		Orders: []checkout.VendorOrder{{
			VendorID: "vendor-a",
			Total:    decimal.NewFromInt(120),
		}},
		TotalPayable: decimal.NewFromInt(120),
	}
	handler := CheckoutQuote(&stubCheckoutService{quote: quote}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/quote", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data checkout.Quote `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Orders) != 1 || envelope.Data.Orders[0].VendorID != "vendor-a" {
		t.Fatalf("unexpected quote: %+v", envelope.Data)
	}
	if !envelope.Data.TotalPayable.Equal(decimal.NewFromInt(120)) {
		t.Fatalf("unexpected total payable: %s", envelope.Data.TotalPayable)
	}
}

func TestCheckoutQuoteEmptyCart(t *testing.T) {
	svc := &stubCheckoutService{quoteErr: pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")}
	handler := CheckoutQuote(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/quote", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutQuotePricingUnavailable(t *testing.T) {
	svc := &stubCheckoutService{quoteErr: pkgerrors.New(pkgerrors.CodePricing, "could not load checkout, please retry")}
	handler := CheckoutQuote(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/quote", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected 502 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "could not load checkout, please retry" {
		t.Fatalf("unexpected message: %q", envelope.Error.Message)
	}
}

func TestCheckoutConfirmSuccess(t *testing.T) {
	svc := &stubCheckoutService{}
	handler := CheckoutConfirm(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/confirm", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if svc.confirmed != 1 {
		t.Fatalf("expected one confirm call, got %d", svc.confirmed)
	}
}

func TestCheckoutConfirmEmptyCart(t *testing.T) {
	svc := &stubCheckoutService{confirmErr: pkgerrors.New(pkgerrors.CodeValidation, "cart is already empty")}
	handler := CheckoutConfirm(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/confirm", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCheckoutHandlersNilService(t *testing.T) {
	for name, handler := range map[string]http.HandlerFunc{
		"quote":   CheckoutQuote(nil, nil),
		"confirm": CheckoutConfirm(nil, nil),
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/checkout/"+name, nil)
			resp := httptest.NewRecorder()
			handler.ServeHTTP(resp, req)

			if resp.Code != http.StatusInternalServerError {
				t.Fatalf("expected 500 got %d", resp.Code)
			}
		})
	}
}
