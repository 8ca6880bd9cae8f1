package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/streetcart/cart-engine/internal/cart"
	"github.com/streetcart/cart-engine/pkg/config"
	pkgerrors "github.com/streetcart/cart-engine/pkg/errors"
)

// Client calls the external pricing authority with a cart snapshot and
// deserializes the authoritative quote it returns.
type Client struct {
	httpClient *http.Client
	url        string
}

// NewClient builds a pricing client from checkout configuration.
func NewClient(cfg config.CheckoutConfig) (*Client, error) {
	if cfg.PricingURL == "" {
		return nil, fmt.Errorf("pricing url required")
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		url:        cfg.PricingURL,
	}, nil
}

// Quote submits the snapshot's vendor baskets and returns the priced orders.
// Any transport, status, or decode failure maps to CodePricing so the caller
// can surface a retryable message while the cart stays untouched.
func (c *Client) Quote(ctx context.Context, snap cart.Snapshot) (*Quote, error) {
	// The wire payload is the basket sequence without the persistence envelope.
	body, err := json.Marshal(snap.Cart)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encode checkout snapshot")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build pricing request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePricing, err, "pricing authority unreachable")
	}
	defer func() {
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, pkgerrors.New(pkgerrors.CodePricing,
			fmt.Sprintf("pricing authority returned status %d", resp.StatusCode))
	}

	var quote Quote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodePricing, err, "decode pricing response")
	}
	return &quote, nil
}
