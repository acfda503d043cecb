// Package payment implements the payment service lookup over HTTP.
// The lookup is advisory: the acknowledge-payment command logs what it finds
// here but proceeds on the caller's word either way.
package payment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"foodorder/internal/core/domain/model/kernel"
)

// HTTPClient implements ports.PaymentChecker via the payment service HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	httpClient *http.Client
}

// response mirrors the JSON payload from the payment service.
type response struct {
	OrderID   string `json:"order_id"`
	Confirmed bool   `json:"confirmed"`
}

// NewHTTPClient creates a payment client with a default timeout.
func NewHTTPClient(baseURL string) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, errors.New("payment url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// IsConfirmed queries the payment service for one order's payment record.
// A missing record reads as not confirmed rather than an error.
func (c *HTTPClient) IsConfirmed(ctx context.Context, orderID kernel.UUID) (bool, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/api/payments/", orderID.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return false, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		body, readErr := io.ReadAll(resp.Body)
		if readErr != nil {
			return false, readErr
		}
		var data response
		if err = json.Unmarshal(body, &data); err != nil {
			return false, err
		}
		return data.Confirmed, nil
	case http.StatusNoContent, http.StatusNotFound:
		return false, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return false, fmt.Errorf("payment service error: %s: %s", resp.Status, body)
	}
}
