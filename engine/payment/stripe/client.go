// Package stripe is a thin client for the payment-intents endpoint of the
// Stripe API. It creates a charge intent and hands the client-usable secret
// back to the caller; the charge itself completes out-of-band.
package stripe

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/shopdash/shopdash/pkg/logger"
)

const (
	defaultBaseURL = "https://api.stripe.com"
	defaultTimeout = 30 * time.Second

	// Currency is fixed; the storefront prices everything in USD.
	Currency = "usd"
)

// Client calls the payment-intents API with a secret API key.
type Client struct {
	http *resty.Client
}

// intentResponse is the subset of the payment-intent object the caller needs.
type intentResponse struct {
	ID           string `json:"id"`
	ClientSecret string `json:"client_secret"`
}

// apiError is the gateway's error envelope.
type apiError struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Option configures the Client.
type Option func(*Client)

// WithBaseURL points the client at a different API host. Used by tests.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.http.SetBaseURL(baseURL)
	}
}

// NewClient creates a payment-gateway client authenticated by the secret key.
func NewClient(secretKey string, opts ...Option) *Client {
	httpClient := resty.New().
		SetBaseURL(defaultBaseURL).
		SetAuthToken(secretKey).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/x-www-form-urlencoded")
	client := &Client{http: httpClient}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// ToCents converts a decimal price to the smallest currency unit.
func ToCents(price float64) int64 {
	return int64(math.Round(price * 100))
}

// CreateIntent creates a payment intent for the given decimal price and
// returns its client secret. The amount is not validated locally; a
// non-positive or absurd value is forwarded and rejected by the gateway.
func (c *Client) CreateIntent(ctx context.Context, price float64) (string, error) {
	log := logger.FromContext(ctx)
	amount := ToCents(price)
	var intent intentResponse
	var gatewayErr apiError
	resp, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"amount":                  fmt.Sprintf("%d", amount),
			"currency":                Currency,
			"payment_method_types[0]": "card",
			"payment_method_types[1]": "link",
		}).
		SetResult(&intent).
		SetError(&gatewayErr).
		Post("/v1/payment_intents")
	if err != nil {
		return "", fmt.Errorf("payment intent request failed: %w", err)
	}
	if resp.IsError() {
		log.Error("payment gateway rejected intent",
			"status", resp.StatusCode(), "type", gatewayErr.Error.Type, "message", gatewayErr.Error.Message)
		return "", fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode(), gatewayErr.Error.Message)
	}
	log.Debug("payment intent created", "intent_id", intent.ID, "amount", amount)
	return intent.ClientSecret, nil
}
