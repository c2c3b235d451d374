package uc

import (
	"context"
	"fmt"
)

// CreateIntent use case for requesting a charge intent from the gateway
type CreateIntent struct {
	gateway Gateway
	price   float64
}

// NewCreateIntent creates a new create intent use case
func NewCreateIntent(gateway Gateway, price float64) *CreateIntent {
	return &CreateIntent{gateway: gateway, price: price}
}

// Execute returns the client secret for a new payment intent
func (uc *CreateIntent) Execute(ctx context.Context) (string, error) {
	clientSecret, err := uc.gateway.CreateIntent(ctx, uc.price)
	if err != nil {
		return "", fmt.Errorf("failed to create payment intent: %w", err)
	}
	return clientSecret, nil
}
