package uc

import (
	"context"
	"fmt"

	"github.com/shopdash/shopdash/engine/payment/model"
)

// ListPayments use case for retrieving payments by payer email
type ListPayments struct {
	repo  Repository
	email string
}

// NewListPayments creates a new list payments use case
func NewListPayments(repo Repository, email string) *ListPayments {
	return &ListPayments{repo: repo, email: email}
}

// Execute returns all payments matching the email filter
func (uc *ListPayments) Execute(ctx context.Context) ([]*model.Payment, error) {
	payments, err := uc.repo.ListPaymentsByEmail(ctx, uc.email)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
