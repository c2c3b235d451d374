package uc

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopdash/shopdash/engine/payment/model"
	"github.com/shopdash/shopdash/pkg/logger"
)

// RecordPaymentInput carries the client's checkout submission. CartIDs are
// the storage-native hex ids of the cart entries this payment settles.
type RecordPaymentInput struct {
	Email         string   `json:"email"`
	Price         float64  `json:"price"`
	TransactionID string   `json:"transactionId"`
	CartIDs       []string `json:"cartIds"`
	ItemIDs       []string `json:"itemIds"`
	Status        string   `json:"status"`
}

// RecordPaymentOutput reports the settlement result.
type RecordPaymentOutput struct {
	InsertedID   primitive.ObjectID
	DeletedCount int64
}

// RecordPayment use case for settling a checkout: record the payment and
// clear the cart entries it paid for.
type RecordPayment struct {
	repo  Repository
	input *RecordPaymentInput
}

// NewRecordPayment creates a new record payment use case
func NewRecordPayment(repo Repository, input *RecordPaymentInput) *RecordPayment {
	return &RecordPayment{repo: repo, input: input}
}

// Execute records the payment and deletes the referenced cart items.
func (uc *RecordPayment) Execute(ctx context.Context) (*RecordPaymentOutput, error) {
	log := logger.FromContext(ctx)
	cartIDs := make([]primitive.ObjectID, 0, len(uc.input.CartIDs))
	for _, raw := range uc.input.CartIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			// Rejected before anything is written, so a bad id cannot leave
			// a recorded payment with stale cart items behind.
			return nil, fmt.Errorf("invalid cart id %q: %w", raw, err)
		}
		cartIDs = append(cartIDs, id)
	}
	payment := &model.Payment{
		Email:         uc.input.Email,
		Price:         uc.input.Price,
		TransactionID: uc.input.TransactionID,
		CartIDs:       cartIDs,
		ItemIDs:       uc.input.ItemIDs,
		Status:        uc.input.Status,
		Date:          time.Now().UTC(),
	}
	paymentID, deleted, err := uc.repo.SettlePayment(ctx, payment)
	if err != nil {
		return nil, fmt.Errorf("failed to settle payment: %w", err)
	}
	log.Info("payment settled",
		"payment_id", paymentID.Hex(), "email", payment.Email, "carts_cleared", deleted)
	return &RecordPaymentOutput{InsertedID: paymentID, DeletedCount: deleted}, nil
}
