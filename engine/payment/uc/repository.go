package uc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopdash/shopdash/engine/payment/model"
)

// Repository defines all data access operations for the payment domain
type Repository interface {
	// SettlePayment inserts the payment record and deletes every cart item
	// whose id appears in payment.CartIDs, inside one transaction: either
	// the payment is recorded and the cart entries are gone, or neither
	// happened.
	SettlePayment(ctx context.Context, payment *model.Payment) (paymentID primitive.ObjectID, deleted int64, err error)
	// ListPaymentsByEmail returns all payments recorded for the email.
	ListPaymentsByEmail(ctx context.Context, email string) ([]*model.Payment, error)
}

// Gateway creates charge intents with the external payment processor.
type Gateway interface {
	CreateIntent(ctx context.Context, price float64) (clientSecret string, err error)
}
