package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/shopdash/shopdash/engine/payment/model"
)

// PaymentRepository implements the payment domain's Repository over the
// payments and carts collections.
type PaymentRepository struct {
	client   *mongo.Client
	payments *mongo.Collection
	carts    *mongo.Collection
}

// settleResult carries the transaction callback's outcome.
type settleResult struct {
	paymentID primitive.ObjectID
	deleted   int64
}

// SettlePayment runs the insert and the cart deletion in one session
// transaction, so a failure on either side leaves both collections
// untouched.
func (r *PaymentRepository) SettlePayment(
	ctx context.Context,
	payment *model.Payment,
) (primitive.ObjectID, int64, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return primitive.NilObjectID, 0, fmt.Errorf("failed to start session: %w", err)
	}
	defer session.EndSession(ctx)
	result, err := session.WithTransaction(ctx, func(sc mongo.SessionContext) (any, error) {
		insertResult, err := r.payments.InsertOne(sc, payment)
		if err != nil {
			return nil, fmt.Errorf("failed to insert payment: %w", err)
		}
		paymentID, ok := insertResult.InsertedID.(primitive.ObjectID)
		if !ok {
			return nil, fmt.Errorf("unexpected inserted id type %T", insertResult.InsertedID)
		}
		deleteResult, err := r.carts.DeleteMany(sc, bson.M{"_id": bson.M{"$in": payment.CartIDs}})
		if err != nil {
			return nil, fmt.Errorf("failed to clear cart items: %w", err)
		}
		return settleResult{paymentID: paymentID, deleted: deleteResult.DeletedCount}, nil
	})
	if err != nil {
		return primitive.NilObjectID, 0, fmt.Errorf("settlement transaction failed: %w", err)
	}
	settled := result.(settleResult)
	return settled.paymentID, settled.deleted, nil
}

// ListPaymentsByEmail returns all payments recorded for the email.
func (r *PaymentRepository) ListPaymentsByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	cursor, err := r.payments.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer cursor.Close(ctx)
	payments := make([]*model.Payment, 0)
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	return payments, nil
}
