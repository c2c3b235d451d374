package uc

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopdash/shopdash/engine/payment/model"
)

// MockRepository implements Repository for testing
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SettlePayment(ctx context.Context, payment *model.Payment) (primitive.ObjectID, int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(primitive.ObjectID), args.Get(1).(int64), args.Error(2)
}

func (m *MockRepository) ListPaymentsByEmail(ctx context.Context, email string) ([]*model.Payment, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Payment), args.Error(1)
}

// MockGateway implements Gateway for testing
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) CreateIntent(ctx context.Context, price float64) (string, error) {
	args := m.Called(ctx, price)
	return args.String(0), args.Error(1)
}
