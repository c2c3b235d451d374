package uc

// Factory provides methods to create use case instances with proper dependency injection
type Factory struct {
	repo    Repository
	gateway Gateway
}

// NewFactory creates a new use case factory
func NewFactory(repo Repository, gateway Gateway) *Factory {
	return &Factory{repo: repo, gateway: gateway}
}

func (f *Factory) RecordPayment(input *RecordPaymentInput) *RecordPayment {
	return NewRecordPayment(f.repo, input)
}

func (f *Factory) ListPayments(email string) *ListPayments {
	return NewListPayments(f.repo, email)
}

func (f *Factory) CreateIntent(price float64) *CreateIntent {
	return NewCreateIntent(f.gateway, price)
}
