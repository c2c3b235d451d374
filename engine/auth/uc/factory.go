package uc

import "go.mongodb.org/mongo-driver/bson/primitive"

// Factory provides methods to create use case instances with proper dependency injection
type Factory struct {
	repo Repository
}

// NewFactory creates a new use case factory
func NewFactory(repo Repository) *Factory {
	return &Factory{repo: repo}
}

func (f *Factory) RegisterUser(input *RegisterUserInput) *RegisterUser {
	return NewRegisterUser(f.repo, input)
}

func (f *Factory) ListUsers() *ListUsers {
	return NewListUsers(f.repo)
}

func (f *Factory) CheckAdmin(email string) *CheckAdmin {
	return NewCheckAdmin(f.repo, email)
}

func (f *Factory) PromoteUser(id primitive.ObjectID) *PromoteUser {
	return NewPromoteUser(f.repo, id)
}

func (f *Factory) RemoveUser(id primitive.ObjectID) *RemoveUser {
	return NewRemoveUser(f.repo, id)
}
