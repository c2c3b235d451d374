package uc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopdash/shopdash/engine/auth/model"
	"github.com/shopdash/shopdash/pkg/logger"
)

// RegisterUserInput represents the input for registering a user. Profile
// fields are stored as given.
type RegisterUserInput struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	PhotoURL string `json:"photoURL"`
}

// RegisterUserOutput reports whether a record was inserted or the email was
// already taken.
type RegisterUserOutput struct {
	InsertedID    primitive.ObjectID
	AlreadyExists bool
}

// RegisterUser use case for first-time registration. Registering a known
// email is a no-op reported through AlreadyExists.
type RegisterUser struct {
	repo  Repository
	input *RegisterUserInput
}

// NewRegisterUser creates a new register user use case
func NewRegisterUser(repo Repository, input *RegisterUserInput) *RegisterUser {
	return &RegisterUser{repo: repo, input: input}
}

// Execute registers the user
func (uc *RegisterUser) Execute(ctx context.Context) (*RegisterUserOutput, error) {
	log := logger.FromContext(ctx)
	existing, err := uc.repo.GetUserByEmail(ctx, uc.input.Email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return nil, fmt.Errorf("checking existing user: %w", err)
	}
	if existing != nil {
		log.Debug("registration for existing email", "email", uc.input.Email)
		return &RegisterUserOutput{AlreadyExists: true}, nil
	}
	user := &model.User{
		Email:     uc.input.Email,
		Name:      uc.input.Name,
		PhotoURL:  uc.input.PhotoURL,
		Role:      model.RoleUser,
		CreatedAt: time.Now().UTC(),
	}
	id, err := uc.repo.CreateUser(ctx, user)
	if err != nil {
		// A concurrent identical registration loses the insert race; the
		// unique email index reports it as the same already-exists signal.
		if errors.Is(err, ErrEmailExists) {
			return &RegisterUserOutput{AlreadyExists: true}, nil
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	log.Info("user registered", "user_id", id.Hex(), "email", user.Email)
	return &RegisterUserOutput{InsertedID: id}, nil
}
