package uc

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/shopdash/shopdash/engine/auth/model"
)

// Repository defines all data access operations for the auth domain
type Repository interface {
	// CreateUser inserts a new user and returns its generated id. A unique
	// index on email backs registration; inserting a taken email returns
	// ErrEmailExists even when two identical registrations race.
	CreateUser(ctx context.Context, user *model.User) (primitive.ObjectID, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	// PromoteUser sets the role to admin for the matching id. A missing id
	// reports zero matched/modified counts, not an error.
	PromoteUser(ctx context.Context, id primitive.ObjectID) (matched, modified int64, err error)
	// DeleteUser removes the matching record, reporting the deleted count.
	DeleteUser(ctx context.Context, id primitive.ObjectID) (deleted int64, err error)
}
