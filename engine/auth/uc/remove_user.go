package uc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RemoveUserOutput carries the storage layer's delete count.
type RemoveUserOutput struct {
	DeletedCount int64 `json:"deletedCount"`
}

// RemoveUser use case for deleting a user by internal id
type RemoveUser struct {
	repo   Repository
	userID primitive.ObjectID
}

// NewRemoveUser creates a new remove user use case
func NewRemoveUser(repo Repository, userID primitive.ObjectID) *RemoveUser {
	return &RemoveUser{repo: repo, userID: userID}
}

// Execute deletes the user
func (uc *RemoveUser) Execute(ctx context.Context) (*RemoveUserOutput, error) {
	deleted, err := uc.repo.DeleteUser(ctx, uc.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}
	return &RemoveUserOutput{DeletedCount: deleted}, nil
}
