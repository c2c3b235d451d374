package uc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PromoteUserOutput carries the storage layer's update counts. Promoting a
// missing id yields zero counts.
type PromoteUserOutput struct {
	MatchedCount  int64 `json:"matchedCount"`
	ModifiedCount int64 `json:"modifiedCount"`
}

// PromoteUser use case for granting the admin role by internal id
type PromoteUser struct {
	repo   Repository
	userID primitive.ObjectID
}

// NewPromoteUser creates a new promote user use case
func NewPromoteUser(repo Repository, userID primitive.ObjectID) *PromoteUser {
	return &PromoteUser{repo: repo, userID: userID}
}

// Execute promotes the user to admin
func (uc *PromoteUser) Execute(ctx context.Context) (*PromoteUserOutput, error) {
	matched, modified, err := uc.repo.PromoteUser(ctx, uc.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	return &PromoteUserOutput{MatchedCount: matched, ModifiedCount: modified}, nil
}
