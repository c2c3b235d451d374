package uc

import (
	"context"
	"errors"
	"fmt"
)

// CheckAdmin use case for checking whether an email holds the admin role.
// An unknown email is reported as not-admin rather than an error.
type CheckAdmin struct {
	repo  Repository
	email string
}

// NewCheckAdmin creates a new check admin use case
func NewCheckAdmin(repo Repository, email string) *CheckAdmin {
	return &CheckAdmin{repo: repo, email: email}
}

// Execute reports the admin status for the email
func (uc *CheckAdmin) Execute(ctx context.Context) (bool, error) {
	user, err := uc.repo.GetUserByEmail(ctx, uc.email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check admin status: %w", err)
	}
	return user.IsAdmin(), nil
}
