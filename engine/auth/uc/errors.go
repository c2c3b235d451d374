package uc

import "errors"

// ErrUserNotFound is returned when a user is not found in the repository
var ErrUserNotFound = errors.New("user not found")

// ErrEmailExists is returned when registering an email that is already taken
var ErrEmailExists = errors.New("user already exists")
