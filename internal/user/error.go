package user

import "errors"

var (
	// ErrAdminProtected is returned when a delete targets an admin
	// account; callers surface it rather than retrying.
	ErrAdminProtected = errors.New("admin user cannot be deleted")

	errUserNotFound = errors.New("user not found")
	errEmailTaken   = errors.New("email already registered")
)
