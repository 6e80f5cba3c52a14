package user

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailExists         = errors.New("email already registered")
	ErrAdminAccessRequired = errors.New("admin access required")
	ErrHRAccessRequired    = errors.New("hr or admin access required")
)
