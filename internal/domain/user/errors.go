package user

import "errors"

var (
	ErrUserNotFound           = errors.New("user not found")
	ErrInvalidCredentials     = errors.New("invalid email or password")
	ErrAdminPrivilegeRequired = errors.New("admin privilege required")
)
