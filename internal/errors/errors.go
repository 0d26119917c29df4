package errors

import (
	"errors"
)

var (
	ErrInvalidCredentials   = errors.New("incorrect email or password")
	ErrAccountDisabled      = errors.New("account is disabled")
	ErrAccountLocked        = errors.New("account temporarily locked")
	ErrEmptyPassword        = errors.New("password cannot be empty")
	ErrInvalidToken         = errors.New("invalid or expired token")
	ErrUserNotFound         = errors.New("user not found")
	ErrIncorrectOldPassword = errors.New("old password is incorrect")
)
