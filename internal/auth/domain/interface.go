package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/dashkit/backend/internal/auth/domain UserRepository

import (
	"context"
	"time"
)

type UserRepository interface {
	// GetByEmail returns (nil, nil) when no account matches.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// GetByID returns (nil, nil) when no account matches.
	GetByID(ctx context.Context, id string) (*User, error)
	RecordLoginFailure(ctx context.Context, id string, failedAttempts int, lockedUntil *time.Time) error
	RecordLoginSuccess(ctx context.Context, id string, lastLoginAt time.Time) error
	UpdateFullName(ctx context.Context, id, fullName string) error
	UpdatePasswordHash(ctx context.Context, id, passwordHash string) error
	RecordLoginAttempt(ctx context.Context, attempt *LoginAttempt) error
}
