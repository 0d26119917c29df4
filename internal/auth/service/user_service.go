package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dashkit/backend/internal/auth/domain"
	"github.com/dashkit/backend/internal/auth/dto"
	autherror "github.com/dashkit/backend/internal/errors"
	"github.com/google/uuid"
)

type UserService struct {
	repo    domain.UserRepository
	lockout LockoutPolicy
}

func NewUserService(repo domain.UserRepository, lockout LockoutPolicy) *UserService {
	return &UserService{
		repo:    repo,
		lockout: lockout,
	}
}

// Login runs one authentication attempt: a single account lookup, the
// lockout check, the password check, at most one account mutation, and
// exactly one audit entry on every terminal path.
func (s *UserService) Login(ctx context.Context, input dto.LoginInput) (*domain.User, error) {
	email := NormalizeEmail(input.Email)

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up account: %w", err)
	}

	// Not found and wrong password are indistinguishable to the caller.
	if user == nil {
		if err := s.recordAttempt(ctx, email, false, input); err != nil {
			return nil, err
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if !user.IsActive {
		if err := s.recordAttempt(ctx, email, false, input); err != nil {
			return nil, err
		}
		return nil, autherror.ErrAccountDisabled
	}

	now := time.Now().UTC()

	if s.lockout.Locked(user, now) {
		if err := s.recordAttempt(ctx, email, false, input); err != nil {
			return nil, err
		}
		return nil, autherror.ErrAccountLocked
	}

	if !VerifyPassword(input.Password, user.PasswordHash) {
		failed, lockedUntil := s.lockout.NextFailure(user, now)
		if err := s.repo.RecordLoginFailure(ctx, user.ID, failed, lockedUntil); err != nil {
			return nil, fmt.Errorf("failed to update login counters: %w", err)
		}
		if err := s.recordAttempt(ctx, email, false, input); err != nil {
			return nil, err
		}
		return nil, autherror.ErrInvalidCredentials
	}

	if err := s.repo.RecordLoginSuccess(ctx, user.ID, now); err != nil {
		return nil, fmt.Errorf("failed to update login state: %w", err)
	}
	if err := s.recordAttempt(ctx, email, true, input); err != nil {
		return nil, err
	}

	user.FailedLoginAttempts = 0
	user.LockedUntil = nil
	user.LastLoginAt = &now

	return user, nil
}

// Profile fetches the account behind a verified token.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrUserNotFound
	}
	return user, nil
}

func (s *UserService) UpdateName(ctx context.Context, userID, fullName string) error {
	return s.repo.UpdateFullName(ctx, userID, fullName)
}

// ChangePassword re-verifies the old password and stores a freshly derived
// hash. The hash is always recomputed wholesale, never patched.
func (s *UserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error {
	user, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if !VerifyPassword(oldPassword, user.PasswordHash) {
		return autherror.ErrIncorrectOldPassword
	}

	newHash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	return s.repo.UpdatePasswordHash(ctx, user.ID, newHash)
}

// NormalizeEmail lower-cases and trims an email for account lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) recordAttempt(ctx context.Context, email string, success bool, input dto.LoginInput) error {
	attempt := &domain.LoginAttempt{
		ID:             uuid.NewString(),
		EmailAttempted: email,
		Success:        success,
		IPAddress:      input.IPAddress,
		UserAgent:      input.UserAgent,
	}

	// Audit writes are synchronous; a failed write fails the login flow.
	if err := s.repo.RecordLoginAttempt(ctx, attempt); err != nil {
		return fmt.Errorf("failed to record login attempt: %w", err)
	}
	return nil
}
