package service

import (
	"time"

	"github.com/dashkit/backend/internal/auth/domain"
)

// LockoutPolicy decides, purely from account state and an evaluation instant,
// whether an account may attempt a login and what a failed attempt does to
// its counters. Lock expiry is lazy: an account becomes usable again the
// moment now passes LockedUntil, but the failure counter only resets on a
// subsequent successful login.
type LockoutPolicy struct {
	MaxAttempts  int
	LockDuration time.Duration
}

func NewLockoutPolicy(maxAttempts, lockoutMinutes int) LockoutPolicy {
	return LockoutPolicy{
		MaxAttempts:  maxAttempts,
		LockDuration: time.Duration(lockoutMinutes) * time.Minute,
	}
}

// Locked reports whether the account is locked at the evaluation instant.
func (p LockoutPolicy) Locked(user *domain.User, now time.Time) bool {
	return user.LockedUntil != nil && user.LockedUntil.After(now)
}

// NextFailure computes the counter and lock state that a failed password
// check at the given instant must persist. The lock is set exactly when the
// incremented counter reaches the threshold; locked accounts never reach
// this path because Locked short-circuits the attempt first.
func (p LockoutPolicy) NextFailure(user *domain.User, now time.Time) (failedAttempts int, lockedUntil *time.Time) {
	failedAttempts = user.FailedLoginAttempts + 1
	if failedAttempts >= p.MaxAttempts {
		t := now.Add(p.LockDuration)
		lockedUntil = &t
	}
	return failedAttempts, lockedUntil
}
