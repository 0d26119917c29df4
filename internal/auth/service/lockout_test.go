package service

import (
	"testing"
	"time"

	"github.com/dashkit/backend/internal/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockoutPolicy_Locked(t *testing.T) {
	policy := NewLockoutPolicy(5, 15)
	now := time.Now().UTC()

	t.Run("no lock set", func(t *testing.T) {
		user := &domain.User{}
		assert.False(t, policy.Locked(user, now))
	})

	t.Run("lock in the future", func(t *testing.T) {
		until := now.Add(time.Minute)
		user := &domain.User{LockedUntil: &until}
		assert.True(t, policy.Locked(user, now))
	})

	t.Run("lock expired", func(t *testing.T) {
		until := now.Add(-time.Second)
		user := &domain.User{LockedUntil: &until}
		assert.False(t, policy.Locked(user, now))
	})

	t.Run("lock exactly at now", func(t *testing.T) {
		until := now
		user := &domain.User{LockedUntil: &until}
		assert.False(t, policy.Locked(user, now))
	})
}

func TestLockoutPolicy_NextFailure(t *testing.T) {
	policy := NewLockoutPolicy(5, 15)
	now := time.Now().UTC()

	t.Run("below threshold leaves lock unset", func(t *testing.T) {
		user := &domain.User{FailedLoginAttempts: 3}

		failed, lockedUntil := policy.NextFailure(user, now)

		assert.Equal(t, 4, failed)
		assert.Nil(t, lockedUntil)
	})

	t.Run("crossing threshold sets lock", func(t *testing.T) {
		user := &domain.User{FailedLoginAttempts: 4}

		failed, lockedUntil := policy.NextFailure(user, now)

		assert.Equal(t, 5, failed)
		require.NotNil(t, lockedUntil)
		assert.Equal(t, now.Add(15*time.Minute), *lockedUntil)
	})

	t.Run("counter survives lock expiry", func(t *testing.T) {
		// An expired lock does not reset the counter, so the next failure
		// immediately re-locks.
		expired := now.Add(-time.Minute)
		user := &domain.User{FailedLoginAttempts: 5, LockedUntil: &expired}

		require.False(t, policy.Locked(user, now))
		failed, lockedUntil := policy.NextFailure(user, now)

		assert.Equal(t, 6, failed)
		require.NotNil(t, lockedUntil)
		assert.Equal(t, now.Add(15*time.Minute), *lockedUntil)
	})
}
