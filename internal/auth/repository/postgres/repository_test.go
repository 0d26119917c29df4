package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dashkit/backend/internal/auth/domain"
	"github.com/dashkit/backend/internal/auth/repository/postgres"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserRepo(t *testing.T) (*postgres.UserRepository, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return postgres.NewUserRepository(mock), mock
}

func userRows(id, email string) *pgxmock.Rows {
	now := time.Now().UTC()
	return pgxmock.NewRows([]string{
		"id", "email", "full_name", "password_hash", "role", "is_active",
		"failed_login_attempts", "locked_until", "last_login_at", "created_at", "updated_at",
	}).AddRow(id, email, "Test User", "$2a$10$hash", "user", true, 0, nil, nil, now, now)
}

func TestUserRepository_GetByEmail(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectQuery("FROM users").
			WithArgs("test@example.com").
			WillReturnRows(userRows("user-id", "test@example.com"))

		user, err := repo.GetByEmail(context.Background(), "test@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "user-id", user.ID)
		assert.Equal(t, "test@example.com", user.Email)
		assert.True(t, user.IsActive)
		assert.Nil(t, user.LockedUntil)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found returns nil, nil", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectQuery("FROM users").
			WithArgs("missing@example.com").
			WillReturnError(pgx.ErrNoRows)

		user, err := repo.GetByEmail(context.Background(), "missing@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectQuery("FROM users").
			WithArgs("test@example.com").
			WillReturnError(errors.New("connection refused"))

		user, err := repo.GetByEmail(context.Background(), "test@example.com")
		assert.Error(t, err)
		assert.Nil(t, user)
	})
}

func TestUserRepository_GetByID(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectQuery("FROM users").
		WithArgs("user-id").
		WillReturnRows(userRows("user-id", "test@example.com"))

	user, err := repo.GetByID(context.Background(), "user-id")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "user-id", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_RecordLoginFailure(t *testing.T) {
	t.Run("without lock", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectExec(`SET failed_login_attempts = \$2`).
			WithArgs("user-id", 3, (*time.Time)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.RecordLoginFailure(context.Background(), "user-id", 3, nil)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("with lock", func(t *testing.T) {
		repo, mock := newUserRepo(t)
		until := time.Now().UTC().Add(15 * time.Minute)

		mock.ExpectExec(`SET failed_login_attempts = \$2`).
			WithArgs("user-id", 5, &until).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.RecordLoginFailure(context.Background(), "user-id", 5, &until)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("exec error wrapped", func(t *testing.T) {
		repo, mock := newUserRepo(t)

		mock.ExpectExec(`SET failed_login_attempts = \$2`).
			WithArgs("user-id", 1, (*time.Time)(nil)).
			WillReturnError(errors.New("connection refused"))

		err := repo.RecordLoginFailure(context.Background(), "user-id", 1, nil)
		assert.ErrorContains(t, err, "failed to record login failure")
	})
}

func TestUserRepository_RecordLoginSuccess(t *testing.T) {
	repo, mock := newUserRepo(t)
	loginAt := time.Now().UTC()

	mock.ExpectExec("SET failed_login_attempts = 0").
		WithArgs("user-id", loginAt).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.RecordLoginSuccess(context.Background(), "user-id", loginAt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdateFullName(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec("SET full_name").
		WithArgs("user-id", "New Name").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdateFullName(context.Background(), "user-id", "New Name")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_UpdatePasswordHash(t *testing.T) {
	repo, mock := newUserRepo(t)

	mock.ExpectExec("SET password_hash").
		WithArgs("user-id", "$2a$10$newhash").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err := repo.UpdatePasswordHash(context.Background(), "user-id", "$2a$10$newhash")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRepository_RecordLoginAttempt(t *testing.T) {
	repo, mock := newUserRepo(t)

	attempt := &domain.LoginAttempt{
		ID:             "attempt-id",
		EmailAttempted: "test@example.com",
		Success:        false,
		IPAddress:      "192.168.1.1",
		UserAgent:      "test-agent",
	}

	mock.ExpectExec("INSERT INTO login_audit").
		WithArgs(attempt.ID, attempt.EmailAttempted, attempt.Success, attempt.IPAddress, attempt.UserAgent).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err := repo.RecordLoginAttempt(context.Background(), attempt)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
