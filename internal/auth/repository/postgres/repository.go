package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dashkit/backend/internal/auth/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of pgxpool.Pool the repository needs; pgxmock satisfies
// it in tests.
type DB interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type UserRepository struct {
	db DB
}

func NewUserRepository(db DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, email, full_name, password_hash, role, is_active,
		       failed_login_attempts, locked_until, last_login_at, created_at, updated_at`

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
		LIMIT 1;
	`

	return r.scanUser(r.db.QueryRow(ctx, query, email))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
		LIMIT 1;
	`

	return r.scanUser(r.db.QueryRow(ctx, query, id))
}

func (r *UserRepository) RecordLoginFailure(ctx context.Context, id string, failedAttempts int, lockedUntil *time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_attempts = $2, locked_until = $3, updated_at = now()
		WHERE id = $1
	`, id, failedAttempts, lockedUntil)
	if err != nil {
		return fmt.Errorf("failed to record login failure: %w", err)
	}
	return nil
}

func (r *UserRepository) RecordLoginSuccess(ctx context.Context, id string, lastLoginAt time.Time) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET failed_login_attempts = 0, locked_until = NULL, last_login_at = $2, updated_at = now()
		WHERE id = $1
	`, id, lastLoginAt)
	if err != nil {
		return fmt.Errorf("failed to record login success: %w", err)
	}
	return nil
}

func (r *UserRepository) UpdateFullName(ctx context.Context, id, fullName string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET full_name = $2, updated_at = now()
		WHERE id = $1
	`, id, fullName)
	return err
}

func (r *UserRepository) UpdatePasswordHash(ctx context.Context, id, passwordHash string) error {
	_, err := r.db.Exec(ctx, `
		UPDATE users
		SET password_hash = $2, updated_at = now()
		WHERE id = $1
	`, id, passwordHash)
	return err
}

func (r *UserRepository) RecordLoginAttempt(ctx context.Context, attempt *domain.LoginAttempt) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO login_audit (id, email_attempted, success, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, now())
	`, attempt.ID, attempt.EmailAttempted, attempt.Success, attempt.IPAddress, attempt.UserAgent)
	return err
}

func (r *UserRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	err := row.Scan(
		&user.ID, &user.Email, &user.FullName, &user.PasswordHash, &user.Role, &user.IsActive,
		&user.FailedLoginAttempts, &user.LockedUntil, &user.LastLoginAt, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan user row: %w", err)
	}

	return &user, nil
}
