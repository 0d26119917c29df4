package domain

import "time"

type User struct {
	ID                  string
	Email               string
	FullName            string
	PasswordHash        string
	Role                string
	IsActive            bool
	FailedLoginAttempts int
	LockedUntil         *time.Time
	LastLoginAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// LoginAttempt is an immutable audit entry. EmailAttempted is stored
// whether or not it resolves to an account.
type LoginAttempt struct {
	ID             string
	EmailAttempted string
	Success        bool
	IPAddress      string
	UserAgent      string
	CreatedAt      time.Time
}
