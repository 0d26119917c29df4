package service

import (
	"unicode"

	autherror "github.com/dashkit/backend/internal/errors"
	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted bcrypt hash from the plain password. The
// returned string embeds the algorithm, cost and salt, so two calls on the
// same input produce different hashes.
func HashPassword(plainPassword string) (string, error) {
	if plainPassword == "" {
		return "", autherror.ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hashed), nil
}

// VerifyPassword reports whether the plain password reproduces the stored
// hash. Empty or malformed input yields false, never an error.
func VerifyPassword(plainPassword, hashedPassword string) bool {
	if plainPassword == "" || hashedPassword == "" {
		return false
	}

	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(plainPassword)) == nil
}

// ValidNewPassword enforces the password policy for password changes:
// at least 8 characters including a digit and a symbol.
func ValidNewPassword(password string) bool {
	if len(password) < 8 {
		return false
	}

	var hasNumber, hasSymbol bool
	for _, ch := range password {
		switch {
		case unicode.IsDigit(ch):
			hasNumber = true
		case !unicode.IsLetter(ch) && !unicode.IsDigit(ch):
			hasSymbol = true
		}
	}

	return hasNumber && hasSymbol
}
