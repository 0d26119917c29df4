package service

//go:generate mockgen -destination=../../mocks/mock_token_codec.go -package=mocks github.com/dashkit/backend/internal/auth/service TokenCodec

import (
	"time"

	"github.com/dashkit/backend/internal/auth/domain"
	autherror "github.com/dashkit/backend/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

type TokenCodec interface {
	Generate(user *domain.User) (string, error)
	Verify(tokenString string) (*SessionClaims, error)
}

// SessionClaims is the full claim set embedded in a session token. The
// subject claim carries the user ID.
type SessionClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenService issues and verifies stateless HS256-signed session tokens.
// The signing secret is injected once at construction and never mutated.
type TokenService struct {
	Secret string
	Expiry time.Duration
}

func NewTokenService(secret string, expiryMinutes int) *TokenService {
	return &TokenService{
		Secret: secret,
		Expiry: time.Duration(expiryMinutes) * time.Minute,
	}
}

func (ts *TokenService) Generate(user *domain.User) (string, error) {
	now := time.Now()

	claims := SessionClaims{
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ts.Expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(ts.Secret))
}

// Verify checks signature and expiry and returns the embedded claims.
// Malformed, tampered and expired tokens all fail with the same
// ErrInvalidToken so callers cannot distinguish the cases.
func (ts *TokenService) Verify(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, autherror.ErrInvalidToken
		}
		return []byte(ts.Secret), nil
	})

	if err != nil || !token.Valid {
		return nil, autherror.ErrInvalidToken
	}

	return claims, nil
}
