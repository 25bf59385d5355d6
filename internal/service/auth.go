package service

import (
	"context"
	"time"

	"hiredesk/internal/identity"
	"hiredesk/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued caller-identity token stays valid.
const TokenTTL = 24 * time.Hour

// AuthService exchanges credentials for a signed caller-identity token.
// The uid travels in the sub claim and is what the middleware hands to the
// role authorizer.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	verifier  identity.Verifier
	jwtSecret []byte
}

func NewAuthService(verifier identity.Verifier, jwtSecret string) AuthService {
	return &authService{verifier: verifier, jwtSecret: []byte(jwtSecret)}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", model.InvalidArgument("Missing required fields: email, password")
	}

	uid, err := s.verifier.VerifyPassword(ctx, email, password)
	if err != nil {
		return "", model.Unauthenticated("invalid email or password")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uid,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", model.Internal("Failed to sign token", err)
	}
	return signed, nil
}
