package admin

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/esports-tournament/constant"
)

// ErrForbiddenRole is returned by ValidateToken for a well-formed token
// that does not carry the admin role.
var ErrForbiddenRole = stderrors.New("token does not grant admin role")

type adminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs an HS256 admin token for subject, valid for the configured TTL.
func (s *AdminAppImpl) IssueToken(ctx context.Context, subject string) (string, error) {
	secret := s.config.Auth.AdminJWTSecret
	if secret == "" {
		return "", fmt.Errorf("admin jwt secret is not configured")
	}

	now := s.now()
	claims := adminClaims{
		Role: constant.AdminRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.Auth.AdminTokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken returns the subject of a valid admin token. With no secret
// configured every token is rejected.
func (s *AdminAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	secret := s.config.Auth.AdminJWTSecret
	if secret == "" {
		return "", fmt.Errorf("admin jwt secret is not configured")
	}

	token, err := jwt.ParseWithClaims(tokenString, &adminClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*adminClaims)
	if !ok || !token.Valid || claims.ExpiresAt == nil {
		return "", fmt.Errorf("invalid claims")
	}
	if claims.Role != constant.AdminRole {
		return "", ErrForbiddenRole
	}
	return claims.Subject, nil
}
