// Package jwt issues and verifies the HS256 access tokens carried in the auth
// cookie or Authorization header.
package jwt

import (
	"errors"
	"time"

	"staybook/internal/domain/user"
	"staybook/internal/pkg/clock"

	cr "github.com/cockroachdb/errors"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

const (
	issuer   = "staybook"
	audience = "staybook-api"
	leeway   = 5 * time.Second
)

// Claims identifies the caller by Subject (the user id) and Role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// UserID parses Subject; a token with a malformed subject is invalid.
func (c *Claims) UserID() (uuid.UUID, error) {
	id, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return id, nil
}

type Service struct {
	secret   []byte
	lifetime time.Duration
	clock    clock.Clock
	parser   *jwt.Parser
}

func NewService(secret string, lifetime time.Duration, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.NewRealClock()
	}
	return &Service{
		secret:   []byte(secret),
		lifetime: lifetime,
		clock:    clk,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithAudience(audience),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(leeway),
			jwt.WithTimeFunc(clk.Now),
		),
	}
}

func (s *Service) TokenDuration() time.Duration {
	return s.lifetime
}

func (s *Service) GenerateToken(userID uuid.UUID, role user.Role) (string, error) {
	now := s.clock.Now()
	claims := Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    issuer,
			Audience:  jwt.ClaimStrings{audience},
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", cr.Wrap(err, "sign access token")
	}
	return signed, nil
}

// ValidateToken reports ErrExpiredToken for an otherwise sound token past its
// expiry and ErrInvalidToken for everything else.
func (s *Service) ValidateToken(raw string) (*Claims, error) {
	var claims Claims
	_, err := s.parser.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	})
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return nil, ErrExpiredToken
	case err != nil:
		return nil, ErrInvalidToken
	}
	if _, err := claims.UserID(); err != nil {
		return nil, err
	}
	return &claims, nil
}
