package service

import (
	"animalquiz/internal/model"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// AttemptTokenTTL is how long an attempt token stays valid
const AttemptTokenTTL = 24 * time.Hour

// AuthService signs and checks attempt-scoped tokens
type AuthService struct {
	jwtSecret []byte
	now       func() time.Time
}

// NewAuthService creates an auth service signing with secret
func NewAuthService(secret string) *AuthService {
	return &AuthService{
		jwtSecret: []byte(secret),
		now:       time.Now,
	}
}

// IssueAttemptToken creates a token granting access to one attempt
func (s *AuthService) IssueAttemptToken(attemptID string) (string, error) {
	now := s.now()
	claims := &model.AttemptClaims{
		AttemptID: attemptID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(AttemptTokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}

// ValidateAttemptToken checks a token and returns its claims
func (s *AuthService) ValidateAttemptToken(tokenString string) (*model.AttemptClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &model.AttemptClaims{}, func(token *jwt.Token) (interface{}, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*model.AttemptClaims)
	if !ok || !token.Valid || claims.AttemptID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
