package model

import "github.com/golang-jwt/jwt/v5"

// AttemptClaims are JWT claims scoping a token to one quiz attempt
type AttemptClaims struct {
	AttemptID string `json:"attemptId"`
	jwt.RegisteredClaims
}
