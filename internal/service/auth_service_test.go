package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttemptTokenRoundTrip(t *testing.T) {
	svc := NewAuthService("secret")

	token, err := svc.IssueAttemptToken("a_1234abcd")
	require.NoError(t, err)

	claims, err := svc.ValidateAttemptToken(token)
	require.NoError(t, err)
	assert.Equal(t, "a_1234abcd", claims.AttemptID)
}

func TestAttemptTokenWrongSecret(t *testing.T) {
	token, err := NewAuthService("one").IssueAttemptToken("a_1")
	require.NoError(t, err)

	_, err = NewAuthService("two").ValidateAttemptToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAttemptTokenExpired(t *testing.T) {
	svc := NewAuthService("secret")
	issued := time.Now()
	svc.now = func() time.Time { return issued }

	token, err := svc.IssueAttemptToken("a_1")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(AttemptTokenTTL + time.Minute) }
	_, err = svc.ValidateAttemptToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestAttemptTokenGarbage(t *testing.T) {
	_, err := NewAuthService("secret").ValidateAttemptToken("not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
