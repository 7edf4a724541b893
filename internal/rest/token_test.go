package rest

import (
	"testing"
	"time"

	"github.com/dwikikusuma/storefront/internal/auth/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokens("test-secret", time.Hour)

	signed, err := tokens.Issue(domain.Session{Username: "admin", Role: domain.RoleAdmin})
	require.NoError(t, err)

	sess, err := tokens.Parse(signed)
	require.NoError(t, err)
	assert.Equal(t, "admin", sess.Username)
	assert.Equal(t, domain.RoleAdmin, sess.Role)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	signed, err := NewTokens("secret-a", time.Hour).Issue(domain.Session{Username: "user", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = NewTokens("secret-b", time.Hour).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	signed, err := NewTokens("test-secret", -time.Minute).Issue(domain.Session{Username: "user", Role: domain.RoleUser})
	require.NoError(t, err)

	_, err = NewTokens("test-secret", -time.Minute).Parse(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbageRejected(t *testing.T) {
	_, err := NewTokens("test-secret", time.Hour).Parse("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
