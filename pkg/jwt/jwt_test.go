package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tm := NewTokenManager("test-secret", "portfolio-api", 24)

	token, issued, err := tm.GenerateToken("admin@example.com", "Admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotEmpty(t, issued.ID)

	claims, err := tm.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", claims.Email)
	assert.Equal(t, "Admin", claims.Name)
	assert.Equal(t, issued.ID, claims.TokenID())
	assert.Equal(t, "portfolio-api", claims.Issuer)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestGenerateToken_UniqueIDs(t *testing.T) {
	tm := NewTokenManager("test-secret", "portfolio-api", 1)

	_, first, err := tm.GenerateToken("admin@example.com", "Admin")
	require.NoError(t, err)
	_, second, err := tm.GenerateToken("admin@example.com", "Admin")
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := NewTokenManager("secret-a", "portfolio-api", 1)
	validator := NewTokenManager("secret-b", "portfolio-api", 1)

	token, _, err := issuer.GenerateToken("admin@example.com", "Admin")
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_WrongIssuer(t *testing.T) {
	issuer := NewTokenManager("secret", "someone-else", 1)
	validator := NewTokenManager("secret", "portfolio-api", 1)

	token, _, err := issuer.GenerateToken("admin@example.com", "Admin")
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateToken_Expired(t *testing.T) {
	tm := NewTokenManager("secret", "portfolio-api", 1)
	tm.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	token, _, err := tm.GenerateToken("admin@example.com", "Admin")
	require.NoError(t, err)

	tm.now = time.Now
	_, err = tm.ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestValidateToken_Garbage(t *testing.T) {
	tm := NewTokenManager("secret", "portfolio-api", 1)

	_, err := tm.ValidateToken("not.a.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = tm.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateToken_Tampered(t *testing.T) {
	tm := NewTokenManager("secret", "portfolio-api", 1)

	token, _, err := tm.GenerateToken("admin@example.com", "Admin")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	_, err = tm.ValidateToken(tampered)
	assert.Error(t, err)
}

func TestTimingSafeCompare(t *testing.T) {
	assert.True(t, TimingSafeCompare("abc", "abc"))
	assert.False(t, TimingSafeCompare("abc", "abd"))
	assert.False(t, TimingSafeCompare("abc", "abcd"))
}
