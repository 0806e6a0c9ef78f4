package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sign(t *testing.T, claims SessionClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("k"))
	require.NoError(t, err)
	return s
}

func TestParseClaims(t *testing.T) {
	token := sign(t, SessionClaims{
		Email:            "g@farm.io",
		Role:             "authenticated",
		RegisteredClaims: jwt.RegisteredClaims{Subject: "uid-1"},
	})

	claims, err := ParseClaims(token)

	require.NoError(t, err)
	assert.Equal(t, "g@farm.io", claims.Email)
	sub, err := Subject(token)
	require.NoError(t, err)
	assert.Equal(t, "uid-1", sub)
}

func TestIsExpired(t *testing.T) {
	now := time.Now()
	exp := func(d time.Duration) string {
		return sign(t, SessionClaims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(d))}})
	}

	assert.False(t, IsExpired(exp(time.Hour), now))
	assert.True(t, IsExpired(exp(-time.Minute), now))
	assert.True(t, IsExpired(exp(10*time.Second), now))
	assert.False(t, IsExpired(sign(t, SessionClaims{}), now))
	assert.True(t, IsExpired("not-a-token", now))
}

func TestSubjectMissing(t *testing.T) {
	_, err := Subject(sign(t, SessionClaims{Email: "x@y.z"}))
	assert.Error(t, err)
}
