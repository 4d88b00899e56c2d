package service

import (
	"strings"
	"testing"
	"time"

	"dicefit-api/internal/core"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-hs256"

func TestCredentialService_HashAndVerify(t *testing.T) {
	creds := NewCredentialService(testSecret, WithCost(4))

	hash, err := creds.Hash("pw1")
	require.NoError(t, err)

	assert.NotEqual(t, "pw1", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"), "cost is never below 10")
	assert.True(t, creds.Verify("pw1", hash))
	assert.False(t, creds.Verify("pw2", hash))
	assert.False(t, creds.Verify("pw1", "not-a-hash"))
}

func TestCredentialService_Tokens(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	creds := NewCredentialService(testSecret, WithClock(clock))

	token, expiresAt, err := creds.IssueToken(42)
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), expiresAt)

	t.Run("RoundTrip", func(t *testing.T) {
		id, err := creds.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("Expired", func(t *testing.T) {
		later := NewCredentialService(testSecret, WithClock(func() time.Time {
			return now.Add(time.Hour + time.Second)
		}))
		_, err := later.VerifyToken(token)
		assert.ErrorIs(t, err, core.ErrInvalidToken)
	})

	t.Run("StillValidJustBeforeExpiry", func(t *testing.T) {
		later := NewCredentialService(testSecret, WithClock(func() time.Time {
			return now.Add(59 * time.Minute)
		}))
		id, err := later.VerifyToken(token)
		require.NoError(t, err)
		assert.Equal(t, int64(42), id)
	})

	t.Run("OtherSecret", func(t *testing.T) {
		other := NewCredentialService("another-secret-that-is-long-enough-too", WithClock(clock))
		_, err := other.VerifyToken(token)
		assert.ErrorIs(t, err, core.ErrInvalidToken)
	})

	t.Run("Malformed", func(t *testing.T) {
		for _, bad := range []string{"", "abc", "a.b.c", token + "x"} {
			_, err := creds.VerifyToken(bad)
			assert.ErrorIs(t, err, core.ErrInvalidToken, bad)
		}
	})

	t.Run("NoneAlgorithm", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, &claims{
			ID: 42,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
				Issuer:    tokenIssuer,
			},
		})
		s, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = creds.VerifyToken(s)
		assert.ErrorIs(t, err, core.ErrInvalidToken)
	})
}
