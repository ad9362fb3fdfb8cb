package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/homeledger/inventory/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte(strings.Repeat("s", jwtx.MinSecretBytes))

func newKey(t *testing.T, issuer string) *jwtx.HS256 {
	t.Helper()
	k, err := jwtx.NewHS256(testSecret, issuer)
	require.NoError(t, err)
	return k
}

func TestNewHS256RejectsShortSecret(t *testing.T) {
	_, err := jwtx.NewHS256([]byte("short"), "inventory")
	require.ErrorIs(t, err, jwtx.ErrSecretTooShort)
}

func TestSignVerifyRoundTrip(t *testing.T) {
	k := newKey(t, "inventory")
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	claims := jwtx.NewSessionClaims("user-1", "inventory", issued, time.Hour)
	token, err := k.Sign(claims)
	require.NoError(t, err)

	got, err := k.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-1", got.Subject)
	require.Equal(t, issued.Add(time.Hour), got.Expiry().UTC())
	require.NotEmpty(t, got.ID)

	// time claims are not enforced by Verify
	require.True(t, got.ExpiredAt(time.Now()))
}

func TestVerifyFailures(t *testing.T) {
	k := newKey(t, "inventory")
	now := time.Now().UTC()

	t.Run("garbage", func(t *testing.T) {
		_, err := k.Verify("not.a.jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := jwtx.NewHS256([]byte(strings.Repeat("x", jwtx.MinSecretBytes)), "inventory")
		require.NoError(t, err)
		token, err := other.Sign(jwtx.NewSessionClaims("user-1", "inventory", now, time.Hour))
		require.NoError(t, err)

		_, err = k.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		token, err := k.Sign(jwtx.NewSessionClaims("user-1", "someone-else", now, time.Hour))
		require.NoError(t, err)

		_, err = k.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("missing subject", func(t *testing.T) {
		token, err := k.Sign(jwtx.NewSessionClaims("", "inventory", now, time.Hour))
		require.NoError(t, err)

		_, err = k.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("algorithm none", func(t *testing.T) {
		unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewSessionClaims("user-1", "inventory", now, time.Hour))
		token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)

		_, err = k.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrInvalidSig)
	})
}

func TestPeekIgnoresSignature(t *testing.T) {
	other, err := jwtx.NewHS256([]byte(strings.Repeat("x", jwtx.MinSecretBytes)), "")
	require.NoError(t, err)

	issued := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	token, err := other.Sign(jwtx.NewSessionClaims("user-9", "", issued, time.Minute))
	require.NoError(t, err)

	claims, err := jwtx.Peek(token)
	require.NoError(t, err)
	require.Equal(t, "user-9", claims.Subject)
	require.True(t, claims.ExpiredAt(issued.Add(2*time.Minute)))
	require.False(t, claims.ExpiredAt(issued))

	_, err = jwtx.Peek("%%%")
	require.ErrorIs(t, err, jwtx.ErrMalformed)
}
