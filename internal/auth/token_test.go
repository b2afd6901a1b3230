package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTokenCodecRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24)

	t.Run("crew claims survive issue and verify", func(t *testing.T) {
		token, exp, err := codec.Issue("account-1", "crew-1", false)
		require.NoError(t, err)
		require.True(t, exp.After(time.Now()))

		claims, err := codec.Verify(token)
		require.NoError(t, err)
		require.Equal(t, "account-1", claims.SubjectID())
		require.Equal(t, "crew-1", claims.CrewID)
		require.False(t, claims.IsAdmin)
	})

	t.Run("admin claims survive issue and verify", func(t *testing.T) {
		token, _, err := codec.Issue(AdminSubjectID, "", true)
		require.NoError(t, err)

		claims, err := codec.Verify(token)
		require.NoError(t, err)
		require.Equal(t, AdminSubjectID, claims.SubjectID())
		require.Empty(t, claims.CrewID)
		require.True(t, claims.IsAdmin)
	})
}

func TestTokenCodecVerifyFailures(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24)

	t.Run("expired token is invalid despite a correct signature", func(t *testing.T) {
		expired := &TokenCodec{secret: []byte("test-secret"), ttl: -time.Hour}
		token, _, err := expired.Issue("account-1", "crew-1", false)
		require.NoError(t, err)

		_, err = codec.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("tampered signature is invalid", func(t *testing.T) {
		token, _, err := codec.Issue("account-1", "crew-1", false)
		require.NoError(t, err)

		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		sig := []byte(parts[2])
		if sig[0] == 'A' {
			sig[0] = 'B'
		} else {
			sig[0] = 'A'
		}
		tampered := parts[0] + "." + parts[1] + "." + string(sig)

		_, err = codec.Verify(tampered)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("token signed with a different secret is invalid", func(t *testing.T) {
		other := NewTokenCodec("other-secret", 24)
		token, _, err := other.Issue("account-1", "crew-1", false)
		require.NoError(t, err)

		_, err = codec.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage input is invalid, not a parse error", func(t *testing.T) {
		_, err := codec.Verify("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)

		_, err = codec.Verify("")
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
