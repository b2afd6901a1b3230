package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/runcrewhq/crew-directory/internal/domain"
)

func TestResolverTokenEvidence(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24)
	resolver := NewResolver(codec)

	t.Run("admin token yields an admin session", func(t *testing.T) {
		token, _, err := codec.Issue(AdminSubjectID, "", true)
		require.NoError(t, err)

		session := resolver.Resolve(CookieSet{CookieToken: token})
		require.True(t, session.IsAdmin())
		require.Equal(t, domain.AuthMethodToken, session.Method)
	})

	t.Run("crew token yields a crew session", func(t *testing.T) {
		token, _, err := codec.Issue("account-1", "crew-1", false)
		require.NoError(t, err)

		session := resolver.Resolve(CookieSet{CookieToken: token})
		require.True(t, session.IsCrew())
		require.Equal(t, "crew-1", session.CrewID)
		require.Equal(t, "account-1", session.AccountID)
		require.Equal(t, domain.AuthMethodToken, session.Method)
	})

	t.Run("valid token with no role does not fall back to legacy cookies", func(t *testing.T) {
		token, _, err := codec.Issue("account-1", "", false)
		require.NoError(t, err)

		session := resolver.Resolve(CookieSet{
			CookieToken:         token,
			CookieCrewAuth:      "true",
			CookieCrewID:        "crew-1",
			CookieCrewAccountID: "account-1",
		})
		require.False(t, session.Authenticated)
	})

	t.Run("token precedence over legacy crew cookies", func(t *testing.T) {
		token, _, err := codec.Issue("account-1", "crew-1", false)
		require.NoError(t, err)

		session := resolver.Resolve(CookieSet{
			CookieToken:         token,
			CookieCrewAuth:      "true",
			CookieCrewID:        "crew-other",
			CookieCrewAccountID: "account-other",
		})
		require.Equal(t, "crew-1", session.CrewID)
		require.Equal(t, domain.AuthMethodToken, session.Method)
	})
}

func TestResolverLegacyFallback(t *testing.T) {
	t.Parallel()

	codec := NewTokenCodec("test-secret", 24)
	resolver := NewResolver(codec)

	expiredCodec := &TokenCodec{secret: []byte("test-secret"), ttl: -time.Hour}
	expiredToken, _, err := expiredCodec.Issue("account-1", "crew-1", false)
	require.NoError(t, err)

	t.Run("expired token falls back to legacy crew cookies", func(t *testing.T) {
		session := resolver.Resolve(CookieSet{
			CookieToken:         expiredToken,
			CookieCrewAuth:      "true",
			CookieCrewID:        "crew-1",
			CookieCrewAccountID: "account-1",
		})
		require.True(t, session.IsCrew())
		require.Equal(t, domain.AuthMethodLegacy, session.Method)
		require.Equal(t, "crew-1", session.CrewID)
	})

	t.Run("legacy admin boolean yields an admin session", func(t *testing.T) {
		session := resolver.Resolve(CookieSet{CookieAdminAuth: "true"})
		require.True(t, session.IsAdmin())
		require.Equal(t, domain.AuthMethodLegacy, session.Method)
	})

	t.Run("legacy admin boolean must be the exact literal", func(t *testing.T) {
		session := resolver.Resolve(CookieSet{CookieAdminAuth: "1"})
		require.False(t, session.Authenticated)
	})

	t.Run("legacy crew cookies require the full triple", func(t *testing.T) {
		session := resolver.Resolve(CookieSet{
			CookieCrewAuth: "true",
			CookieCrewID:   "crew-1",
		})
		require.False(t, session.Authenticated)
	})

	t.Run("no cookies yields unauthenticated", func(t *testing.T) {
		session := resolver.Resolve(CookieSet{})
		require.False(t, session.Authenticated)
		require.False(t, session.IsAdmin())
		require.False(t, session.IsCrew())
	})
}
