package auth

import (
	"github.com/runcrewhq/crew-directory/internal/domain"
)

// AdminSubjectID is the subject identifier of the single admin principal.
const AdminSubjectID = "admin"

// Resolver derives the authenticated identity of a request from its cookie
// set. Evidence is evaluated in a fixed order: the signed token first, then
// the legacy admin boolean, then the legacy crew cookie triple. Every
// consumer of request identity goes through this one function; only the route
// guard keeps its own raw-cookie fast path.
type Resolver struct {
	codec *TokenCodec
}

// NewResolver builds a resolver over the token codec.
func NewResolver(codec *TokenCodec) *Resolver {
	return &Resolver{codec: codec}
}

// Resolve determines the session for a cookie set. A token that verifies but
// carries neither the admin flag nor a crew id yields an unauthenticated
// session without falling back to the legacy cookies.
func (r *Resolver) Resolve(cookies CookieSet) domain.Session {
	if raw, ok := cookies[CookieToken]; ok && raw != "" {
		if claims, err := r.codec.Verify(raw); err == nil {
			return sessionFromClaims(claims)
		}
		// invalid or expired: treated identically to no token
	}

	if cookies[CookieAdminAuth] == "true" {
		return domain.Session{
			Authenticated: true,
			Role:          domain.RoleAdmin,
			Method:        domain.AuthMethodLegacy,
			SubjectID:     AdminSubjectID,
		}
	}

	if cookies[CookieCrewAuth] == "true" && cookies[CookieCrewID] != "" && cookies[CookieCrewAccountID] != "" {
		return domain.Session{
			Authenticated: true,
			Role:          domain.RoleCrew,
			Method:        domain.AuthMethodLegacy,
			SubjectID:     cookies[CookieCrewAccountID],
			CrewID:        cookies[CookieCrewID],
			AccountID:     cookies[CookieCrewAccountID],
		}
	}

	return domain.Session{}
}

func sessionFromClaims(claims *SessionClaims) domain.Session {
	switch {
	case claims.IsAdmin:
		return domain.Session{
			Authenticated: true,
			Role:          domain.RoleAdmin,
			Method:        domain.AuthMethodToken,
			SubjectID:     claims.SubjectID(),
		}
	case claims.CrewID != "":
		return domain.Session{
			Authenticated: true,
			Role:          domain.RoleCrew,
			Method:        domain.AuthMethodToken,
			SubjectID:     claims.SubjectID(),
			CrewID:        claims.CrewID,
			AccountID:     claims.SubjectID(),
		}
	default:
		return domain.Session{}
	}
}
