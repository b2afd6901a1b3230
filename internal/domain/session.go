package domain

// Role differentiates the two actor kinds the service knows about.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleCrew  Role = "crew"
)

// AuthMethod records which credential scheme authenticated a request.
type AuthMethod string

const (
	AuthMethodToken  AuthMethod = "jwt"
	AuthMethodLegacy AuthMethod = "legacy"
)

// Session is the resolved identity of a request. The zero value is an
// unauthenticated session.
type Session struct {
	Authenticated bool
	Role          Role
	Method        AuthMethod
	SubjectID     string
	CrewID        string
	AccountID     string
}

// IsAdmin reports whether the session belongs to the admin principal.
func (s Session) IsAdmin() bool {
	return s.Authenticated && s.Role == RoleAdmin
}

// IsCrew reports whether the session belongs to a crew account.
func (s Session) IsCrew() bool {
	return s.Authenticated && s.Role == RoleCrew
}
