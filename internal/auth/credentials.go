package auth

import "crypto/subtle"

// AdminCredentialVerifier checks admin console credentials. Kept as an
// interface so the single-tenant static check can later be swapped for a real
// identity store without touching the guard or the codec.
type AdminCredentialVerifier interface {
	VerifyAdminCredentials(username, password string) bool
}

// StaticAdminCredentials verifies against one configured username/password
// pair. No lockout, rate limiting or audit log; a known hardening gap.
type StaticAdminCredentials struct {
	username string
	password string
}

// NewStaticAdminCredentials builds the verifier from config values.
func NewStaticAdminCredentials(username, password string) *StaticAdminCredentials {
	return &StaticAdminCredentials{username: username, password: password}
}

// VerifyAdminCredentials compares both values in constant time.
func (s *StaticAdminCredentials) VerifyAdminCredentials(username, password string) bool {
	if s.password == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	return userOK && passOK
}
