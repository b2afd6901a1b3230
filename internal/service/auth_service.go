package service

import (
	"context"
	"time"

	"github.com/runcrewhq/crew-directory/internal/auth"
	"github.com/runcrewhq/crew-directory/internal/config"
	"github.com/runcrewhq/crew-directory/internal/domain"
	"github.com/runcrewhq/crew-directory/internal/repository"
	apperrors "github.com/runcrewhq/crew-directory/pkg/util"
)

// AuthService coordinates the admin and crew login flows and exposes the
// session primitives to transport code.
type AuthService struct {
	codec          *auth.TokenCodec
	resolver       *auth.Resolver
	adminCreds     auth.AdminCredentialVerifier
	accounts       repository.CrewAccountRepository
	adminCookieTTL time.Duration
}

// AuthDependencies encapsulates requirements for auth service.
type AuthDependencies struct {
	AdminCredentials auth.AdminCredentialVerifier
	AccountRepo      repository.CrewAccountRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	codec := auth.NewTokenCodec(cfg.Auth.TokenSecret, cfg.Auth.TokenTTLHours)
	adminCreds := deps.AdminCredentials
	if adminCreds == nil {
		adminCreds = auth.NewStaticAdminCredentials(cfg.Auth.AdminUsername, cfg.Auth.AdminPassword)
	}
	cookieTTL := time.Duration(cfg.Auth.AdminCookieTTLHours) * time.Hour
	if cookieTTL <= 0 {
		cookieTTL = 2 * time.Hour
	}
	return &AuthService{
		codec:          codec,
		resolver:       auth.NewResolver(codec),
		adminCreds:     adminCreds,
		accounts:       deps.AccountRepo,
		adminCookieTTL: cookieTTL,
	}
}

// AdminLogin checks the configured admin credentials and mints a token.
func (s *AuthService) AdminLogin(username, password string) (string, time.Time, error) {
	if !s.adminCreds.VerifyAdminCredentials(username, password) {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	return s.codec.Issue(auth.AdminSubjectID, "", true)
}

// CrewLogin authenticates a crew account and mints a token bound to its crew.
func (s *AuthService) CrewLogin(ctx context.Context, email, password string) (*domain.CrewAccount, string, time.Time, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		// not-found and transport errors both read as a failed login
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(account.PasswordHash, password); err != nil {
		return nil, "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.codec.Issue(account.ID, account.CrewID, false)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return account, token, exp, nil
}

// ResolveSession derives the request identity from its cookie set.
func (s *AuthService) ResolveSession(cookies auth.CookieSet) domain.Session {
	return s.resolver.Resolve(cookies)
}

// Resolver exposes the unified session resolver.
func (s *AuthService) Resolver() *auth.Resolver {
	return s.resolver
}

// AdminCookieTTL is the lifetime of the cookies set by admin login. It is a
// different clock than the token TTL; see config.AuthConfig.
func (s *AuthService) AdminCookieTTL() time.Duration {
	return s.adminCookieTTL
}

// TokenTTL is the signed token lifetime, also used for crew login cookies.
func (s *AuthService) TokenTTL() time.Duration {
	return s.codec.TTL()
}
