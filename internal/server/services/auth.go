package services

import (
	"time"

	"github.com/dmitrijs2005/pomokeeper/internal/common"
	"github.com/dmitrijs2005/pomokeeper/internal/server/auth"
	"github.com/dmitrijs2005/pomokeeper/internal/server/config"
)

// AuthService guards the API with the single shared password. A successful
// login yields a signed token for the auth cookie.
type AuthService struct {
	password  string
	jwtSecret []byte
	validity  time.Duration
	now       func() time.Time
}

func NewAuthService(cfg *config.Config) *AuthService {
	validity := cfg.CookieValidityDuration
	if validity <= 0 {
		validity = common.AuthCookieTTL
	}
	return &AuthService{
		password:  cfg.AppPassword,
		jwtSecret: []byte(cfg.SecretKey),
		validity:  validity,
		now:       time.Now,
	}
}

// Validity is the lifetime of issued tokens and the cookie that carries them.
func (s *AuthService) Validity() time.Duration {
	return s.validity
}

// Login returns a session token for the right password, common.ErrorConfig
// when no password is configured and common.ErrorUnauthorized otherwise.
func (s *AuthService) Login(password string) (string, error) {
	if s.password == "" {
		return "", common.ErrorConfig
	}
	if !auth.CheckPassword(s.password, password) {
		return "", common.ErrorUnauthorized
	}

	token, err := auth.GenerateToken(s.jwtSecret, s.validity, s.now())
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}

// Authenticated reports whether token is a live session token.
func (s *AuthService) Authenticated(token string) bool {
	if token == "" {
		return false
	}
	return auth.VerifyToken(token, s.jwtSecret) == nil
}
