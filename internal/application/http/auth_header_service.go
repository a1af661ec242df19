package apphttp

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/hashicorp/go-hclog"

	httpports "qform.io/cli/internal/core/ports/http"
)

// AuthHeaderService emits the Authorization header for the current token.
// Tokens are never refreshed here; an expired JWT is only reported.
type AuthHeaderService struct {
	tokens httpports.TokenSource
	logger hclog.Logger
	now    func() time.Time
}

func NewAuthHeaderService(tokens httpports.TokenSource, logger hclog.Logger) *AuthHeaderService {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &AuthHeaderService{tokens: tokens, logger: logger, now: time.Now}
}

func (s *AuthHeaderService) Headers(ctx context.Context) (map[string]string, error) {
	h := map[string]string{}
	if s.tokens == nil {
		return h, nil
	}
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load token: %w", err)
	}
	if token == "" {
		s.logger.Debug("no token configured, sending without Authorization")
		return h, nil
	}
	s.inspect(token)
	h["Authorization"] = "Bearer " + token
	return h, nil
}

// inspect decodes JWT claims without verifying the signature. Opaque tokens
// are passed through silently.
func (s *AuthHeaderService) inspect(token string) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return
	}
	if claims.ExpiresAt == nil {
		return
	}
	if exp := claims.ExpiresAt.Time; s.now().After(exp) {
		s.logger.Warn("access token has expired, the backend will likely reject it", "expired_at", exp, "subject", claims.Subject)
		return
	}
	s.logger.Debug("using access token", "subject", claims.Subject, "expires_at", claims.ExpiresAt.Time)
}
