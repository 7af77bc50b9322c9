package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/stocktrack/inventory-api/internal/api/metrics"
	"github.com/stocktrack/inventory-api/internal/core/auth"
	"github.com/stocktrack/inventory-api/internal/core/domain"
	"github.com/stocktrack/inventory-api/internal/core/ports"
)

// LoginLimiter abstracts the attempt counter (Redis). Hit increments the
// per-username counter and returns the new count within the current window.
type LoginLimiter interface {
	Hit(ctx context.Context, username string) (int64, error)
}

// AuthService verifies credentials against the identity store and issues
// tokens. Concurrent logins are independent; the service holds no mutable
// state after construction.
type AuthService struct {
	users       ports.UserRepository
	hasher      *auth.Hasher
	codec       *auth.Codec
	limiter     LoginLimiter
	maxAttempts int64
	audit       ports.AuditSink
	log         zerolog.Logger
}

func NewAuthService(users ports.UserRepository, hasher *auth.Hasher, codec *auth.Codec, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:  users,
		hasher: hasher,
		codec:  codec,
		log:    log,
	}
}

// WithLoginLimiter enables per-username attempt throttling. Logins beyond
// maxAttempts within the limiter's window fail with ErrTooManyAttempts.
func (s *AuthService) WithLoginLimiter(limiter LoginLimiter, maxAttempts int64) *AuthService {
	s.limiter = limiter
	s.maxAttempts = maxAttempts
	return s
}

// WithAudit attaches an audit sink for login outcomes.
func (s *AuthService) WithAudit(sink ports.AuditSink) *AuthService {
	s.audit = sink
	return s
}

// Login authenticates username/password and returns a signed token.
//
// Unknown user and wrong password are deliberately collapsed into the same
// ErrInvalidCredentials so response content never reveals whether a username
// exists. Store failures surface as wrapped errors, not credential errors.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if s.limiter != nil {
		attempts, err := s.limiter.Hit(ctx, username)
		if err != nil {
			// Throttling is best-effort: a broken limiter must not take
			// down logins. The failure is still visible server-side.
			s.log.Warn().Err(err).Msg("login limiter unavailable")
		} else if attempts > s.maxAttempts {
			metrics.LoginAttemptsBlockedTotal.Inc()
			s.recordLogin(username, domain.AuditDenied, "throttled")
			return "", domain.ErrTooManyAttempts
		}
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			s.recordLogin(username, domain.AuditDenied, "invalid credentials")
			return "", domain.ErrInvalidCredentials
		}
		return "", fmt.Errorf("find user: %w", err)
	}

	start := time.Now()
	ok := s.hasher.Verify(password, user.PasswordHash)
	metrics.PasswordHashDuration.Observe(time.Since(start).Seconds())
	if !ok {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		s.recordLogin(username, domain.AuditDenied, "invalid credentials")
		return "", domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	s.recordLogin(username, domain.AuditAllowed, "")
	s.log.Info().Str("username", username).Str("role", string(user.Role)).Msg("login succeeded")

	return token, nil
}

// Register creates a user with a hashed password. Duplicate usernames are
// rejected by the store's unique index and surface as ErrUserExists.
func (s *AuthService) Register(ctx context.Context, username, password string, role domain.Role) (*domain.User, error) {
	if username == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if _, err := domain.ParseRole(string(role)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     username,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("username", username).Str("role", string(role)).Msg("user registered")
	return created, nil
}

func (s *AuthService) recordLogin(username string, decision domain.AuditDecision, reason string) {
	if s.audit == nil {
		return
	}
	s.audit.Record(domain.AuditEvent{
		Subject:   username,
		Action:    "login",
		Decision:  decision,
		Reason:    reason,
		Timestamp: time.Now().UTC(),
	})
}
