package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/straye-as/paint-stock-api/internal/config"
	"go.uber.org/zap"
)

// SessionTokenHeader carries a refreshed session token on every
// authenticated response, extending the session while the admin is active
const SessionTokenHeader = "X-Session-Token"

// ErrInvalidPassword is returned by Login for a wrong password
var ErrInvalidPassword = errors.New("invalid password")

// Gate guards the settings and reset endpoints behind the admin password
type Gate struct {
	passwordHash string
	sessions     *SessionManager
	logger       *zap.Logger
}

// NewGate creates the admin gate. A configured hash takes precedence over
// the plain admin password.
func NewGate(cfg *config.AuthConfig, logger *zap.Logger) *Gate {
	hash := cfg.PasswordHash
	if hash == "" {
		hash = HashPassword(cfg.AdminPassword)
	}
	return &Gate{
		passwordHash: hash,
		sessions:     NewSessionManager(cfg.JWTSecret, cfg.SessionTimeout()),
		logger:       logger,
	}
}

// Login checks the password and starts a session
func (g *Gate) Login(password string) (string, Session, error) {
	if !VerifyPassword(password, g.passwordHash) {
		return "", Session{}, ErrInvalidPassword
	}
	token, session, err := g.sessions.Issue()
	if err != nil {
		return "", Session{}, err
	}
	g.logger.Info("admin session started", zap.String("session_id", session.ID))
	return token, session, nil
}

// SessionTTL returns how long a session stays valid without activity
func (g *Gate) SessionTTL() time.Duration {
	return g.sessions.TTL()
}

// RequireAdmin rejects requests without a valid Bearer session token
func (g *Gate) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Unauthorized: missing authorization header", http.StatusUnauthorized)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			http.Error(w, "Unauthorized: invalid authorization header format", http.StatusUnauthorized)
			return
		}

		session, err := g.sessions.Validate(parts[1])
		if err != nil {
			g.logger.Warn("admin session rejected",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_addr", r.RemoteAddr),
				zap.Error(err),
			)
			http.Error(w, "Unauthorized: session expired or invalid", http.StatusUnauthorized)
			return
		}

		if refreshed, _, err := g.sessions.Refresh(session); err == nil {
			w.Header().Set(SessionTokenHeader, refreshed)
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session)))
	})
}
