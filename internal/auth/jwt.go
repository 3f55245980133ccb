package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	sessionIssuer  = "paint-stock-api"
	sessionSubject = "admin"
)

// ErrInvalidSession is returned for missing, malformed or expired session tokens
var ErrInvalidSession = errors.New("invalid session")

// Session is an authenticated admin session
type Session struct {
	ID        string
	ExpiresAt time.Time
}

// SessionManager issues and validates HMAC-signed admin session tokens
type SessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewSessionManager creates a session manager whose tokens live for ttl
func NewSessionManager(secret string, ttl time.Duration) *SessionManager {
	return &SessionManager{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// TTL returns the lifetime of an issued token
func (m *SessionManager) TTL() time.Duration {
	return m.ttl
}

// Issue creates a new session token
func (m *SessionManager) Issue() (string, Session, error) {
	return m.issue(uuid.NewString())
}

// Refresh issues a token for an existing session with a renewed expiry
func (m *SessionManager) Refresh(s Session) (string, Session, error) {
	return m.issue(s.ID)
}

func (m *SessionManager) issue(id string) (string, Session, error) {
	now := m.now()
	session := Session{ID: id, ExpiresAt: now.Add(m.ttl)}

	claims := jwt.RegisteredClaims{
		ID:        id,
		Issuer:    sessionIssuer,
		Subject:   sessionSubject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", Session{}, fmt.Errorf("failed to sign session token: %w", err)
	}
	return signed, session, nil
}

// Validate parses a token and returns its session
func (m *SessionManager) Validate(tokenString string) (Session, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithSubject(sessionSubject),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	if !token.Valid {
		return Session{}, ErrInvalidSession
	}

	return Session{ID: claims.ID, ExpiresAt: claims.ExpiresAt.Time}, nil
}
