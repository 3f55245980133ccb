package auth

import "context"

type contextKey string

const sessionContextKey contextKey = "adminSession"

// WithSession adds an admin session to the context
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionContextKey, s)
}

// SessionFromContext extracts the admin session from the context
func SessionFromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionContextKey).(Session)
	return s, ok
}
