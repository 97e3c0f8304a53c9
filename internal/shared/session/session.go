// Package session carries the per-request authenticated user through
// context. A session lives for one request only and is never cached.
package session

import (
	"context"

	"library-backend/internal/domains/user"
)

type contextKey struct{}

var currentUserKey contextKey

// WithCurrentUser returns a context carrying the authenticated user
func WithCurrentUser(ctx context.Context, u *user.User) context.Context {
	return context.WithValue(ctx, currentUserKey, u)
}

// CurrentUser extracts the authenticated user, if any.
// ok is false for anonymous requests.
func CurrentUser(ctx context.Context) (*user.User, bool) {
	u, ok := ctx.Value(currentUserKey).(*user.User)
	return u, ok && u != nil
}
