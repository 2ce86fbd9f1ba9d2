// Package identity resolves the calling user from request metadata.
//
// Identity is an unauthenticated, trusted header value used purely to
// partition storage. Requests without the header share the anonymous
// identity.
package identity

import (
	"context"
	"net/http"
)

// HeaderName is the request header carrying the caller's user ID
const HeaderName = "x-user-id"

// Anonymous is the identity used when no user ID header is present
const Anonymous = "anonymous"

type contextKey struct{}

// WithUserID returns a context carrying the given user ID
func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, contextKey{}, userID)
}

// FromContext returns the user ID carried by the context, or Anonymous
// if none was set
func FromContext(ctx context.Context) string {
	if userID, ok := ctx.Value(contextKey{}).(string); ok && userID != "" {
		return userID
	}
	return Anonymous
}

// FromRequest extracts the user ID header from an HTTP request and
// stores it on the context. It is installed as the transport's context
// hook so every tool handler sees the caller's identity.
func FromRequest(ctx context.Context, r *http.Request) context.Context {
	if userID := r.Header.Get(HeaderName); userID != "" {
		return WithUserID(ctx, userID)
	}
	return ctx
}
