// Package ctxutil carries request-scoped identity through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
)

// WithUserID returns ctx carrying the authenticated user's ID.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx returns the authenticated user's ID. ok is false for an
// anonymous context or a nil UUID.
func UserIDFromCtx(ctx context.Context) (id uuid.UUID, ok bool) {
	id, _ = ctx.Value(userIDKey{}).(uuid.UUID)
	return id, id != uuid.Nil
}

// WithRequestID returns ctx carrying the request correlation ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFromCtx returns the request correlation ID, or "".
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
