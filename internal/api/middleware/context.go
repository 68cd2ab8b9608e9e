package middleware

import (
	"context"

	"github.com/mallkit/cart-service/internal/models"
)

type ctxKey int

const (
	memberKey ctxKey = iota
	requestIDKey
)

// WithMember stores an authenticated member on the context. BasicAuth uses
// it; handler tests can too.
func WithMember(ctx context.Context, member models.Member) context.Context {
	return context.WithValue(ctx, memberKey, member)
}

// MemberFrom returns the member resolved by BasicAuth for this request.
func MemberFrom(ctx context.Context) (models.Member, bool) {
	member, ok := ctx.Value(memberKey).(models.Member)
	return member, ok
}

func RequestIDFrom(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return "unknown"
}
