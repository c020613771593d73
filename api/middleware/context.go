package middleware

import "context"

type contextKey string

const (
	ctxUserID    contextKey = "user_id"
	ctxCartOwner contextKey = "cart_owner"
)

func UserIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxUserID).(string); ok {
		return v
	}
	return ""
}

// CartOwnerFromContext returns the owner key resolved by CartOwner, such as
// "user:<sub>" or "session:<id>".
func CartOwnerFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if v, ok := ctx.Value(ctxCartOwner).(string); ok {
		return v
	}
	return ""
}

// WithUserID injects the user identifier into the context.
func WithUserID(ctx context.Context, userID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxUserID, userID)
}

// WithCartOwner injects the cart owner key for downstream handlers.
func WithCartOwner(ctx context.Context, owner string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxCartOwner, owner)
}
