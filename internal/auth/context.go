package auth

import (
	"context"
)

type UserContext struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ctxKey struct{}

func WithUser(ctx context.Context, u *UserContext) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

func GetUser(ctx context.Context) *UserContext {
	if u, ok := ctx.Value(ctxKey{}).(*UserContext); ok {
		return u
	}
	return nil
}

// GetUserEmail is the audit identity of ctx, "system" when nobody is logged in.
func GetUserEmail(ctx context.Context) string {
	if u := GetUser(ctx); u != nil && u.Email != "" {
		return u.Email
	}
	return "system"
}
