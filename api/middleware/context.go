package middleware

import (
	"context"

	"github.com/freightdesk/backoffice/pkg/auth"
)

type contextKey string

const ctxActor contextKey = "actor"

// WithActor stores the verified principal on the request context.
func WithActor(ctx context.Context, actor auth.Actor) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxActor, actor)
}

// ActorFromContext returns the principal set by Auth. The zero Actor fails
// every permission check.
func ActorFromContext(ctx context.Context) auth.Actor {
	if ctx == nil {
		return auth.Actor{}
	}
	if v, ok := ctx.Value(ctxActor).(auth.Actor); ok {
		return v
	}
	return auth.Actor{}
}
