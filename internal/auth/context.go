package auth

import "context"

type identityCtxKey struct{}

// WithIdentity кладет identity в контекст запроса
func WithIdentity(ctx context.Context, identity *Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey{}, identity)
}

// FromContext достает identity из контекста.
// За защищенными маршрутами identity присутствует всегда.
func FromContext(ctx context.Context) (*Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey{}).(*Identity)
	return identity, ok
}
