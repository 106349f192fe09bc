package auth

import (
	"context"

	"github.com/MrJamesThe3rd/ecocycle/internal/account"
)

type identityKey struct{}

func WithIdentity(ctx context.Context, id account.Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFrom(ctx context.Context) (account.Identity, bool) {
	id, ok := ctx.Value(identityKey{}).(account.Identity)
	return id, ok
}
