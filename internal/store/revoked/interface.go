package revoked

import "context"

type RevokedStoreHandler interface {
	Insert(ctx context.Context, token string) error
	IsRevoked(ctx context.Context, token string) (bool, error)
	EnsureSchema(ctx context.Context) error
}
