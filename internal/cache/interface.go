package cache

import "context"

type ResultCacheHandler interface {
	Get(ctx context.Context, key string) ([]string, bool)
	Put(ctx context.Context, key string, words []string)
	Bump()
	Ping(ctx context.Context) error
}
