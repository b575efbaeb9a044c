package words

import "context"

type WordStoreHandler interface {
	Search(ctx context.Context, where string, args []any) ([]string, error)
	All(ctx context.Context) ([]string, error)
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, words []string) (int64, error)
	EnsureSchema(ctx context.Context) error
}
