package dict

import "context"

type DictStoreHandler interface {
	SetSnapshot(source string, words []string) error
	GetSnapshot() (Snapshot, error)
}

type DictHandler interface {
	LoadWordFile(path string) ([]string, error)
	Watch(ctx context.Context, path string, onChange func(words []string)) error
}
