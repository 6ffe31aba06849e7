package repositories

import (
	"context"
	"io"
)

// FileStore persists attachment bytes under an opaque key.
type FileStore interface {
	Put(ctx context.Context, key string, contentType string, r io.Reader) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

// Notifier delivers plain-text notifications such as the renewal digest.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
