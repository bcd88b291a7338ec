package storage

import (
	"context"
	"io"
)

// Storage puts listing images somewhere publicly reachable.
type Storage interface {
	// Upload stores the object under input.Key.
	Upload(ctx context.Context, input *UploadInput) error

	// PublicURL returns the URL buyers load the object from.
	PublicURL(ctx context.Context, key string) (string, error)
}

type UploadInput struct {
	Key         string
	ContentType string
	Size        int64
	Data        io.Reader
}
