package service

import (
	"context"
	"io"
)

// BlobObject is an opened stored object.
type BlobObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// BlobStore stores binary objects such as asset photos
type BlobStore interface {
	// Upload decodes base64 data (optionally a data URL) and stores it under path.
	// It returns the permanent URL clients should use to download the object.
	Upload(ctx context.Context, path, base64Data string) (string, error)

	// Open returns a reader for a stored object. The caller closes Body.
	Open(ctx context.Context, path string) (*BlobObject, error)

	// DeletePrefix removes every object under prefix except keep and reports
	// how many were removed. keep may be empty.
	DeletePrefix(ctx context.Context, prefix, keep string) (int, error)
}
