// Package storage abstracts file persistence for absence and adjustment
// attachments and clock-in face images.
package storage

import (
	"context"
	"io"
	"time"
)

type FileStorage interface {
	// Upload writes the file and returns its storage path.
	Upload(ctx context.Context, file io.Reader, path string, contentType string) (string, error)

	Download(ctx context.Context, path string) (io.ReadCloser, error)

	Delete(ctx context.Context, path string) error

	// GetURL returns a public or presigned URL for the stored file.
	GetURL(ctx context.Context, path string, expiry time.Duration) (string, error)

	Exists(ctx context.Context, path string) (bool, error)
}
