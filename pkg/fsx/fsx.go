package fsx

import (
	"context"
	"io"
)

// FileReader is the read-only subset used by background workers.
type FileReader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
}

// FileSystem abstracts the document store for uploads.
type FileSystem interface {
	FileReader

	WriteFile(ctx context.Context, path string, data []byte) error
	WriteFileStream(ctx context.Context, path string, r io.Reader) error
	DeleteFile(ctx context.Context, path string) error

	// Join builds a storage path from segments.
	Join(parts ...string) string
}
