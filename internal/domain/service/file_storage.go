package service

import (
	"context"
	"errors"
	"io"
)

// ErrObjectNotFound is returned when a stored file does not exist.
var ErrObjectNotFound = errors.New("object not found")

// StoredObject is an open handle on an uploaded file.
type StoredObject struct {
	Body        io.ReadCloser
	ContentType string
	Size        int64
}

// FileStorage keeps uploaded images. Keys look like "image/<kind>/<name>".
type FileStorage interface {
	// Save stores the content under a fresh name and returns its key.
	Save(ctx context.Context, kind, originalName, contentType string, r io.Reader) (string, error)

	// Open returns the object stored under key. The caller closes Body.
	Open(ctx context.Context, key string) (*StoredObject, error)

	// Delete removes the object. A missing object is not an error.
	Delete(ctx context.Context, key string) error
}
