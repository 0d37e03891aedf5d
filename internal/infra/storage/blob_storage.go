// Package storage keeps uploaded files in a gocloud.dev bucket.
package storage

import (
	"context"
	"io"
	"log/slog"
	"path"
	"strings"

	"marketplace/config"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/util"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const defaultBucketURL = "mem://"

// Params defines the parameters required for the blob storage
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

type blobStorage struct {
	bucket   *blob.Bucket
	maxBytes int64
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.FileStorage, error) {
	bucketURL := defaultBucketURL
	var maxBytes int64
	if params.Config.Storage != nil {
		if params.Config.Storage.BucketURL != "" {
			bucketURL = params.Config.Storage.BucketURL
		}
		maxBytes = params.Config.Storage.MaxUploadBytes
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing upload bucket")

			return bucket.Close()
		},
	})

	return NewWithBucket(bucket, maxBytes), nil
}

// NewWithBucket wraps an already opened bucket. A non-positive maxBytes disables the size limit.
func NewWithBucket(bucket *blob.Bucket, maxBytes int64) service.FileStorage {
	return &blobStorage{bucket: bucket, maxBytes: maxBytes}
}

// Save stores the content at image/<kind>/<random><ext>.
func (s *blobStorage) Save(ctx context.Context, kind, originalName, contentType string, r io.Reader) (string, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return "", domainerrors.ErrUnsupportedMediaType.WithDetails("content type " + contentType)
	}

	name, err := util.RandomFilename(originalName)
	if err != nil {
		return "", err
	}
	key := path.Join("image", kind, name)

	w, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "open blob writer")
	}

	src := r
	if s.maxBytes > 0 {
		src = io.LimitReader(r, s.maxBytes+1)
	}

	written, err := io.Copy(w, src)
	if err != nil {
		_ = w.Close()

		return "", errors.Wrap(err, "write blob")
	}
	if s.maxBytes > 0 && written > s.maxBytes {
		_ = w.Close()
		_ = s.bucket.Delete(ctx, key)

		return "", domainerrors.ErrValidationFailed.WithDetails("file exceeds " + util.FormatBytes(s.maxBytes))
	}
	if err := w.Close(); err != nil {
		return "", errors.Wrap(err, "close blob writer")
	}

	return key, nil
}

// Open returns a reader over the stored object.
func (s *blobStorage) Open(ctx context.Context, key string) (*service.StoredObject, error) {
	r, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, service.ErrObjectNotFound
		}

		return nil, errors.Wrap(err, "open blob reader")
	}

	return &service.StoredObject{
		Body:        r,
		ContentType: r.ContentType(),
		Size:        r.Size(),
	}, nil
}

// Delete removes the object. A missing object is not an error.
func (s *blobStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}
	if err := s.bucket.Delete(ctx, key); err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrap(err, "delete blob")
	}

	return nil
}
