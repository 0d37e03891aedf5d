package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	deliverycontext "marketplace/internal/delivery/context"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"
)

type uploadService struct {
	storage service.FileStorage
}

// NewUploadService is the constructor for uploadService.
func NewUploadService(storage service.FileStorage) usecase.UploadUsecase {
	return &uploadService{storage: storage}
}

// Open returns the stored image image/<kind>/<filename>.
func (srv *uploadService) Open(ctx context.Context, kind usecase.UploadKind, filename string) (*service.StoredObject, error) {
	if !kind.IsValid() || filename == "." || filename == ".." || filename == "" || strings.ContainsAny(filename, `/\`) {
		return nil, domainerrors.ErrFileNotFound
	}

	obj, err := srv.storage.Open(ctx, path.Join("image", string(kind), filename))
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrFileNotFound
		}

		return nil, errors.Wrap(err, "failed to open upload")
	}

	return obj, nil
}

// storeUpload saves picture under kind and returns its key, or "" when there is no picture.
func storeUpload(ctx context.Context, storage service.FileStorage, kind usecase.UploadKind, picture *usecase.Upload) (string, error) {
	if picture == nil {
		return "", nil
	}

	key, err := storage.Save(ctx, string(kind), picture.Filename, picture.ContentType, picture.Body)
	if err != nil {
		return "", errors.Wrapf(err, "failed to store %s picture", kind)
	}

	return key, nil
}

// discardUpload removes an upload that is no longer referenced. Failures are only logged.
func discardUpload(ctx context.Context, storage service.FileStorage, logger *slog.Logger, key string) {
	if key == "" {
		return
	}
	if err := storage.Delete(ctx, key); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, logger).
			Warn("Failed to delete stale upload", slog.String("key", key), slog.Any("error", err))
	}
}
