package impl

import (
	"context"
	"io"
	"strings"
	"testing"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("stored file", func(t *testing.T) {
		storage := mockSvc.NewMockFileStorage(t)
		obj := &service.StoredObject{Body: io.NopCloser(strings.NewReader("png")), ContentType: "image/png", Size: 3}
		storage.EXPECT().Open(ctx, "image/product/0123456789abcdef.png").Return(obj, nil)

		got, err := NewUploadService(storage).Open(ctx, usecase.UploadKindProduct, "0123456789abcdef.png")
		require.NoError(t, err)
		assert.Equal(t, obj, got)
	})

	t.Run("missing file", func(t *testing.T) {
		storage := mockSvc.NewMockFileStorage(t)
		storage.EXPECT().Open(ctx, "image/profile/gone.png").Return(nil, service.ErrObjectNotFound)

		_, err := NewUploadService(storage).Open(ctx, usecase.UploadKindProfile, "gone.png")
		assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
	})

	for _, name := range []string{"", "../secret", "a/b.png", `a\b.png`, ".."} {
		t.Run("rejects "+name, func(t *testing.T) {
			storage := mockSvc.NewMockFileStorage(t)

			_, err := NewUploadService(storage).Open(ctx, usecase.UploadKindProfile, name)
			assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		storage := mockSvc.NewMockFileStorage(t)

		_, err := NewUploadService(storage).Open(ctx, "avatar", "x.png")
		assert.ErrorIs(t, err, domainerrors.ErrFileNotFound)
	})
}
