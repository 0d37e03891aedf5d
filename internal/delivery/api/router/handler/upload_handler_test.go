package handler

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/service"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUploadFixture(t *testing.T) (*echo.Echo, *mockUC.MockUploadUsecase) {
	uploadUC := mockUC.NewMockUploadUsecase(t)
	h := NewUploadHandler(uploadUC)

	e := newTestEcho()
	e.GET("/uploads/image/:kind/:filename", h.ServeImage)

	return e, uploadUC
}

func TestUploadHandler_ServeImage(t *testing.T) {
	e, uploadUC := newUploadFixture(t)

	uploadUC.EXPECT().
		Open(mock.Anything, usecase.UploadKindProduct, "abc.png").
		Return(&service.StoredObject{
			Body:        io.NopCloser(strings.NewReader("png-bytes")),
			ContentType: "image/png",
			Size:        9,
		}, nil)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/uploads/image/product/abc.png", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "9", rec.Header().Get(echo.HeaderContentLength))
	assert.Equal(t, "png-bytes", rec.Body.String())
}

func TestUploadHandler_ServeImage_NotFound(t *testing.T) {
	e, uploadUC := newUploadFixture(t)

	uploadUC.EXPECT().
		Open(mock.Anything, usecase.UploadKindProfile, "missing.jpg").
		Return(nil, domainerrors.ErrFileNotFound)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/uploads/image/profile/missing.jpg", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "FILE_NOT_FOUND", decodeEnvelope(t, rec).Error.Code)
}
