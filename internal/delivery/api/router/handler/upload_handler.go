package handler

import (
	"net/http"
	"strconv"

	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
)

// UploadHandler streams stored images.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(uploadUC usecase.UploadUsecase) *UploadHandler {
	return &UploadHandler{uploadUC: uploadUC}
}

// ServeImage streams image/:kind/:filename from storage.
func (h *UploadHandler) ServeImage(c echo.Context) error {
	object, err := h.uploadUC.Open(c.Request().Context(), usecase.UploadKind(c.Param("kind")), c.Param("filename"))
	if err != nil {
		return err
	}
	defer object.Body.Close()

	if object.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, object.ContentType, object.Body)
}
