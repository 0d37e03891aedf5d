package handler

import (
	"mime/multipart"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"marketplace/internal/delivery/api/middleware"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// actorFrom returns the identity set by the auth middleware.
func actorFrom(c echo.Context) (entity.AuthenticatedContext, error) {
	actor, ok := middleware.GetAuthContext(c)
	if !ok {
		return entity.AuthenticatedContext{}, domainerrors.ErrInvalidToken
	}

	return actor, nil
}

// pathUUID parses a path parameter as a UUID.
func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WithDetails("invalid " + name)
	}

	return id, nil
}

// bind decodes the body and validates it.
func bind(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	return c.Validate(req)
}

func isMultipart(c echo.Context) bool {
	return strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEMultipartForm)
}

// formFields reads optional typed values out of a multipart or urlencoded form.
// An absent key yields nil; a present but unparsable one yields ErrValidationFailed.
type formFields struct {
	values url.Values
}

func readForm(c echo.Context) (formFields, error) {
	values, err := c.FormParams()
	if err != nil {
		return formFields{}, domainerrors.ErrValidationFailed.WithDetails("malformed form data")
	}

	return formFields{values: values}, nil
}

func (f formFields) str(key string) *string {
	if !f.values.Has(key) {
		return nil
	}
	v := f.values.Get(key)

	return &v
}

func (f formFields) value(key string) string {
	return f.values.Get(key)
}

func (f formFields) integer(key string) (*int, error) {
	raw := f.str(key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(key + ": must be an integer")
	}

	return &n, nil
}

func (f formFields) decimal(key string) (*decimal.Decimal, error) {
	raw := f.str(key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(key + ": must be a number")
	}

	return &d, nil
}

func (f formFields) uuid(key string) (*uuid.UUID, error) {
	raw := f.str(key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(key + ": must be a UUID")
	}

	return &id, nil
}

func (f formFields) float(key string) (*float64, error) {
	raw := f.str(key)
	if raw == nil || *raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(key + ": must be a number")
	}

	return &v, nil
}

// formImage returns the image uploaded under field, or nil when none was sent.
// The returned closer must be called once the use case is done with the body.
func formImage(c echo.Context, field string) (*usecase.Upload, func(), error) {
	noop := func() {}
	if !isMultipart(c) {
		return nil, noop, nil
	}

	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, noop, nil
		}

		return nil, noop, domainerrors.ErrValidationFailed.WithDetails("malformed " + field + " upload")
	}

	contentType := header.Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, noop, domainerrors.ErrUnsupportedMediaType.WithDetails(field + ": content type " + contentType)
	}

	file, err := header.Open()
	if err != nil {
		return nil, noop, errors.Wrap(err, "open uploaded file")
	}

	return toUpload(header, file), func() { _ = file.Close() }, nil
}

func toUpload(header *multipart.FileHeader, file multipart.File) *usecase.Upload {
	return &usecase.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get(echo.HeaderContentType),
		Size:        header.Size,
		Body:        file,
	}
}
