package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"marketplace/internal/delivery/api/response"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/errors"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/order/x", nil), rec)
	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(err, c)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body), rec.Body.String())

	return body
}

func TestHandleHTTPError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
		wantDetails any
	}{
		{
			name:        "app error with details",
			err:         domainerrors.ErrValidationFailed.WithDetails("email: is required"),
			wantStatus:  http.StatusBadRequest,
			wantCode:    "VALIDATION_FAILED",
			wantMessage: "Input validation failed",
			wantDetails: "email: is required",
		},
		{
			name:        "wrapped app error",
			err:         errors.Wrap(domainerrors.ErrOrderNotFound, "load order"),
			wantStatus:  http.StatusNotFound,
			wantCode:    "ORDER_NOT_FOUND",
			wantMessage: "Order not found",
		},
		{
			name:        "server error details are hidden",
			err:         domainerrors.ErrTransactionFailed.WithDetails("deadlock detected"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "TRANSACTION_FAILED",
			wantMessage: "Database transaction failed",
		},
		{
			name:        "auth error details are hidden",
			err:         domainerrors.ErrInvalidToken.WithDetails("signature mismatch"),
			wantStatus:  http.StatusUnauthorized,
			wantCode:    "INVALID_TOKEN",
			wantMessage: domainerrors.ErrInvalidToken.Message(),
		},
		{
			name:        "echo error",
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantCode:    "HTTP_ERROR",
			wantMessage: "Method Not Allowed",
		},
		{
			name:        "unknown error",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    "INTERNAL_ERROR",
			wantMessage: "Internal server error, please try again later",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := handleError(t, tt.err)

			require.Equal(t, tt.wantStatus, rec.Code)
			body := decodeError(t, rec)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.wantCode, body.Error.Code)
			assert.Equal(t, tt.wantMessage, body.Error.Message)
			assert.Equal(t, tt.wantDetails, body.Error.Details)
			assert.NotContains(t, rec.Body.String(), "connection refused")
		})
	}
}

func TestHandleHTTPError_CommittedResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	NewErrorMiddleware(newDiscardLogger()).HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
