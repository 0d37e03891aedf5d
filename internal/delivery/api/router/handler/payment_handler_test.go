package handler

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentFixture struct {
	echo      *echo.Echo
	paymentUC *mockUC.MockPaymentUsecase
	orderUC   *mockUC.MockOrderUsecase
}

func newPaymentFixture(t *testing.T) *paymentFixture {
	f := &paymentFixture{
		echo:      newTestEcho(),
		paymentUC: mockUC.NewMockPaymentUsecase(t),
		orderUC:   mockUC.NewMockOrderUsecase(t),
	}
	h := NewPaymentHandler(PaymentHandlerParams{PaymentUC: f.paymentUC, OrderUC: f.orderUC, Logger: newDiscardLogger()})

	f.echo.POST("/payment/notify", h.Notify)
	g := f.echo.Group("/payment", asActor(newActor(entity.UserTypeBuyer)))
	g.POST("/generate-hash", h.GenerateHash)
	g.PATCH("/:orderId/payment-status", h.SetPaymentStatus)

	return f
}

func notificationMatcher(orderID string) func(*usecase.PaymentNotificationInput) bool {
	return func(in *usecase.PaymentNotificationInput) bool {
		return in.MerchantID == "1221149" && in.OrderID == orderID &&
			in.Amount.Equal(decimal.RequireFromString("1500.00")) &&
			in.Currency == "LKR" && in.StatusCode == "2" && in.Signature == "ABCDEF"
	}
}

func TestPaymentHandler_Notify_Form(t *testing.T) {
	f := newPaymentFixture(t)

	orderID := uuid.NewString()
	f.paymentUC.EXPECT().HandleNotification(mock.Anything, mock.MatchedBy(notificationMatcher(orderID))).Return(nil)

	form := url.Values{
		"merchant_id":      {"1221149"},
		"order_id":         {orderID},
		"payhere_amount":   {"1500.00"},
		"payhere_currency": {"LKR"},
		"status_code":      {"2"},
		"md5sig":           {"ABCDEF"},
	}
	req := httptest.NewRequest(http.MethodPost, "/payment/notify", strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := serve(f.echo, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "Payment notification processed")
}

func TestPaymentHandler_Notify_JSON(t *testing.T) {
	f := newPaymentFixture(t)

	orderID := uuid.NewString()
	f.paymentUC.EXPECT().HandleNotification(mock.Anything, mock.MatchedBy(notificationMatcher(orderID))).Return(nil)

	body := `{"merchant_id":"1221149","order_id":"` + orderID +
		`","payhere_amount":"1500.00","payhere_currency":"LKR","status_code":"2","md5sig":"ABCDEF"}`
	rec := serve(f.echo, jsonRequest(http.MethodPost, "/payment/notify", body))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestPaymentHandler_Notify_InvalidSignature(t *testing.T) {
	f := newPaymentFixture(t)

	f.paymentUC.EXPECT().HandleNotification(mock.Anything, mock.Anything).Return(domainerrors.ErrInvalidSignature)

	rec := serve(f.echo, jsonRequest(http.MethodPost, "/payment/notify", `{"order_id":"x","md5sig":"bad"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_SIGNATURE", decodeEnvelope(t, rec).Error.Code)
}

func TestPaymentHandler_GenerateHash(t *testing.T) {
	f := newPaymentFixture(t)

	f.paymentUC.EXPECT().
		GenerateHash(mock.Anything, mock.MatchedBy(func(in *usecase.GenerateHashInput) bool {
			return in.MerchantID == "1221149" && in.OrderID == "ORD-1" &&
				in.Amount.Equal(decimal.NewFromInt(1000)) && in.Currency == "LKR" && in.MerchantSecret == "secret"
		})).
		Return("45D3CBA93E9F2189BD630ADFE19AA6DC", nil)

	body := `{"merchant_id":"1221149","order_id":"ORD-1","amount":1000,"currency":"LKR","merchant_secret":"secret"}`
	rec := serve(f.echo, jsonRequest(http.MethodPost, "/payment/generate-hash", body))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{"hash":"45D3CBA93E9F2189BD630ADFE19AA6DC"}`, string(decodeEnvelope(t, rec).Data))
}

func TestPaymentHandler_GenerateHash_IgnoresCamelCaseKeys(t *testing.T) {
	f := newPaymentFixture(t)

	f.paymentUC.EXPECT().
		GenerateHash(mock.Anything, mock.MatchedBy(func(in *usecase.GenerateHashInput) bool {
			return in.MerchantID == "" && in.OrderID == "" && in.MerchantSecret == ""
		})).
		Return("", domainerrors.ErrValidationFailed.WithDetails("missing required fields: merchant_id, order_id, merchant_secret"))

	body := `{"merchantId":"1221149","orderId":"ORD-1","amount":1000,"currency":"LKR","merchantSecret":"secret"}`
	rec := serve(f.echo, jsonRequest(http.MethodPost, "/payment/generate-hash", body))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPaymentHandler_SetPaymentStatus(t *testing.T) {
	f := newPaymentFixture(t)

	id := uuid.New()
	f.orderUC.EXPECT().
		SetPaymentStatus(mock.Anything, id, "completed").
		Return(&entity.Order{ID: id, PaymentStatus: entity.PaymentStatusCompleted}, nil)

	rec := serve(f.echo, jsonRequest(http.MethodPatch, "/payment/"+id.String()+"/payment-status", `{"paymentStatus":"completed"}`))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var got entity.Order
	decodeData(t, rec, &got)
	assert.Equal(t, entity.PaymentStatusCompleted, got.PaymentStatus)
}
