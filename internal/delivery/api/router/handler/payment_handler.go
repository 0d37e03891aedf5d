package handler

import (
	"log/slog"
	"strings"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC usecase.PaymentUsecase
	OrderUC   usecase.OrderUsecase
	Logger    *slog.Logger
}

// PaymentHandler serves the payment gateway bridge.
type PaymentHandler struct {
	paymentUC usecase.PaymentUsecase
	orderUC   usecase.OrderUsecase
	logger    *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC: params.PaymentUC,
		orderUC:   params.OrderUC,
		logger:    params.Logger,
	}
}

// GenerateHashRequest is the checkout data the browser needs a signature for.
type GenerateHashRequest struct {
	MerchantID     string          `json:"merchant_id"`
	OrderID        string          `json:"order_id"`
	Amount         decimal.Decimal `json:"amount"`
	Currency       string          `json:"currency"`
	MerchantSecret string          `json:"merchant_secret"`
}

// PaymentNotifyRequest is the gateway callback, posted as a form or as JSON.
type PaymentNotifyRequest struct {
	MerchantID string          `json:"merchant_id"`
	OrderID    string          `json:"order_id"`
	Amount     decimal.Decimal `json:"payhere_amount"`
	Currency   string          `json:"payhere_currency"`
	StatusCode string          `json:"status_code"`
	Signature  string          `json:"md5sig"`
}

// PaymentStatusRequest represents the request body for setting a payment status
type PaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// GenerateHash returns the checkout signature.
func (h *PaymentHandler) GenerateHash(c echo.Context) error {
	var req GenerateHashRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	hash, err := h.paymentUC.GenerateHash(c.Request().Context(), &usecase.GenerateHashInput{
		MerchantID:     req.MerchantID,
		OrderID:        req.OrderID,
		Amount:         req.Amount,
		Currency:       req.Currency,
		MerchantSecret: req.MerchantSecret,
	})
	if err != nil {
		return err
	}

	return response.OK(c, map[string]string{"hash": hash})
}

// Notify receives the gateway's server-to-server payment callback.
func (h *PaymentHandler) Notify(c echo.Context) error {
	req, err := h.readNotification(c)
	if err != nil {
		return err
	}

	if err := h.paymentUC.HandleNotification(c.Request().Context(), &usecase.PaymentNotificationInput{
		MerchantID: req.MerchantID,
		OrderID:    req.OrderID,
		Amount:     req.Amount,
		Currency:   req.Currency,
		StatusCode: req.StatusCode,
		Signature:  req.Signature,
	}); err != nil {
		return err
	}

	return response.Message(c, "Payment notification processed")
}

func (h *PaymentHandler) readNotification(c echo.Context) (*PaymentNotifyRequest, error) {
	req := &PaymentNotifyRequest{}
	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		return req, bind(c, req)
	}

	form, err := readForm(c)
	if err != nil {
		return nil, err
	}
	req.MerchantID = form.value("merchant_id")
	req.OrderID = form.value("order_id")
	req.Currency = form.value("payhere_currency")
	req.StatusCode = form.value("status_code")
	req.Signature = form.value("md5sig")
	amount, err := form.decimal("payhere_amount")
	if err != nil {
		return nil, err
	}
	if amount != nil {
		req.Amount = *amount
	}

	return req, nil
}

// SetPaymentStatus applies a payment status change to an order.
func (h *PaymentHandler) SetPaymentStatus(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	var req PaymentStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.SetPaymentStatus(c.Request().Context(), id, req.PaymentStatus)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}
