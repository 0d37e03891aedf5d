package handler

import (
	"log/slog"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves the order lifecycle.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// CreateOrderRequest represents the request body for placing an order
type CreateOrderRequest struct {
	ProductID       *uuid.UUID       `json:"productId"`
	UnitAmount      *decimal.Decimal `json:"unitAmount"`
	Quantity        *int             `json:"quantity"`
	SubAmount       *decimal.Decimal `json:"subAmount"`
	SellerID        *uuid.UUID       `json:"sellerId"`
	Address         string           `json:"address"`
	DeliveryAddress string           `json:"deliveryAddress"`
	Status          string           `json:"status"`
	PaymentStatus   string           `json:"paymentStatus"`
}

// UpdateOrderRequest carries the fields a pending order may change
type UpdateOrderRequest struct {
	Address         *string          `json:"address"`
	DeliveryAddress *string          `json:"deliveryAddress"`
	Quantity        *int             `json:"quantity"`
	SubAmount       *decimal.Decimal `json:"subAmount"`
}

// AdvanceOrderRequest represents the request body for moving an order forward
type AdvanceOrderRequest struct {
	Status string `json:"status"`
}

// Create places an order on behalf of the calling buyer.
func (h *OrderHandler) Create(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req CreateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := &usecase.CreateOrderInput{
		UnitAmount:      req.UnitAmount,
		Quantity:        req.Quantity,
		SubAmount:       req.SubAmount,
		Address:         req.Address,
		DeliveryAddress: req.DeliveryAddress,
		Status:          req.Status,
		PaymentStatus:   req.PaymentStatus,
	}
	if req.ProductID != nil {
		input.ProductID = *req.ProductID
	}
	if req.SellerID != nil {
		input.SellerID = *req.SellerID
	}

	order, err := h.orderUC.Create(c.Request().Context(), actor, input)
	if err != nil {
		return err
	}

	return response.Created(c, order)
}

// GetByID returns a single order.
func (h *OrderHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orderUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// ListForBuyer returns the caller's purchases.
func (h *OrderHandler) ListForBuyer(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListForBuyer(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.OK(c, orders)
}

// ListForSeller returns the orders placed with the caller.
func (h *OrderHandler) ListForSeller(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	orders, err := h.orderUC.ListForSeller(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.OK(c, orders)
}

// Advance moves a pending order to delivered.
func (h *OrderHandler) Advance(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req AdvanceOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.AdvanceToDelivered(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// Update patches a pending order.
func (h *OrderHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "orderId")
	if err != nil {
		return err
	}

	var req UpdateOrderRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	order, err := h.orderUC.Update(c.Request().Context(), id, &usecase.UpdateOrderInput{
		Address:         req.Address,
		DeliveryAddress: req.DeliveryAddress,
		Quantity:        req.Quantity,
		SubAmount:       req.SubAmount,
	})
	if err != nil {
		return err
	}

	return response.OK(c, order)
}

// Delete removes a pending order.
func (h *OrderHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.orderUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, "Order deleted successfully")
}
