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

// SupplierHandlerParams holds dependencies for SupplierHandler, injected by Fx.
type SupplierHandlerParams struct {
	fx.In

	SupplierUC usecase.SupplierUsecase
	Logger     *slog.Logger
}

// SupplierHandler serves suppliers and their products.
type SupplierHandler struct {
	supplierUC usecase.SupplierUsecase
	logger     *slog.Logger
}

// NewSupplierHandler is the constructor for SupplierHandler
func NewSupplierHandler(params SupplierHandlerParams) *SupplierHandler {
	return &SupplierHandler{
		supplierUC: params.SupplierUC,
		logger:     params.Logger,
	}
}

// SupplierRequest is the body used to add or patch a supplier.
type SupplierRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" validate:"omitempty,email"`
	PhoneNo *string `json:"phoneNo"`
	Address *string `json:"address"`
	Status  *string `json:"status"`
}

// SupplierProductRequest is the body used to add or patch a supplier product.
type SupplierProductRequest struct {
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	Quantity   *int             `json:"quantity"`
	SupplierID *uuid.UUID       `json:"supplierId"`
	Status     *string          `json:"status"`
}

// Add registers a supplier.
func (h *SupplierHandler) Add(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req SupplierRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	supplier, err := h.supplierUC.Add(c.Request().Context(), actor, &usecase.AddSupplierInput{
		Name:    deref(req.Name),
		Email:   deref(req.Email),
		PhoneNo: deref(req.PhoneNo),
		Address: deref(req.Address),
		Status:  deref(req.Status),
	})
	if err != nil {
		return err
	}

	return response.Created(c, supplier)
}

// ListAll returns every supplier with its products.
func (h *SupplierHandler) ListAll(c echo.Context) error {
	suppliers, err := h.supplierUC.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, suppliers)
}

// GetByID returns one supplier with its products.
func (h *SupplierHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	supplier, err := h.supplierUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, supplier)
}

// Update patches a supplier.
func (h *SupplierHandler) Update(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SupplierRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	supplier, err := h.supplierUC.Update(c.Request().Context(), id, &usecase.UpdateSupplierInput{
		Name:    req.Name,
		Email:   req.Email,
		PhoneNo: req.PhoneNo,
		Address: req.Address,
		Status:  req.Status,
	})
	if err != nil {
		return err
	}

	return response.OK(c, supplier)
}

// Delete removes a supplier and its products.
func (h *SupplierHandler) Delete(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.supplierUC.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, "Supplier and related products deleted successfully")
}

// AddProduct files a product under a supplier on behalf of the user in the path.
func (h *SupplierHandler) AddProduct(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	userID, err := pathUUID(c, "userId")
	if err != nil {
		return err
	}

	var req SupplierProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	input := &usecase.AddSupplierProductInput{
		Name:     deref(req.Name),
		Quantity: req.Quantity,
		Status:   deref(req.Status),
	}
	if req.Price != nil {
		input.Price = *req.Price
	}
	if req.SupplierID != nil {
		input.SupplierID = *req.SupplierID
	}

	product, err := h.supplierUC.AddProduct(c.Request().Context(), actor, userID, input)
	if err != nil {
		return err
	}

	return response.Created(c, product)
}

// ListProducts returns the products of one supplier.
func (h *SupplierHandler) ListProducts(c echo.Context) error {
	supplierID, err := pathUUID(c, "supplierId")
	if err != nil {
		return err
	}

	products, err := h.supplierUC.ListProducts(c.Request().Context(), supplierID)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"products": products})
}

// UpdateProduct patches a supplier product.
func (h *SupplierHandler) UpdateProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req SupplierProductRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	product, err := h.supplierUC.UpdateProduct(c.Request().Context(), id, &usecase.UpdateSupplierProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Status:   req.Status,
	})
	if err != nil {
		return err
	}

	return response.OK(c, product)
}

// DeleteProduct removes a supplier product.
func (h *SupplierHandler) DeleteProduct(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.supplierUC.DeleteProduct(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, "Supplier product deleted successfully")
}
