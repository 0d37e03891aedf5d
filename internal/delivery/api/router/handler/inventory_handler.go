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

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler serves seller products.
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// InventoryRequest is the multipart or JSON body used to add or patch a product.
type InventoryRequest struct {
	Title        *string          `json:"title"`
	Description  *string          `json:"description"`
	Price        *decimal.Decimal `json:"price"`
	CategoryType *string          `json:"categoryType"`
	Quantity     *int             `json:"quantity"`
	SupplierID   *uuid.UUID       `json:"supplierId"`
	Status       *string          `json:"status"`
}

func (h *InventoryHandler) readRequest(c echo.Context) (*InventoryRequest, error) {
	req := &InventoryRequest{}
	if !isMultipart(c) {
		return req, bind(c, req)
	}

	form, err := readForm(c)
	if err != nil {
		return nil, err
	}
	req.Title = form.str("title")
	req.Description = form.str("description")
	req.CategoryType = form.str("categoryType")
	req.Status = form.str("status")
	if req.Price, err = form.decimal("price"); err != nil {
		return nil, err
	}
	if req.Quantity, err = form.integer("quantity"); err != nil {
		return nil, err
	}
	if req.SupplierID, err = form.uuid("supplierId"); err != nil {
		return nil, err
	}

	return req, nil
}

// Add lists a new product for the calling seller.
func (h *InventoryHandler) Add(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	req, err := h.readRequest(c)
	if err != nil {
		return err
	}

	picture, closePicture, err := formImage(c, "productPic")
	if err != nil {
		return err
	}
	defer closePicture()

	input := &usecase.AddInventoryInput{
		Title:        deref(req.Title),
		Description:  deref(req.Description),
		CategoryType: deref(req.CategoryType),
		Quantity:     req.Quantity,
		SupplierID:   req.SupplierID,
		Status:       deref(req.Status),
	}
	if req.Price != nil {
		input.Price = *req.Price
	}

	item, err := h.inventoryUC.Add(c.Request().Context(), actor, input, picture)
	if err != nil {
		return err
	}

	return response.Created(c, item)
}

// ListAll returns every product.
func (h *InventoryHandler) ListAll(c echo.Context) error {
	items, err := h.inventoryUC.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, items)
}

// ListMine returns the calling seller's products.
func (h *InventoryHandler) ListMine(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	items, err := h.inventoryUC.ListMine(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.OK(c, items)
}

// ListForBuyer returns the products of one seller.
func (h *InventoryHandler) ListForBuyer(c echo.Context) error {
	sellerID, err := pathUUID(c, "sellerId")
	if err != nil {
		return err
	}

	items, err := h.inventoryUC.ListForBuyer(c.Request().Context(), sellerID)
	if err != nil {
		return err
	}

	return response.OK(c, items)
}

// GetByID returns a single product.
func (h *InventoryHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	item, err := h.inventoryUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, item)
}

// Update patches a product owned by the caller.
func (h *InventoryHandler) Update(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	req, err := h.readRequest(c)
	if err != nil {
		return err
	}

	picture, closePicture, err := formImage(c, "productPic")
	if err != nil {
		return err
	}
	defer closePicture()

	item, err := h.inventoryUC.Update(c.Request().Context(), actor, id, &usecase.UpdateInventoryInput{
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		CategoryType: req.CategoryType,
		Quantity:     req.Quantity,
		Status:       req.Status,
	}, picture)
	if err != nil {
		return err
	}

	return response.OK(c, item)
}

// Delete removes a product owned by the caller.
func (h *InventoryHandler) Delete(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.inventoryUC.Delete(c.Request().Context(), actor, id); err != nil {
		return err
	}

	return response.Message(c, "Product deleted successfully")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
