package handler

import (
	"net/http"
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

func newInventoryFixture(t *testing.T, actor entity.AuthenticatedContext) (*echo.Echo, *mockUC.MockInventoryUsecase) {
	inventoryUC := mockUC.NewMockInventoryUsecase(t)
	h := NewInventoryHandler(InventoryHandlerParams{InventoryUC: inventoryUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("/inventory", asActor(actor))
	g.POST("", h.Add)
	g.GET("/buyer/:sellerId", h.ListForBuyer)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)

	return e, inventoryUC
}

func TestInventoryHandler_Add_Multipart(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, inventoryUC := newInventoryFixture(t, actor)

	supplierID := uuid.New()
	inventoryUC.EXPECT().
		Add(mock.Anything, actor, mock.MatchedBy(func(in *usecase.AddInventoryInput) bool {
			return in.Title == "Rice" && in.Description == "Red rice 5kg" &&
				in.Price.Equal(decimal.RequireFromString("1250.50")) &&
				in.CategoryType == "grocery" &&
				in.Quantity != nil && *in.Quantity == 12 &&
				in.SupplierID != nil && *in.SupplierID == supplierID &&
				in.Status == ""
		}), mock.MatchedBy(func(p *usecase.Upload) bool { return p != nil && p.Filename == "rice.jpg" })).
		Return(&entity.Inventory{ID: uuid.New(), SKU: "INV17000000000001234"}, nil)

	req := multipartRequest(t, http.MethodPost, "/inventory", map[string]string{
		"title":        "Rice",
		"description":  "Red rice 5kg",
		"price":        "1250.50",
		"categoryType": "grocery",
		"quantity":     "12",
		"supplierId":   supplierID.String(),
	}, formFile{field: "productPic", filename: "rice.jpg", contentType: "image/jpeg", content: []byte("jpg")})
	rec := serve(e, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got entity.Inventory
	decodeData(t, rec, &got)
	assert.Equal(t, "INV17000000000001234", got.SKU)
}

func TestInventoryHandler_Add_BadQuantity(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, _ := newInventoryFixture(t, actor)

	req := multipartRequest(t, http.MethodPost, "/inventory", map[string]string{"title": "Rice", "quantity": "a dozen"})
	rec := serve(e, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "quantity: must be an integer", decodeEnvelope(t, rec).Error.Details)
}

func TestInventoryHandler_Update_JSONPatch(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, inventoryUC := newInventoryFixture(t, actor)

	id := uuid.New()
	inventoryUC.EXPECT().
		Update(mock.Anything, actor, id, mock.MatchedBy(func(in *usecase.UpdateInventoryInput) bool {
			return in.Price != nil && in.Price.Equal(decimal.NewFromInt(99)) && in.Title == nil && in.Quantity == nil
		}), (*usecase.Upload)(nil)).
		Return(&entity.Inventory{ID: id, Price: decimal.NewFromInt(99)}, nil)

	rec := serve(e, jsonRequest(http.MethodPut, "/inventory/"+id.String(), `{"price":"99"}`))

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestInventoryHandler_Delete_Forbidden(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, inventoryUC := newInventoryFixture(t, actor)

	id := uuid.New()
	inventoryUC.EXPECT().Delete(mock.Anything, actor, id).Return(domainerrors.ErrForbidden)

	rec := serve(e, jsonRequest(http.MethodDelete, "/inventory/"+id.String(), ""))

	require.Equal(t, http.StatusForbidden, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "FORBIDDEN", env.Error.Code)
	assert.Nil(t, env.Error.Details)
}

func TestInventoryHandler_ListForBuyer_NoProducts(t *testing.T) {
	actor := newActor(entity.UserTypeBuyer)
	e, inventoryUC := newInventoryFixture(t, actor)

	sellerID := uuid.New()
	inventoryUC.EXPECT().
		ListForBuyer(mock.Anything, sellerID).
		Return(nil, domainerrors.ErrProductNotFound.WithMessage("No products found for this seller!"))

	rec := serve(e, jsonRequest(http.MethodGet, "/inventory/buyer/"+sellerID.String(), ""))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "No products found for this seller!", decodeEnvelope(t, rec).Error.Message)
}
