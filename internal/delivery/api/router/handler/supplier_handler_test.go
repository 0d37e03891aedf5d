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

func newSupplierFixture(t *testing.T, actor entity.AuthenticatedContext) (*echo.Echo, *mockUC.MockSupplierUsecase) {
	supplierUC := mockUC.NewMockSupplierUsecase(t)
	h := NewSupplierHandler(SupplierHandlerParams{SupplierUC: supplierUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	g := e.Group("", asActor(actor))
	g.POST("/supplier", h.Add)
	g.DELETE("/supplier/:id", h.Delete)
	g.POST("/supplier-product/:userId", h.AddProduct)
	g.GET("/supplier-product/supplier/:supplierId", h.ListProducts)

	return e, supplierUC
}

func TestSupplierHandler_Add(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, supplierUC := newSupplierFixture(t, actor)

	supplierUC.EXPECT().
		Add(mock.Anything, actor, &usecase.AddSupplierInput{
			Name:    "Lanka Farms",
			Email:   "sales@lankafarms.lk",
			PhoneNo: "0771234567",
			Address: "Kandy",
		}).
		Return(&entity.Supplier{ID: uuid.New(), Name: "Lanka Farms"}, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/supplier",
		`{"name":"Lanka Farms","email":"sales@lankafarms.lk","phoneNo":"0771234567","address":"Kandy"}`))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSupplierHandler_Add_InvalidEmail(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, _ := newSupplierFixture(t, actor)

	rec := serve(e, jsonRequest(http.MethodPost, "/supplier", `{"name":"X","email":"not-an-email"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "email: must be a valid email", decodeEnvelope(t, rec).Error.Details)
}

func TestSupplierHandler_Add_Duplicate(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, supplierUC := newSupplierFixture(t, actor)

	supplierUC.EXPECT().Add(mock.Anything, actor, mock.Anything).Return(nil, domainerrors.ErrSupplierAlreadyExists)

	rec := serve(e, jsonRequest(http.MethodPost, "/supplier", `{"name":"X"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Supplier already exists", decodeEnvelope(t, rec).Error.Message)
}

func TestSupplierHandler_AddProduct(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, supplierUC := newSupplierFixture(t, actor)

	supplierID := uuid.New()
	supplierUC.EXPECT().
		AddProduct(mock.Anything, actor, actor.UserID, mock.MatchedBy(func(in *usecase.AddSupplierProductInput) bool {
			return in.Name == "Coconut" && in.Price.Equal(decimal.RequireFromString("85.5")) &&
				in.Quantity != nil && *in.Quantity == 40 && in.SupplierID == supplierID
		})).
		Return(&entity.SupplierProduct{ID: uuid.New(), SupplierID: supplierID}, nil)

	body := `{"name":"Coconut","price":85.5,"quantity":40,"supplierId":"` + supplierID.String() + `"}`
	rec := serve(e, jsonRequest(http.MethodPost, "/supplier-product/"+actor.UserID.String(), body))

	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestSupplierHandler_AddProduct_OtherUserForbidden(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, supplierUC := newSupplierFixture(t, actor)

	other := uuid.New()
	supplierUC.EXPECT().AddProduct(mock.Anything, actor, other, mock.Anything).Return(nil, domainerrors.ErrForbidden)

	rec := serve(e, jsonRequest(http.MethodPost, "/supplier-product/"+other.String(), `{"name":"Coconut"}`))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSupplierHandler_ListProducts(t *testing.T) {
	actor := newActor(entity.UserTypeSeller)
	e, supplierUC := newSupplierFixture(t, actor)

	supplierID := uuid.New()
	supplierUC.EXPECT().ListProducts(mock.Anything, supplierID).Return([]*entity.SupplierProduct{}, nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/supplier-product/supplier/"+supplierID.String(), ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"products":[]}`, string(decodeEnvelope(t, rec).Data))
}

func TestSupplierHandler_Delete(t *testing.T) {
	actor := newActor(entity.UserTypeAdmin)
	e, supplierUC := newSupplierFixture(t, actor)

	id := uuid.New()
	supplierUC.EXPECT().Delete(mock.Anything, id).Return(nil)

	rec := serve(e, jsonRequest(http.MethodDelete, "/supplier/"+id.String(), ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Supplier and related products deleted successfully")
}
