package handler

import (
	"io"
	"net/http"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	mockUC "marketplace/internal/mocks/usecase"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandlerFixture(t *testing.T) (*echo.Echo, *mockUC.MockUserUsecase) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})

	e := newTestEcho()
	e.POST("/signup", h.Signup)
	e.POST("/signin", h.Signin)
	e.GET("/me", h.GetMe)

	return e, userUC
}

func TestUserHandler_Signup_MultipartWithPicture(t *testing.T) {
	e, userUC := newUserHandlerFixture(t)

	created := &entity.User{ID: uuid.New(), Name: "Nimal", Email: "nimal@example.com", Type: entity.UserTypeSeller}
	userUC.EXPECT().
		Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool {
			return in.Name == "Nimal" && in.Email == "nimal@example.com" && in.Type == "seller" && in.StoreName == "Nimal Stores"
		}), mock.MatchedBy(func(p *usecase.Upload) bool {
			body, err := io.ReadAll(p.Body)

			return err == nil && p.Filename == "me.png" && p.ContentType == "image/png" && string(body) == "png-bytes"
		})).
		Return(created, nil)

	req := multipartRequest(t, http.MethodPost, "/signup", map[string]string{
		"name":      "Nimal",
		"email":     "nimal@example.com",
		"password":  "Str0ng!pass",
		"type":      "seller",
		"storeName": "Nimal Stores",
	}, formFile{field: "profilePic", filename: "me.png", contentType: "image/png", content: []byte("png-bytes")})
	rec := serve(e, req)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var got entity.User
	decodeData(t, rec, &got)
	assert.Equal(t, created.ID, got.ID)
	assert.NotContains(t, rec.Body.String(), "passwordHash")
}

func TestUserHandler_Signup_JSONWithoutPicture(t *testing.T) {
	e, userUC := newUserHandlerFixture(t)

	userUC.EXPECT().
		Signup(mock.Anything, mock.MatchedBy(func(in *usecase.SignupInput) bool { return in.Email == "a@example.com" }), (*usecase.Upload)(nil)).
		Return(&entity.User{ID: uuid.New()}, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/signup", `{"name":"A","email":"a@example.com","password":"Str0ng!pass"}`))

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestUserHandler_Signup_RejectsNonImageUpload(t *testing.T) {
	e, _ := newUserHandlerFixture(t)

	req := multipartRequest(t, http.MethodPost, "/signup", map[string]string{"name": "A"},
		formFile{field: "profilePic", filename: "cv.pdf", contentType: "application/pdf", content: []byte("%PDF")})
	rec := serve(e, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", decodeEnvelope(t, rec).Error.Code)
}

func TestUserHandler_Signup_ExistingEmail(t *testing.T) {
	e, userUC := newUserHandlerFixture(t)

	userUC.EXPECT().Signup(mock.Anything, mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

	rec := serve(e, jsonRequest(http.MethodPost, "/signup", `{"name":"A","email":"a@example.com","password":"x"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "USER_ALREADY_EXISTS", env.Error.Code)
	assert.Equal(t, "User already exists!", env.Error.Message)
}

func TestUserHandler_Signin(t *testing.T) {
	e, userUC := newUserHandlerFixture(t)

	out := &usecase.SigninOutput{
		Token:    "jwt",
		UserData: usecase.SigninUser{ID: uuid.New(), Email: "b@example.com", Type: entity.UserTypeBuyer, Status: entity.StatusActive},
	}
	userUC.EXPECT().
		Signin(mock.Anything, &usecase.SigninInput{Email: "b@example.com", Password: "secret"}).
		Return(out, nil)

	rec := serve(e, jsonRequest(http.MethodPost, "/signin", `{"email":"b@example.com","password":"secret"}`))

	require.Equal(t, http.StatusOK, rec.Code)
	var got usecase.SigninOutput
	decodeData(t, rec, &got)
	assert.Equal(t, "jwt", got.Token)
	assert.Equal(t, entity.UserTypeBuyer, got.UserData.Type)
}

func TestUserHandler_GetMe_RequiresIdentity(t *testing.T) {
	e, _ := newUserHandlerFixture(t)

	rec := serve(e, jsonRequest(http.MethodGet, "/me", ""))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUserHandler_UpdateStatus_ValidatesStatus(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.PUT("/activate/:id", h.UpdateStatus)

	rec := serve(e, jsonRequest(http.MethodPut, "/activate/"+uuid.NewString(), `{"status":"banned"}`))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeEnvelope(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.Contains(t, env.Error.Details, "status")
}

func TestUserHandler_UpdateStatus_InvalidID(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.PUT("/activate/:id", h.UpdateStatus)

	rec := serve(e, jsonRequest(http.MethodPut, "/activate/not-a-uuid", `{"status":"active"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserHandler_UpdateProfile_MultipartLocation(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	actor := newActor(entity.UserTypeBuyer)
	e := newTestEcho()
	e.PUT("/profile", h.UpdateProfile, asActor(actor))

	userUC.EXPECT().
		UpdateProfile(mock.Anything, actor, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.Name != nil && *in.Name == "New Name" &&
				in.PhoneNo == nil &&
				in.Location != nil && in.Location.Name == "Home" &&
				in.Location.Longitude == 79.86 && in.Location.Latitude == 6.92
		}), (*usecase.Upload)(nil)).
		Return(&entity.User{ID: actor.UserID}, nil)

	req := multipartRequest(t, http.MethodPut, "/profile", map[string]string{
		"name":         "New Name",
		"locationName": "Home",
		"longitude":    "79.86",
		"latitude":     "6.92",
	})
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestUserHandler_UpdateProfile_JSONPatch(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	actor := newActor(entity.UserTypeSeller)
	e := newTestEcho()
	e.PUT("/profile", h.UpdateProfile, asActor(actor))

	userUC.EXPECT().
		UpdateProfile(mock.Anything, actor, mock.MatchedBy(func(in *usecase.UpdateProfileInput) bool {
			return in.StoreName != nil && *in.StoreName == "Fresh Mart" && in.Name == nil && in.Location == nil
		}), (*usecase.Upload)(nil)).
		Return(&entity.User{ID: actor.UserID, StoreName: "Fresh Mart"}, nil)

	rec := serve(e, jsonRequest(http.MethodPut, "/profile", `{"storeName":"Fresh Mart"}`))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUserHandler_StoreQR(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/user/:id/qr", h.StoreQR)

	sellerID := uuid.New()
	userUC.EXPECT().StoreQR(mock.Anything, sellerID).Return([]byte("\x89PNG"), nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/user/"+sellerID.String()+"/qr", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "\x89PNG", rec.Body.String())
}

func TestUserHandler_ListActiveSellers_WrapsResult(t *testing.T) {
	userUC := mockUC.NewMockUserUsecase(t)
	h := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: newDiscardLogger()})
	e := newTestEcho()
	e.GET("/active-sellers", h.ListActiveSellers)

	seller := &entity.SellerWithProducts{User: &entity.User{ID: uuid.New(), Name: "S"}}
	userUC.EXPECT().ListActiveSellers(mock.Anything).Return([]*entity.SellerWithProducts{seller}, nil)

	rec := serve(e, jsonRequest(http.MethodGet, "/active-sellers", ""))

	require.Equal(t, http.StatusOK, rec.Code)
	var got struct {
		Sellers []map[string]any `json:"sellers"`
	}
	decodeData(t, rec, &got)
	require.Len(t, got.Sellers, 1)
	assert.Equal(t, "S", got.Sellers[0]["name"])
}
