package handler

import (
	"log/slog"
	"net/http"

	"marketplace/internal/delivery/api/response"
	"marketplace/internal/domain/entity"
	"marketplace/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// SignupRequest is the multipart or JSON body of a signup.
type SignupRequest struct {
	Name      string `json:"name" form:"name"`
	Email     string `json:"email" form:"email"`
	Password  string `json:"password" form:"password"`
	PhoneNo   string `json:"phoneNo" form:"phoneNo"`
	Type      string `json:"type" form:"type"`
	Address   string `json:"address" form:"address"`
	StoreName string `json:"storeName" form:"storeName"`
}

// SigninRequest represents the request body for signing in
type SigninRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

// UpdateProfileRequest is a partial profile update. Absent fields are left untouched.
type UpdateProfileRequest struct {
	Name      *string             `json:"name"`
	PhoneNo   *string             `json:"phoneNo"`
	Address   *string             `json:"address"`
	StoreName *string             `json:"storeName"`
	Password  *string             `json:"password"`
	Location  *entity.GeoLocation `json:"location"`
}

// ChangePasswordRequest represents the request body for rotating a password
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// UpdateStatusRequest represents the admin activation request body
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// Signup handles account creation with an optional profile picture.
func (h *UserHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	picture, closePicture, err := formImage(c, "profilePic")
	if err != nil {
		return err
	}
	defer closePicture()

	user, err := h.userUC.Signup(c.Request().Context(), &usecase.SignupInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		PhoneNo:   req.PhoneNo,
		Type:      req.Type,
		Address:   req.Address,
		StoreName: req.StoreName,
	}, picture)
	if err != nil {
		return err
	}

	return response.Created(c, user)
}

// Signin handles credential verification and token issuing.
func (h *UserHandler) Signin(c echo.Context) error {
	var req SigninRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	output, err := h.userUC.Signin(c.Request().Context(), &usecase.SigninInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	return response.OK(c, output)
}

// GetMe returns the caller's own profile.
func (h *UserHandler) GetMe(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	user, err := h.userUC.GetMe(c.Request().Context(), actor)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// GetByID returns any user by id.
func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.userUC.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// ListActive returns all active users.
func (h *UserHandler) ListActive(c echo.Context) error {
	return h.listByStatus(c, entity.StatusActive)
}

// ListInactive returns all users awaiting activation.
func (h *UserHandler) ListInactive(c echo.Context) error {
	return h.listByStatus(c, entity.StatusInactive)
}

func (h *UserHandler) listByStatus(c echo.Context, status entity.Status) error {
	users, err := h.userUC.ListByStatus(c.Request().Context(), status)
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"users": users})
}

// ListActiveSellers returns active sellers together with their products.
func (h *UserHandler) ListActiveSellers(c echo.Context) error {
	sellers, err := h.userUC.ListActiveSellers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"sellers": sellers})
}

// ListActiveBuyers returns active buyers.
func (h *UserHandler) ListActiveBuyers(c echo.Context) error {
	buyers, err := h.userUC.ListActiveBuyers(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, map[string]any{"buyers": buyers})
}

// UpdateStatus lets an admin activate or deactivate an account.
func (h *UserHandler) UpdateStatus(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateStatusRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	user, err := h.userUC.UpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

// ChangePassword rotates the caller's password.
func (h *UserHandler) ChangePassword(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	var req ChangePasswordRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	if err := h.userUC.ChangePassword(c.Request().Context(), actor, &usecase.ChangePasswordInput{
		OldPassword: req.OldPassword,
		NewPassword: req.NewPassword,
	}); err != nil {
		return err
	}

	return response.Message(c, "Password changed successfully")
}

// UpdateProfile applies a multipart or JSON patch to the caller's profile.
func (h *UserHandler) UpdateProfile(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	req, err := h.profilePatch(c)
	if err != nil {
		return err
	}

	picture, closePicture, err := formImage(c, "profilePic")
	if err != nil {
		return err
	}
	defer closePicture()

	user, err := h.userUC.UpdateProfile(c.Request().Context(), actor, &usecase.UpdateProfileInput{
		Name:      req.Name,
		PhoneNo:   req.PhoneNo,
		Address:   req.Address,
		StoreName: req.StoreName,
		Password:  req.Password,
		Location:  req.Location,
	}, picture)
	if err != nil {
		return err
	}

	return response.OK(c, user)
}

func (h *UserHandler) profilePatch(c echo.Context) (*UpdateProfileRequest, error) {
	req := &UpdateProfileRequest{}
	if !isMultipart(c) {
		return req, bind(c, req)
	}

	form, err := readForm(c)
	if err != nil {
		return nil, err
	}
	req.Name = form.str("name")
	req.PhoneNo = form.str("phoneNo")
	req.Address = form.str("address")
	req.StoreName = form.str("storeName")
	req.Password = form.str("password")

	longitude, err := form.float("longitude")
	if err != nil {
		return nil, err
	}
	latitude, err := form.float("latitude")
	if err != nil {
		return nil, err
	}
	if longitude != nil && latitude != nil {
		req.Location = &entity.GeoLocation{
			Name:      form.value("locationName"),
			Longitude: *longitude,
			Latitude:  *latitude,
		}
	}

	return req, nil
}

// DeleteSelf removes the caller's account.
func (h *UserHandler) DeleteSelf(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteSelf(c.Request().Context(), actor); err != nil {
		return err
	}

	return response.Message(c, "User deleted successfully")
}

// DeleteByID lets an admin remove any account.
func (h *UserHandler) DeleteByID(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	if err := h.userUC.DeleteByID(c.Request().Context(), id); err != nil {
		return err
	}

	return response.Message(c, "User deleted successfully")
}

// StoreQR renders a seller's store card QR code as PNG.
func (h *UserHandler) StoreQR(c echo.Context) error {
	id, err := pathUUID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.userUC.StoreQR(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
