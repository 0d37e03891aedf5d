// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"marketplace/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignupInput defines the data required to create an account.
type SignupInput struct {
	Name      string
	Email     string
	Password  string
	PhoneNo   string
	Type      string // admin when empty
	Address   string
	StoreName string
	Location  *entity.GeoLocation
}

// SigninInput defines the data required for a user to sign in.
type SigninInput struct {
	Email    string
	Password string
}

// UpdateProfileInput carries a partial profile update. Nil fields are left untouched.
type UpdateProfileInput struct {
	Name      *string
	PhoneNo   *string
	Address   *string
	StoreName *string
	Password  *string
	Location  *entity.GeoLocation
}

// ChangePasswordInput defines the data required to rotate a password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// --- Output DTOs ---

// SigninUser is the identity summary returned with a token.
type SigninUser struct {
	ID     uuid.UUID       `json:"id"`
	Email  string          `json:"email"`
	Type   entity.UserType `json:"type"`
	Status entity.Status   `json:"status"`
}

// SigninOutput returns the generated token after a successful sign in.
type SigninOutput struct {
	Token    string     `json:"token"`
	UserData SigninUser `json:"userData"`
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Signup(ctx context.Context, input *SignupInput, picture *Upload) (*entity.User, error)
	Signin(ctx context.Context, input *SigninInput) (*SigninOutput, error)

	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetMe(ctx context.Context, actor entity.AuthenticatedContext) (*entity.User, error)
	UpdateProfile(ctx context.Context, actor entity.AuthenticatedContext, input *UpdateProfileInput, picture *Upload) (*entity.User, error)
	ChangePassword(ctx context.Context, actor entity.AuthenticatedContext, input *ChangePasswordInput) error
	DeleteSelf(ctx context.Context, actor entity.AuthenticatedContext) error

	// Administration
	DeleteByID(ctx context.Context, id uuid.UUID) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.User, error)
	ListByStatus(ctx context.Context, status entity.Status) ([]*entity.User, error)
	ListActiveSellers(ctx context.Context) ([]*entity.SellerWithProducts, error)
	ListActiveBuyers(ctx context.Context) ([]*entity.User, error)

	// StoreQR renders the store card QR code of a seller as PNG.
	StoreQR(ctx context.Context, sellerID uuid.UUID) ([]byte, error)
}
