// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "marketplace/internal/delivery/context"
	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo      repository.UserRepository
	inventoryRepo repository.InventoryRepository
	hasher        service.PasswordHasher
	tokenService  service.TokenService
	storage       service.FileStorage
	qrCodes       service.QRCodeService
	logger        *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo      repository.UserRepository
	InventoryRepo repository.InventoryRepository
	Hasher        service.PasswordHasher
	TokenService  service.TokenService
	Storage       service.FileStorage
	QRCodes       service.QRCodeService
	Logger        *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:      params.UserRepo,
		inventoryRepo: params.InventoryRepo,
		hasher:        params.Hasher,
		tokenService:  params.TokenService,
		storage:       params.Storage,
		qrCodes:       params.QRCodes,
		logger:        params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup creates an inactive account. The type defaults to admin when not supplied.
func (srv *userService) Signup(ctx context.Context, input *usecase.SignupInput, picture *usecase.Upload) (*entity.User, error) {
	if err := requireFields(
		field{"name", present(input.Name)},
		field{"email", present(input.Email)},
		field{"password", input.Password != ""},
	); err != nil {
		return nil, err
	}

	userType := entity.UserTypeAdmin
	if input.Type != "" {
		userType = entity.UserType(input.Type)
		if !userType.IsValid() {
			return nil, domainerrors.ErrValidationFailed.WithDetails("type must be one of admin, seller, buyer")
		}
	}

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindByEmail(ctx, input.Email); err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during signup", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		PhoneNo:      input.PhoneNo,
		Type:         userType,
		Status:       entity.StatusInactive,
		Address:      input.Address,
		StoreName:    input.StoreName,
		Location:     input.Location,
	}

	if picture != nil {
		key, err := storeUpload(ctx, srv.storage, usecase.UploadKindProfile, picture)
		if err != nil {
			return nil, err
		}
		user.ProfilePic = key
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		srv.discard(ctx, user.ProfilePic)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User signed up", slog.Any("userID", user.ID), slog.String("type", userType.String()))

	return user, nil
}

// Signin verifies the credentials and issues an access token.
func (srv *userService) Signin(ctx context.Context, input *usecase.SigninInput) (*usecase.SigninOutput, error) {
	if err := requireFields(
		field{"email", present(input.Email)},
		field{"password", input.Password != ""},
	); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		return nil, userNotFound(err)
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign in with a wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrIncorrectPassword
	}

	token, err := srv.tokenService.GenerateToken(entity.AuthenticatedContext{
		UserID: user.ID,
		Email:  user.Email,
		Type:   user.Type,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	return &usecase.SigninOutput{
		Token: token,
		UserData: usecase.SigninUser{
			ID:     user.ID,
			Email:  user.Email,
			Type:   user.Type,
			Status: user.Status,
		},
	}, nil
}

func (srv *userService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, userNotFound(err)
	}

	return user, nil
}

func (srv *userService) GetMe(ctx context.Context, actor entity.AuthenticatedContext) (*entity.User, error) {
	return srv.GetByID(ctx, actor.UserID)
}

// UpdateProfile applies the supplied fields only. A new picture replaces the stored one.
func (srv *userService) UpdateProfile(ctx context.Context, actor entity.AuthenticatedContext, input *usecase.UpdateProfileInput, picture *usecase.Upload) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return nil, userNotFound(err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.PhoneNo != nil {
		user.PhoneNo = *input.PhoneNo
	}
	if input.Address != nil {
		user.Address = *input.Address
	}
	if input.StoreName != nil {
		user.StoreName = *input.StoreName
	}
	if input.Location != nil {
		user.Location = input.Location
	}
	if input.Password != nil {
		if err := srv.hasher.ValidatePasswordStrength(*input.Password); err != nil {
			return nil, err
		}
		hashed, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hashed
	}

	previousPic := user.ProfilePic
	if picture != nil {
		key, err := storeUpload(ctx, srv.storage, usecase.UploadKindProfile, picture)
		if err != nil {
			return nil, err
		}
		user.ProfilePic = key
	}

	if err := srv.userRepo.Update(ctx, user); err != nil {
		if picture != nil {
			srv.discard(ctx, user.ProfilePic)
		}

		return nil, errors.Wrap(userNotFound(err), "failed to update profile")
	}

	if picture != nil {
		srv.discard(ctx, previousPic)
	}

	return user, nil
}

// ChangePassword requires the current password before accepting a new one.
func (srv *userService) ChangePassword(ctx context.Context, actor entity.AuthenticatedContext, input *usecase.ChangePasswordInput) error {
	if input.OldPassword == "" || input.NewPassword == "" {
		return domainerrors.ErrValidationFailed.WithDetails("Both old and new passwords are required!")
	}

	user, err := srv.userRepo.FindByID(ctx, actor.UserID)
	if err != nil {
		return userNotFound(err)
	}

	if !srv.hasher.Check(input.OldPassword, user.PasswordHash) {
		return domainerrors.ErrIncorrectPassword.WithMessage("Incorrect old password!")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		return err
	}

	hashed, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hashed

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return errors.Wrap(userNotFound(err), "failed to change password")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", user.ID))

	return nil
}

func (srv *userService) DeleteSelf(ctx context.Context, actor entity.AuthenticatedContext) error {
	return srv.DeleteByID(ctx, actor.UserID)
}

func (srv *userService) DeleteByID(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return userNotFound(err)
	}

	srv.log(ctx).Info("User deleted", slog.Any("userID", id))

	return nil
}

// UpdateStatus activates or deactivates an account.
func (srv *userService) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (*entity.User, error) {
	next := entity.Status(status)
	if !next.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("Invalid status value!")
	}

	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, userNotFound(err)
	}

	user.Status = next
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(userNotFound(err), "failed to update status")
	}

	return user, nil
}

func (srv *userService) ListByStatus(ctx context.Context, status entity.Status) ([]*entity.User, error) {
	return srv.userRepo.List(ctx, "", status)
}

// ListActiveSellers returns every active seller together with their products.
func (srv *userService) ListActiveSellers(ctx context.Context) ([]*entity.SellerWithProducts, error) {
	sellers, err := srv.userRepo.List(ctx, entity.UserTypeSeller, entity.StatusActive)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(sellers))
	for _, seller := range sellers {
		ids = append(ids, seller.ID)
	}

	products, err := srv.inventoryRepo.ListBySellers(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.SellerWithProducts, 0, len(sellers))
	for _, seller := range sellers {
		items := products[seller.ID]
		if items == nil {
			items = []*entity.Inventory{}
		}
		result = append(result, &entity.SellerWithProducts{User: seller, Products: items})
	}

	return result, nil
}

func (srv *userService) ListActiveBuyers(ctx context.Context) ([]*entity.User, error) {
	return srv.userRepo.List(ctx, entity.UserTypeBuyer, entity.StatusActive)
}

// StoreQR renders the store card QR code of an existing seller.
func (srv *userService) StoreQR(ctx context.Context, sellerID uuid.UUID) ([]byte, error) {
	user, err := srv.userRepo.FindByID(ctx, sellerID)
	if err != nil {
		return nil, userNotFound(err)
	}
	if user.Type != entity.UserTypeSeller {
		return nil, domainerrors.ErrUserNotFound.WithDetails("user is not a seller")
	}

	png, err := srv.qrCodes.GenerateStoreQR(sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate store QR code")
	}

	return png, nil
}

func (srv *userService) discard(ctx context.Context, key string) {
	discardUpload(ctx, srv.storage, srv.logger, key)
}
