package impl

import (
	"context"
	"testing"

	"marketplace/internal/domain/entity"
	domainerrors "marketplace/internal/domain/errors"
	"marketplace/internal/domain/repository"
	mockRepo "marketplace/internal/mocks/repository"
	mockSvc "marketplace/internal/mocks/service"
	"marketplace/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service       usecase.UserUsecase
	userRepo      *mockRepo.MockUserRepository
	inventoryRepo *mockRepo.MockInventoryRepository
	hasher        *mockSvc.MockPasswordHasher
	tokenService  *mockSvc.MockTokenService
	storage       *mockSvc.MockFileStorage
	qrCodes       *mockSvc.MockQRCodeService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	fx := userServiceFixtures{
		userRepo:      mockRepo.NewMockUserRepository(t),
		inventoryRepo: mockRepo.NewMockInventoryRepository(t),
		hasher:        mockSvc.NewMockPasswordHasher(t),
		tokenService:  mockSvc.NewMockTokenService(t),
		storage:       mockSvc.NewMockFileStorage(t),
		qrCodes:       mockSvc.NewMockQRCodeService(t),
	}

	fx.service = NewUserService(UserServiceParams{
		UserRepo:      fx.userRepo,
		InventoryRepo: fx.inventoryRepo,
		Hasher:        fx.hasher,
		TokenService:  fx.tokenService,
		Storage:       fx.storage,
		QRCodes:       fx.qrCodes,
		Logger:        newDiscardLogger(),
	})

	return fx
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{
		Name:     "Kamal Perera",
		Email:    "kamal@example.com",
		Password: "Password123!",
		Type:     "seller",
	}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Signup(ctx, input, nil)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, entity.UserTypeSeller, user.Type)
	assert.Equal(t, entity.StatusInactive, user.Status)
	assert.Equal(t, "hashed_password", user.PasswordHash)
	assert.Empty(t, user.ProfilePic)
}

func TestUserService_Signup_DefaultsToAdmin(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Name: "Root", Email: "root@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.Signup(ctx, input, nil)

	require.NoError(t, err)
	assert.Equal(t, entity.UserTypeAdmin, user.Type)
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Name: "x"}, nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Contains(t, err.Error(), "email, password")
}

func TestUserService_Signup_InvalidType(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.SignupInput{Name: "x", Email: "x@example.com", Password: "Password123!", Type: "guest"}
	_, err := fx.service.Signup(context.Background(), input, nil)

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Name: "x", Email: "taken@example.com", Password: "Password123!"}

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(&entity.User{ID: uuid.New()}, nil)

	_, err := fx.service.Signup(ctx, input, nil)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Signup_DuplicateRaceDiscardsPicture(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.SignupInput{Name: "x", Email: "race@example.com", Password: "Password123!"}
	picture := newPicture("me.png")

	fx.hasher.EXPECT().ValidatePasswordStrength(input.Password).Return(nil)
	fx.userRepo.EXPECT().FindByEmail(ctx, input.Email).Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed", nil)
	fx.storage.EXPECT().
		Save(ctx, "profile", "me.png", "image/png", picture.Body).
		Return("image/profile/0123456789abcdef.png", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(repository.ErrDuplicateEmail)
	fx.storage.EXPECT().Delete(ctx, "image/profile/0123456789abcdef.png").Return(nil)

	_, err := fx.service.Signup(ctx, input, picture)

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Signin_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           uuid.New(),
		Email:        "buyer@example.com",
		PasswordHash: "hashed",
		Type:         entity.UserTypeBuyer,
		Status:       entity.StatusActive,
	}

	fx.userRepo.EXPECT().FindByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.tokenService.EXPECT().
		GenerateToken(entity.AuthenticatedContext{UserID: user.ID, Email: user.Email, Type: user.Type}).
		Return("signed-token", nil)

	out, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, user.ID, out.UserData.ID)
	assert.Equal(t, entity.UserTypeBuyer, out.UserData.Type)
}

func TestUserService_Signin_Failures(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: "ghost@example.com", Password: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByEmail(ctx, "a@example.com").Return(&entity.User{PasswordHash: "h"}, nil)
		fx.hasher.EXPECT().Check("bad", "h").Return(false)

		_, err := fx.service.Signin(ctx, &usecase.SigninInput{Email: "a@example.com", Password: "bad"})
		assert.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
	})
}

func TestUserService_UpdateProfile_ReplacesPicture(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeSeller)
	existing := &entity.User{ID: actor.UserID, Name: "Old", ProfilePic: "image/profile/old.png"}
	picture := newPicture("new.png")

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(existing, nil)
	fx.storage.EXPECT().Save(ctx, "profile", "new.png", "image/png", picture.Body).Return("image/profile/new.png", nil)
	fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)
	fx.storage.EXPECT().Delete(ctx, "image/profile/old.png").Return(nil)

	user, err := fx.service.UpdateProfile(ctx, actor, &usecase.UpdateProfileInput{Name: ptr("New")}, picture)

	require.NoError(t, err)
	assert.Equal(t, "New", user.Name)
	assert.Equal(t, "image/profile/new.png", user.ProfilePic)
}

func TestUserService_UpdateProfile_KeepsPictureWithoutUpload(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	actor := newActor(entity.UserTypeBuyer)
	existing := &entity.User{ID: actor.UserID, ProfilePic: "image/profile/keep.png"}
	location := &entity.GeoLocation{Name: "Home", Latitude: 6.9, Longitude: 79.8}

	fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(existing, nil)
	fx.userRepo.EXPECT().Update(ctx, existing).Return(nil)

	user, err := fx.service.UpdateProfile(ctx, actor, &usecase.UpdateProfileInput{Location: location}, nil)

	require.NoError(t, err)
	assert.Equal(t, "image/profile/keep.png", user.ProfilePic)
	assert.Equal(t, location, user.Location)
}

func TestUserService_ChangePassword(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		fx := createTestUserService(t)

		err := fx.service.ChangePassword(context.Background(), newActor(entity.UserTypeBuyer), &usecase.ChangePasswordInput{OldPassword: "x"})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("wrong old password", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		actor := newActor(entity.UserTypeBuyer)

		fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(&entity.User{ID: actor.UserID, PasswordHash: "h"}, nil)
		fx.hasher.EXPECT().Check("old", "h").Return(false)

		err := fx.service.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "New12345!"})
		require.ErrorIs(t, err, domainerrors.ErrIncorrectPassword)
		assert.Contains(t, err.Error(), "Incorrect old password!")
	})

	t.Run("success", func(t *testing.T) {
		fx := createTestUserService(t)
		ctx := context.Background()
		actor := newActor(entity.UserTypeBuyer)
		user := &entity.User{ID: actor.UserID, PasswordHash: "h"}

		fx.userRepo.EXPECT().FindByID(ctx, actor.UserID).Return(user, nil)
		fx.hasher.EXPECT().Check("old", "h").Return(true)
		fx.hasher.EXPECT().ValidatePasswordStrength("New12345!").Return(nil)
		fx.hasher.EXPECT().Hash("New12345!").Return("h2", nil)
		fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

		err := fx.service.ChangePassword(ctx, actor, &usecase.ChangePasswordInput{OldPassword: "old", NewPassword: "New12345!"})
		require.NoError(t, err)
		assert.Equal(t, "h2", user.PasswordHash)
	})
}

func TestUserService_UpdateStatus(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()

	_, err := fx.service.UpdateStatus(ctx, id, "banned")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	user := &entity.User{ID: id, Status: entity.StatusInactive}
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(user, nil)
	fx.userRepo.EXPECT().Update(ctx, user).Return(nil)

	updated, err := fx.service.UpdateStatus(ctx, id, "active")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, updated.Status)
}

func TestUserService_DeleteByID_NotFound(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	fx.userRepo.EXPECT().Delete(ctx, id).Return(repository.ErrUserNotFound)

	err := fx.service.DeleteByID(ctx, id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ListActiveSellers_AttachesProducts(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	withStock := &entity.User{ID: uuid.New(), Type: entity.UserTypeSeller}
	empty := &entity.User{ID: uuid.New(), Type: entity.UserTypeSeller}
	item := &entity.Inventory{ID: uuid.New(), AddedBy: withStock.ID}

	fx.userRepo.EXPECT().List(ctx, entity.UserTypeSeller, entity.StatusActive).Return([]*entity.User{withStock, empty}, nil)
	fx.inventoryRepo.EXPECT().
		ListBySellers(ctx, []uuid.UUID{withStock.ID, empty.ID}).
		Return(map[uuid.UUID][]*entity.Inventory{withStock.ID: {item}}, nil)

	sellers, err := fx.service.ListActiveSellers(ctx)

	require.NoError(t, err)
	require.Len(t, sellers, 2)
	assert.Equal(t, []*entity.Inventory{item}, sellers[0].Products)
	assert.NotNil(t, sellers[1].Products)
	assert.Empty(t, sellers[1].Products)
}

func TestUserService_StoreQR(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	seller := &entity.User{ID: uuid.New(), Type: entity.UserTypeSeller}
	buyer := &entity.User{ID: uuid.New(), Type: entity.UserTypeBuyer}

	fx.userRepo.EXPECT().FindByID(ctx, seller.ID).Return(seller, nil)
	fx.qrCodes.EXPECT().GenerateStoreQR(seller.ID).Return([]byte("png"), nil)

	png, err := fx.service.StoreQR(ctx, seller.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)

	fx.userRepo.EXPECT().FindByID(ctx, buyer.ID).Return(buyer, nil)

	_, err = fx.service.StoreQR(ctx, buyer.ID)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_GetByID_DatabaseError(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	id := uuid.New()
	dbErr := errors.New("connection refused")
	fx.userRepo.EXPECT().FindByID(ctx, id).Return(nil, dbErr)

	_, err := fx.service.GetByID(ctx, id)

	assert.ErrorIs(t, err, dbErr)
}
