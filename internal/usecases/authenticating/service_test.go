package authenticating

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbms/talent-bms-api/infrastructure/repository/mocks"
	"github.com/talentbms/talent-bms-api/internal/config"
	"github.com/talentbms/talent-bms-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{SecretKey: "test-secret-key"}
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLoginUser_TokenRoundtrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
		ID:           7,
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "secret-pass1"),
		Active:       true,
		RoleID:       RoleOperator,
	}, nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	token, err := service.LoginUser("Ana@Example.com ", "secret-pass1")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 7, claims.UserID)
	assert.Equal(t, "Ana", claims.UserName)
	assert.Equal(t, RoleOperator, claims.UserRoleID)
}

func TestLoginUser_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
		ID:           7,
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "secret-pass1"),
		Active:       true,
	}, nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	_, err := service.LoginUser("ana@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.True(t, IsCredentialsError(err))
}

func TestLoginUser_DisabledUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{
		ID:           7,
		Email:        "ana@example.com",
		PasswordHash: hashPassword(t, "secret-pass1"),
		Active:       false,
	}, nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	_, err := service.LoginUser("ana@example.com", "secret-pass1")
	assert.ErrorIs(t, err, ErrUserDisabled)
}

func TestLoginUser_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ghost@example.com").Return(nil, nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	_, err := service.LoginUser("ghost@example.com", "whatever")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestValidateToken_Invalid(t *testing.T) {
	service := &Service{cfg: testConfig()}

	_, err := service.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestCreateUser_DefaultsToActiveOperator(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("novo@example.com").Return(nil, nil)
	userRepo.EXPECT().CreateUser(gomock.Any()).DoAndReturn(func(user *domain.User) (*domain.User, error) {
		assert.Equal(t, RoleOperator, user.RoleID)
		// No activation step exists, new users must be able to log in.
		assert.True(t, user.Active)
		assert.NotEqual(t, "pass1234", user.PasswordHash) // stored hashed
		user.ID = 42
		return user, nil
	})

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	created, err := service.CreateUser(&domain.User{
		Name:         "Novo",
		Email:        "Novo@Example.com",
		PasswordHash: "pass1234",
	})
	require.NoError(t, err)

	assert.Equal(t, 42, created.ID)
	assert.Equal(t, "novo@example.com", created.Email)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByEmail("ana@example.com").Return(&domain.User{ID: 7}, nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	_, err := service.CreateUser(&domain.User{
		Name:         "Ana",
		Email:        "ana@example.com",
		PasswordHash: "pass1234",
	})
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestValidatePasswordStrength(t *testing.T) {
	service := &Service{}

	assert.ErrorIs(t, service.ValidatePasswordStrength("short1"), ErrWeakPassword)
	assert.ErrorIs(t, service.ValidatePasswordStrength("onlyletters"), ErrWeakPassword)
	assert.ErrorIs(t, service.ValidatePasswordStrength("12345678"), ErrWeakPassword)
	assert.NoError(t, service.ValidatePasswordStrength("letters123"))
}

func TestChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
		ID:           7,
		PasswordHash: hashPassword(t, "old-pass1"),
	}, nil)
	userRepo.EXPECT().UpdateUser(gomock.Any()).Return(nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	err := service.ChangePassword(7, "old-pass1", "new-pass123")
	assert.NoError(t, err)
}

func TestChangePassword_SamePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userRepo := mocks.NewMockUserRepository(ctrl)
	userRepo.EXPECT().GetUserByID(7).Return(&domain.User{
		ID:           7,
		PasswordHash: hashPassword(t, "old-pass1"),
	}, nil)

	service := &Service{userRepo: userRepo, cfg: testConfig()}

	err := service.ChangePassword(7, "old-pass1", "old-pass1")
	assert.ErrorIs(t, err, ErrSamePassword)
}
