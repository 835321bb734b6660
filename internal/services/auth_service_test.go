package services

import (
	"testing"

	"blogmarket_backend/internal/auth"
	"blogmarket_backend/internal/config"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret-key"
	cfg.JWT.TTL = 60
	config.AppConfig = cfg
}

func TestRegister_CreatesUserAndProfile(t *testing.T) {
	setTestConfig(t)
	userRepo := newMockUserRepo()
	profileRepo := newMockProfileRepo()
	svc := NewAuthService(userRepo, profileRepo)

	resp, err := svc.Register(nil, &dto.RegisterRequest{
		PhoneNumber: "+79001234567",
		Password:    "super_password",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "+79001234567", resp.User.PhoneNumber)

	// анкета заведена сразу при регистрации
	_, err = profileRepo.FindByUserID(nil, resp.User.ID)
	assert.NoError(t, err)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestRegister_DuplicatePhone(t *testing.T) {
	setTestConfig(t)
	svc := NewAuthService(newMockUserRepo(), newMockProfileRepo())

	req := &dto.RegisterRequest{PhoneNumber: "+79001234567", Password: "super_password"}
	_, err := svc.Register(nil, req)
	require.NoError(t, err)

	_, err = svc.Register(nil, req)
	assert.ErrorIs(t, err, apperrors.ErrPhoneAlreadyExists)
}

func TestRegister_ShortPassword(t *testing.T) {
	setTestConfig(t)
	svc := NewAuthService(newMockUserRepo(), newMockProfileRepo())

	_, err := svc.Register(nil, &dto.RegisterRequest{PhoneNumber: "+79001234567", Password: "short"})

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestLogin(t *testing.T) {
	setTestConfig(t)
	userRepo := newMockUserRepo()
	svc := NewAuthService(userRepo, newMockProfileRepo())

	_, err := svc.Register(nil, &dto.RegisterRequest{PhoneNumber: "+79001234567", Password: "super_password"})
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		resp, err := svc.Login(nil, &dto.LoginRequest{PhoneNumber: "+79001234567", Password: "super_password"})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
	})

	t.Run("unknown phone", func(t *testing.T) {
		_, err := svc.Login(nil, &dto.LoginRequest{PhoneNumber: "+79990000000", Password: "super_password"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(nil, &dto.LoginRequest{PhoneNumber: "+79001234567", Password: "wrong_password"})
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		user, err := userRepo.FindByPhone(nil, "+79001234567")
		require.NoError(t, err)
		user.IsActive = false

		_, err = svc.Login(nil, &dto.LoginRequest{PhoneNumber: "+79001234567", Password: "super_password"})
		assert.ErrorIs(t, err, apperrors.ErrUserDisabled)

		user.IsActive = true
	})
}
