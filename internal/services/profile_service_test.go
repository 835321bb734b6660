package services

import (
	"errors"
	"testing"

	"blogmarket_backend/internal/models"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func setupProfileService() (*mockUserRepo, *mockProfileRepo, ProfileService) {
	userRepo := newMockUserRepo()
	profileRepo := newMockProfileRepo()
	user := &models.User{PhoneNumber: "+79001234567", IsActive: true}
	user.ID = "user-1"
	userRepo.users["user-1"] = user
	return userRepo, profileRepo, NewProfileService(userRepo, profileRepo)
}

func TestGetMyProfile_CreatesMissingProfile(t *testing.T) {
	_, profileRepo, svc := setupProfileService()

	resp, err := svc.GetMyProfile(nil, "user-1")
	require.NoError(t, err)
	assert.False(t, resp.IsCompleted)
	assert.Len(t, profileRepo.profiles, 1)
}

func TestUpdateMyProfile_RecomputesCompleted(t *testing.T) {
	_, profileRepo, svc := setupProfileService()
	full := completeProfile()
	full.IsCompleted = false
	profileRepo.profiles["user-1"] = full

	// пустое обновление: все поля уже заполнены, флаг должен включиться
	resp, err := svc.UpdateMyProfile(nil, "user-1", &dto.UpdateProfileRequest{})
	require.NoError(t, err)
	assert.True(t, resp.IsCompleted)

	// очистка обязательного поля выключает флаг
	resp, err = svc.UpdateMyProfile(nil, "user-1", &dto.UpdateProfileRequest{FullName: strPtr("")})
	require.NoError(t, err)
	assert.False(t, resp.IsCompleted)
}

// Ошибка сохранения флага не должна ломать запись анкеты
func TestUpdateMyProfile_CompletenessFailureSwallowed(t *testing.T) {
	_, profileRepo, svc := setupProfileService()
	full := completeProfile()
	full.IsCompleted = false
	profileRepo.profiles["user-1"] = full
	profileRepo.updateCompletedErr = errors.New("db down")

	resp, err := svc.UpdateMyProfile(nil, "user-1", &dto.UpdateProfileRequest{City: strPtr("Казань")})
	require.NoError(t, err)
	assert.Equal(t, "Казань", resp.City)
	assert.False(t, resp.IsCompleted) // флаг остался несвежим
	assert.Equal(t, 1, profileRepo.completedCalls)
}

func TestSetParticipation(t *testing.T) {
	_, profileRepo, svc := setupProfileService()
	profileRepo.profiles["user-1"] = &models.Profile{UserID: "user-1"}

	t.Run("blocked while incomplete", func(t *testing.T) {
		_, err := svc.SetParticipation(nil, "user-1", &dto.ParticipationRequest{IsParticipating: boolPtr(true)})
		assert.ErrorIs(t, err, apperrors.ErrParticipationBlocked)
	})

	t.Run("disable is always allowed", func(t *testing.T) {
		resp, err := svc.SetParticipation(nil, "user-1", &dto.ParticipationRequest{IsParticipating: boolPtr(false)})
		require.NoError(t, err)
		assert.False(t, resp.IsParticipating)
	})

	t.Run("enable after completion", func(t *testing.T) {
		profileRepo.profiles["user-1"].IsCompleted = true
		resp, err := svc.SetParticipation(nil, "user-1", &dto.ParticipationRequest{IsParticipating: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, resp.IsParticipating)
	})
}

func TestUpdateMyProfile_PartialApply(t *testing.T) {
	_, profileRepo, svc := setupProfileService()
	profileRepo.profiles["user-1"] = &models.Profile{
		UserID:   "user-1",
		FullName: "Иван Иванов",
		City:     "Москва",
	}

	resp, err := svc.UpdateMyProfile(nil, "user-1", &dto.UpdateProfileRequest{
		City:      strPtr("Казань"),
		Platforms: []interface{}{"instagram", "youtube"},
	})
	require.NoError(t, err)

	// непереданные поля не тронуты
	assert.Equal(t, "Иван Иванов", resp.FullName)
	assert.Equal(t, "Казань", resp.City)
	assert.Equal(t, 2, models.ListLen(resp.Platforms))
}
