package services

import (
	"encoding/json"
	"errors"
	"time"

	"blogmarket_backend/internal/logger"
	"blogmarket_backend/internal/models"
	"blogmarket_backend/internal/repositories"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProfileService interface {
	GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error)
	UpdateMyProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error)
	SetParticipation(db *gorm.DB, userID string, req *dto.ParticipationRequest) (*dto.ProfileResponse, error)
}

type profileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
}

func NewProfileService(userRepo repositories.UserRepository, profileRepo repositories.ProfileRepository) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
	}
}

func (s *profileService) GetMyProfile(db *gorm.DB, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	return dto.NewProfileResponse(user, profile), nil
}

func (s *profileService) UpdateMyProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	if err := applyProfileUpdate(profile, req); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"date_of_birth": err.Error()})
	}

	if err := s.profileRepo.Update(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.recomputeCompleteness(db, profile)

	return dto.NewProfileResponse(user, profile), nil
}

// SetParticipation включает или выключает участие в подборе.
// Включение возможно только при заполненной анкете.
func (s *profileService) SetParticipation(db *gorm.DB, userID string, req *dto.ParticipationRequest) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.getOrCreateProfile(db, userID)
	if err != nil {
		return nil, err
	}

	enable := *req.IsParticipating
	if enable && !profile.IsCompleted {
		return nil, apperrors.ErrParticipationBlocked
	}

	if profile.IsParticipating != enable {
		if err := s.profileRepo.UpdateParticipating(db, userID, enable); err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.IsParticipating = enable
	}

	return dto.NewProfileResponse(user, profile), nil
}

func (s *profileService) getOrCreateProfile(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repositories.ErrProfileNotFound) {
		return nil, apperrors.InternalError(err)
	}

	profile = &models.Profile{UserID: userID}
	if err := s.profileRepo.Create(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// recomputeCompleteness пересчитывает is_completed после каждой записи анкеты.
// Ошибка сохранения флага не прерывает запрос: данные уже записаны,
// флаг догонит их при следующем обновлении.
func (s *profileService) recomputeCompleteness(db *gorm.DB, profile *models.Profile) {
	completed := IsProfileComplete(profile)
	if completed == profile.IsCompleted {
		return
	}
	if err := s.profileRepo.UpdateCompleted(db, profile.UserID, completed); err != nil {
		logger.WithError(err).Error("failed to persist profile completeness", "user_id", profile.UserID)
		return
	}
	profile.IsCompleted = completed
}

func applyProfileUpdate(p *models.Profile, req *dto.UpdateProfileRequest) error {
	setString(&p.FullName, req.FullName)
	if req.HasSelfEmployment != nil {
		p.HasSelfEmployment = req.HasSelfEmployment
	}
	setString(&p.ReadyForSelfEmployment, req.ReadyForSelfEmployment)
	setString(&p.MainBlogLink, req.MainBlogLink)
	setList(&p.SocialLinks, req.SocialLinks)
	setString(&p.Country, req.Country)
	setString(&p.City, req.City)
	if req.Age != nil {
		p.Age = req.Age
	}
	setString(&p.Gender, req.Gender)
	setString(&p.CoverageRegions, req.CoverageRegions)

	setList(&p.Platforms, req.Platforms)
	setList(&p.BlogTopics, req.BlogTopics)
	setString(&p.BlogDescription, req.BlogDescription)
	setString(&p.BlogExperience, req.BlogExperience)
	setString(&p.PublicationFrequency, req.PublicationFrequency)

	setList(&p.SubscribersByPlatform, req.SubscribersByPlatform)
	setList(&p.AverageReach, req.AverageReach)
	setString(&p.AudienceGenderAge, req.AudienceGenderAge)
	setString(&p.AudienceRegion, req.AudienceRegion)
	setString(&p.EngagementLevel, req.EngagementLevel)

	if req.HasCollaborations != nil {
		p.HasCollaborations = *req.HasCollaborations
	}
	setList(&p.CollaborationExamples, req.CollaborationExamples)
	setString(&p.ReadyToShareResults, req.ReadyToShareResults)
	setString(&p.ReadyForPaidAds, req.ReadyForPaidAds)

	setList(&p.CollaborationFormats, req.CollaborationFormats)
	setList(&p.AdPricing, req.AdPricing)
	setString(&p.ReadyForBarter, req.ReadyForBarter)
	setList(&p.BarterCategories, req.BarterCategories)

	setString(&p.ReadyForBrandProjects, req.ReadyForBrandProjects)
	setString(&p.ProductsWontAdvertise, req.ProductsWontAdvertise)
	setString(&p.BlogManagement, req.BlogManagement)
	if req.HasMediaKit != nil {
		p.HasMediaKit = req.HasMediaKit
	}
	setString(&p.MediaKitLink, req.MediaKitLink)
	setString(&p.ReadyForBloggerCommunity, req.ReadyForBloggerCommunity)
	setString(&p.AdditionalInfo, req.AdditionalInfo)
	if req.ConsentPrivacy != nil {
		p.ConsentPrivacy = *req.ConsentPrivacy
	}
	if req.ConsentMarketingEmail != nil {
		p.ConsentMarketingEmail = *req.ConsentMarketingEmail
	}
	if req.ConsentMarketingCalls != nil {
		p.ConsentMarketingCalls = *req.ConsentMarketingCalls
	}

	setString(&p.Contact, req.Contact)
	if req.DateOfBirth != nil {
		if *req.DateOfBirth == "" {
			p.DateOfBirth = nil
		} else {
			dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
			if err != nil {
				return err
			}
			p.DateOfBirth = &dob
		}
	}
	setString(&p.PickupPoint, req.PickupPoint)

	return nil
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// setList сериализует присланный массив в JSONB; nil означает "поле не прислано"
func setList(dst *datatypes.JSON, src []interface{}) {
	if src == nil {
		return
	}
	raw, err := json.Marshal(src)
	if err != nil {
		raw = []byte("[]")
	}
	*dst = datatypes.JSON(raw)
}
