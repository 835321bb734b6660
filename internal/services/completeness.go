package services

import (
	"strings"

	"blogmarket_backend/internal/models"

	"gorm.io/datatypes"
)

// IsProfileComplete проверяет, заполнены ли все обязательные поля анкеты.
// Чистая конъюнкция предикатов; единственное условное правило - медиа-кит:
// если has_media_kit = true, обязательна и ссылка на него.
func IsProfileComplete(p *models.Profile) bool {
	required := []bool{
		// Шаг 1
		hasText(p.FullName),
		p.HasSelfEmployment != nil,
		hasText(p.ReadyForSelfEmployment),
		hasText(p.MainBlogLink),
		hasItems(p.SocialLinks),
		hasText(p.Country),
		hasText(p.City),
		p.Age != nil,
		hasText(p.Gender),
		hasText(p.CoverageRegions),
		// Шаг 2
		hasItems(p.Platforms),
		hasItems(p.BlogTopics),
		hasText(p.BlogDescription),
		hasText(p.BlogExperience),
		hasText(p.PublicationFrequency),
		// Шаг 3
		hasItems(p.SubscribersByPlatform),
		hasItems(p.AverageReach),
		hasText(p.EngagementLevel),
		// Шаг 4
		hasText(p.ReadyToShareResults),
		hasText(p.ReadyForPaidAds),
		// Шаг 5
		hasItems(p.CollaborationFormats),
		hasItems(p.AdPricing),
		hasText(p.ReadyForBarter),
		hasItems(p.BarterCategories),
		// Шаг 6
		hasText(p.ReadyForBrandProjects),
		hasText(p.BlogManagement),
		hasText(p.ReadyForBloggerCommunity),
		p.ConsentPrivacy,
	}

	// Сам has_media_kit опционален, но положительный ответ требует ссылку
	if p.HasMediaKit != nil && *p.HasMediaKit && !hasText(p.MediaKitLink) {
		required = append(required, false)
	}

	for _, ok := range required {
		if !ok {
			return false
		}
	}
	return true
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func hasItems(data datatypes.JSON) bool {
	return models.ListLen(data) > 0
}
