package dto

import (
	"time"

	"blogmarket_backend/internal/models"

	"gorm.io/datatypes"
)

// UpdateProfileRequest - частичное обновление анкеты: nil-поля не трогаем.
// Списковые поля приходят произвольными JSON-массивами (внешняя форма
// хранит в них и строки, и объекты), поэтому тип - []interface{}.
type UpdateProfileRequest struct {
	// Шаг 1
	FullName               *string       `json:"full_name" validate:"omitempty,max=255"`
	HasSelfEmployment      *bool         `json:"has_self_employment"`
	ReadyForSelfEmployment *string       `json:"ready_for_self_employment" validate:"omitempty,oneof=yes no maybe"`
	MainBlogLink           *string       `json:"main_blog_link" validate:"omitempty,max=500"`
	SocialLinks            []interface{} `json:"social_links"`
	Country                *string       `json:"country" validate:"omitempty,max=100"`
	City                   *string       `json:"city" validate:"omitempty,max=255"`
	Age                    *int          `json:"age" validate:"omitempty,min=0,max=150"`
	Gender                 *string       `json:"gender" validate:"omitempty,oneof=M F"`
	CoverageRegions        *string       `json:"coverage_regions" validate:"omitempty,max=500"`

	// Шаг 2
	Platforms            []interface{} `json:"platforms"`
	BlogTopics           []interface{} `json:"blog_topics"`
	BlogDescription      *string       `json:"blog_description"`
	BlogExperience       *string       `json:"blog_experience" validate:"omitempty,oneof=<6months 6months-1year 1-2years >2years"`
	PublicationFrequency *string       `json:"publication_frequency" validate:"omitempty,oneof=daily few_times_week once_week less_often"`

	// Шаг 3
	SubscribersByPlatform []interface{} `json:"subscribers_by_platform"`
	AverageReach          []interface{} `json:"average_reach"`
	AudienceGenderAge     *string       `json:"audience_gender_age"`
	AudienceRegion        *string       `json:"audience_region" validate:"omitempty,max=255"`
	EngagementLevel       *string       `json:"engagement_level" validate:"omitempty,max=255"`

	// Шаг 4
	HasCollaborations     *bool         `json:"has_collaborations"`
	CollaborationExamples []interface{} `json:"collaboration_examples"`
	ReadyToShareResults   *string       `json:"ready_to_share_results" validate:"omitempty,oneof=yes no by_agreement"`
	ReadyForPaidAds       *string       `json:"ready_for_paid_ads" validate:"omitempty,oneof=yes_no_problem depends_on_conditions no"`

	// Шаг 5
	CollaborationFormats []interface{} `json:"collaboration_formats"`
	AdPricing            []interface{} `json:"ad_pricing"`
	ReadyForBarter       *string       `json:"ready_for_barter" validate:"omitempty,oneof=yes no depends_on_product"`
	BarterCategories     []interface{} `json:"barter_categories"`

	// Шаг 6
	ReadyForBrandProjects    *string `json:"ready_for_brand_projects" validate:"omitempty,oneof=yes maybe_depends no"`
	ProductsWontAdvertise    *string `json:"products_wont_advertise"`
	BlogManagement           *string `json:"blog_management" validate:"omitempty,oneof=myself assistant_manager agency"`
	HasMediaKit              *bool   `json:"has_media_kit"`
	MediaKitLink             *string `json:"media_kit_link" validate:"omitempty,max=500"`
	ReadyForBloggerCommunity *string `json:"ready_for_blogger_community" validate:"omitempty,oneof=yes maybe no"`
	AdditionalInfo           *string `json:"additional_info"`
	ConsentPrivacy           *bool   `json:"consent_privacy"`
	ConsentMarketingEmail    *bool   `json:"consent_marketing_email"`
	ConsentMarketingCalls    *bool   `json:"consent_marketing_calls"`

	// Старые поля
	Contact     *string `json:"contact" validate:"omitempty,max=255"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	PickupPoint *string `json:"pickup_point" validate:"omitempty,max=255"`
}

type ParticipationRequest struct {
	IsParticipating *bool `json:"is_participating" validate:"required"`
}

// ProfileResponse отдает анкету целиком вместе с вычисленными статусами.
// JSONB-поля сериализуются как есть.
type ProfileResponse struct {
	User UserResponse `json:"user"`

	FullName               string         `json:"full_name"`
	HasSelfEmployment      *bool          `json:"has_self_employment"`
	ReadyForSelfEmployment string         `json:"ready_for_self_employment"`
	MainBlogLink           string         `json:"main_blog_link"`
	SocialLinks            datatypes.JSON `json:"social_links"`
	Country                string         `json:"country"`
	City                   string         `json:"city"`
	Age                    *int           `json:"age"`
	Gender                 string         `json:"gender"`
	CoverageRegions        string         `json:"coverage_regions"`

	Platforms            datatypes.JSON `json:"platforms"`
	BlogTopics           datatypes.JSON `json:"blog_topics"`
	BlogDescription      string         `json:"blog_description"`
	BlogExperience       string         `json:"blog_experience"`
	PublicationFrequency string         `json:"publication_frequency"`

	SubscribersByPlatform datatypes.JSON `json:"subscribers_by_platform"`
	AverageReach          datatypes.JSON `json:"average_reach"`
	AudienceGenderAge     string         `json:"audience_gender_age"`
	AudienceRegion        string         `json:"audience_region"`
	EngagementLevel       string         `json:"engagement_level"`

	HasCollaborations     bool           `json:"has_collaborations"`
	CollaborationExamples datatypes.JSON `json:"collaboration_examples"`
	ReadyToShareResults   string         `json:"ready_to_share_results"`
	ReadyForPaidAds       string         `json:"ready_for_paid_ads"`

	CollaborationFormats datatypes.JSON `json:"collaboration_formats"`
	AdPricing            datatypes.JSON `json:"ad_pricing"`
	ReadyForBarter       string         `json:"ready_for_barter"`
	BarterCategories     datatypes.JSON `json:"barter_categories"`

	ReadyForBrandProjects    string `json:"ready_for_brand_projects"`
	ProductsWontAdvertise    string `json:"products_wont_advertise"`
	BlogManagement           string `json:"blog_management"`
	HasMediaKit              *bool  `json:"has_media_kit"`
	MediaKitLink             string `json:"media_kit_link"`
	ReadyForBloggerCommunity string `json:"ready_for_blogger_community"`
	AdditionalInfo           string `json:"additional_info"`
	ConsentPrivacy           bool   `json:"consent_privacy"`
	ConsentMarketingEmail    bool   `json:"consent_marketing_email"`
	ConsentMarketingCalls    bool   `json:"consent_marketing_calls"`

	Contact     string  `json:"contact"`
	DateOfBirth *string `json:"date_of_birth"`
	PickupPoint string  `json:"pickup_point"`

	IsCompleted     bool      `json:"is_completed"`
	IsParticipating bool      `json:"is_participating"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func NewProfileResponse(user *models.User, p *models.Profile) *ProfileResponse {
	var dob *string
	if p.DateOfBirth != nil {
		s := p.DateOfBirth.Format("2006-01-02")
		dob = &s
	}

	return &ProfileResponse{
		User: NewUserResponse(user),

		FullName:               p.FullName,
		HasSelfEmployment:      p.HasSelfEmployment,
		ReadyForSelfEmployment: p.ReadyForSelfEmployment,
		MainBlogLink:           p.MainBlogLink,
		SocialLinks:            emptyList(p.SocialLinks),
		Country:                p.Country,
		City:                   p.City,
		Age:                    p.Age,
		Gender:                 p.Gender,
		CoverageRegions:        p.CoverageRegions,

		Platforms:            emptyList(p.Platforms),
		BlogTopics:           emptyList(p.BlogTopics),
		BlogDescription:      p.BlogDescription,
		BlogExperience:       p.BlogExperience,
		PublicationFrequency: p.PublicationFrequency,

		SubscribersByPlatform: emptyList(p.SubscribersByPlatform),
		AverageReach:          emptyList(p.AverageReach),
		AudienceGenderAge:     p.AudienceGenderAge,
		AudienceRegion:        p.AudienceRegion,
		EngagementLevel:       p.EngagementLevel,

		HasCollaborations:     p.HasCollaborations,
		CollaborationExamples: emptyList(p.CollaborationExamples),
		ReadyToShareResults:   p.ReadyToShareResults,
		ReadyForPaidAds:       p.ReadyForPaidAds,

		CollaborationFormats: emptyList(p.CollaborationFormats),
		AdPricing:            emptyList(p.AdPricing),
		ReadyForBarter:       p.ReadyForBarter,
		BarterCategories:     emptyList(p.BarterCategories),

		ReadyForBrandProjects:    p.ReadyForBrandProjects,
		ProductsWontAdvertise:    p.ProductsWontAdvertise,
		BlogManagement:           p.BlogManagement,
		HasMediaKit:              p.HasMediaKit,
		MediaKitLink:             p.MediaKitLink,
		ReadyForBloggerCommunity: p.ReadyForBloggerCommunity,
		AdditionalInfo:           p.AdditionalInfo,
		ConsentPrivacy:           p.ConsentPrivacy,
		ConsentMarketingEmail:    p.ConsentMarketingEmail,
		ConsentMarketingCalls:    p.ConsentMarketingCalls,

		Contact:     p.Contact,
		DateOfBirth: dob,
		PickupPoint: p.PickupPoint,

		IsCompleted:     p.IsCompleted,
		IsParticipating: p.IsParticipating,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// emptyList заменяет NULL-колонку на пустой массив в ответе
func emptyList(data datatypes.JSON) datatypes.JSON {
	if len(data) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	return data
}
