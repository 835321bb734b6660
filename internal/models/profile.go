package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Profile - анкета блогера, заполняется в шесть шагов.
// Все поля анкеты опциональны на уровне хранения: обязательность
// проверяет только вычислитель заполненности.
type Profile struct {
	BaseModel
	UserID string `gorm:"uniqueIndex;not null"`

	// Шаг 1: базовая информация
	FullName               string
	HasSelfEmployment      *bool
	ReadyForSelfEmployment string // yes | no | maybe
	MainBlogLink           string
	SocialLinks            datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	Country                string
	City                   string
	Age                    *int
	Gender                 string // M | F
	CoverageRegions        string

	// Шаг 2: контент и платформа
	Platforms            datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	BlogTopics           datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	BlogDescription      string
	BlogExperience       string // <6months | 6months-1year | 1-2years | >2years
	PublicationFrequency string // daily | few_times_week | once_week | less_often

	// Шаг 3: аудитория
	SubscribersByPlatform datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	AverageReach          datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	AudienceGenderAge     string
	AudienceRegion        string
	EngagementLevel       string

	// Шаг 4: опыт и сотрудничество
	HasCollaborations     bool           `gorm:"default:false"`
	CollaborationExamples datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ReadyToShareResults   string         // yes | no | by_agreement
	ReadyForPaidAds       string         // yes_no_problem | depends_on_conditions | no

	// Шаг 5: формат сотрудничества
	CollaborationFormats datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	AdPricing            datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ReadyForBarter       string         // yes | no | depends_on_product
	BarterCategories     datatypes.JSON `gorm:"type:jsonb;default:'[]'"`

	// Шаг 6: дополнительно
	ReadyForBrandProjects    string // yes | maybe_depends | no
	ProductsWontAdvertise    string
	BlogManagement           string // myself | assistant_manager | agency
	HasMediaKit              *bool
	MediaKitLink             string
	ReadyForBloggerCommunity string // yes | maybe | no
	AdditionalInfo           string
	ConsentPrivacy           bool `gorm:"default:false"`
	ConsentMarketingEmail    bool `gorm:"default:false"`
	ConsentMarketingCalls    bool `gorm:"default:false"`

	// Старые поля (обратная совместимость с ранними анкетами)
	Contact     string
	DateOfBirth *time.Time
	PickupPoint string

	// Статусы. IsCompleted пересчитывается после каждого обновления анкеты,
	// клиент его не задает. IsParticipating не бывает true без IsCompleted.
	IsCompleted     bool `gorm:"default:false"`
	IsParticipating bool `gorm:"default:false"`
}

// ListLen возвращает длину JSONB-массива; не-массив считается пустым
func ListLen(data datatypes.JSON) int {
	if len(data) == 0 {
		return 0
	}
	var items []json.RawMessage
	if err := json.Unmarshal(data, &items); err != nil {
		return 0
	}
	return len(items)
}
