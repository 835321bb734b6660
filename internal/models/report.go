package models

import "gorm.io/datatypes"

// TestReport - структурированный отчет о выполненном заказе.
// Не более одного на Purchase; создается лениво при первом чтении
// либо явно через POST /orders/reports/.
type TestReport struct {
	BaseModel
	PurchaseID string `gorm:"type:uuid;uniqueIndex;not null"`

	// Идентификация задания
	FullName       string
	Contact        string
	ItemName       string
	Category       string
	OrderDate      string // YYYY-MM-DD
	CompletionDate string // YYYY-MM-DD

	// Подтверждение выполнения
	ProofType  string
	ProofLinks datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
	ProofFiles datatypes.JSON `gorm:"type:jsonb;default:'[]'"` // не более 5 файлов

	// Оценки: пять шкал 1-5 и рекомендация 0-10.
	// nil - оценка еще не выставлена.
	ScoreQuality     *int
	ScoreDelivery    *int
	ScorePackaging   *int
	ScoreDescription *int
	ScoreOverall     *int
	ScoreRecommend   *int

	ReviewText string // до 1000 символов

	ConsentPublish bool `gorm:"default:false"`
	ConsentContact bool `gorm:"default:false"`
}
