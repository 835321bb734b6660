package dto

import (
	"time"

	"blogmarket_backend/internal/models"

	"gorm.io/datatypes"
)

// --- Purchase Responses ---

type PurchaseResponse struct {
	ID          string                `json:"id"`
	ExternalID  string                `json:"external_id"`
	Article     string                `json:"article"`
	PickupPoint string                `json:"pickup_point"`
	Status      models.PurchaseStatus `json:"status"`
	Metadata    datatypes.JSON        `json:"metadata"`
	HasReport   bool                  `json:"has_report"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
}

func NewPurchaseResponse(p *models.Purchase) PurchaseResponse {
	metadata := p.Metadata
	if len(metadata) == 0 {
		metadata = datatypes.JSON([]byte("{}"))
	}
	return PurchaseResponse{
		ID:          p.ID,
		ExternalID:  p.ExternalID,
		Article:     p.Article,
		PickupPoint: p.PickupPoint,
		Status:      p.Status,
		Metadata:    metadata,
		HasReport:   p.Report != nil,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

// --- Report Requests ---

// ReportRequest - явное создание/обновление отчета.
// PurchaseID обязателен только для POST /orders/reports/, для
// PUT по закупке он берется из URL.
// Пустые значения не затирают подставленные из профиля умолчания.
type ReportRequest struct {
	PurchaseID string `json:"purchase_id" validate:"omitempty,uuid"`

	FullName       string `json:"full_name" validate:"omitempty,max=255"`
	Contact        string `json:"contact" validate:"omitempty,max=255"`
	ItemName       string `json:"item_name" validate:"omitempty,max=255"`
	Category       string `json:"category" validate:"omitempty,max=255"`
	OrderDate      string `json:"order_date" validate:"omitempty,datetime=2006-01-02"`
	CompletionDate string `json:"completion_date" validate:"omitempty,datetime=2006-01-02"`

	ProofType  string   `json:"proof_type" validate:"omitempty,max=100"`
	ProofLinks []string `json:"proof_links" validate:"omitempty,dive,max=500"`
	ProofFiles []string `json:"proof_files" validate:"omitempty,max=5,dive,max=500"`

	ScoreQuality     *int `json:"score_quality" validate:"omitempty,min=1,max=5"`
	ScoreDelivery    *int `json:"score_delivery" validate:"omitempty,min=1,max=5"`
	ScorePackaging   *int `json:"score_packaging" validate:"omitempty,min=1,max=5"`
	ScoreDescription *int `json:"score_description" validate:"omitempty,min=1,max=5"`
	ScoreOverall     *int `json:"score_overall" validate:"omitempty,min=1,max=5"`
	ScoreRecommend   *int `json:"score_recommend" validate:"omitempty,min=0,max=10"`

	ReviewText string `json:"review_text" validate:"omitempty,max=1000"`

	ConsentPublish *bool `json:"consent_publish"`
	ConsentContact *bool `json:"consent_contact"`
}

// --- Report Responses ---

type ReportResponse struct {
	ID         string `json:"id"`
	PurchaseID string `json:"purchase_id"`

	FullName       string `json:"full_name"`
	Contact        string `json:"contact"`
	ItemName       string `json:"item_name"`
	Category       string `json:"category"`
	OrderDate      string `json:"order_date"`
	CompletionDate string `json:"completion_date"`

	ProofType  string         `json:"proof_type"`
	ProofLinks datatypes.JSON `json:"proof_links"`
	ProofFiles datatypes.JSON `json:"proof_files"`

	ScoreQuality     *int `json:"score_quality"`
	ScoreDelivery    *int `json:"score_delivery"`
	ScorePackaging   *int `json:"score_packaging"`
	ScoreDescription *int `json:"score_description"`
	ScoreOverall     *int `json:"score_overall"`
	ScoreRecommend   *int `json:"score_recommend"`

	ReviewText string `json:"review_text"`

	ConsentPublish bool `json:"consent_publish"`
	ConsentContact bool `json:"consent_contact"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewReportResponse(r *models.TestReport) *ReportResponse {
	return &ReportResponse{
		ID:         r.ID,
		PurchaseID: r.PurchaseID,

		FullName:       r.FullName,
		Contact:        r.Contact,
		ItemName:       r.ItemName,
		Category:       r.Category,
		OrderDate:      r.OrderDate,
		CompletionDate: r.CompletionDate,

		ProofType:  r.ProofType,
		ProofLinks: emptyList(r.ProofLinks),
		ProofFiles: emptyList(r.ProofFiles),

		ScoreQuality:     r.ScoreQuality,
		ScoreDelivery:    r.ScoreDelivery,
		ScorePackaging:   r.ScorePackaging,
		ScoreDescription: r.ScoreDescription,
		ScoreOverall:     r.ScoreOverall,
		ScoreRecommend:   r.ScoreRecommend,

		ReviewText: r.ReviewText,

		ConsentPublish: r.ConsentPublish,
		ConsentContact: r.ConsentContact,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
