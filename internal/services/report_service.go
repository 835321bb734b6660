package services

import (
	"encoding/json"
	"errors"

	"blogmarket_backend/internal/models"
	"blogmarket_backend/internal/repositories"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ReportService interface {
	ListPurchases(db *gorm.DB, testerID string) ([]dto.PurchaseResponse, error)
	// GetOrCreateReport возвращает отчет по закупке, создавая его с
	// умолчаниями из анкеты, если отчета еще нет
	GetOrCreateReport(db *gorm.DB, testerID, purchaseID string) (*dto.ReportResponse, error)
	UpdateReport(db *gorm.DB, testerID, purchaseID string, req *dto.ReportRequest) (*dto.ReportResponse, error)
	CreateReport(db *gorm.DB, testerID string, req *dto.ReportRequest) (*dto.ReportResponse, error)
}

type reportService struct {
	profileRepo  repositories.ProfileRepository
	purchaseRepo repositories.PurchaseRepository
	reportRepo   repositories.ReportRepository
}

func NewReportService(
	profileRepo repositories.ProfileRepository,
	purchaseRepo repositories.PurchaseRepository,
	reportRepo repositories.ReportRepository,
) ReportService {
	return &reportService{
		profileRepo:  profileRepo,
		purchaseRepo: purchaseRepo,
		reportRepo:   reportRepo,
	}
}

func (s *reportService) ListPurchases(db *gorm.DB, testerID string) ([]dto.PurchaseResponse, error) {
	purchases, err := s.purchaseRepo.ListByTester(db, testerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.PurchaseResponse, 0, len(purchases))
	for i := range purchases {
		responses = append(responses, dto.NewPurchaseResponse(&purchases[i]))
	}
	return responses, nil
}

func (s *reportService) GetOrCreateReport(db *gorm.DB, testerID, purchaseID string) (*dto.ReportResponse, error) {
	purchase, err := s.findOwnPurchase(db, testerID, purchaseID)
	if err != nil {
		return nil, err
	}

	report, err := s.reportRepo.FindByPurchaseID(db, purchase.ID)
	if err == nil {
		return dto.NewReportResponse(report), nil
	}
	if !errors.Is(err, repositories.ErrReportNotFound) {
		return nil, apperrors.InternalError(err)
	}

	report = s.defaultReport(db, testerID, purchase)
	if err := s.reportRepo.Create(db, report); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReportResponse(report), nil
}

func (s *reportService) UpdateReport(db *gorm.DB, testerID, purchaseID string, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	purchase, err := s.findOwnPurchase(db, testerID, purchaseID)
	if err != nil {
		return nil, err
	}

	report, err := s.reportRepo.FindByPurchaseID(db, purchase.ID)
	if err != nil {
		if !errors.Is(err, repositories.ErrReportNotFound) {
			return nil, apperrors.InternalError(err)
		}
		report = s.defaultReport(db, testerID, purchase)
		applyReportFields(report, req)
		if err := s.reportRepo.Create(db, report); err != nil {
			return nil, apperrors.InternalError(err)
		}
		return dto.NewReportResponse(report), nil
	}

	applyReportFields(report, req)
	if err := s.reportRepo.Update(db, report); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewReportResponse(report), nil
}

// CreateReport - явное создание отчета с указанием закупки в теле.
// Если отчет уже есть, заполненные поля перекрывают существующие.
func (s *reportService) CreateReport(db *gorm.DB, testerID string, req *dto.ReportRequest) (*dto.ReportResponse, error) {
	if req.PurchaseID == "" {
		return nil, apperrors.ValidationError(map[string]string{"purchase_id": "This field is required"})
	}
	return s.UpdateReport(db, testerID, req.PurchaseID, req)
}

// findOwnPurchase скрывает чужие закупки за 404
func (s *reportService) findOwnPurchase(db *gorm.DB, testerID, purchaseID string) (*models.Purchase, error) {
	purchase, err := s.purchaseRepo.FindByIDForTester(db, purchaseID, testerID)
	if err != nil {
		if errors.Is(err, repositories.ErrPurchaseNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return purchase, nil
}

// defaultReport собирает отчет с умолчаниями: имя и контакт из анкеты,
// название товара из закупки. Клиент может ничего не присылать.
func (s *reportService) defaultReport(db *gorm.DB, testerID string, purchase *models.Purchase) *models.TestReport {
	report := &models.TestReport{
		PurchaseID: purchase.ID,
		ItemName:   purchase.Article,
	}

	profile, err := s.profileRepo.FindByUserID(db, testerID)
	if err == nil {
		report.FullName = profile.FullName
		report.Contact = profile.Contact
	}
	return report
}

// applyReportFields накладывает присланные поля; пустые значения
// не затирают умолчания
func applyReportFields(report *models.TestReport, req *dto.ReportRequest) {
	overrideString(&report.FullName, req.FullName)
	overrideString(&report.Contact, req.Contact)
	overrideString(&report.ItemName, req.ItemName)
	overrideString(&report.Category, req.Category)
	overrideString(&report.OrderDate, req.OrderDate)
	overrideString(&report.CompletionDate, req.CompletionDate)
	overrideString(&report.ProofType, req.ProofType)

	overrideListJSON(&report.ProofLinks, req.ProofLinks)
	overrideListJSON(&report.ProofFiles, req.ProofFiles)

	if req.ScoreQuality != nil {
		report.ScoreQuality = req.ScoreQuality
	}
	if req.ScoreDelivery != nil {
		report.ScoreDelivery = req.ScoreDelivery
	}
	if req.ScorePackaging != nil {
		report.ScorePackaging = req.ScorePackaging
	}
	if req.ScoreDescription != nil {
		report.ScoreDescription = req.ScoreDescription
	}
	if req.ScoreOverall != nil {
		report.ScoreOverall = req.ScoreOverall
	}
	if req.ScoreRecommend != nil {
		report.ScoreRecommend = req.ScoreRecommend
	}

	overrideString(&report.ReviewText, req.ReviewText)

	if req.ConsentPublish != nil {
		report.ConsentPublish = *req.ConsentPublish
	}
	if req.ConsentContact != nil {
		report.ConsentContact = *req.ConsentContact
	}
}

func overrideString(dst *string, src string) {
	if src != "" {
		*dst = src
	}
}

func overrideListJSON(dst *datatypes.JSON, src []string) {
	if src == nil {
		return
	}
	raw, err := json.Marshal(src)
	if err != nil {
		return
	}
	*dst = datatypes.JSON(raw)
}
