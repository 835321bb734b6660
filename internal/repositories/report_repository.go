package repositories

import (
	"errors"

	"blogmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrReportNotFound = errors.New("test report not found")

type ReportRepository interface {
	FindByPurchaseID(db *gorm.DB, purchaseID string) (*models.TestReport, error)
	Create(db *gorm.DB, report *models.TestReport) error
	Update(db *gorm.DB, report *models.TestReport) error
}

type ReportRepositoryImpl struct{}

func NewReportRepository() ReportRepository {
	return &ReportRepositoryImpl{}
}

func (r *ReportRepositoryImpl) FindByPurchaseID(db *gorm.DB, purchaseID string) (*models.TestReport, error) {
	var report models.TestReport
	err := db.First(&report, "purchase_id = ?", purchaseID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReportNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) Create(db *gorm.DB, report *models.TestReport) error {
	return db.Create(report).Error
}

func (r *ReportRepositoryImpl) Update(db *gorm.DB, report *models.TestReport) error {
	result := db.Save(report)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrReportNotFound
	}
	return nil
}
