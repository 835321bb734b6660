package repositories

import (
	"errors"

	"blogmarket_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPurchaseNotFound = errors.New("purchase not found")

type PurchaseRepository interface {
	ListByTester(db *gorm.DB, testerID string) ([]models.Purchase, error)
	// FindByIDForTester не отличает чужую запись от несуществующей
	FindByIDForTester(db *gorm.DB, purchaseID, testerID string) (*models.Purchase, error)
	// UpsertByOrder создает или обновляет единственную закупку заказа
	UpsertByOrder(tx *gorm.DB, orderID string, purchase *models.Purchase) error
}

type PurchaseRepositoryImpl struct{}

func NewPurchaseRepository() PurchaseRepository {
	return &PurchaseRepositoryImpl{}
}

func (r *PurchaseRepositoryImpl) ListByTester(db *gorm.DB, testerID string) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := db.Preload("Report").
		Where("tester_id = ?", testerID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *PurchaseRepositoryImpl) FindByIDForTester(db *gorm.DB, purchaseID, testerID string) (*models.Purchase, error) {
	var purchase models.Purchase
	err := db.First(&purchase, "id = ? AND tester_id = ?", purchaseID, testerID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPurchaseNotFound
		}
		return nil, err
	}
	return &purchase, nil
}

func (r *PurchaseRepositoryImpl) UpsertByOrder(tx *gorm.DB, orderID string, purchase *models.Purchase) error {
	var existing models.Purchase
	err := tx.First(&existing, "creating_order_id = ?", orderID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			purchase.CreatingOrderID = &orderID
			return tx.Create(purchase).Error
		}
		return err
	}

	existing.TesterID = purchase.TesterID
	existing.ExternalID = purchase.ExternalID
	existing.Article = purchase.Article
	existing.PickupPoint = purchase.PickupPoint
	existing.Metadata = purchase.Metadata
	existing.Status = purchase.Status
	if err := tx.Save(&existing).Error; err != nil {
		return err
	}
	*purchase = existing
	return nil
}
