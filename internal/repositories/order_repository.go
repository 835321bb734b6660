package repositories

import (
	"errors"

	"blogmarket_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(db *gorm.DB, order *models.CreatingOrder) error
	// ListProcessingByUser возвращает необработанные запросы пользователя,
	// новые первыми
	ListProcessingByUser(db *gorm.DB, userID string) ([]models.CreatingOrder, error)
	// FindByID читает заказ без блокировки. Чужой заказ неотличим от
	// несуществующего.
	FindByID(db *gorm.DB, orderID, userID string) (*models.CreatingOrder, error)
	// FindByIDForUpdate берет блокировку строки (SELECT ... FOR UPDATE);
	// вызывается только внутри транзакции. Чужой заказ неотличим от
	// несуществующего.
	FindByIDForUpdate(tx *gorm.DB, orderID, userID string) (*models.CreatingOrder, error)
	Update(db *gorm.DB, order *models.CreatingOrder) error
}

type OrderRepositoryImpl struct{}

func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) Create(db *gorm.DB, order *models.CreatingOrder) error {
	return db.Create(order).Error
}

func (r *OrderRepositoryImpl) ListProcessingByUser(db *gorm.DB, userID string) ([]models.CreatingOrder, error) {
	var orders []models.CreatingOrder
	err := db.Where("user_id = ? AND status = ?", userID, models.OrderStatusProcessing).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}

func (r *OrderRepositoryImpl) FindByID(db *gorm.DB, orderID, userID string) (*models.CreatingOrder, error) {
	var order models.CreatingOrder
	err := db.First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) FindByIDForUpdate(tx *gorm.DB, orderID, userID string) (*models.CreatingOrder, error) {
	var order models.CreatingOrder
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) Update(db *gorm.DB, order *models.CreatingOrder) error {
	result := db.Save(order)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
