package models

import (
	"time"

	"gorm.io/datatypes"
)

// CreatingOrder - входящий запрос на заказ от внешней системы.
// Удаление пользователя удаляет и его запросы.
type CreatingOrder struct {
	BaseModel
	UserID string `gorm:"not null;index"`
	User   *User  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	Article     string `gorm:"not null"`
	Title       string
	PickupPoint string
	Notes       string
	Status      OrderStatus    `gorm:"type:varchar(12);default:'PROCESSING'"`
	Payload     datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	AssignedByID *string `gorm:"type:uuid"`

	// Выставляется ровно один раз - при переходе в терминальный статус
	RespondedAt *time.Time
}
