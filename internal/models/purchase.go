package models

import "gorm.io/datatypes"

// Purchase - принятый заказ. Живет независимо от породившего его запроса
// и от пользователя: обе ссылки обнуляются при удалении, запись остается.
type Purchase struct {
	BaseModel
	TesterID        *string        `gorm:"type:uuid;index"`
	Tester          *User          `gorm:"foreignKey:TesterID;constraint:OnDelete:SET NULL"`
	CreatingOrderID *string        `gorm:"type:uuid;uniqueIndex"`
	CreatingOrder   *CreatingOrder `gorm:"foreignKey:CreatingOrderID;constraint:OnDelete:SET NULL"`

	ExternalID  string
	Article     string `gorm:"not null"`
	PickupPoint string
	Status      PurchaseStatus `gorm:"type:varchar(20);default:'PENDING'"`
	Metadata    datatypes.JSON `gorm:"type:jsonb;default:'{}'"`

	// Relations
	Report *TestReport `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE"`
}
