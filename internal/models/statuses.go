package models

type OrderStatus string
type PurchaseStatus string

const (
	// Запрос на заказ: PROCESSING -> APPROVED | REJECTED, терминальные состояния
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusApproved   OrderStatus = "APPROVED"
	OrderStatusRejected   OrderStatus = "REJECTED"

	PurchaseStatusPending    PurchaseStatus = "PENDING"
	PurchaseStatusInProgress PurchaseStatus = "IN_PROGRESS"
	PurchaseStatusCompleted  PurchaseStatus = "COMPLETED"
	PurchaseStatusCancelled  PurchaseStatus = "CANCELLED"
)

// IsTerminal сообщает, принято ли по заказу решение
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusApproved || s == OrderStatusRejected
}
