package dto

import (
	"time"

	"blogmarket_backend/internal/models"

	"gorm.io/datatypes"
)

// --- Order Requests ---

// CreateOrderRequest - прием заказа от внешней системы (intake API).
// Пользователь адресуется номером телефона.
type CreateOrderRequest struct {
	PhoneNumber string                 `json:"phone_number" validate:"required,e164"`
	Article     string                 `json:"article" validate:"required,max=255"`
	Title       string                 `json:"title" validate:"omitempty,max=255"`
	PickupPoint string                 `json:"pickup_point" validate:"omitempty,max=255"`
	Notes       string                 `json:"notes"`
	Payload     map[string]interface{} `json:"payload"`
}

type OrderDecisionRequest struct {
	Action           string                 `json:"action" validate:"required,oneof=approve reject"`
	PurchaseMetadata map[string]interface{} `json:"purchase_metadata"`
	ExternalID       string                 `json:"external_id" validate:"omitempty,max=255"`
	PickupPoint      string                 `json:"pickup_point" validate:"omitempty,max=255"`
}

// --- Order Responses ---

type OrderResponse struct {
	ID          string             `json:"id"`
	Article     string             `json:"article"`
	Title       string             `json:"title"`
	PickupPoint string             `json:"pickup_point"`
	Notes       string             `json:"notes"`
	Status      models.OrderStatus `json:"status"`
	Payload     datatypes.JSON     `json:"payload"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}

type OrderDecisionResponse struct {
	Detail string `json:"detail"`
}

func NewOrderResponse(o *models.CreatingOrder) OrderResponse {
	payload := o.Payload
	if len(payload) == 0 {
		payload = datatypes.JSON([]byte("{}"))
	}
	return OrderResponse{
		ID:          o.ID,
		Article:     o.Article,
		Title:       o.Title,
		PickupPoint: o.PickupPoint,
		Notes:       o.Notes,
		Status:      o.Status,
		Payload:     payload,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}
