package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"blogmarket_backend/internal/email"
	"blogmarket_backend/internal/logger"
	"blogmarket_backend/internal/models"
	"blogmarket_backend/internal/repositories"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderService interface {
	// CreateOrder принимает заказ от внешней системы и адресует его
	// пользователю по номеру телефона
	CreateOrder(db *gorm.DB, req *dto.CreateOrderRequest) (*dto.OrderResponse, error)
	ListPending(db *gorm.DB, userID string) ([]dto.OrderResponse, error)
	Decide(db *gorm.DB, userID, orderID string, req *dto.OrderDecisionRequest) (*dto.OrderDecisionResponse, error)
}

type orderService struct {
	userRepo      repositories.UserRepository
	profileRepo   repositories.ProfileRepository
	orderRepo     repositories.OrderRepository
	purchaseRepo  repositories.PurchaseRepository
	emailProvider email.Provider
}

func NewOrderService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	orderRepo repositories.OrderRepository,
	purchaseRepo repositories.PurchaseRepository,
	emailProvider email.Provider,
) OrderService {
	return &orderService{
		userRepo:      userRepo,
		profileRepo:   profileRepo,
		orderRepo:     orderRepo,
		purchaseRepo:  purchaseRepo,
		emailProvider: emailProvider,
	}
}

func (s *orderService) CreateOrder(db *gorm.DB, req *dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	user, err := s.userRepo.FindByPhone(db, req.PhoneNumber)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	payload := datatypes.JSON([]byte("{}"))
	if req.Payload != nil {
		raw, err := json.Marshal(req.Payload)
		if err != nil {
			return nil, apperrors.ValidationError(map[string]string{"payload": "invalid payload"})
		}
		payload = datatypes.JSON(raw)
	}

	order := &models.CreatingOrder{
		UserID:      user.ID,
		Article:     req.Article,
		Title:       req.Title,
		PickupPoint: req.PickupPoint,
		Notes:       req.Notes,
		Status:      models.OrderStatusProcessing,
		Payload:     payload,
	}

	if err := s.orderRepo.Create(db, order); err != nil {
		return nil, apperrors.InternalError(err)
	}

	profile, _ := s.profileRepo.FindByUserID(db, user.ID)
	s.notify(user, profile, "Новый заказ на рассмотрении",
		fmt.Sprintf("Вам поступил заказ по артикулу %s. Зайдите в личный кабинет, чтобы принять решение.", order.Article))

	resp := dto.NewOrderResponse(order)
	return &resp, nil
}

func (s *orderService) ListPending(db *gorm.DB, userID string) ([]dto.OrderResponse, error) {
	orders, err := s.orderRepo.ListProcessingByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, dto.NewOrderResponse(&orders[i]))
	}
	return responses, nil
}

// Decide переводит заказ из PROCESSING в терминальный статус.
// Смена статуса, включение участия и upsert закупки выполняются одной
// транзакцией под блокировкой строки заказа: из конкурирующих решений
// проходит ровно одно.
func (s *orderService) Decide(db *gorm.DB, userID, orderID string, req *dto.OrderDecisionRequest) (*dto.OrderDecisionResponse, error) {
	order, err := s.orderRepo.FindByID(db, orderID, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if order.Status.IsTerminal() {
		return nil, apperrors.ErrOrderAlreadyDecided
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileIncomplete
		}
		return nil, apperrors.InternalError(err)
	}
	if !profile.IsCompleted {
		return nil, apperrors.ErrProfileIncomplete
	}

	tx := db.Begin()
	if tx.Error != nil {
		return nil, apperrors.InternalError(tx.Error)
	}

	// Перечитываем под блокировкой: статус мог смениться после пред-проверки.
	order, err = s.orderRepo.FindByIDForUpdate(tx, orderID, userID)
	if err != nil {
		tx.Rollback()
		if errors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	if order.Status.IsTerminal() {
		tx.Rollback()
		return nil, apperrors.ErrOrderAlreadyDecided
	}

	purchase := applyDecision(order, profile, req, time.Now())

	if purchase != nil && !profile.IsParticipating {
		if err := s.profileRepo.UpdateParticipating(tx, userID, true); err != nil {
			tx.Rollback()
			return nil, apperrors.InternalError(err)
		}
		profile.IsParticipating = true
	}

	if err := s.orderRepo.Update(tx, order); err != nil {
		tx.Rollback()
		return nil, apperrors.InternalError(err)
	}

	if purchase != nil {
		if err := s.purchaseRepo.UpsertByOrder(tx, order.ID, purchase); err != nil {
			tx.Rollback()
			return nil, apperrors.InternalError(err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("order decided", "order_id", order.ID, "user_id", userID, "status", order.Status)

	detail := "Order rejected"
	if order.Status == models.OrderStatusApproved {
		detail = "Order approved"
	}

	if user, uErr := s.userRepo.FindByID(db, userID); uErr == nil {
		s.notify(user, profile, "Решение по заказу принято",
			fmt.Sprintf("Заказ по артикулу %s переведен в статус %s.", order.Article, order.Status))
	}

	return &dto.OrderDecisionResponse{Detail: detail}, nil
}

// applyDecision проставляет терминальный статус и собирает закупку
// для approve; для reject возвращает nil.
func applyDecision(order *models.CreatingOrder, profile *models.Profile, req *dto.OrderDecisionRequest, now time.Time) *models.Purchase {
	order.RespondedAt = &now

	if req.Action != "approve" {
		order.Status = models.OrderStatusRejected
		return nil
	}

	order.Status = models.OrderStatusApproved
	// Выбранный ПВЗ фиксируется и на заказе
	order.PickupPoint = resolvePickupPoint(req.PickupPoint, order.PickupPoint, profile.PickupPoint)

	return &models.Purchase{
		TesterID:        &profile.UserID,
		CreatingOrderID: &order.ID,
		ExternalID:      req.ExternalID,
		Article:         order.Article,
		PickupPoint:     order.PickupPoint,
		Status:          models.PurchaseStatusPending,
		Metadata:        mergeMetadata(order.Payload, req.PurchaseMetadata),
	}
}

// resolvePickupPoint - первый непустой из: решение, заказ, анкета
func resolvePickupPoint(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// mergeMetadata накладывает метаданные решения поверх payload заказа.
// Не-объектный payload игнорируется.
func mergeMetadata(payload datatypes.JSON, overrides map[string]interface{}) datatypes.JSON {
	merged := map[string]interface{}{}
	if len(payload) > 0 {
		var base map[string]interface{}
		if err := json.Unmarshal(payload, &base); err == nil {
			merged = base
		}
	}
	for k, v := range overrides {
		merged[k] = v
	}

	raw, err := json.Marshal(merged)
	if err != nil {
		return datatypes.JSON([]byte("{}"))
	}
	return datatypes.JSON(raw)
}

// notify шлет уведомление пользователю, если он дал согласие на рассылку.
// Ошибки отправки только логируем.
func (s *orderService) notify(user *models.User, profile *models.Profile, subject, body string) {
	if s.emailProvider == nil || user.Email == "" {
		return
	}
	if profile == nil || !profile.ConsentMarketingEmail {
		return
	}
	msg := &email.Email{
		To:      []string{user.Email},
		Subject: subject,
		Body:    body,
	}
	if err := s.emailProvider.Send(msg); err != nil {
		logger.WithError(err).Warn("failed to send order notification", "user_id", user.ID)
	}
}
