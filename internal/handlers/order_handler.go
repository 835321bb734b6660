package handlers

import (
	"net/http"

	"blogmarket_backend/internal/middleware"
	"blogmarket_backend/internal/services"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	*BaseHandler
	orderService services.OrderService
}

func NewOrderHandler(base *BaseHandler, orderService services.OrderService) *OrderHandler {
	return &OrderHandler{
		BaseHandler:  base,
		orderService: orderService,
	}
}

func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")

	// Прием заказов от внешней системы, авторизация по API-ключу
	intake := orders.Group("/creating")
	intake.Use(middleware.APIKeyMiddleware())
	{
		intake.POST("/", h.CreateOrder)
	}

	private := orders.Group("/creating")
	private.Use(middleware.AuthMiddleware())
	{
		private.GET("/", h.ListPending)
		private.POST("/:id/decision/", h.Decide)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.orderService.CreateOrder(db, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *OrderHandler) ListPending(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.orderService.ListPending(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *OrderHandler) Decide(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	orderID := c.Param("id")
	if orderID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required path parameter: id"))
		return
	}

	var req dto.OrderDecisionRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.orderService.Decide(db, userID, orderID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
