package handlers

import (
	"net/http"

	"blogmarket_backend/internal/middleware"
	"blogmarket_backend/internal/services"
	"blogmarket_backend/internal/services/dto"
	"blogmarket_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	*BaseHandler
	reportService services.ReportService
}

func NewReportHandler(base *BaseHandler, reportService services.ReportService) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   base,
		reportService: reportService,
	}
}

func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders")
	orders.Use(middleware.AuthMiddleware())
	{
		orders.GET("/purchases/", h.ListPurchases)
		orders.GET("/purchases/:id/report/", h.GetReport)
		orders.PUT("/purchases/:id/report/", h.UpdateReport)
		orders.POST("/reports/", h.CreateReport)
	}
}

func (h *ReportHandler) ListPurchases(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	db := h.GetDB(c)

	response, err := h.reportService.ListPurchases(db, userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetReport отдает отчет по закупке, создавая его при первом обращении
func (h *ReportHandler) GetReport(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	purchaseID := c.Param("id")
	if purchaseID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required path parameter: id"))
		return
	}

	db := h.GetDB(c)

	response, err := h.reportService.GetOrCreateReport(db, userID, purchaseID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) UpdateReport(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	purchaseID := c.Param("id")
	if purchaseID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing required path parameter: id"))
		return
	}

	var req dto.ReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.reportService.UpdateReport(db, userID, purchaseID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ReportRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	db := h.GetDB(c)

	response, err := h.reportService.CreateReport(db, userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}
