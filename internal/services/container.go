package services

import "blogmarket_backend/internal/email"

// ServiceContainer собирает все сервисы приложения.
type ServiceContainer struct {
	AuthService    AuthService
	ProfileService ProfileService
	OrderService   OrderService
	ReportService  ReportService
	EmailService   email.Provider
}
