package app

import (
	"fmt"

	"blogmarket_backend/database"
	"blogmarket_backend/internal/config"
	"blogmarket_backend/internal/email"
	"blogmarket_backend/internal/handlers"
	"blogmarket_backend/internal/logger"
	"blogmarket_backend/internal/middleware"
	"blogmarket_backend/internal/repositories"
	"blogmarket_backend/internal/routes"
	"blogmarket_backend/internal/services"
	"blogmarket_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func Run() {
	_ = godotenv.Load()

	config.LoadConfig()
	cfg := config.AppConfig
	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer)

	ginRouter := initializeGinRouter(gormDB)

	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		emailService = email.NewSMTPProvider(&email.SMTPConfig{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
			UseTLS:    cfg.Email.UseTLS,
		})
	} else {
		logger.Warn("SMTP is not configured, email notifications are logged only")
		emailService = &MockEmailProvider{}
	}

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	orderRepo := repositories.NewOrderRepository()
	purchaseRepo := repositories.NewPurchaseRepository()
	reportRepo := repositories.NewReportRepository()

	authService := services.NewAuthService(userRepo, profileRepo)
	profileService := services.NewProfileService(userRepo, profileRepo)
	orderService := services.NewOrderService(userRepo, profileRepo, orderRepo, purchaseRepo, emailService)
	reportService := services.NewReportService(profileRepo, purchaseRepo, reportRepo)

	return &services.ServiceContainer{
		AuthService:    authService,
		ProfileService: profileService,
		OrderService:   orderService,
		ReportService:  reportService,
		EmailService:   emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		ProfileHandler: handlers.NewProfileHandler(baseHandler, services.ProfileService),
		OrderHandler:   handlers.NewOrderHandler(baseHandler, services.OrderService),
		ReportHandler:  handlers.NewReportHandler(baseHandler, services.ReportService),
	}
}

func initializeGinRouter(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.DBMiddleware(db))
	return router
}
