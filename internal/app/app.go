package app

import (
	"database/sql"
	"fmt"
	"log"

	"autocare/internal/config"
	"autocare/internal/handlers"
	"autocare/internal/middleware"
	"autocare/internal/pdf"
	"autocare/internal/repositories"
	"autocare/internal/routes"
	"autocare/internal/services"
	"autocare/internal/utils"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "autocare/docs"
)

func Run() {
	cfg := config.LoadConfig()
	middleware.SetJWTKey(cfg.JWT.Secret)

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	// === Repos ===
	adminUserRepo := repositories.NewAdminUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	bookingRepo := repositories.NewBookingRepository(db)
	customerRepo := repositories.NewCustomerRepository(db)
	storeRepo := repositories.NewStoreRepository(db)
	taskTypeRepo := repositories.NewTaskTypeRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)

	adminUserService := services.NewAdminUserService(adminUserRepo, emailService, authService)

	// Telegram notifier is optional; nil means the integration is disabled
	telegramService, err := services.NewTelegramService(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Printf("Telegram integration disabled: %v", err)
		telegramService = nil
	}

	var leadNotifier services.LeadNotifier
	if telegramService != nil {
		leadNotifier = telegramService
	}
	leadService := services.NewLeadService(leadRepo, leadNotifier)

	smsClient := utils.NewSMSClient(cfg.SMS.APIKey, cfg.SMS.SenderID, cfg.SMS.DryRun)
	var bookingNotifier services.BookingNotifier
	if smsService := services.NewSMSService(smsClient); smsService != nil {
		bookingNotifier = smsService
	}

	storeService := services.NewStoreService(storeRepo, taskTypeRepo)
	bookingService := services.NewBookingService(bookingRepo, storeRepo, bookingNotifier)
	customerService := services.NewCustomerService(customerRepo)
	taskTypeService := services.NewTaskTypeService(taskTypeRepo)
	reportService := services.NewReportService(leadRepo, bookingRepo, customerRepo, storeRepo)

	pdfGen := pdf.NewReceiptGenerator(cfg.Files.RootDir)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(adminUserService, authService)
	userHandler := handlers.NewUserHandler(adminUserService)
	leadHandler := handlers.NewLeadHandler(leadService)
	bookingHandler := handlers.NewBookingHandler(bookingService, storeService, pdfGen)
	customerHandler := handlers.NewCustomerHandler(customerService)
	storeHandler := handlers.NewStoreHandler(storeService)
	taskTypeHandler := handlers.NewTaskTypeHandler(taskTypeService)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Routes (JWT/RBAC inside SetupRoutes)
	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		leadHandler,
		bookingHandler,
		customerHandler,
		storeHandler,
		taskTypeHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
