package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"estatecrm/internal/config"
	"estatecrm/internal/handlers"
	"estatecrm/internal/middleware"
	"estatecrm/internal/pdf"
	"estatecrm/internal/pipeline"
	"estatecrm/internal/repositories"
	"estatecrm/internal/routes"
	"estatecrm/internal/services"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "estatecrm/docs"
)

func Run() {
	cfg := config.LoadConfig()

	if cfg.Auth.JWTSecret != "" {
		middleware.JWTKey = []byte(cfg.Auth.JWTSecret)
	}

	// === DB ===
	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatal("failed to open database: ", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("failed to close database: %v", err)
		}
	}()

	// === Repos ===
	userRepo := repositories.NewUserRepository(db)
	leadRepo := repositories.NewLeadRepository(db)
	actionRepo := repositories.NewActionRepository(db)
	inventoryRepo := repositories.NewInventoryRepository(db)

	// === Services ===
	authService := services.NewAuthService()
	emailService := services.NewEmailService(
		cfg.Email.SMTPHost,
		cfg.Email.SMTPPort,
		cfg.Email.SMTPUser,
		cfg.Email.SMTPPassword,
		cfg.Email.FromEmail,
	)
	userService := services.NewUserService(userRepo, authService)

	tgService := services.NewTelegramService(cfg.Telegram.BotToken)
	actionService := services.NewActionService(actionRepo, leadRepo, userRepo, tgService)

	coachingService, err := services.NewCoachingService(
		context.Background(),
		cfg.Gemini.APIKey,
		cfg.Gemini.Model,
		cfg.Gemini.DryRun,
		actionService,
	)
	if err != nil {
		log.Fatal("failed to init coaching service: ", err)
	}
	inventoryService := services.NewInventoryService(inventoryRepo, actionService)
	reassignService := services.NewReassignmentService(leadRepo, userRepo, emailService)

	// === Stage pipeline ===
	scheduler := pipeline.NewScheduler(actionService, coachingService, inventoryService, reassignService)
	orchestrator := pipeline.NewOrchestrator(leadRepo, scheduler)

	leadService := services.NewLeadService(leadRepo, userRepo, orchestrator, actionService, emailService)

	// Font with full UTF-8 coverage, drop DejaVuSans.ttf into assets/fonts.
	pdfGen := pdf.NewReportGenerator(cfg.Files.RootDir, "assets/fonts/DejaVuSans.ttf")
	reportService := services.NewReportService(leadRepo, pdfGen)

	// === Handlers ===
	authHandler := handlers.NewAuthHandler(userService, authService)
	userHandler := handlers.NewUserHandler(userService)
	leadHandler := handlers.NewLeadHandler(leadService)
	actionHandler := handlers.NewActionHandler(actionService)
	unitHandler := handlers.NewUnitHandler(inventoryRepo)
	reportHandler := handlers.NewReportHandler(reportService)

	// === Gin ===
	router := gin.Default()
	router.Use(corsMiddleware())

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// JWT/RBAC is applied inside SetupRoutes
	routes.SetupRoutes(
		router,
		authHandler,
		userHandler,
		leadHandler,
		actionHandler,
		unitHandler,
		reportHandler,
	)

	// === Run ===
	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("listening on %s", listenAddr)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server stopped: ", err)
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
