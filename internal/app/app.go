package app

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "traites/docs"
	"traites/internal/config"
	"traites/internal/handlers"
	"traites/internal/layout"
	"traites/internal/pdf"
	"traites/internal/repositories"
	"traites/internal/routes"
	"traites/internal/services"
)

func Run(configPath string) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatal("config: ", err)
	}

	// === Storage ===
	repo, closeRepo, err := openRepository(cfg)
	if err != nil {
		log.Fatal("storage: ", err)
	}
	defer closeRepo()

	// === Services ===
	notifier, err := services.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
	if err != nil {
		log.Printf("[tg] disabled: %v", err)
		notifier = services.NopNotifier{}
	}
	var mailer services.DraftMailer
	if cfg.Email.SMTPHost != "" {
		mailer = services.NewSMTPDraftMailer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUser,
			cfg.Email.SMTPPassword,
			cfg.Email.FromEmail,
		)
	}

	company := cfg.Company.Party()
	if company.IsZero() {
		log.Printf("[config] company is not set; drafts will print without the company block")
	}

	planService := services.NewPlanService(repo, notifier)
	printService := services.NewPrintService(
		planService,
		layout.NewEngine(company, cfg.Company.IssuePlace),
		pdf.NewDraftRenderer(cfg.Files.TemplatePath, cfg.Files.FontPath),
		mailer,
	)

	// === Gin ===
	router := NewRouter(cfg, planService, printService)

	listenAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("server listening on %s (storage=%s)", listenAddr, cfg.Database.Driver)
	if err := router.Run(listenAddr); err != nil {
		log.Fatal("server: ", err)
	}
}

// NewRouter builds the gin engine with middleware, swagger and the API routes.
func NewRouter(cfg *config.Config, plans *services.PlanService, printing *services.PrintService) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(corsMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return routes.SetupRoutes(
		router,
		[]byte(cfg.Auth.JWTSecret),
		handlers.NewPlanHandler(plans),
		handlers.NewPrintHandler(printing),
	)
}

func openRepository(cfg *config.Config) (services.PlanRepository, func(), error) {
	if cfg.Database.Driver == "memory" {
		log.Printf("[storage] using in-memory plans; data is lost on restart")
		return repositories.NewMemoryPlanRepository(), func() {}, nil
	}

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open postgres: %w", err)
	}
	closeDB := func() {
		if err := db.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}
	if err := db.PingContext(context.Background()); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("ping postgres: %w", err)
	}

	repo := repositories.NewPlanRepository(db)
	if err := repo.EnsureSchema(context.Background()); err != nil {
		closeDB()
		return nil, nil, err
	}
	return repo, closeDB, nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Disposition")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
