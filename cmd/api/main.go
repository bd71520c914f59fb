package main

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	recovermw "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/robfig/cron/v3"

	_ "github.com/planofit/planofit-whatsapp-be/docs"
	"github.com/planofit/planofit-whatsapp-be/internal/core/export"
	"github.com/planofit/planofit-whatsapp-be/internal/core/llm"
	"github.com/planofit/planofit-whatsapp-be/internal/core/upload"
	"github.com/planofit/planofit-whatsapp-be/internal/core/whatsapp"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/handlers"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/repositories"
	"github.com/planofit/planofit-whatsapp-be/internal/modules/intake/services"
	"github.com/planofit/planofit-whatsapp-be/internal/shared/config"
	"github.com/planofit/planofit-whatsapp-be/internal/shared/database"
	"github.com/planofit/planofit-whatsapp-be/internal/shared/utils"
)

// @title PlanoFit WhatsApp API
// @version 1.0
// @description WhatsApp intake and fulfillment bot for personalized plans
// @contact.name API Support
// @contact.email suporte@planofit.pt
// @license.name MIT
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.LoadConfig()
	utils.InitLogger(cfg.Env)

	db := database.NewDB(cfg.DatabaseURL)
	defer db.Close()

	clientRepo := repositories.NewClientRepo(db.GORM)
	convRepo := repositories.NewConversationRepo(db.GORM)
	chatRepo := repositories.NewChatMessageRepo(db.GORM)

	gatewayService := whatsapp.NewService()
	llmService := llm.NewService()
	uploadService := newUploadService(cfg)
	renderer := export.NewPlanPDF()

	author := services.NewPlanAuthor(llmService)
	pipeline := services.NewPlanPipeline(
		author, renderer, uploadService, gatewayService,
		clientRepo, convRepo, chatRepo,
	)
	machine := services.NewStateMachine(
		clientRepo, convRepo, chatRepo,
		gatewayService, author, pipeline, uploadService,
		cfg.PaymentLink,
	)

	webhookHandler := handlers.NewWebhookHandler(machine)
	clientHandler := handlers.NewClientHandler(clientRepo)

	// Payment reminder sweep
	sweep := services.NewReminderSweep(clientRepo, convRepo, chatRepo, gatewayService, 24*time.Hour)
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.ReminderSchedule, sweep.Run); err != nil {
		log.Fatalf("❌ Invalid reminder schedule %q: %v", cfg.ReminderSchedule, err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	app := fiber.New()
	app.Use(recovermw.New())

	// Swagger
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Routes
	app.Get("/health", handlers.Health)
	app.Get("/clients", clientHandler.ListClients)
	app.Post("/webhook", webhookHandler.ReceiveWebhook)

	log.Printf("🚀 API running at :%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

func newUploadService(cfg *config.Config) *upload.Service {
	switch cfg.UploadProvider {
	case "s3":
		provider, err := upload.NewS3Provider(cfg.S3AccessKeyID, cfg.S3SecretKey, cfg.S3Region, cfg.S3Bucket)
		if err != nil {
			log.Fatalf("❌ Failed to create S3 provider: %v", err)
		}
		return upload.NewService(provider)

	default:
		provider, err := upload.NewLocalProvider(cfg.LocalUploadDir, cfg.LocalUploadBase)
		if err != nil {
			log.Fatalf("❌ Failed to create local upload provider: %v", err)
		}
		return upload.NewService(provider)
	}
}
