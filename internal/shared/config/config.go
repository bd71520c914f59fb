package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds process-level settings. The gateway and LLM adapters
// load their own settings from the environment in their factories.
type Config struct {
	DatabaseURL string
	Port        string
	Env         string

	// Blob storage
	UploadProvider  string
	S3AccessKeyID   string
	S3SecretKey     string
	S3Region        string
	S3Bucket        string
	LocalUploadDir  string
	LocalUploadBase string

	// Payment
	PaymentLink string

	// Reminder sweep cron spec
	ReminderSchedule string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        os.Getenv("PORT"),
		Env:         os.Getenv("ENV"),

		UploadProvider:  os.Getenv("UPLOAD_PROVIDER"),
		S3AccessKeyID:   os.Getenv("S3_ACCESS_KEY_ID"),
		S3SecretKey:     os.Getenv("S3_SECRET_ACCESS_KEY"),
		S3Region:        os.Getenv("S3_REGION"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		LocalUploadDir:  os.Getenv("LOCAL_UPLOAD_DIR"),
		LocalUploadBase: os.Getenv("LOCAL_UPLOAD_BASE_URL"),

		PaymentLink: os.Getenv("PAYMENT_LINK"),

		ReminderSchedule: os.Getenv("REMINDER_SCHEDULE"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.UploadProvider == "" {
		cfg.UploadProvider = "local"
	}
	if cfg.LocalUploadDir == "" {
		cfg.LocalUploadDir = "./uploads"
	}
	if cfg.ReminderSchedule == "" {
		cfg.ReminderSchedule = "0 */6 * * *"
	}

	return cfg
}
