package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	Server  ServerConfig
	Auth    AuthConfig
	Storage StorageConfig
	Email   EmailConfig

	// DatabaseURL boşsa uygulama yerel JSON dosyası moduna düşer
	DatabaseURL string
	DataDir     string

	// RevalidateURL is the frontend origin whose cached pages get
	// invalidated after content changes. Empty disables revalidation.
	RevalidateURL string
}

type ServerConfig struct {
	Port string
}

type AuthConfig struct {
	AdminEmail        string
	AdminPasswordHash []byte
	JWTSecret         string
}

type StorageConfig struct {
	Bucket        string
	Endpoint      string
	Region        string
	AccessKey     string
	SecretKey     string
	PublicBaseURL string

	// LocalUploadRoot is used when no bucket is configured
	LocalUploadRoot string
}

type EmailConfig struct {
	ResendAPIKey string
	From         string
	NotifyTo     string
}

func Load() *Config {
	godotenv.Load() // .env dosyasını yükle

	adminPassword := getEnv("ADMIN_PASSWORD", "superisi123")
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("Could not hash admin password:", err)
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
		},
		Auth: AuthConfig{
			AdminEmail:        getEnv("ADMIN_EMAIL", "admin@superisi.com"),
			AdminPasswordHash: passwordHash,
			JWTSecret:         getEnv("JWT_SECRET", "superisi-secret-key-2025"),
		},
		Storage: StorageConfig{
			Bucket:          getEnv("S3_BUCKET", ""),
			Endpoint:        getEnv("S3_ENDPOINT", ""),
			Region:          getEnv("S3_REGION", "auto"),
			AccessKey:       getEnv("S3_ACCESS_KEY", ""),
			SecretKey:       getEnv("S3_SECRET_KEY", ""),
			PublicBaseURL:   getEnv("S3_PUBLIC_BASE_URL", ""),
			LocalUploadRoot: getEnv("UPLOAD_DIR", "./public/uploads"),
		},
		Email: EmailConfig{
			ResendAPIKey: getEnv("RESEND_API_KEY", ""),
			From:         getEnv("EMAIL_FROM", "Su Perisi <noreply@superisi.com>"),
			NotifyTo:     getEnv("NOTIFY_EMAIL", ""),
		},
		DatabaseURL:   getEnv("DATABASE_URL", ""),
		DataDir:       getEnv("DATA_DIR", "./.data"),
		RevalidateURL: getEnv("REVALIDATE_URL", ""),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
