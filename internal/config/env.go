package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	// AppBaseURL is handed to clients as the sign-out redirect target.
	AppBaseURL string

	// AllowedFileTypes is the comma-separated MIME whitelist for uploads.
	AllowedFileTypes []string
	UploadDir        string

	SMSGatewayURL string
}

func LoadEnv() Env {
	// Missing .env is fine; real deployments set vars directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "admin_dashboard"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		AppBaseURL: getenv("APP_BASE_URL", "http://localhost:3000"),

		AllowedFileTypes: splitList(getenv("ALLOWED_FILE_TYPES", "image/png,image/jpeg,image/webp")),
		UploadDir:        getenv("UPLOAD_DIR", "uploads"),

		SMSGatewayURL: strings.TrimSpace(os.Getenv("SMS_GATEWAY_URL")),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}
