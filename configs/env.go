package configs

import (
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env once at startup. A missing file is fine; real deployments
// set the environment directly.
func Load() {
	_ = godotenv.Load()
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvMongoURI() string  { return getenv("MONGOURI", "mongodb://localhost:27017") }
func EnvMongoDB() string   { return getenv("MONGO_DB", "groceryApi") }
func EnvPort() string      { return getenv("PORT", "3000") }
func EnvJWTSecret() string { return getenv("JWT_SECRET", "") }

// Admin credential is configuration, not code. The password is stored as a
// bcrypt hash.
func EnvAdminEmail() string        { return getenv("ADMIN_EMAIL", "") }
func EnvAdminPasswordHash() string { return getenv("ADMIN_PASSWORD_HASH", "") }

func EnvRazorpayKeyId() string     { return getenv("RAZORPAY_KEY_ID", "") }
func EnvRazorpayKeySecret() string { return getenv("RAZORPAY_KEY_SECRET", "") }

func EnvSMTPHost() string { return getenv("SMTP_HOST", "smtp.gmail.com") }
func EnvSMTPPort() string { return getenv("SMTP_PORT", "587") }
func EnvSMTPUser() string { return getenv("SMTP_USER", "") }
func EnvSMTPPass() string { return getenv("SMTP_PASS", "") }
func EnvSMTPFrom() string { return getenv("SMTP_FROM", EnvSMTPUser()) }

func IsDevelopment() bool { return getenv("APP_ENV", "development") == "development" }
