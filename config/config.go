package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rohanthewiz/logger"
)

// Config holds all runtime settings, loaded once at startup.
// Values come from the environment, optionally seeded from a .env file
// in the working directory (ignored if absent).
type Config struct {
	Address    string // listen address, e.g. ":8000"
	DBPath     string // DuckDB database file
	UploadsDir string // directory for uploaded image/audio files
	PublicURL  string // public base URL used in embed codes and previews
	JWTSecret  string // signing key for auth tokens

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
	SMTPFrom string
}

// Load reads configuration from the environment. A missing .env file is
// not an error; explicit environment variables always win over defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found, using environment only")
	}

	return Config{
		Address:    getEnv("PAGEFORGE_ADDRESS", ":8000"),
		DBPath:     getEnv("PAGEFORGE_DB_PATH", "./data/pageforge.ddb"),
		UploadsDir: getEnv("PAGEFORGE_UPLOADS_DIR", "./data/uploads"),
		PublicURL:  getEnv("PAGEFORGE_PUBLIC_URL", "http://localhost:8000"),
		JWTSecret:  os.Getenv("PAGEFORGE_JWT_SECRET"),

		SMTPHost: getEnv("PAGEFORGE_SMTP_HOST", "localhost"),
		SMTPPort: getEnvInt("PAGEFORGE_SMTP_PORT", 587),
		SMTPUser: os.Getenv("PAGEFORGE_SMTP_USER"),
		SMTPPass: os.Getenv("PAGEFORGE_SMTP_PASS"),
		SMTPFrom: getEnv("PAGEFORGE_SMTP_FROM", "no-reply@pageforge.local"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		logger.Info("Invalid integer in environment, using default", "key", key, "value", v)
		return fallback
	}
	return n
}
