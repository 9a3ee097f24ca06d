package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort          string
	PostgresDSN         string
	RedisAddr           string
	RedisDB             int
	RedisPass           string
	JWTSecret           string
	SessionTTL          time.Duration
	FirebaseCredentials string
	CloudinaryURL       string
	SwaggerHost         string
}

// Load builds Config from environment with sensible defaults.
// A .env file in the working directory is honored when present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:          getEnv("SERVER_PORT", "8080"),
		PostgresDSN:         getEnv("POSTGRES_DSN", "host=localhost user=postgres password=postgres dbname=corpdesk port=5432 sslmode=disable"),
		RedisAddr:           getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:             getEnvInt("REDIS_DB", 0),
		RedisPass:           os.Getenv("REDIS_PASSWORD"),
		JWTSecret:           getEnv("JWT_SECRET", "change-me"),
		SessionTTL:          time.Duration(getEnvInt("SESSION_TTL_DAYS", 90)) * 24 * time.Hour,
		FirebaseCredentials: getEnv("FIREBASE_CREDENTIALS_FILE", "firebase-service-account.json"),
		CloudinaryURL:       os.Getenv("CLOUDINARY_URL"),
		SwaggerHost:         os.Getenv("SWAGGER_HOST"),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			return parsed
		}
	}
	return def
}
