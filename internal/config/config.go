package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Face     FaceConfig
	Booking  BookingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
	NatsURL            string
	AccessAuditTopic   string
}

type DatabaseConfig struct {
	Connection string
}

type FaceConfig struct {
	ProviderURL    string  // face embedding inference endpoint
	MatchThreshold float64 // minimum cosine similarity to accept a match
	VectorDim      int
}

type BookingConfig struct {
	OperatingHoursStart string
	OperatingHoursEnd   string
	MinDurationMinutes  int
	MaxDurationMinutes  int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "8000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "logs/door_access.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			AccessAuditTopic:   getEnv("ACCESS_AUDIT_TOPIC_NAME", "DOOR_ACCESS_CHECKED"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Face: FaceConfig{
			ProviderURL:    getEnv("FACE_PROVIDER_URL", "http://localhost:7000"),
			MatchThreshold: getEnvAsFloat("FACE_MATCH_THRESHOLD", 0.6),
			VectorDim:      getEnvAsInt("FACE_VECTOR_DIM", 512),
		},
		Booking: BookingConfig{
			OperatingHoursStart: getEnv("OPERATING_HOURS_START", "06:00"),
			OperatingHoursEnd:   getEnv("OPERATING_HOURS_END", "23:00"),
			MinDurationMinutes:  getEnvAsInt("MIN_DURATION_MINUTES", 5),
			MaxDurationMinutes:  getEnvAsInt("MAX_DURATION_MINUTES", 120),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}
