package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	StoreDriver         string
	DatabaseURL         string
	HTTPPort            string
	LogLevel            string
	LogFormat           string
	LogFile             string
	DefaultUserName     string
	DelayScale          float64
	SessionTTLMinutes   int
	RecentConversations int
}

var AppConfig Config

func LoadConfig() {
	err := godotenv.Load() // Load .env file if it exists
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	AppConfig = FromEnv()
}

// FromEnv reads the configuration from the environment without touching .env files.
func FromEnv() Config {
	return Config{
		StoreDriver:         getEnv("STORE_DRIVER", "sqlite"),
		DatabaseURL:         getEnv("DATABASE_URL", "travel_planner.db"),
		HTTPPort:            getEnv("HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "INFO"),
		LogFormat:           getEnv("LOG_FORMAT", "console"),
		LogFile:             getEnv("LOG_FILE", ""),
		DefaultUserName:     getEnv("DEFAULT_USER_NAME", "Anish"),
		DelayScale:          getEnvAsFloat("DELAY_SCALE", 1.0),
		SessionTTLMinutes:   getEnvAsInt("SESSION_TTL_MINUTES", 60),
		RecentConversations: getEnvAsInt("RECENT_CONVERSATIONS", 2),
	}
}

func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}
