package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	BotToken          string
	TelegramAPIURL    string
	Port              string
	SheetID           string
	GoogleCredsBase64 string
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	S3Bucket          string
	S3Region          string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		BotToken:          getEnv("BOT_TOKEN", ""),
		TelegramAPIURL:    getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		Port:              getEnv("PORT", "8080"),
		SheetID:           getEnv("SHEET_ID", ""),
		GoogleCredsBase64: getEnv("GCREDS_JSON_BASE64", ""),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		S3Bucket:          getEnv("S3_BUCKET", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
	}

	if cfg.BotToken == "" {
		log.Fatal("BOT_TOKEN environment variable is required")
	}

	if cfg.SheetID == "" {
		log.Fatal("SHEET_ID environment variable is required")
	}

	if cfg.GoogleCredsBase64 == "" {
		log.Fatal("GCREDS_JSON_BASE64 environment variable is required")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
