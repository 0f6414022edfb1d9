package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Port           string
	MongoURI       string
	MongoDatabase  string
	YouTubeAPIKey  string
	ClientOrigin   string
	MaxImportPages int
	LogLevel       string
}

// Load reads configuration from .env file (if present) and environment variables.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	maxPages, err := strconv.Atoi(getEnv("YT_MAX_PAGES", "200"))
	if err != nil || maxPages < 1 {
		maxPages = 200
	}

	return &Config{
		Port:           getEnv("PORT", "8080"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DB", "stackup"),
		YouTubeAPIKey:  getEnv("YOUTUBE_API_KEY", ""),
		ClientOrigin:   getEnv("CLIENT_URL", ""),
		MaxImportPages: maxPages,
		LogLevel:       getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
