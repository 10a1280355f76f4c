package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	MongoURI       string
	MongoDatabase  string
	Environment    string
	JWTSecret      string
	JWTExpiry      int64
	MapQuestAPIKey string
	UploadDir      string
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:     getEnv("SERVER_PORT", "4000"),
		MongoURI:       getEnv("MONGODB_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGODB_DB", "dogwalker"),
		Environment:    getEnv("ENVIRONMENT", "development"),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiry:      getEnvAsInt64("JWT_EXPIRY", 30*60), // 30 minutes
		MapQuestAPIKey: getEnv("MAPQUEST_API_KEY", ""),
		UploadDir:      getEnv("UPLOAD_DIR", "./public/uploads"),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
