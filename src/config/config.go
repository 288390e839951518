package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port        string
	Environment string
	LogLevel    string

	// MongoDB
	MongoURL          string
	MongoDB           string
	MongoTransactions bool

	// Redis is optional, it only backs the distributed pair lock
	RedisURL string
	LockTTL  time.Duration

	// Image storage
	CloudinaryURL string
	UploadDir     string
	PublicURL     string

	// CORS
	AllowedOrigins []string

	// Pagination
	PageDefaultLimit int
	PageMaxLimit     int
}

func Load() *Config {
	port := getEnv("PORT", "3000")

	return &Config{
		Port:        port,
		Environment: getEnv("ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		MongoURL:          getEnv("MONGO_URL", "mongodb://localhost:27017"),
		MongoDB:           getEnv("MONGO_DB", "linkedin"),
		MongoTransactions: getEnvBool("MONGO_TRANSACTIONS", false),

		RedisURL: getEnv("REDIS_URL", ""),
		LockTTL:  time.Duration(getEnvInt("LOCK_TTL_SEC", 10)) * time.Second,

		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		UploadDir:     getEnv("UPLOAD_DIR", "./public/uploads"),
		PublicURL:     strings.TrimRight(getEnv("PUBLIC_URL", "http://localhost:"+port), "/"),

		AllowedOrigins: nonEmpty(getEnv("FE_DEV_URL", ""), getEnv("FE_PROD_URL", "")),

		PageDefaultLimit: getEnvInt("PAGE_DEFAULT_LIMIT", 10),
		PageMaxLimit:     getEnvInt("PAGE_MAX_LIMIT", 100),
	}
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func nonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
