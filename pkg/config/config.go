package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort       string
	Environment      string
	FirestoreProject string
	JWTSecret        string
	JWTExpiry        int64
	AdminEmail       string

	RedisAddr    string
	KafkaBrokers []string
	OrderTopic   string

	PhotoLibraryBaseURL string
	GeoLookupBaseURL    string

	ToastTTLMillis int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:       getEnv("SERVER_PORT", "8080"),
		Environment:      getEnv("ENVIRONMENT", "development"),
		FirestoreProject: getEnv("FIRESTORE_PROJECT_ID", ""),
		JWTSecret:        getEnv("JWT_SECRET", "your-secret-key"),
		JWTExpiry:        getEnvAsInt64("JWT_EXPIRY", 24*60*60), // 24 hours
		AdminEmail:       getEnv("ADMIN_EMAIL", "admin@truvamate.com"),

		RedisAddr:    getEnv("REDIS_ADDR", "localhost:6379"),
		KafkaBrokers: splitCSV(getEnv("KAFKA_BROKERS", "")),
		OrderTopic:   getEnv("KAFKA_ORDER_TOPIC", "truvamate.orders.placed"),

		PhotoLibraryBaseURL: getEnv("PHOTO_LIBRARY_BASE_URL", "https://photoslibrary.googleapis.com/v1"),
		GeoLookupBaseURL:    getEnv("GEO_LOOKUP_BASE_URL", "http://ip-api.com"),

		ToastTTLMillis: getEnvAsInt64("TOAST_TTL_MS", 3000),
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

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
