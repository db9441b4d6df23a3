package envconfig

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadIfDev reads .env in non-production environments. Production relies on
// real environment variables only.
func LoadIfDev() {
	if IsProd() {
		return
	}
	_ = godotenv.Load()
}

func IsProd() bool {
	return os.Getenv("APP_ENV") == "production"
}

func String(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func Int(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func Bool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
