package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	AdminPort   string
	APIBaseURL  string
	AdminOrigin string
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string
	LogLevel    string
	LogFormat   string
	SwaggerHost string
	ResetDB     bool
}

// Load builds Config from environment with sensible defaults. Values from an
// optional .env file in the working directory are applied first and never
// override variables that are already set.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		AdminPort:   getEnv("ADMIN_PORT", "4200"),
		APIBaseURL:  getEnv("API_BASE_URL", "http://localhost:8080"),
		AdminOrigin: getEnv("ADMIN_ORIGIN", "http://localhost:4200"),
		MySQLDSN:    getEnv("MYSQL_DSN", "user:password@tcp(localhost:3306)/users?charset=utf8mb4&parseTime=True&loc=Local"),
		RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
		RedisDB:     getEnvInt("REDIS_DB", 0),
		RedisPass:   os.Getenv("REDIS_PASSWORD"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		SwaggerHost: os.Getenv("SWAGGER_HOST"),
		ResetDB:     getEnvBool("RESET_DB", false),
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

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseBool(v); err == nil {
			return parsed
		}
	}
	return def
}
