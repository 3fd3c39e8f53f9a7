package config

import (
	"os"
	"strings"
	"time"
)

// Config is read once from the environment at process start
type Config struct {
	Port string

	RedisAddr  string // empty selects the in-memory attempt cache
	AttemptTTL time.Duration

	MongoURI string // empty skips Mongo as a bank source
	MongoDB  string
	BankName string
	BankFile string // takes precedence over Mongo when set

	SiteURL   string
	JWTSecret string

	LogLevel  string
	LogFormat string

	CORSOrigins string
	CORSMethods string
	CORSHeaders string
}

// Load reads the configuration, falling back to development defaults
func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		RedisAddr:   redisAddr(os.Getenv("REDIS_URI")),
		AttemptTTL:  getDuration("ATTEMPT_TTL", 24*time.Hour),
		MongoURI:    os.Getenv("MONGO_URI"),
		MongoDB:     getEnv("MONGO_DB", "animalquiz"),
		BankName:    getEnv("QUIZ_BANK", "default"),
		BankFile:    os.Getenv("QUIZ_BANK_FILE"),
		SiteURL:     getEnv("SITE_URL", "https://animalquiz.example"),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "json"),
		CORSOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		CORSMethods: getEnv("CORS_ALLOWED_METHODS", "GET, POST, OPTIONS"),
		CORSHeaders: getEnv("CORS_ALLOWED_HEADERS", "Content-Type, Authorization"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil && d > 0 {
			return d
		}
	}
	return defaultVal
}

// redisAddr strips the redis:// scheme go-redis Options.Addr does not accept
func redisAddr(uri string) string {
	return strings.TrimPrefix(uri, "redis://")
}
