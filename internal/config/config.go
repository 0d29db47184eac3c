package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	DBUser      string
	DBPassword  string
	DBHost      string
	DBPort      string
	DBName      string
	DBMaxConns  int

	// Event system tuning. Zero values mean "use defaults".
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "INFO"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBName:      getEnv("DB_NAME", "bazaar"),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	maxConnsStr := getEnv("DB_MAX_CONNS", "25")
	maxConns, err := strconv.Atoi(maxConnsStr)
	if err != nil {
		return nil, fmt.Errorf("invalid DB_MAX_CONNS value: %w", err)
	}
	cfg.DBMaxConns = maxConns

	retriesStr := getEnv("EVENT_MAX_RETRIES", "0")
	retries, err := strconv.Atoi(retriesStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_MAX_RETRIES value: %w", err)
	}
	cfg.EventMaxRetries = retries

	delayStr := getEnv("EVENT_RETRY_DELAY", "0s")
	delay, err := time.ParseDuration(delayStr)
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_RETRY_DELAY value: %w", err)
	}
	cfg.EventRetryDelay = delay

	cfg.EventDeadLetterPath = getEnv("EVENT_DEADLETTER_PATH", "")

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
