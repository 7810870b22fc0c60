package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Host         string
	Port         int
	LogFile      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	// DataDir holds users.db and every per-user todos_<id>.db file.
	DataDir string

	// QueryTimeout bounds individual statement execution.
	QueryTimeout time.Duration
}

type CORSConfig struct {
	Origins          []string
	Methods          []string
	Headers          []string
	AllowCredentials bool
}

type RateLimitConfig struct {
	Capacity     int64
	RefillRate   int64
	RefillPeriod time.Duration
}

func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         getEnvAsInt("SERVER_PORT", 5000),
			LogFile:      getEnv("LOG_FILE", "./log/server.log"),
			ReadTimeout:  getEnvAsDuration("READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getEnvAsDuration("WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			DataDir:      getEnv("DATA_DIR", "./data"),
			QueryTimeout: getEnvAsDuration("DB_QUERY_TIMEOUT", 5*time.Second),
		},
		CORS: CORSConfig{
			Origins: getEnvAsSlice("CORS_ORIGINS", []string{
				"https://todomytaskapp.netlify.app",
				"http://localhost:3000",
			}),
			Methods:          []string{"GET", "POST", "PUT", "DELETE"},
			Headers:          []string{"Content-Type", "Authorization", "User-ID"},
			AllowCredentials: true,
		},
		RateLimit: RateLimitConfig{
			Capacity:     getEnvAsInt64("RATE_LIMIT_CAPACITY", 200),
			RefillRate:   getEnvAsInt64("RATE_LIMIT_REFILL", 10),
			RefillPeriod: getEnvAsDuration("RATE_LIMIT_PERIOD", time.Second),
		},
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	var errors []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid server port: %d (must be 1-65535)", c.Server.Port))
	}
	if c.Database.DataDir == "" {
		errors = append(errors, "data directory (DATA_DIR) is required")
	}
	if c.Database.QueryTimeout <= 0 {
		errors = append(errors, "database query timeout must be > 0")
	}
	if len(c.CORS.Origins) == 0 {
		errors = append(errors, "at least one CORS origin (CORS_ORIGINS) is required")
	}
	if c.RateLimit.Capacity <= 0 {
		errors = append(errors, "rate limit capacity must be > 0")
	}
	if c.RateLimit.RefillRate <= 0 {
		errors = append(errors, "rate limit refill rate must be > 0")
	}
	if c.RateLimit.RefillPeriod <= 0 {
		errors = append(errors, "rate limit refill period must be > 0")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func (c *Config) ServerAddress() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// PrintSummary logs a summary of the loaded configuration
func (c *Config) PrintSummary() {
	fmt.Println("Configuration Summary:")
	fmt.Printf("  Server: %s\n", c.ServerAddress())
	fmt.Printf("  Data Dir: %s\n", c.Database.DataDir)
	fmt.Printf("  CORS Origins: %s\n", strings.Join(c.CORS.Origins, ", "))
	fmt.Printf("  Rate Limit: %d requests/%s (capacity: %d)\n",
		c.RateLimit.RefillRate, c.RateLimit.RefillPeriod, c.RateLimit.Capacity)
}

// Helper functions to read environment variables with defaults
func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	valStr := os.Getenv(key)
	if val, err := strconv.Atoi(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsInt64(key string, defaultVal int64) int64 {
	valStr := os.Getenv(key)
	if val, err := strconv.ParseInt(valStr, 10, 64); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsDuration(key string, defaultVal time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if val, err := time.ParseDuration(valStr); err == nil {
		return val
	}
	return defaultVal
}

func getEnvAsSlice(key string, defaultVal []string) []string {
	valStr := os.Getenv(key)
	if valStr == "" {
		return defaultVal
	}

	parts := strings.Split(valStr, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}
