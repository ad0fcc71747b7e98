// Package config loads service configuration from an env file and the
// process environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application, database, cache, broker and report settings.
type Config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	// RedisHost empty disables the result cache.
	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	// KafkaBrokers empty disables report publication.
	KafkaBrokers []string
	KafkaTopic   string

	ReportWorkers       int
	ReportMetricTimeout time.Duration

	GRPCHost string
	GRPCPort string
}

// Load reads the env file at path, if it exists, and builds a Config.
// Variables already set in the environment take precedence over the file.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var firstErr error
	getInt := func(key, defaultValue string) int {
		n, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &Config{
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "marketplace"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		RedisHost:         os.Getenv("REDIS_HOST"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		RedisExp:          time.Duration(getInt("REDIS_EXP_SECOND", "60")) * time.Second,

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "kpi-reports"),

		ReportWorkers:       getInt("REPORT_WORKERS", "4"),
		ReportMetricTimeout: time.Duration(getInt("REPORT_METRIC_TIMEOUT_SECOND", "30")) * time.Second,

		GRPCHost: getEnv("GRPC_HOST", "localhost"),
		GRPCPort: getEnv("GRPC_PORT", "50051"),
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return cfg, nil
}

// PostgresDSN returns the pgx connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the Redis server.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns the HTTP listen address.
func (c *Config) HTTPAddr() string {
	return c.AppHost + ":" + c.AppPort
}

// GRPCAddr returns the gRPC health server listen address.
func (c *Config) GRPCAddr() string {
	return c.GRPCHost + ":" + c.GRPCPort
}

func splitList(raw string) []string {
	var out []string
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
