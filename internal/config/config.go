// Package config loads process configuration from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every knob the orchestrator reads at startup.
type Config struct {
	NatsURL     string
	Environment string

	BetterStackUploadURL   string
	BetterStackSourceToken string

	ContainerNamePrefix string
	TempBaseDir         string

	PoolMinSize     int
	PoolMaxSize     int
	PoolIdleTimeout time.Duration

	DefaultMemoryLimit string
	DefaultCPUQuota    float64
	DefaultExecTimeout time.Duration
}

// Load reads .env (if present) and the process environment into a Config.
func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("config: no .env file loaded: %v", err)
	}

	return Config{
		NatsURL:     getEnv("NATSURL", "nats://localhost:4222"),
		Environment: getEnv("ENVIRONMENT", "production"),

		BetterStackUploadURL:   getEnv("BETTERSTACKUPLOADURL", ""),
		BetterStackSourceToken: getEnv("BETTERSTACKSOURCETOKEN", ""),

		ContainerNamePrefix: getEnv("CONTAINER_NAME_PREFIX", "it_"),
		TempBaseDir:         getEnv("TEMP_BASE_DIR", os.TempDir()+"/xcode-sandbox"),

		PoolMinSize:     getEnvInt("POOL_MIN_SIZE", 2),
		PoolMaxSize:     getEnvInt("POOL_MAX_SIZE", 5),
		PoolIdleTimeout: getEnvDuration("POOL_IDLE_TIMEOUT", 5*time.Minute),

		DefaultMemoryLimit: getEnv("DEFAULT_MEMORY_LIMIT", "512m"),
		DefaultCPUQuota:    getEnvFloat("DEFAULT_CPU_QUOTA", 0.5),
		DefaultExecTimeout: getEnvDuration("DEFAULT_EXEC_TIMEOUT", 30*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
