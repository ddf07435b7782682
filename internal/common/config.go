package common

import (
	"os"
	"strconv"
	"time"

	"github.com/luminexhq/invoicevault/constants"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Queue    QueueConfig
	Provider ProviderConfig
	Ingest   IngestConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds object-store configuration (MinIO/S3).
type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	Region    string
	UseSSL    bool
}

// QueueConfig holds the asynq/Redis configuration for the extraction worker.
type QueueConfig struct {
	RedisAddr      string
	Concurrency    int
	ProcessTimeout time.Duration
}

// ProviderConfig holds extraction-provider configuration.
type ProviderConfig struct {
	Name    string
	Timeout time.Duration
}

// IngestConfig holds batch ingestion policy.
type IngestConfig struct {
	MaxBatchFiles int
	MaxFileBytes  int64
	MaxRetries    int
	RetryBaseWait time.Duration
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("S3_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("S3_ACCESS_KEY", ""),
			SecretKey: getEnv("S3_SECRET_KEY", ""),
			Bucket:    getEnv("S3_BUCKET", "invoices-raw"),
			Region:    getEnv("S3_REGION", "us-east-1"),
			UseSSL:    getEnvAsBool("S3_USE_SSL", false),
		},
		Queue: QueueConfig{
			RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
			Concurrency:    getEnvAsInt("QUEUE_CONCURRENCY", 4),
			ProcessTimeout: getEnvAsDuration("QUEUE_PROCESS_TIMEOUT", 3*time.Minute),
		},
		Provider: ProviderConfig{
			Name:    getEnv("EXTRACTION_PROVIDER", "pdflocal"),
			Timeout: getEnvAsDuration("EXTRACTION_TIMEOUT", 45*time.Second),
		},
		Ingest: IngestConfig{
			MaxBatchFiles: getEnvAsInt("INGEST_MAX_BATCH_FILES", constants.MaxBatchFiles),
			MaxFileBytes:  getEnvAsInt64("INGEST_MAX_FILE_BYTES", constants.MaxFileBytes),
			MaxRetries:    getEnvAsInt("TASK_MAX_RETRIES", constants.MaxTaskRetries),
			RetryBaseWait: getEnvAsDuration("TASK_RETRY_BASE_WAIT", 30*time.Second),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration for server use.
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return WrapError(ErrInvalidInput, "DB_URL is required")
	}
	if c.Server.GRPCAddr == "" {
		return WrapError(ErrInvalidInput, "GRPC_ADDR is required")
	}
	if c.Ingest.MaxBatchFiles <= 0 || c.Ingest.MaxFileBytes <= 0 {
		return WrapError(ErrInvalidInput, "ingest policy must be positive")
	}
	return nil
}
