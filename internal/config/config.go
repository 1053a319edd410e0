package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config chứa toàn bộ application configuration
// Struct này được populate từ environment variables
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	LLM      LLMConfig
	MinIO    MinIOConfig
	Upload   UploadConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	CORSOrigins string // comma-separated list, "*" cho phép tất cả
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
	MaxConns int
	MinConns int
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// AuthConfig cấu hình cho identity provider và session lifetime.
// SovereignEmail là identity duy nhất được phép sửa canonical operators.
type AuthConfig struct {
	ProviderURL    string
	SessionTTL     time.Duration
	SovereignEmail string
}

type LLMConfig struct {
	APIKey     string
	BaseURL    string
	Model      string
	Timeout    time.Duration
	SessionTTL time.Duration // TTL cho chat session context trong Redis
}

type MinIOConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

type UploadConfig struct {
	MaxFileSize      int64 // bytes
	MaxExtractedText int   // ký tự, phần dư bị truncate
}

// Load đọc config từ environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "GoGarvis API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "2.0.0"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "gogarvis"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 25),
			MinConns: getEnvInt("DB_MIN_CONNS", 5),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Auth: AuthConfig{
			ProviderURL:    getEnv("AUTH_PROVIDER_URL", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),
			SessionTTL:     time.Duration(getEnvInt("SESSION_TTL_HOURS", 168)) * time.Hour, // 7 days
			SovereignEmail: getEnv("SOVEREIGN_EMAIL", ""),
		},
		LLM: LLMConfig{
			APIKey:     getEnv("LLM_API_KEY", ""),
			BaseURL:    getEnv("LLM_BASE_URL", "https://api.openai.com/v1"),
			Model:      getEnv("LLM_MODEL", "gpt-5.2"),
			Timeout:    time.Duration(getEnvInt("LLM_TIMEOUT_SECONDS", 30)) * time.Second,
			SessionTTL: time.Duration(getEnvInt("CHAT_SESSION_TTL_HOURS", 24)) * time.Hour,
		},
		MinIO: MinIOConfig{
			Endpoint:  getEnv("MINIO_ENDPOINT", "localhost:9000"),
			AccessKey: getEnv("MINIO_ACCESS_KEY", "minioadmin"),
			SecretKey: getEnv("MINIO_SECRET_KEY", "minioadmin"),
			Bucket:    getEnv("MINIO_BUCKET", "gogarvis"),
			UseSSL:    getEnv("MINIO_USE_SSL", "false") == "true",
		},
		Upload: UploadConfig{
			MaxFileSize:      int64(getEnvInt("UPLOAD_MAX_FILE_MB", 50)) * 1024 * 1024,
			MaxExtractedText: getEnvInt("UPLOAD_MAX_EXTRACTED_CHARS", 10000),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate kiểm tra config có hợp lệ không
func (c *Config) Validate() error {
	// Production environment phải có các secrets bắt buộc
	if c.App.Environment == "production" {
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD must be set in production")
		}
		if c.Auth.SovereignEmail == "" {
			return fmt.Errorf("SOVEREIGN_EMAIL must be set in production")
		}
		if c.LLM.APIKey == "" {
			fmt.Println("WARNING: LLM_API_KEY not set - chat assistant will not work")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
