// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Database    DatabaseConfig
	JWT         JWTConfig
	AWS         AWSConfig
	Ledger      LedgerConfig
	Payment     PaymentConfig
	OCR         OCRConfig
	I18n        I18nConfig
	Frontend    FrontendConfig
}

type FrontendConfig struct {
	BaseURL string
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

type DatabaseConfig struct {
	Host         string
	Port         string
	User         string
	Password     string
	Database     string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  int
	LogLevel     string
}

type JWTConfig struct {
	SecretKey       string
	AccessTokenTTL  int // in hours
	RefreshTokenTTL int // in hours
}

type AWSConfig struct {
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	S3Bucket        string
	CloudFrontURL   string
}

// LedgerConfig points at the Hedera mirror node used to verify settlement
// transactions and fetch the HBAR exchange rate.
type LedgerConfig struct {
	Network       string
	MirrorNodeURL string
	APIKey        string
	TimeoutSecs   int
}

// PaymentConfig carries the settlement surcharge rules. ServiceFeePercent
// is the fixed-rate fee non-owners pay on top of their share; the fee goes
// to AdminAccount.
type PaymentConfig struct {
	ServiceFeePercent float64
	AdminAccount      string
	AdminPassword     string
	RateCacheSecs     int
}

type OCRConfig struct {
	BaseURL     string
	APIKey      string
	TimeoutSecs int
}

type I18nConfig struct {
	DefaultLocale string
	LocalesPath   string
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 15),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         getEnv("DB_PORT", "5432"),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Database:     getEnv("DB_NAME", "split_chain"),
			SSLMode:      getEnv("DB_SSL_MODE", "disable"),
			MaxOpenConns: getEnvAsInt("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: getEnvAsInt("DB_MAX_IDLE_CONNS", 25),
			MaxLifetime:  getEnvAsInt("DB_MAX_LIFETIME", 300),
			LogLevel:     getEnv("DB_LOG_LEVEL", "silent"),
		},
		JWT: JWTConfig{
			SecretKey:       getEnv("JWT_SECRET", "your-secret-key-change-in-production"),
			AccessTokenTTL:  getEnvAsInt("JWT_ACCESS_TTL", 24),   // 24 hours
			RefreshTokenTTL: getEnvAsInt("JWT_REFRESH_TTL", 168), // 7 days
		},
		AWS: AWSConfig{
			Region:          getEnv("AWS_REGION", "us-east-1"),
			AccessKeyID:     getEnv("AWS_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
			S3Bucket:        getEnv("AWS_S3_BUCKET", "split-chain-receipts"),
			CloudFrontURL:   getEnv("AWS_CLOUDFRONT_URL", ""),
		},
		Ledger: LedgerConfig{
			Network:       getEnv("LEDGER_NETWORK", "testnet"),
			MirrorNodeURL: getEnv("LEDGER_MIRROR_NODE_URL", "https://testnet.mirrornode.hedera.com/api/v1"),
			APIKey:        getEnv("LEDGER_API_KEY", ""),
			TimeoutSecs:   getEnvAsInt("LEDGER_TIMEOUT", 30),
		},
		Payment: PaymentConfig{
			ServiceFeePercent: getEnvAsFloat("SERVICE_FEE_PERCENT", 1.0),
			AdminAccount:      getEnv("SERVICE_FEE_ACCOUNT", "0.0.6331448"),
			AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
			RateCacheSecs:     getEnvAsInt("RATE_CACHE_SECONDS", 60),
		},
		OCR: OCRConfig{
			BaseURL:     getEnv("OCR_BASE_URL", "http://localhost:8090"),
			APIKey:      getEnv("OCR_API_KEY", ""),
			TimeoutSecs: getEnvAsInt("OCR_TIMEOUT", 60),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "en"),
			LocalesPath:   getEnv("LOCALES_PATH", "./internal/i18n/locales"),
		},
		Frontend: FrontendConfig{
			BaseURL: getEnv("FRONTEND_BASE_URL", "http://localhost:5173"),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "your-secret-key-change-in-production" && c.Environment == "production" {
		return fmt.Errorf("JWT secret key must be changed in production")
	}

	if c.Database.Password == "" && c.Environment == "production" {
		return fmt.Errorf("database password is required in production")
	}

	if c.Payment.ServiceFeePercent < 0 || c.Payment.ServiceFeePercent > 100 {
		return fmt.Errorf("service fee percent must be between 0 and 100, got %v", c.Payment.ServiceFeePercent)
	}

	if c.Payment.AdminAccount == "" {
		return fmt.Errorf("service fee account is required")
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}
