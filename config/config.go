package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Mail     MailConfig
	Shipping ShippingConfig
	Promo    PromoConfig
	Notify   NotifyConfig
	AWS      AWSConfig
}

type ServerConfig struct {
	Port           string
	AllowedOrigins []string
}

type DBConfig struct {
	DSN string
}

type MailConfig struct {
	ResendAPIKey     string
	SenderEmail      string
	ContactRecipient string
	TemplatesDir     string
}

type ShippingConfig struct {
	CairoGizaFee      float64
	OtherFee          float64
	FreeShippingAbove float64
}

type PromoConfig struct {
	Code    string
	Percent float64
}

type NotifyConfig struct {
	Workers     int
	QueueSize   int
	MaxAttempts int
	RetryDelay  time.Duration
}

type AWSConfig struct {
	Bucket string
	Region string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8080"),
			AllowedOrigins: []string{getEnv("FRONTEND_URL", "http://localhost:3000"), "https://www.sisies.store"},
		},
		DB: DBConfig{
			DSN: getEnv("DB_DSN", "root:root@tcp(localhost:3306)/sisies?charset=utf8mb4&parseTime=True&loc=Local"),
		},
		Mail: MailConfig{
			ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
			SenderEmail:      getEnv("SENDER_EMAIL", "Sisies <orders@sisies.store>"),
			ContactRecipient: getEnv("CONTACT_RECIPIENT", "hello@sisies.store"),
			TemplatesDir:     getEnv("TEMPLATES_DIR", "templates"),
		},
		Shipping: ShippingConfig{
			CairoGizaFee:      getEnvFloat("SHIPPING_FEE_CAIRO_GIZA", 70),
			OtherFee:          getEnvFloat("SHIPPING_FEE_OTHER", 90),
			FreeShippingAbove: getEnvFloat("FREE_SHIPPING_THRESHOLD", 2500),
		},
		Promo: PromoConfig{
			Code:    getEnv("PROMO_CODE", "SISIES10"),
			Percent: getEnvFloat("PROMO_PERCENT", 0.10),
		},
		Notify: NotifyConfig{
			Workers:     getEnvInt("NOTIFY_WORKERS", 2),
			QueueSize:   getEnvInt("NOTIFY_QUEUE_SIZE", 64),
			MaxAttempts: getEnvInt("NOTIFY_MAX_ATTEMPTS", 3),
			RetryDelay:  time.Duration(getEnvInt("NOTIFY_RETRY_DELAY_SECONDS", 2)) * time.Second,
		},
		AWS: AWSConfig{
			Bucket: getEnv("AWS_S3_BUCKET", "sisies-product-images"),
			Region: getEnv("AWS_REGION", "eu-central-1"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.DB.DSN == "" {
		return fmt.Errorf("DB_DSN is required")
	}
	if c.Promo.Percent < 0 || c.Promo.Percent > 1 {
		return fmt.Errorf("PROMO_PERCENT must be between 0 and 1")
	}
	if c.Notify.Workers < 1 {
		return fmt.Errorf("NOTIFY_WORKERS must be at least 1")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
