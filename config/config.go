package config

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from environment variables (godotenv loads
// a local .env before this runs, see main.go).
type Config struct {
	Port     string `mapstructure:"PORT"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// PostgreSQL configuration. DATABASE_URL wins when set.
	DatabaseURL string `mapstructure:"DATABASE_URL"`
	DBHost      string `mapstructure:"DB_HOST"`
	DBPort      int    `mapstructure:"DB_PORT"`
	DBUser      string `mapstructure:"DB_USER"`
	DBPassword  string `mapstructure:"DB_PASSWORD"`
	DBName      string `mapstructure:"DB_NAME"`
	DBSSLMode   string `mapstructure:"DB_SSL_MODE"`

	// Auth
	JWTSecret   string `mapstructure:"JWT_SECRET"`
	AdminAPIKey string `mapstructure:"ADMIN_API_KEY"`

	// Payment processor
	PaymentAPIURL        string `mapstructure:"PAYMENT_API_URL"`
	PaymentSecretKey     string `mapstructure:"PAYMENT_SECRET_KEY"`
	PaymentWebhookSecret string `mapstructure:"PAYMENT_WEBHOOK_SECRET"`
	PaymentCurrency      string `mapstructure:"PAYMENT_CURRENCY"`

	// CORS
	FrontendURL  string `mapstructure:"FRONTEND_URL"`
	DashboardURL string `mapstructure:"DASHBOARD_URL"`
}

// LoadConfig reads configuration from environment variables with defaults.
func LoadConfig() (config Config, err error) {
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "4000")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", 5432)
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "password")
	viper.SetDefault("DB_NAME", "ecommerce")
	viper.SetDefault("DB_SSL_MODE", "disable")

	viper.SetDefault("JWT_SECRET", "")
	viper.SetDefault("ADMIN_API_KEY", "")

	viper.SetDefault("PAYMENT_API_URL", "https://api.stripe.com")
	viper.SetDefault("PAYMENT_SECRET_KEY", "")
	viper.SetDefault("PAYMENT_WEBHOOK_SECRET", "")
	viper.SetDefault("PAYMENT_CURRENCY", "usd")

	viper.SetDefault("FRONTEND_URL", "http://localhost:3000")
	viper.SetDefault("DASHBOARD_URL", "http://localhost:3001")

	if err = viper.Unmarshal(&config); err != nil {
		log.Error().Err(err).Msg("Unable to decode config into struct")
		return
	}

	if config.JWTSecret == "" {
		err = fmt.Errorf("JWT_SECRET is not set")
	}
	return
}

// DSN builds the Postgres connection string from the individual parts.
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode,
	)
}
