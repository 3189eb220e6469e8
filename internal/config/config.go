package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Store drivers
const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Store configuration
	StoreDriver      string `mapstructure:"STORE_DRIVER"`
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`
	TxMaxRetries     int    `mapstructure:"TX_MAX_RETRIES"`

	// JWT configuration
	JWTSecret string `mapstructure:"JWT_SECRET"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Notification fan-out. An empty REDIS_URL logs events instead of publishing them.
	RedisURL            string `mapstructure:"REDIS_URL"`
	NotificationChannel string `mapstructure:"NOTIFICATION_CHANNEL"`

	// Role policy
	ApproveMinPriority      int    `mapstructure:"RBAC_APPROVE_MIN_PRIORITY"`
	PromoteMinPriority      int    `mapstructure:"RBAC_PROMOTE_MIN_PRIORITY"`
	EnforcePromotionCeiling bool   `mapstructure:"RBAC_ENFORCE_PROMOTION_CEILING"`
	RolePolicyFile          string `mapstructure:"RBAC_POLICY_FILE"`

	// Counter reconciliation schedule as a cron expression. Empty disables the job.
	ReconcileSchedule string `mapstructure:"RECONCILE_SCHEDULE"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Store defaults
	viper.SetDefault("STORE_DRIVER", StoreDriverPostgres)
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "club_coordination")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("TX_MAX_RETRIES", 3)

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"})

	// Notification defaults
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("NOTIFICATION_CHANNEL", "club-coordination.events")

	// Role policy defaults. Promotion and approval share a threshold until a deployment decides otherwise.
	viper.SetDefault("RBAC_APPROVE_MIN_PRIORITY", 80)
	viper.SetDefault("RBAC_PROMOTE_MIN_PRIORITY", 80)
	viper.SetDefault("RBAC_ENFORCE_PROMOTION_CEILING", true)
	viper.SetDefault("RBAC_POLICY_FILE", "")

	viper.SetDefault("RECONCILE_SCHEDULE", "@every 15m")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret || config.JWTSecret == "" {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	switch config.StoreDriver {
	case StoreDriverPostgres:
		if config.DatabaseName == "" && config.DatabaseURL == "" {
			return fmt.Errorf("database name is required")
		}
	case StoreDriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", config.StoreDriver)
	}

	if config.TxMaxRetries < 1 {
		return fmt.Errorf("TX_MAX_RETRIES must be at least 1")
	}

	for name, p := range map[string]int{
		"RBAC_APPROVE_MIN_PRIORITY": config.ApproveMinPriority,
		"RBAC_PROMOTE_MIN_PRIORITY": config.PromoteMinPriority,
	} {
		if p < 0 || p > 100 {
			return fmt.Errorf("%s must be within [0,100], got %d", name, p)
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
