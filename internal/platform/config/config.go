// Package config loads application configuration from environment variables
// or an optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

const (
	// AppName is the service name reported by the root endpoint.
	AppName = "Stock Monitor API"
	// Version is the service version reported by the root endpoint.
	Version = "1.0.0"
)

// Config holds the full application configuration.
// It is loaded once at startup via Load and passed explicitly to the
// components that need it.
type Config struct {
	Server ServerConfig
	DB     DBConfig
	Market MarketConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// DBConfig selects and configures the database backend.
// Driver is either "sqlite" (default, local file) or "postgres".
type DBConfig struct {
	Driver     string
	SQLitePath string
	Postgres   PostgresConfig
}

// PostgresConfig defines connection details for PostgreSQL.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	DSN      string
}

// MarketConfig configures the external market data provider used to
// validate ticker symbols.
type MarketConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// LogConfig configures the global logger.
type LogConfig struct {
	Level  string
	Pretty bool
}

// Load reads configuration with the following precedence, lowest first:
// defaults, .env file (if present), environment variables.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("SERVER_PORT", "8080")

	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("SQLITE_PATH", "stock_monitor.db")

	v.SetDefault("POSTGRES_HOST", "localhost")
	v.SetDefault("POSTGRES_PORT", 5432)
	v.SetDefault("POSTGRES_USER", "postgres")
	v.SetDefault("POSTGRES_PASSWORD", "postgres")
	v.SetDefault("POSTGRES_DB", "stock_monitor")
	v.SetDefault("POSTGRES_SSLMODE", "disable")

	v.SetDefault("TWELVE_DATA_BASE_URL", "https://api.twelvedata.com")
	v.SetDefault("TWELVE_DATA_TIMEOUT_SECONDS", 10)

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_PRETTY", false)

	// .env is optional and common in local dev.
	v.SetConfigFile(".env")
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	cfg := Config{
		Server: ServerConfig{
			Port: v.GetString("SERVER_PORT"),
		},
		DB: DBConfig{
			Driver:     v.GetString("DB_DRIVER"),
			SQLitePath: v.GetString("SQLITE_PATH"),
			Postgres: PostgresConfig{
				Host:     v.GetString("POSTGRES_HOST"),
				Port:     v.GetInt("POSTGRES_PORT"),
				User:     v.GetString("POSTGRES_USER"),
				Password: v.GetString("POSTGRES_PASSWORD"),
				DBName:   v.GetString("POSTGRES_DB"),
				SSLMode:  v.GetString("POSTGRES_SSLMODE"),
			},
		},
		Market: MarketConfig{
			APIKey:  v.GetString("TWELVE_DATA_API_KEY"),
			BaseURL: v.GetString("TWELVE_DATA_BASE_URL"),
			Timeout: time.Duration(v.GetInt("TWELVE_DATA_TIMEOUT_SECONDS")) * time.Second,
		},
		Log: LogConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Pretty: v.GetBool("LOG_PRETTY"),
		},
	}

	cfg.DB.Postgres.DSN = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.DB.Postgres.User,
		cfg.DB.Postgres.Password,
		cfg.DB.Postgres.Host,
		cfg.DB.Postgres.Port,
		cfg.DB.Postgres.DBName,
		cfg.DB.Postgres.SSLMode,
	)

	if err := validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// validate rejects configurations the service cannot start with.
func validate(cfg Config) error {
	switch cfg.DB.Driver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q (expected sqlite or postgres)", cfg.DB.Driver)
	}
	if cfg.Server.Port == "" {
		return fmt.Errorf("config: SERVER_PORT must not be empty")
	}
	if cfg.Market.BaseURL == "" {
		return fmt.Errorf("config: TWELVE_DATA_BASE_URL must not be empty")
	}
	return nil
}
