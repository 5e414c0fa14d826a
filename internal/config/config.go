package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DatabaseConfig selects and addresses the backing store.
type DatabaseConfig struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

// LogConfig configures pkg/logger.
type LogConfig struct {
	Level  string
	Format string
	Output string
	File   string
}

type Config struct {
	ServerPort          string
	Database            DatabaseConfig
	Log                 LogConfig
	NATSURL             string
	NavigationSubject   string
	ProjectionCacheSize int
	RefreshSchedule     string
	PreloadWorkspaces   []string
}

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logrus.WithError(err).Warn("Could not read .env file")
	}

	cacheSize, err := strconv.Atoi(getEnv("PROJECTION_CACHE_SIZE", "256"))
	if err != nil {
		return nil, fmt.Errorf("invalid PROJECTION_CACHE_SIZE: %w", err)
	}

	cfg := &Config{
		ServerPort: getEnv("SERVER_PORT", "8090"),
		Database: DatabaseConfig{
			Driver:     strings.ToLower(getEnv("DB_DRIVER", DriverSQLite)),
			Host:       getEnv("DB_HOST", "localhost"),
			Port:       getEnv("DB_PORT", "5432"),
			User:       getEnv("DB_USER", "airbyte"),
			Password:   getEnv("DB_PASSWORD", ""),
			Name:       getEnv("DB_NAME", "airbyte"),
			SSLMode:    getEnv("DB_SSLMODE", "disable"),
			SQLitePath: getEnv("SQLITE_PATH", "console.db"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
			Output: getEnv("LOG_OUTPUT", "stdout"),
			File:   getEnv("LOG_FILE", "console.log"),
		},
		NATSURL:             getEnv("NATS_URL", ""),
		NavigationSubject:   getEnv("NAVIGATION_SUBJECT", "console.navigation"),
		ProjectionCacheSize: cacheSize,
		RefreshSchedule:     getEnv("REFRESH_SCHEDULE", "@every 5m"),
		PreloadWorkspaces:   splitList(getEnv("PRELOAD_WORKSPACES", "")),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.ProjectionCacheSize <= 0 {
		return fmt.Errorf("PROJECTION_CACHE_SIZE must be positive, got %d", c.ProjectionCacheSize)
	}
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT must not be empty")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
