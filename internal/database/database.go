package database

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/IamTheLime/airbyte/internal/config"
	"github.com/IamTheLime/airbyte/internal/models"
)

// Connect opens the configured database and migrates the schema.
func Connect(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case config.DriverPostgres:
		// lib/pq keeps *pq.Error visible to the store.
		dialector = postgres.New(postgres.Config{DriverName: "postgres", DSN: cfg.DSN()})
	case config.DriverSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	db, err := Open(dialector)
	if err != nil {
		return nil, err
	}
	logrus.WithField("driver", cfg.Driver).Info("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}
	logrus.Info("Database schema migration completed")
	return db, nil
}

// Open wraps gorm.Open with the service's logger and error translation.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	gormLogger := logger.New(
		logrus.StandardLogger(),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		},
	)

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the tables of every model.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Workspace{},
		&models.SourceDefinition{},
		&models.DestinationDefinition{},
		&models.Source{},
		&models.Destination{},
		&models.Connection{},
	)
	if err != nil {
		return fmt.Errorf("failed to auto-migrate database schema: %w", err)
	}
	return nil
}
