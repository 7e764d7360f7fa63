package database

import (
	"fmt"
	"time"

	assistantModels "second-brain-api/internal/apps/assistant/models"
	authModels "second-brain-api/internal/apps/auth/models"
	callModels "second-brain-api/internal/apps/call/models"
	reminderModels "second-brain-api/internal/apps/reminder/models"
	userModels "second-brain-api/internal/apps/user/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Config holds database connection settings
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// Pool limits: a fixed maximum of concurrent connections, idle connections
// recycled after a timeout, and new-connection attempts timing out.
const (
	maxOpenConns    = 20
	connMaxIdleTime = 30 * time.Second
	connectTimeout  = 2 * time.Second
)

// NewConnection opens a pooled Postgres connection
func NewConnection(config Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		config.Host, config.Port, config.User, config.Password, config.DBName,
		config.SSLMode, int(connectTimeout.Seconds()),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return db, nil
}

// Migrate creates the schema inside a single transaction, rolling back on any
// failure. Runs once at process start.
func Migrate(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		return tx.AutoMigrate(
			&userModels.User{},
			&authModels.Auth{},
			&assistantModels.Message{},
			&callModels.Call{},
			&reminderModels.Reminder{},
		)
	})
}
