package database

import (
	"fmt"

	"github.com/andresproyectosx24/chayotex/internal/config"
	"github.com/andresproyectosx24/chayotex/internal/domain/entity"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Warn

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	logrus.WithFields(logrus.Fields{
		"host": cfg.Host,
		"db":   cfg.Name,
	}).Info("connected to PostgreSQL")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	logrus.Info("running database migrations")

	err := db.AutoMigrate(
		// Auth
		&entity.User{},

		// Contact directory
		&entity.Customer{},
		&entity.Supplier{},

		// Warehouse
		&entity.InventoryItem{},

		// Ledger documents
		&entity.Sale{},
		&entity.SaleItem{},
		&entity.Settlement{},
		&entity.SettlementEntry{},
		&entity.SettlementDeduction{},
		&entity.FolioCounter{},

		// System
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	logrus.Info("database migrations completed")
	return nil
}

// SeedAdminUser creates the operator account from ADMIN_EMAIL /
// ADMIN_PASSWORD if it does not exist yet, so a fresh deployment has a
// working login before anyone registers.
func SeedAdminUser(db *gorm.DB) error {
	adminEmail := viper.GetString("ADMIN_EMAIL")
	adminPassword := viper.GetString("ADMIN_PASSWORD")
	adminName := viper.GetString("ADMIN_NAME")

	if adminEmail == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("email = ?", adminEmail).First(&existing).Error; err == nil {
		logrus.WithField("email", adminEmail).Info("admin user already exists")
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	if adminName == "" {
		adminName = "Administrador"
	}

	admin := entity.User{
		Name:     adminName,
		Email:    adminEmail,
		Password: string(hashedPassword),
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	logrus.WithField("email", adminEmail).Info("admin user created")
	return nil
}
