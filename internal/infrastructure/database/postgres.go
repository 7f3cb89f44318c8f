package database

import (
	"errors"
	"fmt"
	"log"

	"github.com/grifosur/grifo-api/internal/config"
	"github.com/grifosur/grifo-api/internal/domain/entity"
	"github.com/grifosur/grifo-api/pkg/utils"
	"github.com/shopspring/decimal"
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

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Fuel{},
		&entity.Customer{},
		&entity.Sale{},
		&entity.SaleDetail{},
		&entity.SalePayment{},
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with an admin user and the station's
// fuel products when the tables are empty
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var admin entity.User
	err := db.Where("username = ?", "admin").First(&admin).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hashed, err := utils.HashPassword("admin123")
		if err != nil {
			return err
		}
		admin = entity.User{
			FirstName: "Administrador",
			LastName:  "Grifo",
			Username:  "admin",
			Password:  hashed,
			Role:      entity.RoleAdmin,
		}
		if err := db.Create(&admin).Error; err != nil {
			return fmt.Errorf("failed to seed admin user: %w", err)
		}
	} else if err != nil {
		return err
	}

	var fuelCount int64
	if err := db.Model(&entity.Fuel{}).Count(&fuelCount).Error; err != nil {
		return err
	}
	if fuelCount == 0 {
		fuels := []entity.Fuel{
			{Name: "Diesel B5", PricePerGallon: decimal.RequireFromString("15.50"), StockGallons: decimal.RequireFromString("1000")},
			{Name: "Gasohol 90", PricePerGallon: decimal.RequireFromString("16.80"), StockGallons: decimal.RequireFromString("800")},
			{Name: "Gasohol 95", PricePerGallon: decimal.RequireFromString("17.50"), StockGallons: decimal.RequireFromString("600")},
		}
		if err := db.Create(&fuels).Error; err != nil {
			return fmt.Errorf("failed to seed fuels: %w", err)
		}
	}

	log.Println("Default data seeded successfully")
	return nil
}
