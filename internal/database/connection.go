// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/JonathanMaverick/split-chain-backend/internal/config"
	"github.com/JonathanMaverick/split-chain-backend/internal/models"
	"github.com/JonathanMaverick/split-chain-backend/internal/utils"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.Friend{},
		&models.Bill{},
		&models.BillItem{},
		&models.ItemParticipant{},
		&models.AdminSettings{},
		&models.AuditLog{},
		&models.Notification{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_wallet ON users(wallet_address)",
		"CREATE INDEX IF NOT EXISTS idx_users_type_status ON users(user_type, status)",

		// Bill indexes
		"CREATE INDEX IF NOT EXISTS idx_bills_creator ON bills(creator_id)",
		"CREATE INDEX IF NOT EXISTS idx_bills_bill_date ON bills(bill_date DESC)",
		"CREATE INDEX IF NOT EXISTS idx_bills_created_at ON bills(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_bill_items_bill ON bill_items(bill_id, position)",

		// Claim indexes
		"CREATE INDEX IF NOT EXISTS idx_item_participants_item ON item_participants(item_id)",
		"CREATE INDEX IF NOT EXISTS idx_item_participants_wallet ON item_participants(participant_id)",
		"CREATE INDEX IF NOT EXISTS idx_item_participants_unpaid ON item_participants(participant_id) WHERE is_paid = ''",

		// Friend indexes
		"CREATE INDEX IF NOT EXISTS idx_friends_user ON friends(user_wallet_address)",

		// Admin indexes
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_wallet_action ON audit_logs(wallet_address, action)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_resource ON audit_logs(resource_type, resource_id)",
		"CREATE INDEX IF NOT EXISTS idx_audit_logs_created ON audit_logs(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_notifications_wallet_status ON notifications(wallet_address, status)",

		// Full-text search over store names
		"CREATE INDEX IF NOT EXISTS idx_bills_search ON bills USING GIN(to_tsvector('english', store_name))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB, cfg *config.Config) error {
	log.Println("Seeding initial data...")

	// Create the platform admin identity backing the service-charge account
	var adminCount int64
	db.Model(&models.User{}).Where("user_type = ?", models.UserTypeAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			WalletAddress: cfg.Payment.AdminAccount,
			UserType:      models.UserTypeAdmin,
			Status:        models.UserStatusActive,
		}

		password := cfg.Payment.AdminPassword
		if password == "" {
			generated, err := utils.GenerateRandomString(16)
			if err != nil {
				return fmt.Errorf("failed to generate admin password: %w", err)
			}
			password = generated
			log.Printf("Generated admin password: %s", password)
		}
		if err := admin.SetPassword(password); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	// Create default runtime settings
	var settingsCount int64
	db.Model(&models.AdminSettings{}).Count(&settingsCount)

	if settingsCount == 0 {
		settings := &models.AdminSettings{
			ServiceFeePercent: cfg.Payment.ServiceFeePercent,
			AdminAccount:      cfg.Payment.AdminAccount,
		}
		if err := db.Create(settings).Error; err != nil {
			return fmt.Errorf("failed to create default settings: %w", err)
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
