package db

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"usersadmin/internal/model"
)

// NewMySQL returns a connected GORM DB instance.
func NewMySQL(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect mysql: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the users table. With reset the table is
// dropped first.
func Migrate(db *gorm.DB, reset bool) error {
	if reset {
		if err := db.Migrator().DropTable(&model.User{}); err != nil {
			return fmt.Errorf("drop users: %w", err)
		}
	}
	if err := db.AutoMigrate(&model.User{}); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}
