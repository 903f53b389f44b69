package gorm

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"todo-api/internal/infra/database/sqlc"
)

// Open connects gorm to the postgres database described by app.db.* properties
func Open() (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(sqlc.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("fail to connect database: %w", err)
	}
	return db, nil
}
