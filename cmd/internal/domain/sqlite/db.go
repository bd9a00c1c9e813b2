package sqlite

import (
	"dealership/cmd/internal/domain/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// MemoryDSN keeps the whole store in process memory; nothing survives a restart.
const MemoryDSN = ":memory:"

// Init opens the store and migrates the schema. With an in-memory DSN every
// connection would see its own empty database, so the pool is pinned to a
// single connection that never expires, before anything is migrated.
func Init(dsn string) (*gorm.DB, error) {
	if dsn == "" {
		dsn = MemoryDSN
	}

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	err = db.AutoMigrate(
		&entity.ServiceAppointment{},
		&entity.SalesAppointment{},
		&entity.InventoryItem{},
		&entity.FinancingOption{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
