package config

import (
	"simagang-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

func ConnectDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate membuat/menyesuaikan tabel berdasarkan struct di internal/model.
// Dipisah dari ConnectDB supaya test bisa migrasi di atas sqlite in-memory.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.User{},
		&model.Internship{},
		&model.Permission{},
		&model.Logbook{},
		&model.Presence{},
		&model.Task{},
		&model.AuditLog{},
	)
}
