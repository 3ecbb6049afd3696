package repo

import (
	"qrserve/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// InitDB открывает подключение к БД и прогоняет миграции.
// Непустой DSN означает Postgres, иначе используется локальный SQLite-файл.
func InitDB(dsn string) (*gorm.DB, error) {
	var dial gorm.Dialector
	if dsn != "" {
		dial = postgres.Open(dsn)
	} else {
		dial = sqlite.Open("qrserve.db")
	}

	db, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&model.User{}, &model.CachedImage{}); err != nil {
		return nil, err
	}
	return db, nil
}
