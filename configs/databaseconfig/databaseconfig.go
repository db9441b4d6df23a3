package databaseconfig

import (
	"fmt"
	"time"

	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/envconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/configs/logconfig"
	"github.com/BapNonVoDich/TheWellingtonOffices-sub000/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var db *gorm.DB

func InitDB() {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%d sslmode=%s TimeZone=%s",
		envconfig.String("DB_HOST", "127.0.0.1"),
		envconfig.String("DB_USER", "wellington"),
		envconfig.String("DB_PASSWORD", ""),
		envconfig.String("DB_NAME", "wellington"),
		envconfig.Int("DB_PORT", 5432),
		envconfig.String("DB_SSLMODE", "disable"),
		envconfig.String("DB_TIMEZONE", "Asia/Ho_Chi_Minh"),
	)

	logLevel := gormlogger.Warn
	if !envconfig.IsProd() {
		logLevel = gormlogger.Info
	}

	conn, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(logLevel),
	})
	if err != nil {
		logconfig.Log.Fatal("Database connection failed", zap.Error(err))
	}

	sqlDB, err := conn.DB()
	if err != nil {
		logconfig.Log.Fatal("Database handle could not be obtained", zap.Error(err))
	}
	sqlDB.SetMaxOpenConns(envconfig.Int("DB_MAX_OPEN_CONNS", 25))
	sqlDB.SetMaxIdleConns(envconfig.Int("DB_MAX_IDLE_CONNS", 5))
	sqlDB.SetConnMaxLifetime(30 * time.Minute)

	db = conn

	if err := AutoMigrate(db); err != nil {
		logconfig.Log.Fatal("Database migration failed", zap.Error(err))
	}

	logconfig.SLog.Infow("Database connected",
		"host", envconfig.String("DB_HOST", "127.0.0.1"),
		"database", envconfig.String("DB_NAME", "wellington"),
	)
}

func AutoMigrate(conn *gorm.DB) error {
	return conn.AutoMigrate(
		&models.District{},
		&models.Ward{},
		&models.OldWard{},
		&models.Property{},
		&models.PropertyImage{},
		&models.Office{},
		&models.Post{},
		&models.HomeSection{},
		&models.AdminUser{},
	)
}

func GetDB() *gorm.DB {
	return db
}

func CloseDB() {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logconfig.Log.Warn("Database handle could not be obtained on close", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logconfig.Log.Warn("Database connection could not be closed", zap.Error(err))
	}
}
