package app

import (
	"fmt"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/catalogd/catalogd/config"
)

func getDatabase(cfg config.DBConfig, workdir string) *gorm.DB {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if cfg.Debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	switch cfg.Type {
	case "sqlite":
		name := cfg.Name
		if name != ":memory:" {
			name = filepath.Join(workdir, cfg.Name+".db")
		}
		db, err := gorm.Open(sqlite.Open(name), gormConfig)
		if err != nil {
			zap.S().Fatalf("sqlite connect error: %v", err)
		}
		return db
	default:
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
			cfg.Host, cfg.Port, cfg.User, cfg.Passwd, cfg.Name)
		db, err := gorm.Open(postgres.Open(dsn), gormConfig)
		if err != nil {
			zap.S().Fatalf("postgres connect error: %v", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			zap.S().Fatalf("database pool error: %v", err)
		}
		sqlDB.SetMaxOpenConns(cfg.MaxConn)
		sqlDB.SetMaxIdleConns(cfg.IdleConn)
		sqlDB.SetConnMaxLifetime(time.Hour)
		return db
	}
}
