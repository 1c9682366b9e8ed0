// Package database 负责创建关系型数据库与 Redis 连接。
package database

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"study-assistant/internal/config"
	"study-assistant/internal/model"
	"study-assistant/pkg/log"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open 根据配置打开数据库连接。默认使用本地 SQLite 文件，也支持 MySQL。
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Driver {
	case "", "sqlite":
		if dir := filepath.Dir(cfg.DSN); dir != "." && dir != "" {
			_ = os.MkdirAll(dir, os.ModePerm)
		}
		dialector = sqlite.Open(cfg.DSN)
	case "mysql":
		dialector = mysql.Open(cfg.DSN)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect database: %w", err)
	}

	// 配置连接池
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get sql.DB: %w", err)
	}
	if cfg.Driver == "mysql" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		// SQLite 单文件写锁，单连接避免 "database is locked"
		sqlDB.SetMaxOpenConns(1)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Infof("database connected successfully, driver=%s", dialectName(cfg.Driver))
	return db, nil
}

// Migrate 创建或更新 conversations、study_resources、sessions 三张表。
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.Conversation{}, &model.StudyResource{}, &model.Session{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

func dialectName(driver string) string {
	if driver == "" {
		return "sqlite"
	}
	return driver
}
