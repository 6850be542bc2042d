package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"fintrack/config"
	"fintrack/models"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

// Init 初始化数据库连接
// driver 可选 sqlite（默认，单机部署）或 mysql
func Init(cfg *config.Config) error {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if cfg.Database.LogMode {
		gormLogger = logger.Default.LogMode(logger.Info)
	}

	var err error
	switch cfg.Database.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.Database.Username,
			cfg.Database.Password,
			cfg.Database.Host,
			cfg.Database.Port,
			cfg.Database.DBName,
			cfg.Database.Charset,
		)
		DB, err = gorm.Open(mysql.Open(dsn), &gorm.Config{Logger: gormLogger})
	default:
		// 确保数据库文件所在目录存在
		if dir := filepath.Dir(cfg.Database.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("创建数据库目录失败: %w", err)
			}
		}
		DB, err = gorm.Open(sqlite.Open(cfg.Database.Path), &gorm.Config{Logger: gormLogger})
	}
	if err != nil {
		return fmt.Errorf("连接数据库失败: %w", err)
	}

	// 获取底层 *sql.DB 连接池配置
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}

	if cfg.Database.Driver == "mysql" {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	} else {
		sqlDB.SetMaxIdleConns(5)
		sqlDB.SetMaxOpenConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
		// SQLite 性能与可靠性调优
		_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
		_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
		_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")
	}

	// 自动迁移数据库表
	if err := DB.AutoMigrate(
		&models.Bill{},
		&models.BillTemplate{},
		&models.Income{},
	); err != nil {
		return err
	}

	// 兼容历史数据：老版本没有 status 字段，默认设置为 UNPAID
	_ = DB.Model(&models.Bill{}).
		Where("status IS NULL OR status = ''").
		Update("status", models.StatusUnpaid).Error

	log.Println("数据库初始化成功")
	return nil
}

// GetDB 获取数据库连接
func GetDB() *gorm.DB {
	return DB
}
