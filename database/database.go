package database

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"schooldir/config"

	"github.com/sirupsen/logrus"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type DatabaseConfig struct {
	Type     string
	Host     string
	Port     int
	User     string
	Password string
	Database string
	Path     string
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Type:     config.GetString("database.type"),
		Host:     config.GetString("database.mysql.host"),
		Port:     config.GetInt("database.mysql.port"),
		User:     config.GetString("database.mysql.user"),
		Password: config.GetString("database.mysql.password"),
		Database: config.GetString("database.mysql.db"),
		Path:     config.GetString("database.path"),
	}
}

func (d *DatabaseConfig) Dialector() (gorm.Dialector, error) {
	switch d.Type {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			d.User, d.Password, d.Host, d.Port, d.Database)
		return mysql.Open(dsn), nil
	case "sqlite":
		path := d.Path
		if path == "" {
			path = "schooldir.db"
		}
		return sqlite.Open(path), nil
	default:
		return nil, fmt.Errorf("unsupported database type: %s", d.Type)
	}
}

// Global DB object
var DB *gorm.DB

func InitDB() {
	connectWithRetry(NewDatabaseConfig())

	if err := DB.AutoMigrate(
		&TradeSchool{},
		&Student{},
		&User{},
	); err != nil {
		logrus.Fatalf("Failed to migrate database: %v", err)
	}
}

func connectWithRetry(dbConfig *DatabaseConfig) {
	maxRetries := 3
	retryDelay := 10 * time.Second

	dialector, err := dbConfig.Dialector()
	if err != nil {
		logrus.Fatalf("Failed to construct dialector: %v", err)
	}

	for i := 0; i <= maxRetries; i++ {
		DB, err = gorm.Open(dialector, &gorm.Config{
			Logger: logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags),
				logger.Config{
					SlowThreshold:             time.Second,
					LogLevel:                  logger.Warn,
					IgnoreRecordNotFoundError: true,
					Colorful:                  true,
				}),
			TranslateError: true,
		})
		if err == nil {
			logrus.Info("Successfully connected to the database")
			break
		}

		logrus.Errorf("Failed to connect to database (attempt %d/%d): %v", i+1, maxRetries+1, err)
		if i < maxRetries {
			logrus.Infof("Retrying in %v...", retryDelay)
			time.Sleep(retryDelay)
		}
	}

	if err != nil {
		logrus.Fatalf("Failed to connect to database after %d attempts: %v", maxRetries+1, err)
	}
}

// Ping issues a trivial liveness probe against the datastore.
func Ping(ctx context.Context) error {
	if DB == nil {
		return fmt.Errorf("database not initialized")
	}
	var one int
	return DB.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}
