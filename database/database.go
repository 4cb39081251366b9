package database

import (
	"context"
	"fmt"
	"inspection-app/config"
	logg "inspection-app/logger"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/driver/sqlserver"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// GormConfig is shared by the server, the processor and the tests. now is
// used for every CreatedAt/UpdatedAt gorm fills in.
func GormConfig(now func() time.Time) *gorm.Config {
	gormLogger := logger.New(
		slog.NewLogLogger(slog.Default().Handler(), slog.LevelInfo),
		logger.Config{
			SlowThreshold:             1 * time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  false,
		},
	)

	return &gorm.Config{
		Logger:         gormLogger,
		NowFunc:        now,
		TranslateError: true,
	}
}

func dialector(cfg config.Config) (gorm.Dialector, error) {
	dsn := cfg.DSN()
	switch cfg.DBDriver {
	case config.DriverPostgres:
		return postgres.Open(dsn), nil
	case config.DriverMySQL:
		return mysql.Open(dsn), nil
	case config.DriverMSSQL:
		return sqlserver.Open(dsn), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER: %s", cfg.DBDriver)
	}
}

func Open(cfg config.Config, now func() time.Time) (*gorm.DB, error) {
	log := logg.New("database").Function("Open")

	if cfg.DBDriver == config.DriverSQLite {
		dir := filepath.Dir(cfg.DBPath)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, log.Err("failed to create database directory", err, "dir", dir)
		}
	}

	d, err := dialector(cfg)
	if err != nil {
		return nil, log.Err("failed to pick dialector", err)
	}

	log.Info("Connecting with GORM", "driver", cfg.DBDriver)
	db, err := gorm.Open(d, GormConfig(now))
	if err != nil {
		return nil, log.Err("failed to open database", err, "driver", cfg.DBDriver)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, log.Err("failed to get database from GORM", err)
	}
	if err := sqlDB.Ping(); err != nil {
		return nil, log.Err("failed to ping database", err)
	}

	if cfg.DBDriver == config.DriverSQLite {
		// sqlite allows a single writer
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
	}
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Info("Successfully connected with GORM", "driver", cfg.DBDriver)
	return db, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	if err := sqlDB.Close(); err != nil {
		logg.New("database").Function("Close").Er("failed to close database", err)
	}
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
