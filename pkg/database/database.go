package database

import (
	"time"

	"VidTube.com/cmd/model"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	gormopentracing "gorm.io/plugin/opentracing"
)

const (
	DriverMysql  = "mysql"
	DriverSqlite = "sqlite"
)

// Open connects to the relational store, installs the tracing plugin and
// migrates every table the service owns.
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMysql, "":
		dialector = mysql.Open(dsn)
	case DriverSqlite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, errors.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().Local()
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", driver)
	}
	if err = db.Use(gormopentracing.New()); err != nil {
		return nil, errors.Wrap(err, "install gorm tracing plugin")
	}

	if driver == DriverSqlite {
		// sqlite allows a single writer; one connection avoids "database is locked".
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "get sql.DB")
		}
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, errors.Wrap(err, "get sql.DB")
		}
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetConnMaxLifetime(time.Hour)
	}

	if err = Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates every table in model.Models.
func Migrate(db *gorm.DB) error {
	hlog.Info("Starting tables migration...")
	if err := db.AutoMigrate(model.Models()...); err != nil {
		return errors.Wrap(err, "auto migrate")
	}
	hlog.Info("Tables migration completed successfully")
	return nil
}
