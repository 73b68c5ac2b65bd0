package setup

import (
	"context"
	"log/slog"

	gormAdapter "github.com/hettlage/superlists/internal/adapter/gorm"
	"github.com/hettlage/superlists/internal/config"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	_ "github.com/ncruces/go-sqlite3/embed"
)

var getGormDatabaseFromConfig = createFromConfigOnce(NewGormDatabaseFromConfig)

func NewGormDatabaseFromConfig(ctx context.Context, conf *config.Config) (*gorm.DB, error) {
	dialector := gormlite.Open(conf.Storage.Database.DSN)

	var logLevel logger.LogLevel
	switch conf.Logger.Level {
	case slog.LevelError:
		logLevel = logger.Error
	case slog.LevelWarn:
		logLevel = logger.Warn
	case slog.LevelInfo:
		logLevel = logger.Info
	default:
		logLevel = logger.Error
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if conf.Logger.Level == slog.LevelDebug {
		db = db.Debug()
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	if err := db.Exec("PRAGMA journal_mode=wal; PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}

// MigrateFromConfig applies pending migrations to the configured database.
func MigrateFromConfig(ctx context.Context, conf *config.Config) error {
	db, err := getGormDatabaseFromConfig(ctx, conf)
	if err != nil {
		return errors.Wrap(err, "could not open database")
	}

	if err := gormAdapter.Migrate(ctx, db); err != nil {
		return errors.Wrap(err, "could not migrate database")
	}

	return nil
}
