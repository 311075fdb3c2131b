package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/glebarez/sqlite"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"taskboard/internal/config"
	"taskboard/internal/model"
	"taskboard/migrations"
)

// Connect opens a gorm connection for the configured DB_TYPE.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	maxOpen := cfg.DBMaxOpenConns

	switch cfg.DBType {
	case "postgres", "postgresql":
		dialector = postgres.Open(cfg.PostgresDSN())
	case "sqlite":
		dialector = sqlite.Open(SQLiteDSN(cfg.DBPath))
		// every connection to :memory: is a separate database
		if strings.Contains(cfg.DBPath, ":memory:") {
			maxOpen = 1
		}
	default:
		return nil, fmt.Errorf("unsupported database type: %s", cfg.DBType)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(gormLogLevel(cfg.DBLogLevel)),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying SQL DB: %w", err)
	}
	if maxOpen > 0 {
		sqlDB.SetMaxOpenConns(maxOpen)
		sqlDB.SetMaxIdleConns((maxOpen + 1) / 2)
	}

	log.WithField("type", cfg.DBType).Info("✅ Connected to database")
	return db, nil
}

// SQLiteDSN enables foreign key enforcement, which SQLite leaves off by default.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// Models lists every table owned by the service, parents first.
func Models() []any {
	return []any{
		&model.User{},
		&model.Account{},
		&model.Session{},
		&model.VerificationToken{},
		&model.Board{},
		&model.List{},
		&model.Card{},
		&model.Label{},
		&model.CardLabel{},
		&model.RecentlyViewed{},
	}
}

// AutoMigrate creates or updates the schema from the gorm models.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// MigrateSQL applies the embedded versioned migrations with golang-migrate.
func MigrateSQL(cfg *config.Config) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("failed to open migration source: %w", err)
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, cfg.PostgresURL())
	if err != nil {
		return fmt.Errorf("failed to init migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	version, dirty, _ := m.Version()
	log.WithFields(log.Fields{"version": version, "dirty": dirty}).Info("✅ Schema migrations applied")
	return nil
}

// Migrate runs the schema step selected by MIGRATE_MODE.
func Migrate(cfg *config.Config, db *gorm.DB) error {
	switch cfg.MigrateMode {
	case "auto":
		return AutoMigrate(db)
	case "sql":
		return MigrateSQL(cfg)
	default:
		return nil
	}
}

func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func gormLogLevel(level string) logger.LogLevel {
	switch strings.ToLower(level) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
