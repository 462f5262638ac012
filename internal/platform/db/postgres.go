package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	pingTimeout     = 5 * time.Second
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 30 * time.Minute
)

// Postgres is the single gorm handle that the artwork, vote and panel
// repositories share when STORE_DRIVER=postgres.
type Postgres struct {
	DB *gorm.DB
}

// Connect opens the pool and fails unless the server answers a ping, so a
// bad POSTGRES_DSN stops the process at startup rather than on first vote.
func Connect(dsn string) (*Postgres, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, errors.New("postgres dsn is required")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open gorm postgres: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("resolve postgres sql db handle: %w", err)
	}
	// Judging traffic is a small panel of judges and admins.
	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return &Postgres{DB: db}, nil
}

func (p *Postgres) Close() error {
	if p == nil || p.DB == nil {
		return nil
	}
	sqlDB, err := p.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrator is implemented by repositories that own their schema.
type Migrator interface {
	Migrate(ctx context.Context) error
}

// Migrate runs each migrator in order and stops at the first failure.
func Migrate(ctx context.Context, migrators ...Migrator) error {
	for _, migrator := range migrators {
		if err := migrator.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
