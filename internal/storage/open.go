// Package storage selects the key/value backend the collection store runs on.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"

	redisad "luxe_haven/internal/adapters/redis"
	"luxe_haven/internal/domain"
	"luxe_haven/internal/shared"
	mysqlkv "luxe_haven/internal/storage/mysql"
	"luxe_haven/internal/storage/sqlite"
)

// Backend is an opened KV plus the maintenance hooks its driver supports.
type Backend struct {
	domain.KV
	Driver string

	close   func() error
	migrate func(ctx context.Context) error
	purge   func(ctx context.Context) (int64, error)
}

func (b *Backend) Close() error { return b.close() }

// Migrate applies the SQL schema; redis needs none.
func (b *Backend) Migrate(ctx context.Context) error {
	if b.migrate == nil {
		return nil
	}
	return b.migrate(ctx)
}

// PurgeExpired removes expired sessions on SQL backends; redis expires keys itself.
func (b *Backend) PurgeExpired(ctx context.Context) (int64, error) {
	if b.purge == nil {
		return 0, nil
	}
	return b.purge(ctx)
}

func Open(ctx context.Context, cfg shared.Config) (*Backend, error) {
	switch cfg.StoreDriver {
	case "redis", "":
		kv := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err := kv.Ping(ctx); err != nil {
			kv.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("redis connection ok")
		return &Backend{KV: kv, Driver: "redis", close: kv.Close}, nil

	case "mysql":
		dsn, err := mysqlDSN(cfg.MySQLDSN)
		if err != nil {
			return nil, err
		}
		db, err := sql.Open("mysql", dsn)
		if err != nil {
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, fmt.Errorf("mysql ping: %w", err)
		}
		log.Info().Msg("database connection ok")
		kv := mysqlkv.New(db)
		return &Backend{KV: kv, Driver: "mysql", close: db.Close, migrate: kv.Migrate, purge: kv.PurgeExpired}, nil

	case "sqlite":
		kv, err := sqlite.Open(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		log.Info().Str("path", cfg.SQLitePath).Msg("sqlite database ready")
		return &Backend{KV: kv, Driver: "sqlite", close: kv.Close, migrate: kv.Migrate, purge: kv.PurgeExpired}, nil

	default:
		return nil, fmt.Errorf("unknown STORE_DRIVER %q (want redis, mysql or sqlite)", cfg.StoreDriver)
	}
}

// mysqlDSN forces the options the kv table relies on: parsed DATETIME columns in UTC.
func mysqlDSN(dsn string) (string, error) {
	c, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse MYSQL_DSN: %w", err)
	}
	c.ParseTime = true
	c.Loc = time.UTC
	return c.FormatDSN(), nil
}
