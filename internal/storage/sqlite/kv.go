// Package sqlite keeps the key/value records in a single SQLite file.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"luxe_haven/internal/adapters/observability"
)

const createKVSQL = `
CREATE TABLE IF NOT EXISTS kv (
  k          TEXT    NOT NULL PRIMARY KEY,
  v          TEXT    NOT NULL,
  expires_at INTEGER NULL
)`

const upsertKVSQL = `
INSERT INTO kv (k, v, expires_at) VALUES (?, ?, ?)
ON CONFLICT(k) DO UPDATE SET v = excluded.v, expires_at = excluded.expires_at`

const getKVSQL = `SELECT v FROM kv WHERE k = ? AND (expires_at IS NULL OR expires_at > ?)`

type KV struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (or creates) the database file and applies the schema.
func Open(ctx context.Context, path string) (*KV, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	// a single writer avoids SQLITE_BUSY between pooled connections
	db.SetMaxOpenConns(1)
	kv := New(db)
	if err := kv.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return kv, nil
}

func New(db *sql.DB) *KV { return &KV{db: db, now: time.Now} }

func (r *KV) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createKVSQL)
	return err
}

func (r *KV) Close() error { return r.db.Close() }

func (r *KV) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw string
	err := r.db.QueryRowContext(ctx, getKVSQL, key, r.now().UnixMilli()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		observability.ObserveStore("sqlite", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveStore("sqlite", "hit")
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return true, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

func (r *KV) Set(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	var expires any
	if ttl > 0 {
		expires = r.now().Add(ttl).UnixMilli()
	}
	observability.ObserveStore("sqlite", "set")
	_, err = r.db.ExecContext(ctx, upsertKVSQL, key, string(b), expires)
	return err
}

func (r *KV) Del(ctx context.Context, key string) error {
	observability.ObserveStore("sqlite", "del")
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE k = ?`, key)
	return err
}

func (r *KV) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE expires_at IS NOT NULL AND expires_at <= ?`, r.now().UnixMilli())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
