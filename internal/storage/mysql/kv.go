package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"luxe_haven/internal/adapters/observability"
)

type KV struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *KV { return &KV{db: db, now: time.Now} }

// Migrate creates the kv table when missing.
func (r *KV) Migrate(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createKVSQL)
	return err
}

func (r *KV) Get(ctx context.Context, key string, dst any) (bool, error) {
	var raw []byte
	err := r.db.QueryRowContext(ctx, getKVSQL, key, r.now().UTC()).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		observability.ObserveStore("mysql", "miss")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	observability.ObserveStore("mysql", "hit")
	if err := json.Unmarshal(raw, dst); err != nil {
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
		expires = r.now().UTC().Add(ttl)
	}
	observability.ObserveStore("mysql", "set")
	_, err = r.db.ExecContext(ctx, upsertKVSQL, key, string(b), expires)
	return err
}

func (r *KV) Del(ctx context.Context, key string) error {
	observability.ObserveStore("mysql", "del")
	_, err := r.db.ExecContext(ctx, deleteKVSQL, key)
	return err
}

// PurgeExpired drops expired session rows; Get already ignores them.
func (r *KV) PurgeExpired(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, purgeExpiredSQL, r.now().UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
