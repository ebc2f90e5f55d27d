package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/avasin/brewmart/internal/dbx"
)

// SQLiteKV implements KV on top of a single kvstore table, using a DBTX
// handle (either *sql.DB or *sql.Tx).
type SQLiteKV struct {
	db dbx.DBTX
}

// NewSQLiteKV returns a SQLiteKV bound to the given DBTX.
func NewSQLiteKV(db dbx.DBTX) *SQLiteKV {
	return &SQLiteKV{db: db}
}

func (r *SQLiteKV) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kvstore WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get kvstore[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteKV) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kvstore (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set kvstore[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteKV) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kvstore WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kvstore[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteKV) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kvstore`)
	if err != nil {
		return fmt.Errorf("failed to clear kvstore: %w", err)
	}
	return nil
}

func (r *SQLiteKV) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM kvstore`)
	if err != nil {
		return nil, fmt.Errorf("failed to list kvstore: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kvstore row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kvstore rows: %w", err)
	}

	return result, nil
}

// Batch groups writes into one transaction when the underlying handle is a
// *sql.DB. When the handle is already transactional, fn runs directly.
func (r *SQLiteKV) Batch(ctx context.Context, fn func(ctx context.Context, kv KV) error) error {
	sqldb, ok := r.db.(*sql.DB)
	if !ok {
		return fn(ctx, r)
	}
	return dbx.WithTx(ctx, sqldb, func(ctx context.Context, tx dbx.DBTX) error {
		return fn(ctx, NewSQLiteKV(tx))
	})
}
