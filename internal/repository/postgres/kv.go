package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// KVRepo implements repository.KVStore on the kv_store table
type KVRepo struct {
	db *sql.DB
}

// NewKVRepo creates a new key-value repository
func NewKVRepo(db *sql.DB) *KVRepo {
	return &KVRepo{db: db}
}

// Get returns the JSON value stored under key, or nil if it is unset
func (r *KVRepo) Get(ctx context.Context, userID int64, key string) ([]byte, error) {
	var value []byte
	query := `SELECT value FROM kv_store WHERE user_id = $1 AND key = $2`
	err := r.db.QueryRowContext(ctx, query, userID, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get %q: %w", key, err)
	}

	return value, nil
}

// Set upserts the JSON value under key
func (r *KVRepo) Set(ctx context.Context, userID int64, key string, value []byte) error {
	// lib/pq sends []byte as bytea, jsonb needs text
	query := `
		INSERT INTO kv_store (user_id, key, value)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, key)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`
	if _, err := r.db.ExecContext(ctx, query, userID, key, string(value)); err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

// Delete removes key
func (r *KVRepo) Delete(ctx context.Context, userID int64, key string) error {
	query := `DELETE FROM kv_store WHERE user_id = $1 AND key = $2`
	if _, err := r.db.ExecContext(ctx, query, userID, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

// Compact deletes rows that read back the same as an unset key
func (r *KVRepo) Compact(ctx context.Context) error {
	query := `
		DELETE FROM kv_store
		WHERE value = 'null'::jsonb OR value = '[]'::jsonb
	`
	_, err := r.db.ExecContext(ctx, query)
	return err
}
