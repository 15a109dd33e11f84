package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// StateKey is the fixed key under which the single user-state blob is
// stored.
const StateKey = "bloom_app_data"

// historyKeep bounds the state_history table.
const historyKeep = 10

// StateRepo persists the opaque user-state blob. The repo knows
// nothing about the blob's shape; decoding and upgrading live in the
// engine.
type StateRepo struct {
	db *sql.DB
}

func NewStateRepo(db *sql.DB) *StateRepo {
	return &StateRepo{db: db}
}

// Load returns the stored blob, or nil when nothing has been saved.
func (r *StateRepo) Load(ctx context.Context) ([]byte, error) {
	row := r.db.QueryRowContext(ctx, `SELECT data FROM user_state WHERE key = ?`, StateKey)

	var data []byte
	if err := row.Scan(&data); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("state load: %w", err)
	}
	return data, nil
}

// Save overwrites the blob and appends the previous value to the
// bounded history, atomically.
func (r *StateRepo) Save(ctx context.Context, data []byte) error {
	err := WithTx(ctx, r.db, func(tx *sql.Tx) error {
		var prev []byte
		row := tx.QueryRowContext(ctx, `SELECT data FROM user_state WHERE key = ?`, StateKey)
		if err := row.Scan(&prev); err != nil && err != sql.ErrNoRows {
			return fmt.Errorf("state read previous: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `
			INSERT INTO user_state (key, data, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT(key) DO UPDATE SET data = excluded.data, updated_at = CURRENT_TIMESTAMP
		`, StateKey, data); err != nil {
			return fmt.Errorf("state upsert: %w", err)
		}

		if prev != nil {
			if _, err := tx.ExecContext(ctx, `INSERT INTO state_history (data) VALUES (?)`, prev); err != nil {
				return fmt.Errorf("state history insert: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `
				DELETE FROM state_history
				WHERE id NOT IN (SELECT id FROM state_history ORDER BY id DESC LIMIT ?)
			`, historyKeep); err != nil {
				return fmt.Errorf("state history trim: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	slog.Debug("state saved", "bytes", len(data))
	return nil
}

// History returns the most recent previous blobs, newest first.
func (r *StateRepo) History(ctx context.Context, limit int) ([][]byte, error) {
	if limit <= 0 || limit > historyKeep {
		limit = historyKeep
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT data FROM state_history ORDER BY id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("state history list: %w", err)
	}
	defer rows.Close()

	var out [][]byte
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("state history scan: %w", err)
		}
		out = append(out, data)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("state history rows: %w", err)
	}
	return out, nil
}
