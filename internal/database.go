package internal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

const settingsTableSQL = `CREATE TABLE IF NOT EXISTS settings (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// OpenDatabase opens a SQLite settings database in read-only mode
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	return db, nil
}

// OpenWritableDatabase opens (creating if needed) a settings database and
// ensures the settings table exists
func OpenWritableDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", "file:"+path+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if _, err := db.Exec(settingsTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create settings table: %w", err)
	}
	return db, nil
}

// QuerySetting returns the value stored under key. The boolean reports
// whether a non-NULL value was found.
func QuerySetting(ctx context.Context, db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// QuerySettings queries the settings table with a LIKE pattern
func QuerySettings(ctx context.Context, db *sql.DB, pattern string) ([]KeyValuePair, error) {
	rows, err := db.QueryContext(ctx, "SELECT key, value FROM settings WHERE key LIKE ? AND value IS NOT NULL ORDER BY key", pattern)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		if err := rows.Scan(&pair.Key, &pair.Value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		pairs = append(pairs, pair)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}

// PutSetting upserts a setting
func PutSetting(ctx context.Context, db *sql.DB, key, value string) error {
	_, err := db.ExecContext(ctx,
		"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value)
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

// KeyValuePair represents a key-value pair from the settings table
type KeyValuePair struct {
	Key   string
	Value string
}
