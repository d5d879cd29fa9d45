package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB - подмножество pgxpool.Pool, которое нужно бэкенду
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresBackend хранит слоты в таблице storage_slots
type PostgresBackend struct {
	db DB
}

func NewPostgresBackend(db DB) *PostgresBackend {
	return &PostgresBackend{db: db}
}

func (p *PostgresBackend) GetItem(ctx context.Context, key string) (string, bool, error) {
	query := `
		SELECT value
		FROM storage_slots
		WHERE key = $1;
	`
	var value string
	err := p.db.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to get slot %s: %w", key, err)
	}
	return value, true, nil
}

func (p *PostgresBackend) SetItem(ctx context.Context, key, value string) error {
	query := `
		INSERT INTO storage_slots (key, value, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW();
	`
	if _, err := p.db.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("failed to set slot %s: %w", key, err)
	}
	return nil
}

func (p *PostgresBackend) RemoveItem(ctx context.Context, key string) error {
	query := `DELETE FROM storage_slots WHERE key = $1;`
	if _, err := p.db.Exec(ctx, query, key); err != nil {
		return fmt.Errorf("failed to remove slot %s: %w", key, err)
	}
	return nil
}
