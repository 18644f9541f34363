package storage

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"strings"
)

const defaultDocumentsTable = "documents"

// PostgresClient stores objects as rows of the documents table.
// The table is created by the migrations in internal/db.
type PostgresClient struct {
	db    *sql.DB
	table string
}

// NewPostgresClient constructs a Postgres backend over an open connection.
func NewPostgresClient(db *sql.DB) (*PostgresClient, error) {
	if db == nil {
		return nil, errors.New("postgres connection is required")
	}
	return &PostgresClient{db: db, table: defaultDocumentsTable}, nil
}

// EnsureBucket verifies the documents table exists.
func (p *PostgresClient) EnsureBucket(ctx context.Context) error {
	var name sql.NullString
	if err := p.db.QueryRowContext(ctx, `SELECT to_regclass($1)::text`, p.table).Scan(&name); err != nil {
		return err
	}
	if !name.Valid {
		return fmt.Errorf("table %q does not exist, run migrate up", p.table)
	}
	return nil
}

// Put upserts an object.
func (p *PostgresClient) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	if strings.TrimSpace(contentType) == "" {
		contentType = "application/json"
	}

	query := `
		INSERT INTO ` + p.table + ` (key, body, content_type, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (key) DO UPDATE
		SET body = EXCLUDED.body,
			content_type = EXCLUDED.content_type,
			updated_at = EXCLUDED.updated_at`
	_, err = p.db.ExecContext(ctx, query, key, string(data), contentType)
	return err
}

// Get reads an object into memory.
func (p *PostgresClient) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	query := `SELECT body FROM ` + p.table + ` WHERE key = $1`
	var body []byte
	if err := p.db.QueryRowContext(ctx, query, key).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrObjectNotFound
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(body)), nil
}

// Delete removes an object.
func (p *PostgresClient) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM ` + p.table + ` WHERE key = $1`
	result, err := p.db.ExecContext(ctx, query, key)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrObjectNotFound
	}
	return nil
}

// Bucket returns the table name.
func (p *PostgresClient) Bucket() string {
	return p.table
}

// Close closes the database connection.
func (p *PostgresClient) Close() error {
	return p.db.Close()
}
