package snapshot

import (
	"context"
	"database/sql"
	"log/slog"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/heroquest-tracker/internal/errors"
	"github.com/KirkDiggler/heroquest-tracker/internal/pkg/clock"
	"github.com/KirkDiggler/heroquest-tracker/internal/repositories/snapshot/migrations"
)

// OpenSQLite opens the database file at path and applies the embedded
// migrations. The caller owns the returned handle.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.InvalidArgument("sqlite path is required")
	}

	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to open sqlite db %s", path)
	}
	if err := applyMigrations(ctx, db, migrations.FS, clock.New()); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to migrate sqlite db")
	}

	return db, nil
}

// SQLiteConfig holds the configuration for the SQLite repository
type SQLiteConfig struct {
	DB    *sql.DB
	Clock clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *SQLiteConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.DB == nil {
		vb.RequiredField("DB")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	return vb.Build()
}

type sqliteRepository struct {
	db    *sql.DB
	clock clock.Clock
}

// NewSQLiteRepository creates a Repository backed by the kv_store table
func NewSQLiteRepository(cfg *SQLiteConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &sqliteRepository{
		db:    cfg.DB,
		clock: cfg.Clock,
	}, nil
}

var _ Repository = (*sqliteRepository)(nil)

// Load reads the record stored under the key
func (r *sqliteRepository) Load(ctx context.Context, input LoadInput) (*LoadOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	var value string
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_store WHERE key = ?`, input.Key).Scan(&value)
	if err == sql.ErrNoRows {
		slog.DebugContext(ctx, "no stored hero state", "key", input.Key)
		return emptyOutput(), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read hero state from sqlite")
	}

	state, err := decodeRoster(input.Key, []byte(value))
	if err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "loaded hero state",
		"key", input.Key,
		"hero_count", len(state.Heroes))

	return &LoadOutput{State: state, Found: true}, nil
}

// Save replaces the record stored under the key
func (r *sqliteRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	data, err := encodeRoster(input.State)
	if err != nil {
		return nil, err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO kv_store (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		input.Key, string(data), clock.UnixMilli(r.clock),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write hero state to sqlite")
	}

	return &SaveOutput{Bytes: len(data)}, nil
}
