package database

import (
	"context"
	stdsql "database/sql"
	"fmt"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	_ "modernc.org/sqlite" // Register the cgo-free sqlite driver

	"github.com/neonhq/neon/ent"
)

// NewSQLiteClient opens (or creates) an embedded SQLite store at path and
// creates the schema via Ent auto-migration. This is the CLI-mode store:
// single process, no migration history to coordinate.
func NewSQLiteClient(ctx context.Context, path string) (*Client, error) {
	// _pragma busy_timeout avoids spurious SQLITE_BUSY under the
	// orchestrator's concurrent result writes.
	dsn := fmt.Sprintf("file:%s?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)

	db, err := stdsql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite store: %w", err)
	}

	// SQLite handles one writer at a time; keep the pool small.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite store: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	entClient := ent.NewClient(ent.Driver(drv))

	if err := entClient.Schema.Create(ctx); err != nil {
		_ = entClient.Close()
		return nil, fmt.Errorf("failed to create sqlite schema: %w", err)
	}

	return &Client{
		Client:  entClient,
		db:      db,
		dialect: dialect.SQLite,
	}, nil
}
