package state

import (
	"context"
	"database/sql"

	dbutil "github.com/llehouerou/curtains/internal/db"
)

// migrations[i] upgrades the schema from version i to i+1. Append only.
var migrations = []string{
	`
	CREATE TABLE settings (
		key TEXT PRIMARY KEY,
		value REAL NOT NULL,
		updated_at INTEGER NOT NULL
	);

	CREATE TABLE document_positions (
		path TEXT PRIMARY KEY,
		scroll_offset INTEGER NOT NULL DEFAULT 0,
		updated_at INTEGER NOT NULL
	);

	CREATE INDEX idx_document_positions_updated ON document_positions(updated_at DESC);
	`,
}

func initSchema(db *sql.DB) error {
	return dbutil.Migrate(context.Background(), db, migrations)
}
