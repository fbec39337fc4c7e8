package state

import (
	"context"
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/curtains/internal/db"
)

// maxPositions bounds the position table; the least recently read
// documents are forgotten first.
const maxPositions = 1000

func getPosition(db *sql.DB, path string) (int, error) {
	var offset int
	err := db.QueryRow(`SELECT scroll_offset FROM document_positions WHERE path = ?`, path).Scan(&offset)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return offset, nil
}

func savePositions(db *sql.DB, positions map[string]int, keep int) error {
	now := time.Now().Unix()
	return dbutil.WithTx(context.Background(), db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO document_positions (path, scroll_offset, updated_at)
			VALUES (?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
				scroll_offset = excluded.scroll_offset,
				updated_at = excluded.updated_at
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for path, offset := range positions {
			if _, err := stmt.Exec(path, offset, now); err != nil {
				return err
			}
		}

		_, err = tx.Exec(`
			DELETE FROM document_positions WHERE path NOT IN (
				SELECT path FROM document_positions
				ORDER BY updated_at DESC
				LIMIT ?
			)
		`, keep)
		return err
	})
}
