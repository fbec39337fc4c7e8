package state

import (
	"database/sql"
	"errors"
	"time"
)

// GetFloat returns the numeric setting stored under key, or def when the
// key has never been written.
func (m *Manager) GetFloat(key string, def float64) (float64, error) {
	return getFloat(m.db, key, def)
}

// SetFloat stores a numeric setting.
func (m *Manager) SetFloat(key string, value float64) error {
	return setFloat(m.db, key, value)
}

// DeleteSetting removes a setting so the next read returns its default.
func (m *Manager) DeleteSetting(key string) error {
	_, err := m.db.Exec(`DELETE FROM settings WHERE key = ?`, key)
	return err
}

func getFloat(db *sql.DB, key string, def float64) (float64, error) {
	var value sql.NullFloat64
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, err
	}
	if !value.Valid {
		return def, nil
	}
	return value.Float64, nil
}

func setFloat(db *sql.DB, key string, value float64) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}
