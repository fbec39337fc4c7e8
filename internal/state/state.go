package state

import (
	"database/sql"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/llehouerou/curtains/internal/debounce"
)

const (
	appName      = "curtains"
	dbFileName   = "curtains.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager is the sqlite-backed store for settings and reading positions.
type Manager struct {
	db *sql.DB

	saveMu    sync.Mutex
	saver     *debounce.Debouncer
	positions map[string]int
}

// Open opens the state database in the XDG data directory.
func Open() (*Manager, error) {
	dbPath, err := getDBPath()
	if err != nil {
		return nil, err
	}
	return OpenPath(dbPath, nil)
}

// OpenPath opens the state database at dbPath. A nil scheduler uses real
// timers for debounced writes.
func OpenPath(dbPath string, scheduler debounce.Scheduler) (*Manager, error) {
	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{
		db:        db,
		saver:     debounce.New(saveDebounce, scheduler),
		positions: make(map[string]int),
	}, nil
}

// Close writes pending positions and closes the database.
func (m *Manager) Close() error {
	m.saver.Flush()
	return m.db.Close()
}

// SavePosition records the scroll offset of a document. Writes are
// debounced; rapid scrolling only persists the final offsets.
func (m *Manager) SavePosition(path string, offset int) {
	m.saveMu.Lock()
	m.positions[path] = offset
	m.saveMu.Unlock()

	m.saver.Trigger(func() {
		m.saveMu.Lock()
		pending := m.positions
		m.positions = make(map[string]int)
		m.saveMu.Unlock()

		if len(pending) > 0 {
			if err := savePositions(m.db, pending, maxPositions); err != nil {
				log.Printf("state: saving positions: %v", err)
			}
		}
	})
}

// GetPosition returns the saved scroll offset of a document, or 0.
func (m *Manager) GetPosition(path string) (int, error) {
	m.saveMu.Lock()
	offset, ok := m.positions[path]
	m.saveMu.Unlock()
	if ok {
		return offset, nil
	}
	return getPosition(m.db, path)
}

func getDBPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}
