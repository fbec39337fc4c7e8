// Package ratio loads and saves the curtain height ratio.
package ratio

import (
	"time"

	"github.com/llehouerou/curtains/internal/debounce"
	"github.com/llehouerou/curtains/internal/geometry"
)

// Key is the settings key the ratio is stored under.
const Key = "height_ratio"

// SaveDelay is the trailing debounce applied to writes.
const SaveDelay = 500 * time.Millisecond

// Settings is the persistence backend for the ratio.
type Settings interface {
	GetFloat(key string, def float64) (float64, error)
	SetFloat(key string, value float64) error
}

// Store reads the ratio once and writes it back with coalesced,
// fire-and-forget saves.
type Store struct {
	settings  Settings
	debouncer *debounce.Debouncer
}

// NewStore creates a Store. A nil scheduler uses real timers.
func NewStore(settings Settings, scheduler debounce.Scheduler) *Store {
	return &Store{
		settings:  settings,
		debouncer: debounce.New(SaveDelay, scheduler),
	}
}

// Load returns the persisted ratio, or geometry.DefaultRatio when nothing
// was saved or the backend is unavailable. Out-of-range values are clamped.
func (s *Store) Load() float64 {
	r, err := s.settings.GetFloat(Key, geometry.DefaultRatio)
	if err != nil {
		return geometry.DefaultRatio
	}
	return geometry.ClampRatio(r)
}

// Save schedules r to be written. Only the last value of a burst within
// SaveDelay is persisted; write errors are dropped.
func (s *Store) Save(r float64) {
	s.debouncer.Trigger(func() {
		_ = s.settings.SetFloat(Key, r)
	})
}

// Flush writes a pending value immediately.
func (s *Store) Flush() {
	s.debouncer.Flush()
}

// Stop discards a pending value.
func (s *Store) Stop() {
	s.debouncer.Stop()
}
