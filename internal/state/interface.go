package state

// Interface is what the application needs from the state store. Mock
// implements it for tests.
type Interface interface {
	// GetFloat returns def when key was never written.
	GetFloat(key string, def float64) (float64, error)
	SetFloat(key string, value float64) error
	DeleteSetting(key string) error

	// SavePosition is debounced; GetPosition sees unsaved offsets.
	SavePosition(path string, offset int)
	GetPosition(path string) (int, error)

	// Close flushes pending writes.
	Close() error
}

var (
	_ Interface = (*Manager)(nil)
	_ Interface = (*Mock)(nil)
)
