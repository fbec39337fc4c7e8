package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu        sync.Mutex
	settings  map[string]float64
	writes    []SettingWrite
	positions map[string]int
	setErr    error
	getErr    error
	closed    bool
}

// SettingWrite records one SetFloat call on the mock.
type SettingWrite struct {
	Key   string
	Value float64
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{
		settings:  make(map[string]float64),
		positions: make(map[string]int),
	}
}

func (m *Mock) GetFloat(key string, def float64) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getErr != nil {
		return def, m.getErr
	}
	if v, ok := m.settings[key]; ok {
		return v, nil
	}
	return def, nil
}

func (m *Mock) SetFloat(key string, value float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.writes = append(m.writes, SettingWrite{Key: key, Value: value})
	if m.setErr != nil {
		return m.setErr
	}
	m.settings[key] = value
	return nil
}

func (m *Mock) DeleteSetting(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.settings, key)
	return nil
}

func (m *Mock) SavePosition(path string, offset int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.positions[path] = offset
}

func (m *Mock) GetPosition(path string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.positions[path], nil
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSetting(key string, value float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[key] = value
}

func (m *Mock) Writes() []SettingWrite {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]SettingWrite(nil), m.writes...)
}

func (m *Mock) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.setErr = err
}

func (m *Mock) FailReads(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.getErr = err
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
