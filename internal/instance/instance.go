// Package instance keeps one curtain pair per document and routes the
// activation trigger to it.
package instance

import (
	"time"

	"github.com/llehouerou/curtains/internal/curtain"
)

// ContextID identifies a document context. The app uses absolute paths.
type ContextID string

// Factory builds the curtain pair for a document on its first activation.
type Factory func(id ContextID, surface curtain.Surface) *curtain.Instance

// Manager is the registry of live curtain pairs.
type Manager struct {
	factory   Factory
	instances map[ContextID]*curtain.Instance
	now       func() time.Time
}

// New creates a Manager that builds instances with factory.
func New(factory Factory) *Manager {
	return &Manager{
		factory:   factory,
		instances: make(map[ContextID]*curtain.Instance),
		now:       time.Now,
	}
}

// Activate is the activation trigger. The first call for id constructs the
// instance (listeners, ratio load, initial geometry); every call then
// toggles it. It returns the instance and its new state.
func (m *Manager) Activate(id ContextID, surface curtain.Surface) (*curtain.Instance, bool) {
	inst, ok := m.instances[id]
	if !ok {
		inst = m.factory(id, surface)
		m.instances[id] = inst
	}
	return inst, inst.Toggle(m.now())
}

// Lookup returns the instance for id if it was ever activated.
func (m *Manager) Lookup(id ContextID) (*curtain.Instance, bool) {
	inst, ok := m.instances[id]
	return inst, ok
}

// Len returns the number of live instances.
func (m *Manager) Len() int {
	return len(m.instances)
}

// Each calls fn for every live instance.
func (m *Manager) Each(fn func(id ContextID, inst *curtain.Instance)) {
	for id, inst := range m.instances {
		fn(id, inst)
	}
}

// Close tears every instance down and empties the registry.
func (m *Manager) Close() {
	for id, inst := range m.instances {
		inst.Close()
		delete(m.instances, id)
	}
}
