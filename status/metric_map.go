package status

import (
	"maps"
	"slices"
	"sync"
)

// MetricMap is a named set of metric cells, each created on first Get
// Cells are registered once at construction and then written lock-free by their owner
// Zero value is ready to use
type MetricMap[T any] struct {
	mu    sync.Mutex
	cells map[string]*T
}

// Get returns the cell registered under name
func (m *MetricMap[T]) Get(name string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()

	if c, ok := m.cells[name]; ok {
		return c
	}
	if m.cells == nil {
		m.cells = make(map[string]*T)
	}
	c := new(T)
	m.cells[name] = c
	return c
}

// Names returns registered metric names, sorted
func (m *MetricMap[T]) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Sorted(maps.Keys(m.cells))
}

// Len returns the number of registered metrics
func (m *MetricMap[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cells)
}
