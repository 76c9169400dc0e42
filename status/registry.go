// Package status is a lock-free metric registry
// The game loop caches metric pointers at construction and stores into them every tick;
// readers (HTTP status, HUD) load without coordinating with the loop
package status

import "sync/atomic"

// Registry groups metrics by value type
// Must not be copied after first use
type Registry struct {
	Ints    MetricMap[atomic.Int64]
	Strings MetricMap[AtomicString]
}

func NewRegistry() *Registry {
	return &Registry{}
}

// Snapshot copies every metric into plain maps for serialization
func (r *Registry) Snapshot() Snapshot {
	ints := r.Ints.Names()
	strs := r.Strings.Names()

	s := Snapshot{
		Ints:    make(map[string]int64, len(ints)),
		Strings: make(map[string]string, len(strs)),
	}
	for _, name := range ints {
		s.Ints[name] = r.Ints.Get(name).Load()
	}
	for _, name := range strs {
		s.Strings[name] = r.Strings.Get(name).Load()
	}
	return s
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Len() + r.Strings.Len()
}

// Snapshot is a point-in-time copy of a Registry
type Snapshot struct {
	Ints    map[string]int64  `json:"ints"`
	Strings map[string]string `json:"strings"`
}
