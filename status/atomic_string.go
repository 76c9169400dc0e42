package status

import "sync/atomic"

// AtomicString holds a short label (symbol name, session ID) for one writer and many readers
type AtomicString struct {
	v atomic.Pointer[string]
}

func (s *AtomicString) Store(val string) {
	s.v.Store(&val)
}

// Load returns "" until the first Store
func (s *AtomicString) Load() string {
	if p := s.v.Load(); p != nil {
		return *p
	}
	return ""
}
