package account

import "sync"

// DirtySet is a deduplicated FIFO of identifiers waiting for a refresh. It is safe for
// concurrent use.
type DirtySet struct {
	mu    sync.Mutex
	items map[string]struct{}
	order []string
}

// NewDirtySet returns an empty set.
func NewDirtySet() *DirtySet {
	return &DirtySet{items: make(map[string]struct{})}
}

// Add inserts id and reports whether it was not already pending. Empty ids are ignored.
func (s *DirtySet) Add(id string) bool {
	if id == "" {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; ok {
		return false
	}
	s.items[id] = struct{}{}
	s.order = append(s.order, id)
	return true
}

// Pop removes and returns up to n identifiers in the order they were first added.
func (s *DirtySet) Pop(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if n > len(s.order) {
		n = len(s.order)
	}
	if n <= 0 {
		return nil
	}
	out := make([]string, n)
	copy(out, s.order[:n])
	s.order = s.order[n:]
	for _, id := range out {
		delete(s.items, id)
	}
	return out
}

// Len returns the number of pending identifiers.
func (s *DirtySet) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.order)
}
