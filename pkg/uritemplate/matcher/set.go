package matcher

import "sync"

// Set is a thread-safe collection of named matchers. It is a convenience
// for assembling the matcher mapping handed to Compile; the compiler
// itself takes a plain map via Snapshot().
type Set struct {
	mu      sync.RWMutex
	entries map[string]Matcher
}

// NewSet creates an empty matcher set.
func NewSet() *Set {
	return &Set{entries: make(map[string]Matcher)}
}

// Register binds a matcher to a variable name, replacing any previous
// binding. Returns the set for chaining.
func (s *Set) Register(name string, m Matcher) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[name] = m
	return s
}

// RegisterMany binds all entries of the given map.
func (s *Set) RegisterMany(entries map[string]Matcher) *Set {
	s.mu.Lock()
	defer s.mu.Unlock()
	for name, m := range entries {
		s.entries[name] = m
	}
	return s
}

// Resolve returns the matcher for a variable name and whether it exists.
func (s *Set) Resolve(name string) (Matcher, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	m, ok := s.entries[name]
	return m, ok
}

// Has reports whether a matcher is registered for the name.
func (s *Set) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.entries[name]
	return ok
}

// Names returns all registered variable names. The order is not guaranteed.
func (s *Set) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	return names
}

// Snapshot returns a copy of the current bindings, suitable for Compile.
// Later mutations of the set do not affect the returned map.
func (s *Set) Snapshot() map[string]Matcher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]Matcher, len(s.entries))
	for name, m := range s.entries {
		out[name] = m
	}
	return out
}
