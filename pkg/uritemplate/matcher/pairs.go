package matcher

// Pairs is an ordered string-keyed mapping, the runtime value for
// record-shaped variables. Go maps do not preserve insertion order, and
// record expansion enumerates values in insertion order, so record values
// are built explicitly:
//
//	keys := matcher.NewPairs().
//	    Set("semi", ";").
//	    Set("dot", ".").
//	    Set("comma", ",")
//
// Setting an existing key replaces its value but keeps its original
// position. Pairs is not safe for concurrent mutation; build it fully
// before sharing.
type Pairs struct {
	keys []string
	vals map[string]any
}

// NewPairs creates an empty ordered mapping.
func NewPairs() *Pairs {
	return &Pairs{vals: make(map[string]any)}
}

// Set adds or replaces the value for key and returns p for chaining.
func (p *Pairs) Set(key string, value any) *Pairs {
	if _, ok := p.vals[key]; !ok {
		p.keys = append(p.keys, key)
	}
	p.vals[key] = value
	return p
}

// Get returns the value for key and whether it exists.
func (p *Pairs) Get(key string) (any, bool) {
	v, ok := p.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (p *Pairs) Keys() []string {
	keys := make([]string, len(p.keys))
	copy(keys, p.keys)
	return keys
}

// Len returns the number of entries.
func (p *Pairs) Len() int { return len(p.keys) }
