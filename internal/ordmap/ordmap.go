// Package ordmap provides a string-keyed map that remembers insertion order.
//
// Declaration order in a Dragonfly source file is significant all the way to
// the emitted output, so every name-to-value collection in the compiler is
// backed by this container instead of a plain map.
package ordmap

// Entry is a single key/value pair.
type Entry[V any] struct {
	Key   string
	Value V
}

// Map associates string keys with values of type V. Keys are unique and
// iteration visits entries in the order of their first insertion.
type Map[V any] struct {
	index map[string]int
	order []Entry[V]
}

// New returns an empty map.
func New[V any]() *Map[V] {
	return &Map[V]{index: map[string]int{}}
}

// FromPairs builds a map from a slice of pairs. When a key occurs more than
// once, the first occurrence wins.
func FromPairs[V any](pairs []Entry[V]) *Map[V] {
	m := New[V]()

	for _, pair := range pairs {
		if !m.ContainsKey(pair.Key) {
			m.Insert(pair.Key, pair.Value)
		}
	}

	return m
}

// Insert associates value with key. When the key already exists, the stored
// value is replaced and the previous value is returned with ok set to true;
// the key keeps its original position.
func (m *Map[V]) Insert(key string, value V) (previous V, ok bool) {
	if i, exists := m.index[key]; exists {
		previous = m.order[i].Value
		m.order[i].Value = value

		return previous, true
	}

	m.index[key] = len(m.order)
	m.order = append(m.order, Entry[V]{Key: key, Value: value})

	return previous, false
}

// Get returns the value stored under key.
func (m *Map[V]) Get(key string) (V, bool) {
	if i, exists := m.index[key]; exists {
		return m.order[i].Value, true
	}

	var zero V

	return zero, false
}

// Ptr returns a pointer to the value stored under key, allowing in-place
// mutation, or nil when the key is absent.
func (m *Map[V]) Ptr(key string) *V {
	if i, exists := m.index[key]; exists {
		return &m.order[i].Value
	}

	return nil
}

// ContainsKey reports whether key is present.
func (m *Map[V]) ContainsKey(key string) bool {
	_, exists := m.index[key]

	return exists
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	return len(m.order)
}

// IsEmpty reports whether the map has no entries.
func (m *Map[V]) IsEmpty() bool {
	return len(m.order) == 0
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	keys := make([]string, len(m.order))

	for i, entry := range m.order {
		keys[i] = entry.Key
	}

	return keys
}

// Values returns the values in insertion order.
func (m *Map[V]) Values() []V {
	values := make([]V, len(m.order))

	for i, entry := range m.order {
		values[i] = entry.Value
	}

	return values
}

// Entries returns the key/value pairs in insertion order. The returned slice
// is a copy; mutating it does not affect the map.
func (m *Map[V]) Entries() []Entry[V] {
	entries := make([]Entry[V], len(m.order))
	copy(entries, m.order)

	return entries
}
