package omap

import (
	"iter"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Map is an insertion-ordered mapping from [Key] to arbitrary values.
//
// Integer and string keys live side by side. The map remembers the next free
// integer key so that [Map.Append] behaves like pushing onto a list, even
// after string keys or sparse integer keys have been added.
//
// The zero value is not usable; create maps with [New] or [FromValues].
type Map struct {
	om      *orderedmap.OrderedMap[Key, any]
	next    int
	hasNext bool
}

// New returns an empty Map.
func New() *Map {
	return &Map{om: orderedmap.New[Key, any]()}
}

// FromValues returns a list-shaped Map holding values under keys 0..n-1.
func FromValues(values ...any) *Map {
	m := New()
	for _, v := range values {
		m.Append(v)
	}
	return m
}

// Len returns the number of entries.
func (m *Map) Len() int {
	if m == nil || m.om == nil {
		return 0
	}
	return m.om.Len()
}

// Get returns the value stored under k.
func (m *Map) Get(k Key) (any, bool) {
	if m == nil || m.om == nil {
		return nil, false
	}
	return m.om.Get(k)
}

// Has reports whether k is present, even when its value is nil.
func (m *Map) Has(k Key) bool {
	_, ok := m.Get(k)
	return ok
}

// Set stores v under k. An existing key keeps its position.
func (m *Map) Set(k Key, v any) {
	if m.om == nil {
		m.om = orderedmap.New[Key, any]()
	}
	m.om.Set(k, v)
	if k.isInt && (!m.hasNext || k.num >= m.next) {
		m.next = k.num + 1
		m.hasNext = true
	}
}

// Append stores v under the next free integer key and returns that key.
func (m *Map) Append(v any) Key {
	k := Int(m.NextIndex())
	m.Set(k, v)
	return k
}

// NextIndex returns the key [Map.Append] would use.
func (m *Map) NextIndex() int {
	if !m.hasNext {
		return 0
	}
	return m.next
}

// Delete removes k and reports whether it was present.
// The next free integer key is not rewound.
func (m *Map) Delete(k Key) bool {
	if m == nil || m.om == nil {
		return false
	}
	_, ok := m.om.Delete(k)
	return ok
}

// Recount recomputes the next free integer key from the keys still present.
func (m *Map) Recount() {
	m.next, m.hasNext = 0, false
	for k := range m.All() {
		if k.isInt && (!m.hasNext || k.num >= m.next) {
			m.next = k.num + 1
			m.hasNext = true
		}
	}
}

// All returns an iterator over all entries in insertion order.
func (m *Map) All() iter.Seq2[Key, any] {
	return func(yield func(Key, any) bool) {
		if m == nil || m.om == nil {
			return
		}
		for pair := m.om.Oldest(); pair != nil; pair = pair.Next() {
			if !yield(pair.Key, pair.Value) {
				return
			}
		}
	}
}

// Keys returns the keys in insertion order.
func (m *Map) Keys() []Key {
	keys := make([]Key, 0, m.Len())
	for k := range m.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in insertion order.
func (m *Map) Values() []any {
	values := make([]any, 0, m.Len())
	for _, v := range m.All() {
		values = append(values, v)
	}
	return values
}

// First returns the oldest entry.
func (m *Map) First() (Key, any, bool) {
	if m.Len() == 0 {
		return Key{}, nil, false
	}
	p := m.om.Oldest()
	return p.Key, p.Value, true
}

// Last returns the newest entry.
func (m *Map) Last() (Key, any, bool) {
	if m.Len() == 0 {
		return Key{}, nil, false
	}
	p := m.om.Newest()
	return p.Key, p.Value, true
}

// Copy returns a shallow copy: entries are copied, values are not cloned.
func (m *Map) Copy() *Map {
	out := New()
	for k, v := range m.All() {
		out.om.Set(k, v)
	}
	out.next, out.hasNext = m.next, m.hasNext
	return out
}

// IsList reports whether the keys are exactly 0..Len()-1 in order.
func (m *Map) IsList() bool {
	i := 0
	for k := range m.All() {
		if !k.isInt || k.num != i {
			return false
		}
		i++
	}
	return true
}

// Equal reports whether m and other hold the same keys in the same order and
// eq holds for every pair of values.
func (m *Map) Equal(other *Map, eq func(a, b any) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m.Len() == 0 {
		return true
	}
	a, b := m.om.Oldest(), other.om.Oldest()
	for ; a != nil && b != nil; a, b = a.Next(), b.Next() {
		if a.Key != b.Key || !eq(a.Value, b.Value) {
			return false
		}
	}
	return true
}
