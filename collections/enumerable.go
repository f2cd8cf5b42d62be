package collections

import (
	"iter"

	"github.com/hasbyte1/go-collection/omap"
)

// Enumerable is the interface satisfied by [Collection].
//
// Accept Enumerable in your own functions and interfaces so that consumers
// can substitute alternative implementations without depending on the
// concrete *Collection type.
type Enumerable interface {
	Arrayable

	// All returns a copy of the underlying mapping.
	All() *omap.Map

	// Count returns the number of top-level entries.
	Count() int

	// Each calls fn(value, key) for every entry.
	Each(fn func(value any, key omap.Key)) *Collection

	// Entries returns an iterator over the entries in order.
	Entries() iter.Seq2[omap.Key, any]

	// Filter returns the entries for which fn returns true.
	Filter(fn func(value any, key omap.Key) bool) *Collection

	// Get returns the value at a dotted path, or the resolved default.
	Get(path string, def ...any) any

	// Has reports whether a dotted path exists.
	Has(path string) bool

	// IsEmpty reports whether the collection contains no entries.
	IsEmpty() bool

	// IsNotEmpty reports whether the collection contains at least one entry.
	IsNotEmpty() bool

	// Keys returns the keys as a list collection.
	Keys() *Collection

	// ToSlice returns the values in order.
	ToSlice() []any
}

var _ Enumerable = (*Collection)(nil)
