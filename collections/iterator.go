package collections

import (
	"iter"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// Entries returns an iterator over the collection's entries in order. Each
// call starts a fresh traversal.
//
//	for k, v := range c.Entries() {
//	    fmt.Println(k, v)
//	}
func (c *Collection) Entries() iter.Seq2[omap.Key, any] {
	return c.items.All()
}

// Iterator is an explicit cursor over a Collection. Iterators are
// independent: several may traverse the same collection at once.
//
// An Iterator walks the keys present when it was created or last rewound.
// Keys removed from the collection in the meantime are skipped; keys added
// are not visited until the next Rewind.
type Iterator struct {
	c    *Collection
	keys []omap.Key
	pos  int
}

// Iterator returns a new cursor positioned at the first entry.
func (c *Collection) Iterator() *Iterator {
	it := &Iterator{c: c}
	it.Rewind()
	return it
}

// Rewind moves the cursor back to the first entry.
func (it *Iterator) Rewind() {
	it.keys = it.c.items.Keys()
	it.pos = 0
	it.skipRemoved()
}

// Valid reports whether the cursor is on an entry.
func (it *Iterator) Valid() bool {
	it.skipRemoved()
	return it.pos < len(it.keys)
}

// Next advances the cursor.
func (it *Iterator) Next() {
	if it.pos < len(it.keys) {
		it.pos++
	}
	it.skipRemoved()
}

// Key returns the key under the cursor. ok is false past the end.
func (it *Iterator) Key() (key omap.Key, ok bool) {
	if !it.Valid() {
		return omap.Key{}, false
	}
	return it.keys[it.pos], true
}

// Value returns the raw value under the cursor, or nil past the end.
func (it *Iterator) Value() any {
	if !it.Valid() {
		return nil
	}
	v, _ := it.c.items.Get(it.keys[it.pos])
	return v
}

// Current returns the value under the cursor wrapped in a Collection, or nil
// when the value is falsy or the cursor is past the end.
func (it *Iterator) Current() *Collection {
	v := it.Value()
	if !arr.Truthy(v) {
		return nil
	}
	return New(v)
}

func (it *Iterator) skipRemoved() {
	for it.pos < len(it.keys) && !it.c.items.Has(it.keys[it.pos]) {
		it.pos++
	}
}
