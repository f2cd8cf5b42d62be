package collections

import (
	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// bounds resolves an offset and optional length against n entries the way
// array slicing does: a negative offset counts from the end, a negative
// length stops that many entries before the end.
func bounds(n, offset int, length []int) (start, end int) {
	if offset < 0 {
		offset = max(0, n+offset)
	}
	start = min(offset, n)
	end = n
	if len(length) > 0 {
		l := length[0]
		if l < 0 {
			end = n + l
		} else {
			end = start + l
		}
	}
	end = max(start, min(end, n))
	return start, end
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

// Slice returns the entries from offset on, limited to length[0] entries
// when given. Integer keys are renumbered; see [Collection.SlicePreserveKeys].
func (c *Collection) Slice(offset int, length ...int) *Collection {
	return c.slice(offset, length, false)
}

// SlicePreserveKeys is like Slice but keeps integer keys.
func (c *Collection) SlicePreserveKeys(offset int, length ...int) *Collection {
	return c.slice(offset, length, true)
}

func (c *Collection) slice(offset int, length []int, preserveKeys bool) *Collection {
	entries := c.entries()
	start, end := bounds(len(entries), offset, length)
	return wrap(rebuild(entries[start:end], preserveKeys))
}

// Take returns the first limit entries, or the last -limit entries when
// limit is negative.
func (c *Collection) Take(limit int) *Collection {
	if limit < 0 {
		return c.Slice(limit, -limit)
	}
	return c.Slice(0, limit)
}

// Skip returns everything after the first n entries.
func (c *Collection) Skip(n int) *Collection { return c.Slice(n) }

// ForPage returns the given 1-based page of perPage entries.
func (c *Collection) ForPage(page, perPage int) *Collection {
	return c.Slice(max(0, (page-1)*perPage), perPage)
}

// Chunk splits the entries into consecutive collections of size entries.
// Keys inside each chunk are renumbered unless preserveKeys is true. A size
// below 1 yields an empty collection.
func (c *Collection) Chunk(size int, preserveKeys bool) *Collection {
	out := omap.New()
	for _, group := range arr.Chunk(c.entries(), size) {
		chunk := omap.New()
		for _, e := range group {
			if preserveKeys {
				chunk.Set(e.key, e.value)
			} else {
				chunk.Append(e.value)
			}
		}
		out.Append(wrap(chunk))
	}
	return wrap(out)
}

// Splice removes the slice described by offset and length from the receiver,
// inserting replacement values in its place, and returns the removed entries
// as a list. Integer keys of the receiver are renumbered.
func (c *Collection) Splice(offset, length int, replacement ...any) *Collection {
	entries := c.entries()
	start, end := bounds(len(entries), offset, []int{length})

	removed := omap.New()
	for _, e := range entries[start:end] {
		removed.Append(e.value)
	}

	kept := make([]entry, 0, len(entries)-(end-start)+len(replacement))
	kept = append(kept, entries[:start]...)
	for _, v := range replacement {
		kept = append(kept, entry{omap.Int(0), v})
	}
	kept = append(kept, entries[end:]...)
	c.items = rebuild(kept, false)
	return wrap(removed)
}

// ─────────────────────────────────────────────────────────────────────────────
// Stack and queue operations
// ─────────────────────────────────────────────────────────────────────────────

// Push appends values under the next free integer keys and returns the
// receiver.
func (c *Collection) Push(values ...any) *Collection {
	for _, v := range values {
		c.items.Append(v)
	}
	return c
}

// Add is an alias for [Collection.Push] with a single value.
func (c *Collection) Add(value any) *Collection { return c.Push(value) }

// Prepend inserts values at the front, renumbering integer keys, and returns
// the receiver.
func (c *Collection) Prepend(values ...any) *Collection {
	entries := make([]entry, 0, len(values)+c.items.Len())
	for _, v := range values {
		entries = append(entries, entry{omap.Int(0), v})
	}
	entries = append(entries, c.entries()...)
	c.items = rebuild(entries, false)
	return c
}

// Pop removes and returns the last value, or nil when empty. Unlike the other
// mutating methods it returns the removed value rather than the receiver.
func (c *Collection) Pop() any {
	k, v, ok := c.items.Last()
	if !ok {
		return nil
	}
	c.items.Delete(k)
	c.items.Recount()
	return v
}

// Shift removes and returns the first value, or nil when empty. Remaining
// integer keys are renumbered from 0. Like [Collection.Pop] it returns the
// removed value rather than the receiver.
func (c *Collection) Shift() any {
	entries := c.entries()
	if len(entries) == 0 {
		return nil
	}
	c.items = rebuild(entries[1:], false)
	return entries[0].value
}
