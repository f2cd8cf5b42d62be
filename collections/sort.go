package collections

import (
	"slices"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

type entry struct {
	key   omap.Key
	value any
}

func (c *Collection) entries() []entry {
	out := make([]entry, 0, c.items.Len())
	for k, v := range c.items.All() {
		out = append(out, entry{k, v})
	}
	return out
}

func fromEntries(entries []entry) *omap.Map {
	m := omap.New()
	for _, e := range entries {
		m.Set(e.key, e.value)
	}
	return m
}

// ─────────────────────────────────────────────────────────────────────────────
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

// Sort orders the entries in place by cmp applied to their values, keeping
// keys, and returns the receiver. A nil cmp uses regular comparison. The sort
// is stable.
func (c *Collection) Sort(cmp func(a, b any) int) *Collection {
	if cmp == nil {
		cmp = func(a, b any) int { return arr.Compare(a, b, arr.SortRegular) }
	}
	entries := c.entries()
	slices.SortStableFunc(entries, func(a, b entry) int { return cmp(a.value, b.value) })
	c.items = fromEntries(entries)
	return c
}

// SortBy orders the entries in place by the result of by (a path or
// callback), keeping keys, and returns the receiver. flags selects the
// comparison; the default is [arr.SortRegular]. Entries with equal sort
// values keep their relative order.
//
//	users.SortBy("name", arr.SortString|arr.SortFlagCase)
func (c *Collection) SortBy(by any, flags ...arr.SortFlag) *Collection {
	return c.sortBy(by, flags, false)
}

// SortByDesc is like SortBy in descending order.
func (c *Collection) SortByDesc(by any, flags ...arr.SortFlag) *Collection {
	return c.sortBy(by, flags, true)
}

func (c *Collection) sortBy(by any, flags []arr.SortFlag, desc bool) *Collection {
	get := retriever(by)
	flag := arr.SortRegular
	for _, f := range flags {
		flag |= f
	}
	type keyed struct {
		entry
		sortValue any
	}
	rows := make([]keyed, 0, c.items.Len())
	for k, v := range c.items.All() {
		rows = append(rows, keyed{entry{k, v}, get(v, k)})
	}
	slices.SortStableFunc(rows, func(a, b keyed) int {
		n := arr.Compare(a.sortValue, b.sortValue, flag)
		if desc {
			return -n
		}
		return n
	})
	m := omap.New()
	for _, r := range rows {
		m.Set(r.key, r.value)
	}
	c.items = m
	return c
}

// SortKeys orders the entries in place by key and returns the receiver.
func (c *Collection) SortKeys(desc ...bool) *Collection {
	reverse := len(desc) > 0 && desc[0]
	entries := c.entries()
	slices.SortStableFunc(entries, func(a, b entry) int {
		n := arr.Compare(a.key.Value(), b.key.Value(), arr.SortRegular)
		if reverse {
			return -n
		}
		return n
	})
	c.items = fromEntries(entries)
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Reverse returns the entries in reverse order. String keys are kept and
// integer keys are renumbered.
func (c *Collection) Reverse() *Collection {
	return wrap(rebuild(arr.Reverse(c.entries()), false))
}

// Shuffle randomly reorders the values in place, discarding keys, and
// returns the receiver.
func (c *Collection) Shuffle() *Collection {
	c.items = omap.FromValues(arr.Shuffle(c.items.Values())...)
	return c
}

// Random returns n entries picked at random, keeping their keys and relative
// order. n defaults to 1 and is clamped to the collection size, so the result
// is always a Collection, possibly empty.
func (c *Collection) Random(n ...int) *Collection {
	count := 1
	if len(n) > 0 {
		count = n[0]
	}
	return wrap(fromEntries(arr.Sample(c.entries(), count)))
}

// rebuild assembles entries into a new mapping. String keys are always
// kept; integer keys are kept only when preserveKeys is true and are
// otherwise renumbered from 0.
func rebuild(entries []entry, preserveKeys bool) *omap.Map {
	m := omap.New()
	for _, e := range entries {
		if preserveKeys || !e.key.IsInt() {
			m.Set(e.key, e.value)
		} else {
			m.Append(e.value)
		}
	}
	return m
}
