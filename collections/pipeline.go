package collections

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Callback arguments
// ─────────────────────────────────────────────────────────────────────────────

// retriever turns a "by" argument into a value extractor. A string is a path
// read from each entry; functions are called directly. Any other argument
// panics with an error wrapping [ErrInvalidCallback].
func retriever(by any) func(value any, key omap.Key) any {
	switch f := by.(type) {
	case string:
		return func(value any, _ omap.Key) any { return arr.Get(value, f) }
	case func(any, omap.Key) any:
		return f
	case func(any) any:
		return func(value any, _ omap.Key) any { return f(value) }
	case func(any) string:
		return func(value any, _ omap.Key) any { return f(value) }
	case func(any) int:
		return func(value any, _ omap.Key) any { return f(value) }
	case func(any) float64:
		return func(value any, _ omap.Key) any { return f(value) }
	}
	panic(fmt.Errorf("%w: %T", ErrInvalidCallback, by))
}

// predicate reports whether v is a supported boolean callback.
func predicate(v any) (func(value any, key omap.Key) bool, bool) {
	switch f := v.(type) {
	case func(any, omap.Key) bool:
		return f, true
	case func(any) bool:
		return func(value any, _ omap.Key) bool { return f(value) }, true
	}
	return nil, false
}

// keyFor converts a derived value into a result key. Values that are not
// valid keys use their string form.
func keyFor(v any) omap.Key {
	if k, ok := omap.KeyOf(v); ok {
		return k
	}
	return omap.String(arr.ToString(v))
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn for every entry in order and returns the collection.
func (c *Collection) Each(fn func(value any, key omap.Key)) *Collection {
	for k, v := range c.items.All() {
		fn(v, k)
	}
	return c
}

// EachUntil calls fn for every entry until fn returns false.
func (c *Collection) EachUntil(fn func(value any, key omap.Key) bool) *Collection {
	for k, v := range c.items.All() {
		if !fn(v, k) {
			break
		}
	}
	return c
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

// Map returns a list of fn(value, key) for every entry. Keys are discarded;
// use [Collection.Transform] to keep them.
func (c *Collection) Map(fn func(value any, key omap.Key) any) *Collection {
	out := omap.New()
	for k, v := range c.items.All() {
		out.Append(fn(v, k))
	}
	return wrap(out)
}

// MapWithKeys returns a collection built from the key/value pairs fn
// produces. Later pairs overwrite earlier ones with the same key.
func (c *Collection) MapWithKeys(fn func(value any, key omap.Key) (any, any)) *Collection {
	out := omap.New()
	for k, v := range c.items.All() {
		nk, nv := fn(v, k)
		out.Set(keyFor(nk), nv)
	}
	return wrap(out)
}

// Transform replaces every value with fn(value, key) in place, keeping keys,
// and returns the receiver.
func (c *Collection) Transform(fn func(value any, key omap.Key) any) *Collection {
	for _, k := range c.items.Keys() {
		v, _ := c.items.Get(k)
		c.items.Set(k, fn(v, k))
	}
	return c
}

// Filter returns the entries for which fn returns true, keeping their keys.
// A nil fn keeps truthy values.
func (c *Collection) Filter(fn func(value any, key omap.Key) bool) *Collection {
	if fn == nil {
		fn = func(value any, _ omap.Key) bool { return arr.Truthy(value) }
	}
	out := omap.New()
	for k, v := range c.items.All() {
		if fn(v, k) {
			out.Set(k, v)
		}
	}
	return wrap(out)
}

// Reject is the inverse of Filter. match is either a predicate or a value;
// entries loosely equal to the value are removed.
func (c *Collection) Reject(match any) *Collection {
	pred, ok := predicate(match)
	if !ok {
		pred = func(value any, _ omap.Key) bool { return arr.LooseEqual(value, match) }
	}
	return c.Filter(func(value any, key omap.Key) bool { return !pred(value, key) })
}

// Where keeps entries whose value at path strictly equals value.
func (c *Collection) Where(path string, value any) *Collection {
	return c.Filter(func(item any, _ omap.Key) bool {
		return arr.StrictEqual(arr.Get(item, path), value)
	})
}

// WhereLoose keeps entries whose value at path loosely equals value.
func (c *Collection) WhereLoose(path string, value any) *Collection {
	return c.Filter(func(item any, _ omap.Key) bool {
		return arr.LooseEqual(arr.Get(item, path), value)
	})
}

// WhereIn keeps entries whose value at path loosely equals one of values.
func (c *Collection) WhereIn(path string, values ...any) *Collection {
	return c.Filter(func(item any, _ omap.Key) bool {
		v := arr.Get(item, path)
		for _, candidate := range values {
			if arr.LooseEqual(v, candidate) {
				return true
			}
		}
		return false
	})
}

// Reduce folds the values into a single result, starting from initial, and
// returns it wrapped in a Collection.
func (c *Collection) Reduce(fn func(carry, value any) any, initial any) *Collection {
	carry := initial
	for _, v := range c.items.All() {
		carry = fn(carry, v)
	}
	return New(carry)
}

// GroupBy buckets values by the result of by, a path or callback. Buckets
// appear in the order their first member appears; members keep their order.
//
//	people.GroupBy("city")  // {"London": [...], "Paris": [...]}
func (c *Collection) GroupBy(by any) *Collection {
	get := retriever(by)
	out := omap.New()
	for k, v := range c.items.All() {
		gk := keyFor(get(v, k))
		bucket, ok := out.Get(gk)
		if !ok {
			bucket = omap.New()
			out.Set(gk, bucket)
		}
		bucket.(*omap.Map).Append(v)
	}
	return wrap(out)
}

// KeyBy re-keys values by the result of by. When two values share a key the
// later one wins.
func (c *Collection) KeyBy(by any) *Collection {
	get := retriever(by)
	out := omap.New()
	for k, v := range c.items.All() {
		out.Set(keyFor(get(v, k)), v)
	}
	return wrap(out)
}

// CountBy counts values per result of by. With no argument values are
// counted by themselves.
func (c *Collection) CountBy(by ...any) *Collection {
	get := func(value any, _ omap.Key) any { return value }
	if len(by) > 0 {
		get = retriever(by[0])
	}
	out := omap.New()
	for k, v := range c.items.All() {
		gk := keyFor(get(v, k))
		n, _ := out.Get(gk)
		count, _ := n.(int)
		out.Set(gk, count+1)
	}
	return wrap(out)
}

// Partition splits the entries into those matching fn and the rest. Keys are
// kept on both sides.
func (c *Collection) Partition(fn func(value any, key omap.Key) bool) (*Collection, *Collection) {
	pass, fail := omap.New(), omap.New()
	for k, v := range c.items.All() {
		if fn(v, k) {
			pass.Set(k, v)
		} else {
			fail.Set(k, v)
		}
	}
	return wrap(pass), wrap(fail)
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregates
// ─────────────────────────────────────────────────────────────────────────────

// Sum adds up the values, or the results of by when given. Non-numeric values
// count as 0.
func (c *Collection) Sum(by ...any) float64 {
	get := func(value any, _ omap.Key) any { return value }
	if len(by) > 0 {
		get = retriever(by[0])
	}
	var total float64
	for k, v := range c.items.All() {
		total += arr.ToFloat(get(v, k))
	}
	return total
}

// Avg returns the mean of the values (or results of by), or 0 when empty.
func (c *Collection) Avg(by ...any) float64 {
	if c.items.Len() == 0 {
		return 0
	}
	return c.Sum(by...) / float64(c.items.Len())
}

// Max returns the largest value (or result of by) under regular comparison,
// or nil when empty.
func (c *Collection) Max(by ...any) any {
	return c.extreme(1, by)
}

// Min returns the smallest value (or result of by), or nil when empty.
func (c *Collection) Min(by ...any) any {
	return c.extreme(-1, by)
}

func (c *Collection) extreme(sign int, by []any) any {
	get := func(value any, _ omap.Key) any { return value }
	if len(by) > 0 {
		get = retriever(by[0])
	}
	var best any
	first := true
	for k, v := range c.items.All() {
		d := get(v, k)
		if first || arr.Compare(d, best, arr.SortRegular)*sign > 0 {
			best, first = d, false
		}
	}
	return best
}

// ─────────────────────────────────────────────────────────────────────────────
// Cleaning
// ─────────────────────────────────────────────────────────────────────────────

// Clean removes entries in place, descending into nested mappings, and
// returns the receiver. Nested mappings are cleaned but always kept.
//
// With an empty substr every falsy scalar is removed. Otherwise scalars whose
// string form contains substr are removed, matching case-insensitively unless
// caseSensitive is true.
func (c *Collection) Clean(substr string, caseSensitive bool) *Collection {
	c.items = clean(c.items, substr, caseSensitive)
	return c
}

func clean(m *omap.Map, substr string, caseSensitive bool) *omap.Map {
	out := omap.New()
	needle := substr
	if !caseSensitive {
		needle = strings.ToLower(substr)
	}
	for k, v := range m.All() {
		if nested, ok := mappingOf(v); ok && !isOpaque(v) {
			out.Set(k, clean(nested, substr, caseSensitive))
			continue
		}
		if substr == "" {
			if !arr.Truthy(v) {
				continue
			}
		} else {
			s := arr.ToString(v)
			if !caseSensitive {
				s = strings.ToLower(s)
			}
			if strings.Contains(s, needle) {
				continue
			}
		}
		out.Set(k, v)
	}
	return out
}

// isOpaque reports whether v is a byte slice, which is treated as a scalar.
func isOpaque(v any) bool {
	_, ok := v.([]byte)
	return ok
}
