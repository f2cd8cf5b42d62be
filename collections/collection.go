package collections

import (
	"fmt"
	"strings"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// Collection is a mutable, ordered key/value container with array semantics:
// keys are integers or strings, insertion order is preserved, and appending
// assigns the next free integer key.
//
// Methods fall into two groups. Mutating methods (Set, Put, Forget, Push,
// Transform, Sort, …) change the receiver and return it for chaining.
// Deriving methods (Map, Filter, GroupBy, Diff, …) leave the receiver alone
// and return a new Collection.
//
// # Creating a collection
//
//	c := collections.New(map[string]any{"a": 1})
//	c := collections.Of("x", "y", "z")
//	c := collections.Empty()
//
// # Method chaining
//
//	adults := collections.New(users).
//	    Filter(func(u any, _ omap.Key) bool { return arr.ToFloat(arr.Get(u, "age")) >= 18 }).
//	    SortBy("name").
//	    Values()
//
// # Paths
//
// Key arguments use dot notation: "user.address.city" walks nested
// mappings. Reads first try the path as a literal top-level key, so keys
// that contain dots remain reachable.
//
// A Collection is not safe for concurrent mutation.
type Collection struct {
	items *omap.Map
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates a Collection from items.
//
// Mapping-shaped input (another Collection, an [Arrayable], *omap.Map, a
// slice, array, or Go map) supplies the entries; nil yields an empty
// collection; any other value becomes a one-element list.
func New(items any) *Collection {
	return &Collection{items: coerce(items)}
}

// Make is an alias for [New].
func Make(items any) *Collection { return New(items) }

// Of creates a list Collection holding values in order.
func Of(values ...any) *Collection {
	return &Collection{items: omap.FromValues(values...)}
}

// Empty creates an empty Collection.
func Empty() *Collection {
	return &Collection{items: omap.New()}
}

func wrap(m *omap.Map) *Collection { return &Collection{items: m} }

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// All returns a shallow copy of the underlying mapping.
func (c *Collection) All() *omap.Map { return c.items.Copy() }

// ToSlice returns the values in order.
func (c *Collection) ToSlice() []any { return c.items.Values() }

// Count returns the number of top-level entries.
func (c *Collection) Count() int { return c.items.Len() }

// IsEmpty reports whether the collection contains no entries.
func (c *Collection) IsEmpty() bool { return c.items.Len() == 0 }

// IsNotEmpty reports whether the collection contains at least one entry.
func (c *Collection) IsNotEmpty() bool { return c.items.Len() > 0 }

// Keys returns a list Collection of the keys, as int or string values.
func (c *Collection) Keys() *Collection {
	out := omap.New()
	for k := range c.items.All() {
		out.Append(k.Value())
	}
	return wrap(out)
}

// Values returns a list Collection of the values, discarding keys.
func (c *Collection) Values() *Collection {
	return Of(c.items.Values()...)
}

// First returns the first value for which fn returns true, or the first value
// when fn is nil. When nothing qualifies the default is resolved; see
// [arr.DefaultOf].
func (c *Collection) First(fn func(value any, key omap.Key) bool, def ...any) any {
	for k, v := range c.items.All() {
		if fn == nil || fn(v, k) {
			return v
		}
	}
	return fallback(def)
}

// Last returns the last value for which fn returns true, or the last value
// when fn is nil. When nothing qualifies the default is resolved.
func (c *Collection) Last(fn func(value any, key omap.Key) bool, def ...any) any {
	keys := c.items.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		v, _ := c.items.Get(keys[i])
		if fn == nil || fn(v, keys[i]) {
			return v
		}
	}
	return fallback(def)
}

// FirstOrFail is like First but returns [ErrNoMatchingItems] instead of a
// default.
func (c *Collection) FirstOrFail(fn func(value any, key omap.Key) bool) (any, error) {
	for k, v := range c.items.All() {
		if fn == nil || fn(v, k) {
			return v, nil
		}
	}
	return nil, ErrNoMatchingItems
}

// LastOrFail is like Last but returns [ErrNoMatchingItems] instead of a
// default.
func (c *Collection) LastOrFail(fn func(value any, key omap.Key) bool) (any, error) {
	keys := c.items.Keys()
	for i := len(keys) - 1; i >= 0; i-- {
		v, _ := c.items.Get(keys[i])
		if fn == nil || fn(v, keys[i]) {
			return v, nil
		}
	}
	return nil, ErrNoMatchingItems
}

func fallback(def []any) any {
	if len(def) == 0 {
		return nil
	}
	return arr.DefaultOf(def[0]).Resolve()
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether the collection holds needle.
//
// With a single argument, needle is either a predicate
// (func(any, omap.Key) bool or func(any) bool) or a value compared loosely
// against each entry. With a second argument, needle is a path and the check
// is whether any entry's value at that path loosely equals value[0].
func (c *Collection) Contains(needle any, value ...any) bool {
	if len(value) > 0 {
		path := arr.ToString(needle)
		for _, v := range c.items.All() {
			if arr.LooseEqual(arr.Get(v, path), value[0]) {
				return true
			}
		}
		return false
	}
	if pred, ok := predicate(needle); ok {
		for k, v := range c.items.All() {
			if pred(v, k) {
				return true
			}
		}
		return false
	}
	for _, v := range c.items.All() {
		if arr.LooseEqual(v, needle) {
			return true
		}
	}
	return false
}

// ContainsStrict is like Contains with a value needle, but compares with
// strict equality.
func (c *Collection) ContainsStrict(needle any) bool {
	for _, v := range c.items.All() {
		if arr.StrictEqual(v, needle) {
			return true
		}
	}
	return false
}

// Search returns the key of the first entry that matches value, which is
// either a predicate or a value compared loosely (strictly when strict is
// true). ok is false when nothing matches.
func (c *Collection) Search(value any, strict ...bool) (key omap.Key, ok bool) {
	pred, isFn := predicate(value)
	useStrict := len(strict) > 0 && strict[0]
	for k, v := range c.items.All() {
		switch {
		case isFn:
			ok = pred(v, k)
		case useStrict:
			ok = arr.StrictEqual(v, value)
		default:
			ok = arr.LooseEqual(v, value)
		}
		if ok {
			return k, true
		}
	}
	return omap.Key{}, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

// Pluck returns the value at valuePath from every entry. When keyPath is
// given, the value at keyPath in each entry becomes the result key.
//
//	users.Pluck("name")          // ["Alice", "Bob"]
//	users.Pluck("name", "id")    // {1: "Alice", 2: "Bob"}
func (c *Collection) Pluck(valuePath string, keyPath ...string) *Collection {
	out := omap.New()
	for _, v := range c.items.All() {
		item := arr.Get(v, valuePath)
		if len(keyPath) == 0 {
			out.Append(item)
			continue
		}
		out.Set(keyFor(arr.Get(v, keyPath[0])), item)
	}
	return wrap(out)
}

// Lists is an alias for [Collection.Pluck].
func (c *Collection) Lists(valuePath string, keyPath ...string) *Collection {
	return c.Pluck(valuePath, keyPath...)
}

// Fetch returns the value at path from every entry, keyed like the
// receiver. Entries without the path map to nil.
func (c *Collection) Fetch(path string) *Collection {
	out := omap.New()
	for k, v := range c.items.All() {
		out.Set(k, arr.Get(v, path))
	}
	return wrap(out)
}

// Implode joins values with glue. With two arguments the first is a path
// read from each entry and the second is the glue.
func (c *Collection) Implode(value string, glue ...string) string {
	sep := value
	parts := make([]string, 0, c.items.Len())
	if len(glue) > 0 {
		sep = glue[0]
		for _, v := range c.items.All() {
			parts = append(parts, arr.ToString(arr.Get(v, value)))
		}
	} else {
		for _, v := range c.items.All() {
			parts = append(parts, arr.ToString(v))
		}
	}
	return strings.Join(parts, sep)
}

// ─────────────────────────────────────────────────────────────────────────────
// Control flow
// ─────────────────────────────────────────────────────────────────────────────

// Tap calls fn with the collection and returns the collection.
func (c *Collection) Tap(fn func(*Collection)) *Collection {
	fn(c)
	return c
}

// When calls fn when condition is true and returns the collection.
func (c *Collection) When(condition bool, fn func(*Collection) *Collection) *Collection {
	if condition {
		if out := fn(c); out != nil {
			return out
		}
	}
	return c
}

// Unless calls fn when condition is false and returns the collection.
func (c *Collection) Unless(condition bool, fn func(*Collection) *Collection) *Collection {
	return c.When(!condition, fn)
}

// Dump prints the collection as indented JSON to standard output and returns
// it.
func (c *Collection) Dump() *Collection {
	b, err := c.ToJSON(JSONPrettyPrint)
	if err != nil {
		fmt.Printf("%v\n", c.items.Values())
		return c
	}
	fmt.Println(string(b))
	return c
}

// String implements [fmt.Stringer] by encoding the collection as JSON.
func (c *Collection) String() string {
	b, err := c.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", c.items.Values())
	}
	return string(b)
}
