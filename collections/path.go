package collections

import (
	"github.com/spf13/cast"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation access
// ─────────────────────────────────────────────────────────────────────────────

// Lookup returns the value at path and whether it exists. The empty path
// resolves to a copy of the whole mapping.
func (c *Collection) Lookup(path string) (any, bool) {
	if path == "" {
		return c.items.Copy(), true
	}
	if v, ok := c.items.Get(omap.String(path)); ok {
		return v, true
	}
	return arr.Lookup(c.items, path)
}

// Get returns the value at path, or the resolved default when the path is
// missing. A default may be a plain value, an [arr.Default], or a
// func() any that only runs on a miss.
//
//	c.Get("user.name", "anonymous")
//	c.Get("user.id", arr.Lazy(nextID))
func (c *Collection) Get(path string, def ...any) any {
	if v, ok := c.Lookup(path); ok {
		return v
	}
	return fallback(def)
}

// Has reports whether path exists. It is false for the empty path and for an
// empty collection.
func (c *Collection) Has(path string) bool {
	if path == "" || c.items.Len() == 0 {
		return false
	}
	if c.items.Has(omap.String(path)) {
		return true
	}
	return arr.Has(c.items, path)
}

// HasAll reports whether every path exists.
func (c *Collection) HasAll(paths ...string) bool {
	if len(paths) == 0 {
		return false
	}
	for _, p := range paths {
		if !c.Has(p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one path exists.
func (c *Collection) HasAny(paths ...string) bool {
	for _, p := range paths {
		if c.Has(p) {
			return true
		}
	}
	return false
}

// Set writes value at path, creating intermediate mappings as needed and
// replacing scalars found along the way. Nested mappings on the path are
// copied before they are written, so values shared with other collections
// are never modified.
//
// The empty path replaces the whole mapping with value (coerced as by [New]).
//
// Set mutates the receiver and returns a new Collection holding a snapshot of
// the result.
func (c *Collection) Set(path string, value any) *Collection {
	c.set(path, value)
	return wrap(c.items.Copy())
}

// Put is like Set but returns the receiver.
func (c *Collection) Put(path string, value any) *Collection {
	c.set(path, value)
	return c
}

func (c *Collection) set(path string, value any) {
	if path == "" {
		c.items = coerce(value)
		return
	}
	arr.Set(c.items, path, value)
}

// Forget removes every path, ignoring those that do not exist, and returns
// the receiver. A path naming a literal top-level key is removed directly.
func (c *Collection) Forget(paths ...string) *Collection {
	for _, p := range paths {
		if p == "" {
			continue
		}
		if c.items.Delete(omap.String(p)) {
			continue
		}
		arr.Forget(c.items, p)
	}
	return c
}

// Rm is an alias for [Collection.Forget].
func (c *Collection) Rm(paths ...string) *Collection { return c.Forget(paths...) }

// Pull removes the value at path and returns it wrapped in a Collection.
// A missing path yields the resolved default.
func (c *Collection) Pull(path string, def ...any) *Collection {
	v := c.Get(path, def...)
	c.Forget(path)
	return New(v)
}

// Dot flattens nested mappings into a single level keyed by dotted paths.
func (c *Collection) Dot() *Collection { return wrap(arr.Dot(c.ToArray())) }

// Undot expands dotted keys into nested mappings.
func (c *Collection) Undot() *Collection { return wrap(arr.Undot(c.items)) }

// ─────────────────────────────────────────────────────────────────────────────
// Typed getters
// ─────────────────────────────────────────────────────────────────────────────

// GetString returns the value at path converted to a string, or "" when it is
// missing or not convertible.
func (c *Collection) GetString(path string) string {
	s, err := cast.ToStringE(c.Get(path, ""))
	if err != nil {
		return ""
	}
	return s
}

// GetStr is an alias for [Collection.GetString].
func (c *Collection) GetStr(path string) string { return c.GetString(path) }

// GetInteger returns the value at path converted to an int, or 0.
func (c *Collection) GetInteger(path string) int {
	return cast.ToInt(c.Get(path, 0))
}

// GetInt is an alias for [Collection.GetInteger].
func (c *Collection) GetInt(path string) int { return c.GetInteger(path) }

// GetBoolean returns the value at path converted to a bool, or false.
func (c *Collection) GetBoolean(path string) bool {
	return cast.ToBool(c.Get(path, false))
}

// GetBool is an alias for [Collection.GetBoolean].
func (c *Collection) GetBool(path string) bool { return c.GetBoolean(path) }

// GetFloat returns the value at path converted to a float64, or 0.
func (c *Collection) GetFloat(path string) float64 {
	return cast.ToFloat64(c.Get(path, 0.0))
}

// GetArray returns the value at path wrapped in a Collection. A missing path
// yields an empty collection.
func (c *Collection) GetArray(path string) *Collection {
	v, ok := c.Lookup(path)
	if !ok {
		return Empty()
	}
	return New(v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Path equality
// ─────────────────────────────────────────────────────────────────────────────

// Equals reports whether the value at path strictly equals value.
func (c *Collection) Equals(path string, value any) bool {
	return arr.StrictEqual(c.Get(path), value)
}

// EqualsLoose reports whether the value at path loosely equals value.
func (c *Collection) EqualsLoose(path string, value any) bool {
	return arr.LooseEqual(c.Get(path), value)
}

// NotEquals is the negation of [Collection.Equals].
func (c *Collection) NotEquals(path string, value any) bool { return !c.Equals(path, value) }

// NotEqualsLoose is the negation of [Collection.EqualsLoose].
func (c *Collection) NotEqualsLoose(path string, value any) bool {
	return !c.EqualsLoose(path, value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Offset access
// ─────────────────────────────────────────────────────────────────────────────

// OffsetExists implements [arr.Indexable]; it is [Collection.Has].
func (c *Collection) OffsetExists(key string) bool { return c.Has(key) }

// OffsetGet implements [arr.Indexable]; it is [Collection.Get].
func (c *Collection) OffsetGet(key string) any { return c.Get(key) }

// OffsetSet writes value at key. The empty key appends value.
func (c *Collection) OffsetSet(key string, value any) {
	if key == "" {
		c.items.Append(value)
		return
	}
	c.set(key, value)
}

// OffsetUnset removes key.
func (c *Collection) OffsetUnset(key string) { c.Forget(key) }
