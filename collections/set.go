package collections

import (
	"reflect"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────
//
// Values are compared by [arr.Fingerprint], so 1, "1" and true are the same
// member and mappings compare by content.

func fingerprints(m *omap.Map) map[string]struct{} {
	out := make(map[string]struct{}, m.Len())
	for _, v := range m.All() {
		out[arr.Fingerprint(v)] = struct{}{}
	}
	return out
}

// Diff returns the entries whose values are not present in items, keeping
// keys.
func (c *Collection) Diff(items any) *Collection {
	other := fingerprints(coerce(items))
	return c.Filter(func(value any, _ omap.Key) bool {
		_, found := other[arr.Fingerprint(value)]
		return !found
	})
}

// DiffKeys returns the entries whose keys are not present in items.
func (c *Collection) DiffKeys(items any) *Collection {
	other := coerce(items)
	return c.Filter(func(_ any, key omap.Key) bool { return !other.Has(key) })
}

// Intersect returns the entries whose values are present in items, keeping
// keys.
func (c *Collection) Intersect(items any) *Collection {
	other := fingerprints(coerce(items))
	return c.Filter(func(value any, _ omap.Key) bool {
		_, found := other[arr.Fingerprint(value)]
		return found
	})
}

// IntersectKeys returns the entries whose keys are present in items.
func (c *Collection) IntersectKeys(items any) *Collection {
	other := coerce(items)
	return c.Filter(func(_ any, key omap.Key) bool { return other.Has(key) })
}

// Unique returns the first entry for each distinct value, keeping keys. When
// by is given, entries are distinct by its result instead.
func (c *Collection) Unique(by ...any) *Collection {
	get := func(value any, _ omap.Key) any { return value }
	if len(by) > 0 {
		get = retriever(by[0])
	}
	seen := make(map[string]struct{})
	return c.Filter(func(value any, key omap.Key) bool {
		fp := arr.Fingerprint(get(value, key))
		if _, dup := seen[fp]; dup {
			return false
		}
		seen[fp] = struct{}{}
		return true
	})
}

// Merge returns the receiver's entries followed by those of items. String
// keys in items overwrite existing ones; integer-keyed values are appended
// and renumbered.
func (c *Collection) Merge(items any) *Collection {
	out := omap.New()
	mergeInto(out, c.items)
	mergeInto(out, coerce(items))
	return wrap(out)
}

// Union returns the receiver's entries plus the entries of items whose keys
// the receiver does not have.
func (c *Collection) Union(items any) *Collection {
	out := c.items.Copy()
	for k, v := range coerce(items).All() {
		if !out.Has(k) {
			out.Set(k, v)
		}
	}
	return wrap(out)
}

// Combine uses the receiver's values as keys for the values in items. The
// shorter side determines the length.
func (c *Collection) Combine(items any) *Collection {
	values := coerce(items).Values()
	out := omap.New()
	for i, v := range c.items.Values() {
		if i >= len(values) {
			break
		}
		out.Set(keyFor(v), values[i])
	}
	return wrap(out)
}

func mergeInto(dst, src *omap.Map) {
	for k, v := range src.All() {
		if k.IsInt() {
			dst.Append(v)
		} else {
			dst.Set(k, v)
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Reshaping
// ─────────────────────────────────────────────────────────────────────────────

// Flip swaps keys and values. Only string and integer values can become
// keys; other entries are dropped.
func (c *Collection) Flip() *Collection {
	out := omap.New()
	for k, v := range c.items.All() {
		if fk, ok := flipKey(v); ok {
			out.Set(fk, k.Value())
		}
	}
	return wrap(out)
}

func flipKey(v any) (omap.Key, bool) {
	if s, ok := v.(string); ok {
		return omap.String(s), true
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return omap.KeyOf(v)
	}
	return omap.Key{}, false
}

// Collapse merges a collection of mappings into a single collection. Values
// that are not mappings are skipped.
func (c *Collection) Collapse() *Collection {
	out := omap.New()
	for _, v := range c.items.All() {
		if m, ok := mappingOf(v); ok {
			mergeInto(out, m)
		}
	}
	return wrap(out)
}

// Flatten returns every scalar leaf, depth first, as a list.
func (c *Collection) Flatten() *Collection {
	return Of(arr.Flatten(c.ToArray())...)
}
