package arr

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-collection/omap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Dot-notation helpers
//
// These functions read, write, and test values in nested structures using
// dot-separated key paths. Reads walk any supported node shape; writes and
// deletes operate on *omap.Map trees, copying each nested mapping before it
// is modified so that maps shared with other trees are never changed.
//
//	root := omap.New()
//	Set(root, "user.address.city", "London")
//	Get(root, "user.address.city")  → "London"
//	Has(root, "user.name")          → false
//	Forget(root, "user.address")
// ─────────────────────────────────────────────────────────────────────────────

// Indexable is implemented by containers that resolve their own keys, such as
// collections nested inside other structures.
type Indexable interface {
	OffsetExists(key string) bool
	OffsetGet(key string) any
}

// Segments splits a dotted path. An empty path has no segments.
func Segments(path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, ".")
}

// Lookup walks target along path and returns the value found there.
// ok is false when any segment cannot be resolved. An empty path resolves to
// target itself.
//
// At each step the current node may be an *omap.Map, an [Indexable], a slice
// or array (segment is an index), a map with string-like keys, or a struct
// (segment is a field name or its json tag). Anything else ends the walk.
func Lookup(target any, path string) (any, bool) {
	for _, seg := range Segments(path) {
		next, ok := child(target, seg)
		if !ok {
			return nil, false
		}
		target = next
	}
	return target, true
}

// Get retrieves the value at path, falling back to def when the path cannot
// be resolved. def is resolved with [DefaultOf], so a [Lazy] default or a
// func() any is only called on a miss.
//
//	Get(m, "user.address.city")              // "London"
//	Get(m, "user.missing", "default")        // "default"
//	Get(m, "user.missing", Lazy(expensive))  // expensive()
func Get(target any, path string, def ...any) any {
	if v, ok := Lookup(target, path); ok {
		return v
	}
	return resolve(def)
}

// Has reports whether path resolves inside target. An empty path is never
// present.
func Has(target any, path string) bool {
	if path == "" {
		return false
	}
	_, ok := Lookup(target, path)
	return ok
}

// HasAll reports whether every path resolves inside target.
func HasAll(target any, paths ...string) bool {
	for _, p := range paths {
		if !Has(target, p) {
			return false
		}
	}
	return true
}

// HasAny reports whether at least one path resolves inside target.
func HasAny(target any, paths ...string) bool {
	for _, p := range paths {
		if Has(target, p) {
			return true
		}
	}
	return false
}

// Set writes value into m at path, creating intermediate mappings as needed.
// An intermediate node that is not a mapping is replaced by an empty one,
// discarding its previous value. An empty path leaves m untouched.
func Set(m *omap.Map, path string, value any) {
	segments := Segments(path)
	if len(segments) == 0 {
		return
	}
	current := m
	for _, seg := range segments[:len(segments)-1] {
		k := omap.String(seg)
		existing, _ := current.Get(k)
		nested, ok := Mapping(existing)
		if !ok {
			nested = omap.New()
		}
		current.Set(k, nested)
		current = nested
	}
	current.Set(omap.String(segments[len(segments)-1]), value)
}

// Forget removes every path from m. Paths whose intermediate segments are
// missing, or are not mappings, are ignored.
func Forget(m *omap.Map, paths ...string) {
	for _, p := range paths {
		if segments := Segments(p); len(segments) > 0 {
			forget(m, segments)
		}
	}
}

func forget(m *omap.Map, segments []string) bool {
	k := omap.String(segments[0])
	if len(segments) == 1 {
		return m.Delete(k)
	}
	existing, ok := m.Get(k)
	if !ok {
		return false
	}
	nested, ok := Mapping(existing)
	if !ok || !forget(nested, segments[1:]) {
		return false
	}
	m.Set(k, nested)
	return true
}

// Dot flattens nested mappings into a single-level map with dotted keys.
// Empty nested mappings are kept as values.
//
//	Dot({"a": {"b": 1}}) → {"a.b": 1}
func Dot(m *omap.Map) *omap.Map {
	out := omap.New()
	dotFlatten("", m, out)
	return out
}

func dotFlatten(prefix string, m *omap.Map, out *omap.Map) {
	for k, v := range m.All() {
		key := k.String()
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := v.(*omap.Map); ok && nested.Len() > 0 {
			dotFlatten(key, nested, out)
			continue
		}
		out.Set(omap.String(key), v)
	}
}

// Undot expands a flat map of dotted keys into nested mappings.
//
//	Undot({"a.b": 1, "a.c": 2}) → {"a": {"b": 1, "c": 2}}
func Undot(m *omap.Map) *omap.Map {
	out := omap.New()
	for k, v := range m.All() {
		Set(out, k.String(), v)
	}
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Node navigation
// ─────────────────────────────────────────────────────────────────────────────

func child(node any, seg string) (any, bool) {
	switch n := node.(type) {
	case *omap.Map:
		if n == nil {
			return nil, false
		}
		return n.Get(omap.String(seg))
	case Indexable:
		if !n.OffsetExists(seg) {
			return nil, false
		}
		return n.OffsetGet(seg), true
	case map[string]any:
		v, ok := n[seg]
		return v, ok
	case []any:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= len(n) {
			return nil, false
		}
		return n[i], true
	case nil:
		return nil, false
	}
	return reflectChild(reflect.ValueOf(node), seg)
}

func reflectChild(v reflect.Value, seg string) (any, bool) {
	for v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		if v.IsNil() {
			return nil, false
		}
		v = v.Elem()
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		i, err := strconv.Atoi(seg)
		if err != nil || i < 0 || i >= v.Len() {
			return nil, false
		}
		return v.Index(i).Interface(), true
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return nil, false
		}
		e := v.MapIndex(reflect.ValueOf(seg).Convert(v.Type().Key()))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	case reflect.Struct:
		f, ok := structField(v, seg)
		if !ok {
			return nil, false
		}
		return f.Interface(), true
	}
	return nil, false
}

func structField(v reflect.Value, name string) (reflect.Value, bool) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if sf.Name == name || (tag != "" && tag != "-" && tag == name) {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// Arrayable is implemented by containers that can export their entries as an
// ordered mapping.
type Arrayable interface {
	ToArray() *omap.Map
}

// Mapping returns a fresh *omap.Map holding the entries of v when v is
// mapping-shaped: an *omap.Map (copied), an [Arrayable], a slice or array, or
// a Go map whose keys convert to [omap.Key]. Go maps are read in sorted key
// order.
func Mapping(v any) (*omap.Map, bool) {
	switch t := v.(type) {
	case *omap.Map:
		if t == nil {
			return nil, false
		}
		return t.Copy(), true
	case Arrayable:
		if rv := reflect.ValueOf(t); rv.Kind() == reflect.Pointer && rv.IsNil() {
			return nil, false
		}
		m := t.ToArray()
		return m, m != nil
	case []any:
		return omap.FromValues(t...), true
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		keys = Sort(keys, func(a, b string) bool { return a < b })
		m := omap.New()
		for _, k := range keys {
			m.Set(omap.String(k), t[k])
		}
		return m, true
	case nil:
		return nil, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return omap.New(), true
		}
		m := omap.New()
		for i := 0; i < rv.Len(); i++ {
			m.Append(rv.Index(i).Interface())
		}
		return m, true
	case reflect.Map:
		type entry struct {
			key omap.Key
			val any
		}
		entries := make([]entry, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			k, ok := omap.KeyOf(iter.Key().Interface())
			if !ok {
				return nil, false
			}
			entries = append(entries, entry{k, iter.Value().Interface()})
		}
		entries = Sort(entries, func(a, b entry) bool { return Compare(a.key.Value(), b.key.Value(), SortRegular) < 0 })
		m := omap.New()
		for _, e := range entries {
			m.Set(e.key, e.val)
		}
		return m, true
	}
	return nil, false
}
