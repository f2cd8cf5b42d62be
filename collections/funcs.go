package collections

import "github.com/hasbyte1/go-collection/omap"

// This file contains package-level generic functions that move values out of
// a Collection into typed Go values.
//
// Go generics do not allow methods to introduce their own type parameters, so
// these operations must be stand-alone functions. They compose with method
// chaining:
//
//	names := collections.MapInto(
//	    users.Where("active", true),
//	    func(u any, _ omap.Key) string { return arr.ToString(arr.Get(u, "name")) },
//	)

// Typed returns the values as a []T and true when every value is a T.
//
//	ints, ok := collections.Typed[int](collections.Of(1, 2, 3))
func Typed[T any](c *Collection) ([]T, bool) {
	out := make([]T, 0, c.items.Len())
	for _, v := range c.items.All() {
		t, ok := v.(T)
		if !ok {
			return nil, false
		}
		out = append(out, t)
	}
	return out, true
}

// MapInto applies fn to every entry and returns the results as a []U.
//
//	labels := collections.MapInto(c, func(v any, k omap.Key) string {
//	    return k.String() + "=" + arr.ToString(v)
//	})
func MapInto[U any](c *Collection, fn func(value any, key omap.Key) U) []U {
	out := make([]U, 0, c.items.Len())
	for k, v := range c.items.All() {
		out = append(out, fn(v, k))
	}
	return out
}

// Fold reduces the entries to a single value of type U.
//
//	total := collections.Fold(c, func(acc int, v any, _ omap.Key) int {
//	    return acc + cast.ToInt(v)
//	}, 0)
func Fold[U any](c *Collection, fn func(acc U, value any, key omap.Key) U, initial U) U {
	result := initial
	for k, v := range c.items.All() {
		result = fn(result, v, k)
	}
	return result
}

// PluckInto returns the values at path that are of type T, skipping entries
// that lack the path or hold another type.
//
//	names := collections.PluckInto[string](users, "name")
func PluckInto[T any](c *Collection, path string) []T {
	out := make([]T, 0, c.items.Len())
	for _, v := range c.Pluck(path).items.All() {
		if t, ok := v.(T); ok {
			out = append(out, t)
		}
	}
	return out
}

// GroupInto buckets values by fn into a Go map of typed keys. Bucket order
// follows first appearance within each bucket.
func GroupInto[K comparable](c *Collection, fn func(value any, key omap.Key) K) map[K]*Collection {
	groups := make(map[K]*Collection)
	for k, v := range c.items.All() {
		gk := fn(v, k)
		if _, ok := groups[gk]; !ok {
			groups[gk] = Empty()
		}
		groups[gk].items.Append(v)
	}
	return groups
}
