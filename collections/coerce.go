package collections

import (
	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// Arrayable is implemented by values that can flatten themselves into an
// ordered mapping. Collections are Arrayable.
//
// Passing an Arrayable to [New] (or to Diff, Merge, …) uses the mapping it
// returns.
type Arrayable = arr.Arrayable

// coerce normalises any input into an ordered mapping owned by the caller:
//
//   - nil becomes an empty mapping
//   - a *Collection contributes a shallow copy of its items
//   - an [Arrayable] contributes the result of ToArray
//   - an *omap.Map, slice, array, or Go map is copied entry by entry
//   - anything else becomes a one-element list holding the value
func coerce(input any) *omap.Map {
	switch v := input.(type) {
	case nil:
		return omap.New()
	case *Collection:
		if v == nil {
			return omap.New()
		}
		return v.items.Copy()
	case Arrayable:
		m := v.ToArray()
		if m == nil {
			return omap.New()
		}
		return m.Copy()
	}
	if m, ok := arr.Mapping(input); ok {
		return m
	}
	return omap.FromValues(input)
}

// mappingOf returns v as a mapping when it is mapping-shaped, including
// nested collections and other Arrayable values.
func mappingOf(v any) (*omap.Map, bool) {
	switch t := v.(type) {
	case *Collection:
		if t == nil {
			return nil, false
		}
		return t.items.Copy(), true
	case Arrayable:
		m := t.ToArray()
		return m, m != nil
	}
	return arr.Mapping(v)
}
