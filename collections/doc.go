// Package collections provides Collection, a mutable ordered key/value
// container with array semantics and a fluent, Laravel-style API.
//
// # Overview
//
// A [Collection] holds entries keyed by integers or strings in insertion
// order. Appending assigns the next free integer key; numeric strings such
// as "7" are normalised to integer keys. Nested mappings are reached with
// dot-notation paths:
//
//	c := collections.Empty().
//	    Put("user.name", "Alice").
//	    Put("user.roles", []any{"admin"})
//
//	c.Get("user.name")            // → "Alice"
//	c.Get("user.email", "none")   // → "none"
//	c.Has("user.roles.0")         // → true
//	c.Forget("user.roles")
//
// # Pipelines
//
// Deriving methods return a new Collection and leave the receiver alone:
//
//	total := collections.New(orders).
//	    Where("status", "paid").
//	    Sum("amount")
//
//	byCity := collections.New(people).GroupBy("address.city")
//
// Methods that accept a "by" argument take a path string,
// func(any, omap.Key) any, or func(any) any. Any other argument panics with
// an error wrapping [ErrInvalidCallback].
//
// Value comparisons follow the rules in package arr: [arr.LooseEqual] for
// filtering and searching, [arr.Compare] for sorting, and [arr.Fingerprint]
// for set operations.
//
// # Typed helpers
//
// Go generics do not allow methods to introduce new type parameters, so
// typed extraction is exposed as package-level functions: [Typed],
// [MapInto], [Fold], [PluckInto], [GroupInto].
//
// # Codecs
//
// Collections encode to and decode from JSON ([Collection.ToJSON],
// [FromJSON]) and YAML ([Collection.ToYAML], [FromYAML]) keeping key order,
// and round-trip through a checksummed text form ([Collection.Serialize],
// [Unserialize]).
//
// # Macros (runtime extension)
//
// Register named functions at runtime via [RegisterMacro] and call them
// through [Collection.Macro]:
//
//	collections.RegisterMacro("evens", func(c *collections.Collection, _ ...any) any {
//	    return c.Filter(func(v any, _ omap.Key) bool { return cast.ToInt(v)%2 == 0 })
//	})
//
//	evens, _ := collections.Of(1, 2, 3, 4).Macro("evens")
package collections
