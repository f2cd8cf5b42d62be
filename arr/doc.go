// Package arr provides dot-notation access to nested data and the value
// juggling rules (truthiness, loose equality, ordering) that collections are
// built on.
//
// # Dot-notation access
//
// Paths are dot-separated key segments. Reads walk *omap.Map trees, Go maps
// with string keys, slices, structs (by field name or json tag) and any
// [Indexable] container:
//
//	root := omap.New()
//	arr.Set(root, "user.address.city", "London")
//	arr.Get(root, "user.address.city")          // → "London"
//	arr.Get(root, "user.age", arr.Lazy(lookup)) // lookup() runs only on a miss
//	arr.Has(root, "user.name")                  // → false
//	flat := arr.Dot(root)                       // → {"user.address.city": "London"}
//	arr.Forget(root, "user.address")
//
// Writes never modify a nested mapping in place: each mapping on the written
// path is copied first, so trees that share nested mappings stay independent.
//
// # Comparison
//
// [LooseEqual], [StrictEqual], [Truthy] and [Compare] implement the
// comparison rules used by filtering, searching, de-duplication and sorting.
// [Fingerprint] gives a hashable identity for set operations.
//
// # Slice helpers
//
// A handful of generic helpers ([Sort], [Chunk], [Reverse], [Shuffle],
// [Sample]) operate on plain []T values.
package arr
