// Package omap provides the ordered mapping that backs every collection in
// this module.
//
// # Keys
//
// A [Key] is either an integer or a string. Numeric strings such as "3" are
// canonicalised to integer keys, so list-shaped data ("0", "1", "2") and
// map-shaped data ("name", "email") are addressed uniformly:
//
//	m := omap.New()
//	m.Set(omap.String("name"), "Alice")
//	m.Append("first")           // stored under 0
//	m.Get(omap.String("0"))     // → "first", true
//
// # Ordering
//
// Entries iterate in insertion order. Overwriting an existing key keeps its
// position. [Map.Append] uses the next free integer key, one past the largest
// integer key ever stored.
//
// # Encoding
//
// [Map] implements json.Marshaler/Unmarshaler (list-shaped maps encode as
// arrays, decoding keeps document order) and gob.GobEncoder/GobDecoder for
// exact round trips.
package omap
