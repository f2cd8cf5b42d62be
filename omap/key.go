package omap

import (
	"math"
	"strconv"
)

// Key identifies an entry in a [Map]. A key is either an integer or a string.
//
// Strings holding a canonical decimal integer ("0", "42", "-7", but not "07"
// or "+1") are stored as integer keys, so "1" and 1 address the same entry.
// This keeps list-shaped and map-shaped data addressable the same way from a
// dotted path.
type Key struct {
	str   string
	num   int
	isInt bool
}

// Int returns an integer key.
func Int(i int) Key { return Key{num: i, isInt: true} }

// String returns a key for s, canonicalising decimal integers to [Int] keys.
func String(s string) Key {
	if n, ok := canonicalInt(s); ok {
		return Int(n)
	}
	return Key{str: s}
}

// KeyOf converts v to a key the way an array subscript would:
//
//   - integers and [Key] values map directly
//   - strings go through [String]
//   - booleans become 0 or 1
//   - floats are truncated toward zero
//   - nil becomes the empty string key
//
// ok is false for any other type.
func KeyOf(v any) (Key, bool) {
	switch t := v.(type) {
	case Key:
		return t, true
	case string:
		return String(t), true
	case int:
		return Int(t), true
	case int8:
		return Int(int(t)), true
	case int16:
		return Int(int(t)), true
	case int32:
		return Int(int(t)), true
	case int64:
		return Int(int(t)), true
	case uint:
		return Int(int(t)), true
	case uint8:
		return Int(int(t)), true
	case uint16:
		return Int(int(t)), true
	case uint32:
		return Int(int(t)), true
	case uint64:
		return Int(int(t)), true
	case float32:
		return floatKey(float64(t))
	case float64:
		return floatKey(t)
	case bool:
		if t {
			return Int(1), true
		}
		return Int(0), true
	case nil:
		return Key{}, true
	}
	return Key{}, false
}

func floatKey(f float64) (Key, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Key{}, false
	}
	return Int(int(f)), true
}

// IsInt reports whether k is an integer key.
func (k Key) IsInt() bool { return k.isInt }

// Int returns the integer value of k, or 0 for string keys.
func (k Key) Int() int { return k.num }

// String returns the textual form of k.
func (k Key) String() string {
	if k.isInt {
		return strconv.Itoa(k.num)
	}
	return k.str
}

// Value returns k as an int or a string.
func (k Key) Value() any {
	if k.isInt {
		return k.num
	}
	return k.str
}

// MarshalText implements [encoding.TextMarshaler].
func (k Key) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (k *Key) UnmarshalText(b []byte) error {
	*k = String(string(b))
	return nil
}

func canonicalInt(s string) (int, bool) {
	if s == "" || len(s) > 20 {
		return 0, false
	}
	digits := s
	if s[0] == '-' {
		digits = s[1:]
	}
	if digits == "" || (digits[0] == '0' && len(digits) > 1) || s == "-0" {
		return 0, false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
