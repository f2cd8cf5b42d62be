package arr

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"github.com/hasbyte1/go-collection/omap"
)

// SortFlag selects how [Compare] orders two values.
type SortFlag int

const (
	// SortRegular compares numbers and numeric strings numerically and
	// everything else as strings.
	SortRegular SortFlag = 0
	// SortNumeric compares both values as numbers.
	SortNumeric SortFlag = 1
	// SortString compares the string forms byte-wise.
	SortString SortFlag = 2
	// SortNatural compares the string forms in natural order ("img2" < "img10").
	SortNatural SortFlag = 6
	// SortFlagCase may be combined with SortString or SortNatural to ignore
	// case.
	SortFlagCase SortFlag = 8
)

// ─────────────────────────────────────────────────────────────────────────────
// Conversions
// ─────────────────────────────────────────────────────────────────────────────

// ToString converts a scalar to its string form: nil is "", true is "1",
// false is "", and integral floats print without a fraction. Mapping-shaped
// values become "Array".
func ToString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case float64:
		return formatFloat(t)
	case float32:
		return formatFloat(float64(t))
	case omap.Key:
		return t.String()
	case json.Number:
		return t.String()
	case fmt.Stringer:
		return t.String()
	case error:
		return t.Error()
	case *omap.Map:
		return "Array"
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return "Array"
	}
	if s, err := cast.ToStringE(v); err == nil {
		return s
	}
	return fmt.Sprint(v)
}

func formatFloat(f float64) string {
	if math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return strconv.FormatFloat(f, 'G', -1, 64)
}

// ToFloat converts v to a number. Numeric strings are parsed, booleans are 0
// or 1, and anything that does not convert counts as 0.
func ToFloat(v any) float64 {
	if s, ok := v.(string); ok {
		if f, ok := numericString(s); ok {
			return f
		}
		return 0
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0
	}
	return f
}

// Fingerprint returns a string identifying v for set-style comparison.
// Scalars compare by their [ToString] form, mappings by their JSON encoding.
func Fingerprint(v any) string {
	if m, ok := mappingView(v); ok {
		b, err := m.MarshalJSON()
		if err != nil {
			return "Array"
		}
		return "\x00" + string(b)
	}
	return ToString(v)
}

// Truthy reports whether v counts as non-empty: nil, false, 0, 0.0, "",
// "0", and empty mappings are falsy; everything else is truthy.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != "" && t != "0"
	case int:
		return t != 0
	case int64:
		return t != 0
	case float64:
		return t != 0
	case *omap.Map:
		return t.Len() > 0
	case Arrayable:
		m, ok := Mapping(t)
		return ok && m.Len() > 0
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Map, reflect.Array:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32:
		return rv.Float() != 0
	}
	return true
}

// Number returns v as a float64 when v is a number or a numeric string.
func Number(v any) (float64, bool) {
	switch t := v.(type) {
	case string:
		return numericString(t)
	case bool, nil:
		return 0, false
	case json.Number:
		f, err := t.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func numericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// ─────────────────────────────────────────────────────────────────────────────
// Equality
// ─────────────────────────────────────────────────────────────────────────────

// LooseEqual reports whether a and b are equal after type juggling:
// numbers and numeric strings compare numerically, booleans and nil compare
// by truthiness, and mappings are equal when they hold loosely equal values
// under the same keys, in any order.
func LooseEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if s, ok := b.(string); ok && a == nil {
		return s == ""
	}
	if s, ok := a.(string); ok && b == nil {
		return s == ""
	}
	_, aBool := a.(bool)
	_, bBool := b.(bool)
	if aBool || bBool || a == nil || b == nil {
		return Truthy(a) == Truthy(b)
	}

	am, aMap := mappingView(a)
	bm, bMap := mappingView(b)
	if aMap || bMap {
		if !aMap || !bMap || am.Len() != bm.Len() {
			return false
		}
		for k, av := range am.All() {
			bv, ok := bm.Get(k)
			if !ok || !LooseEqual(av, bv) {
				return false
			}
		}
		return true
	}

	an, aNum := Number(a)
	bn, bNum := Number(b)
	_, aStr := a.(string)
	_, bStr := b.(string)
	switch {
	case aNum && bNum:
		return an == bn
	case aStr && bStr:
		return a.(string) == b.(string)
	case aStr || bStr:
		return ToString(a) == ToString(b)
	}
	return reflect.DeepEqual(a, b)
}

// StrictEqual reports whether a and b have the same dynamic type and value.
// Mappings must hold strictly equal values under the same keys, in the same
// order.
func StrictEqual(a, b any) bool {
	am, aMap := a.(*omap.Map)
	bm, bMap := b.(*omap.Map)
	if aMap || bMap {
		return aMap && bMap && am.Equal(bm, StrictEqual)
	}
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return reflect.DeepEqual(a, b)
}

func mappingView(v any) (*omap.Map, bool) {
	if m, ok := v.(*omap.Map); ok {
		return m, m != nil
	}
	if _, ok := v.(Arrayable); ok {
		return Mapping(v)
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Slice, reflect.Array, reflect.Map:
		return Mapping(v)
	}
	return nil, false
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

// Compare returns -1, 0, or +1 ordering a before, equal to, or after b
// under flag.
func Compare(a, b any, flag SortFlag) int {
	fold := flag&SortFlagCase != 0
	switch flag &^ SortFlagCase {
	case SortNumeric:
		return cmpFloat(ToFloat(a), ToFloat(b))
	case SortString:
		return cmpString(ToString(a), ToString(b), fold)
	case SortNatural:
		return naturalCompare(ToString(a), ToString(b), fold)
	}
	return compareRegular(a, b)
}

func compareRegular(a, b any) int {
	_, aBool := a.(bool)
	_, bBool := b.(bool)
	if aBool || bBool || a == nil || b == nil {
		if _, ok := b.(string); ok && a == nil {
			return cmpString("", b.(string), false)
		}
		if _, ok := a.(string); ok && b == nil {
			return cmpString(a.(string), "", false)
		}
		return cmpBool(Truthy(a), Truthy(b))
	}
	am, aMap := mappingView(a)
	bm, bMap := mappingView(b)
	if aMap && bMap {
		return cmpFloat(float64(am.Len()), float64(bm.Len()))
	}
	if aMap != bMap {
		if aMap {
			return 1
		}
		return -1
	}
	an, aNum := Number(a)
	bn, bNum := Number(b)
	if aNum && bNum {
		return cmpFloat(an, bn)
	}
	return cmpString(ToString(a), ToString(b), false)
}

func cmpFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

func cmpBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case !a:
		return -1
	}
	return 1
}

func cmpString(a, b string, fold bool) int {
	if fold {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	return strings.Compare(a, b)
}

// naturalCompare orders runs of digits by numeric value and everything else
// byte-wise.
func naturalCompare(a, b string, fold bool) int {
	if fold {
		a, b = strings.ToLower(a), strings.ToLower(b)
	}
	for a != "" && b != "" {
		if isDigit(a[0]) && isDigit(b[0]) {
			da, restA := digitRun(a)
			db, restB := digitRun(b)
			ta, tb := strings.TrimLeft(da, "0"), strings.TrimLeft(db, "0")
			if len(ta) != len(tb) {
				return cmpFloat(float64(len(ta)), float64(len(tb)))
			}
			if c := strings.Compare(ta, tb); c != 0 {
				return c
			}
			a, b = restA, restB
			continue
		}
		if a[0] != b[0] {
			return cmpFloat(float64(a[0]), float64(b[0]))
		}
		a, b = a[1:], b[1:]
	}
	return cmpFloat(float64(len(a)), float64(len(b)))
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func digitRun(s string) (string, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return s[:i], s[i:]
}
