package omap

import (
	"bytes"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/buger/jsonparser"
)

// ErrInvalidJSON is returned when a document cannot be decoded into a Map.
var ErrInvalidJSON = errors.New("omap: invalid JSON document")

func init() {
	gob.Register(new(Map))
	gob.Register([]any(nil))
	gob.Register(map[string]any(nil))
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

// MarshalJSON implements [json.Marshaler].
//
// List-shaped maps (see [Map.IsList]) encode as JSON arrays, everything else
// as an object whose members appear in insertion order. HTML characters and
// non-ASCII text are written unescaped.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil {
		return []byte("null"), nil
	}
	return m.appendJSON(nil, m.IsList())
}

func (m *Map) appendJSON(buf []byte, list bool) ([]byte, error) {
	open, closing := byte('{'), byte('}')
	if list {
		open, closing = '[', ']'
	}
	buf = append(buf, open)
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			buf = append(buf, ',')
		}
		i++
		if !list {
			kb, err := encodeJSON(k.String())
			if err != nil {
				return nil, err
			}
			buf = append(buf, kb...)
			buf = append(buf, ':')
		}
		vb, err := encodeJSON(v)
		if err != nil {
			return nil, fmt.Errorf("omap: encoding key %q: %w", k.String(), err)
		}
		buf = append(buf, vb...)
	}
	return append(buf, closing), nil
}

func encodeJSON(v any) ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(b.Bytes(), "\n"), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
//
// Objects and arrays both decode to *Map, preserving document order; a scalar
// document becomes a single-entry list. Integral numbers decode to int,
// other numbers to float64.
func (m *Map) UnmarshalJSON(data []byte) error {
	value, err := DecodeJSON(data)
	if err != nil {
		return err
	}
	decoded, ok := value.(*Map)
	if !ok {
		decoded = FromValues(value)
	}
	*m = *decoded
	return nil
}

// DecodeJSON decodes a JSON document into Go values, using *Map for every
// object and array. The whole input must be exactly one valid document.
func DecodeJSON(data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrInvalidJSON)
	}
	if !json.Valid(data) {
		return nil, fmt.Errorf("%w: malformed document", ErrInvalidJSON)
	}
	raw, typ, _, err := jsonparser.Get(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	return decodeValue(raw, typ)
}

func decodeValue(raw []byte, typ jsonparser.ValueType) (any, error) {
	switch typ {
	case jsonparser.Object:
		m := New()
		err := jsonparser.ObjectEach(raw, func(key, value []byte, dt jsonparser.ValueType, _ int) error {
			v, err := decodeValue(value, dt)
			if err != nil {
				return err
			}
			// ObjectEach hands over keys already unescaped.
			m.Set(String(string(key)), v)
			return nil
		})
		if err != nil {
			return nil, wrapJSON(err)
		}
		return m, nil
	case jsonparser.Array:
		m := New()
		var inner error
		_, err := jsonparser.ArrayEach(raw, func(value []byte, dt jsonparser.ValueType, _ int, err error) {
			if inner != nil {
				return
			}
			if err != nil {
				inner = err
				return
			}
			v, err := decodeValue(value, dt)
			if err != nil {
				inner = err
				return
			}
			m.Append(v)
		})
		if inner != nil {
			return nil, wrapJSON(inner)
		}
		if err != nil {
			return nil, wrapJSON(err)
		}
		return m, nil
	case jsonparser.String:
		s, err := jsonparser.ParseString(raw)
		if err != nil {
			return nil, wrapJSON(err)
		}
		return s, nil
	case jsonparser.Number:
		if !strings.ContainsAny(string(raw), ".eE") {
			if n, err := jsonparser.ParseInt(raw); err == nil {
				return int(n), nil
			}
		}
		f, err := jsonparser.ParseFloat(raw)
		if err != nil {
			return nil, wrapJSON(err)
		}
		return f, nil
	case jsonparser.Boolean:
		b, err := jsonparser.ParseBoolean(raw)
		if err != nil {
			return nil, wrapJSON(err)
		}
		return b, nil
	case jsonparser.Null:
		return nil, nil
	}
	return nil, fmt.Errorf("%w: unexpected value %q", ErrInvalidJSON, raw)
}

func wrapJSON(err error) error {
	if errors.Is(err, ErrInvalidJSON) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrInvalidJSON, err)
}

// ─────────────────────────────────────────────────────────────────────────────
// gob
// ─────────────────────────────────────────────────────────────────────────────

type wireEntry struct {
	Str   string
	Num   int
	IsInt bool
	Value any
}

type wireMap struct {
	Entries []wireEntry
	Next    int
	HasNext bool
}

// GobEncode implements [gob.GobEncoder]. Values of custom types must be
// registered with [gob.Register] before encoding.
func (m *Map) GobEncode() ([]byte, error) {
	w := wireMap{Entries: make([]wireEntry, 0, m.Len()), Next: m.next, HasNext: m.hasNext}
	for k, v := range m.All() {
		w.Entries = append(w.Entries, wireEntry{Str: k.str, Num: k.num, IsInt: k.isInt, Value: v})
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&w); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GobDecode implements [gob.GobDecoder].
func (m *Map) GobDecode(data []byte) error {
	var w wireMap
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&w); err != nil {
		return err
	}
	out := New()
	for _, e := range w.Entries {
		out.om.Set(Key{str: e.Str, num: e.Num, isInt: e.IsInt}, e.Value)
	}
	out.next, out.hasNext = w.Next, w.HasNext
	*m = *out
	return nil
}
