package collections

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/omap"
)

// JSONFlag adjusts how [Collection.ToJSON] encodes.
type JSONFlag int

const (
	// JSONPrettyPrint indents the output by four spaces per level.
	JSONPrettyPrint JSONFlag = 1 << iota
	// JSONForceObject encodes list-shaped mappings as objects.
	JSONForceObject
	// JSONEscapeHTML escapes <, >, and & in strings.
	JSONEscapeHTML
)

// ─────────────────────────────────────────────────────────────────────────────
// Plain conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToArray returns the collection as a fresh mapping, recursively replacing
// nested collections, Arrayable values, and Go slices and maps with plain
// *omap.Map values. Other values are kept as they are.
func (c *Collection) ToArray() *omap.Map {
	return plain(c.items)
}

func plain(m *omap.Map) *omap.Map {
	out := omap.New()
	for k, v := range m.All() {
		out.Set(k, plainValue(v))
	}
	return out
}

func plainValue(v any) any {
	if isOpaque(v) {
		return v
	}
	switch t := v.(type) {
	case *Collection:
		if t == nil {
			return nil
		}
		return plain(t.items)
	case *omap.Map:
		if t == nil {
			return nil
		}
		return plain(t)
	}
	if m, ok := mappingOf(v); ok {
		return plain(m)
	}
	return v
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON encoding
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON encodes the collection. List-shaped mappings become arrays and
// everything else objects with members in insertion order, unless
// [JSONForceObject] is given.
func (c *Collection) ToJSON(flags ...JSONFlag) ([]byte, error) {
	var f JSONFlag
	for _, flag := range flags {
		f |= flag
	}
	enc := jsonEncoder{forceObject: f&JSONForceObject != 0, escapeHTML: f&JSONEscapeHTML != 0}
	if err := enc.mapping(c.items); err != nil {
		return nil, err
	}
	if f&JSONPrettyPrint == 0 {
		return enc.buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, enc.buf.Bytes(), "", "    "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// MarshalJSON implements [json.Marshaler].
func (c *Collection) MarshalJSON() ([]byte, error) { return c.ToJSON() }

type jsonEncoder struct {
	buf         bytes.Buffer
	forceObject bool
	escapeHTML  bool
}

func (e *jsonEncoder) value(v any) error {
	if isOpaque(v) {
		return e.scalar(v)
	}
	switch t := v.(type) {
	case *Collection:
		if t == nil {
			return e.scalar(nil)
		}
		return e.mapping(t.items)
	case *omap.Map:
		if t == nil {
			return e.scalar(nil)
		}
		return e.mapping(t)
	case json.Marshaler:
		return e.scalar(v)
	}
	if m, ok := mappingOf(v); ok {
		return e.mapping(m)
	}
	return e.scalar(v)
}

func (e *jsonEncoder) mapping(m *omap.Map) error {
	list := !e.forceObject && m.IsList()
	if list {
		e.buf.WriteByte('[')
	} else {
		e.buf.WriteByte('{')
	}
	i := 0
	for k, v := range m.All() {
		if i > 0 {
			e.buf.WriteByte(',')
		}
		i++
		if !list {
			if err := e.scalar(k.String()); err != nil {
				return err
			}
			e.buf.WriteByte(':')
		}
		if err := e.value(v); err != nil {
			return fmt.Errorf("encoding %q: %w", k.String(), err)
		}
	}
	if list {
		e.buf.WriteByte(']')
	} else {
		e.buf.WriteByte('}')
	}
	return nil
}

func (e *jsonEncoder) scalar(v any) error {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(e.escapeHTML)
	if err := enc.Encode(v); err != nil {
		return err
	}
	e.buf.Write(bytes.TrimRight(b.Bytes(), "\n"))
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON decoding
// ─────────────────────────────────────────────────────────────────────────────

// FromJSON decodes a JSON document into a Collection. Objects and arrays
// become nested mappings in document order; a scalar document becomes a
// one-element list.
func FromJSON(data []byte) (*Collection, error) {
	v, err := omap.DecodeJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return New(v), nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (c *Collection) UnmarshalJSON(data []byte) error {
	decoded, err := FromJSON(data)
	if err != nil {
		return err
	}
	c.items = decoded.items
	return nil
}

var (
	_ json.Marshaler   = (*Collection)(nil)
	_ json.Unmarshaler = (*Collection)(nil)
	_ arr.Arrayable    = (*Collection)(nil)
	_ arr.Indexable    = (*Collection)(nil)
)
