package collections_test

import (
	"encoding/base64"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/collections"
	"github.com/hasbyte1/go-collection/omap"
)

const orderedDoc = `{"zeta":1,"alpha":{"list":[1,2.5,"three",true,null],"empty":[]},"7":"seven"}`

// ─────────────────────────────────────────────────────────────────────────────
// ToArray
// ─────────────────────────────────────────────────────────────────────────────

func TestToArrayFlattensNestedCollections(t *testing.T) {
	c := collections.Empty().
		Put("inner", collections.Of(1, 2)).
		Put("go", map[string]any{"k": []int{3}}).
		Put("scalar", "s")

	m := c.ToArray()
	inner, ok := m.Get(omap.String("inner"))
	require.True(t, ok)
	assert.IsType(t, &omap.Map{}, inner)

	goMap, _ := m.Get(omap.String("go"))
	k, _ := goMap.(*omap.Map).Get(omap.String("k"))
	assert.IsType(t, &omap.Map{}, k)
}

// ─────────────────────────────────────────────────────────────────────────────
// JSON
// ─────────────────────────────────────────────────────────────────────────────

func TestJSONKeepsDocumentOrder(t *testing.T) {
	c, err := collections.FromJSON([]byte(orderedDoc))
	require.NoError(t, err)
	assert.Equal(t, []any{"zeta", "alpha", 7}, keysOf(c))
	assert.Equal(t, 2.5, c.Get("alpha.list.1"))
	assert.Equal(t, 1, c.Get("zeta"))
	assert.Nil(t, c.Get("alpha.list.4", "not nil"))

	out, err := c.ToJSON()
	require.NoError(t, err)
	assert.JSONEq(t, orderedDoc, string(out))
	assert.True(t, strings.HasPrefix(string(out), `{"zeta":1,"alpha"`))
}

func TestJSONRoundTrip(t *testing.T) {
	docs := []string{
		`[1,2,3]`,
		`{"a":{"b":[{"c":null}]}}`,
		`{"0":"a","2":"b"}`,
		`[]`,
		`{"s":"<tag> & \"quoted\" ünïcode"}`,
		`{"a\\nb":1,"q\"x":{"a\\u0041":[]}}`,
	}
	for _, doc := range docs {
		c, err := collections.FromJSON([]byte(doc))
		require.NoError(t, err, doc)
		out, err := c.ToJSON()
		require.NoError(t, err, doc)
		assert.Equal(t, doc, string(out))
	}
}

func TestJSONScalarDocumentBecomesList(t *testing.T) {
	c, err := collections.FromJSON([]byte(`"hello"`))
	require.NoError(t, err)
	assert.Equal(t, []any{"hello"}, c.ToSlice())
}

func TestJSONInvalid(t *testing.T) {
	for _, doc := range []string{``, `{`, `{"a":}`, `[1,,2]`, `{"a":1}}`, `[1] [2]`, `{"a":01}`} {
		_, err := collections.FromJSON([]byte(doc))
		assert.ErrorIs(t, err, collections.ErrInvalidJSON, doc)
	}
}

func TestToJSONFlags(t *testing.T) {
	c := collections.Of("<a>", collections.Of(1))

	out, err := c.ToJSON(collections.JSONForceObject)
	require.NoError(t, err)
	assert.Equal(t, `{"0":"<a>","1":{"0":1}}`, string(out))

	out, err = c.ToJSON(collections.JSONEscapeHTML)
	require.NoError(t, err)
	assert.Equal(t, `["\u003ca\u003e",[1]]`, string(out))

	out, err = c.ToJSON(collections.JSONPrettyPrint)
	require.NoError(t, err)
	assert.Equal(t, "[\n    \"<a>\",\n    [\n        1\n    ]\n]", string(out))
}

func TestJSONMarshalerIntegration(t *testing.T) {
	type envelope struct {
		Data *collections.Collection `json:"data"`
	}
	b, err := json.Marshal(envelope{Data: collections.Empty().Put("b", 1).Put("a", 2)})
	require.NoError(t, err)
	assert.Equal(t, `{"data":{"b":1,"a":2}}`, string(b))

	var back envelope
	require.NoError(t, json.Unmarshal(b, &back))
	assert.Equal(t, []any{"b", "a"}, keysOf(back.Data))
}

func TestJSONEncodesStructsAndNestedShapes(t *testing.T) {
	c := collections.Empty().
		Put("p", point{1, 2}).
		Put("m", map[string]int{"y": 2, "x": 1}).
		Put("bytes", []byte("hi"))
	out, err := c.ToJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"p":{"X":1,"Y":2},"m":{"x":1,"y":2},"bytes":"aGk="}`, string(out))
}

// ─────────────────────────────────────────────────────────────────────────────
// YAML
// ─────────────────────────────────────────────────────────────────────────────

func TestYAMLRoundTripKeepsOrder(t *testing.T) {
	c, err := collections.FromJSON([]byte(orderedDoc))
	require.NoError(t, err)

	y, err := c.ToYAML()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(y), "zeta: 1\nalpha:"), string(y))

	back, err := collections.FromYAML(y)
	require.NoError(t, err)
	assert.Equal(t, keysOf(c), keysOf(back))
	assert.True(t, arr.LooseEqual(c.ToArray(), back.ToArray()))
	assert.Equal(t, "three", back.Get("alpha.list.2"))
}

func TestFromYAML(t *testing.T) {
	c, err := collections.FromYAML([]byte("b: 1\na:\n  - x\n  - y\n3: three\n"))
	require.NoError(t, err)
	assert.Equal(t, []any{"b", "a", 3}, keysOf(c))
	assert.Equal(t, "y", c.Get("a.1"))

	empty, err := collections.FromYAML(nil)
	require.NoError(t, err)
	assert.True(t, empty.IsEmpty())

	_, err = collections.FromYAML([]byte("a: [1, 2"))
	assert.ErrorIs(t, err, collections.ErrInvalidYAML)
}

func TestFromYAMLAliases(t *testing.T) {
	c, err := collections.FromYAML([]byte("base: &b\n  k: v\ncopy: *b\n"))
	require.NoError(t, err)
	assert.Equal(t, "v", c.Get("copy.k"))
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialization
// ─────────────────────────────────────────────────────────────────────────────

func TestSerializeRoundTrip(t *testing.T) {
	c := collections.Of(1, "two", 3.5, true, nil).
		Put("nested.list", []any{"a", "b"}).
		Put("inner", collections.Empty().Put("x", 1))
	c.Forget("0")

	blob, err := c.Serialize()
	require.NoError(t, err)

	back, err := collections.Unserialize(blob)
	require.NoError(t, err)
	assert.Equal(t, keysOf(c), keysOf(back))
	assert.Equal(t, "b", back.Get("nested.list.1"))
	assert.Equal(t, 1, back.Get("inner.x"))
	assert.Equal(t, c.String(), back.String())

	c.Push("next")
	back.Push("next")
	assert.Equal(t, keysOf(c), keysOf(back), "the next free index survives the round trip")
}

func TestUnserializeMethodReplacesItems(t *testing.T) {
	blob, err := collections.Of("a").Serialize()
	require.NoError(t, err)

	c := collections.Of("x", "y")
	require.NoError(t, c.Unserialize(blob))
	assert.Equal(t, []any{"a"}, c.ToSlice())
}

func TestUnserializeRejectsBadInput(t *testing.T) {
	_, err := collections.Unserialize("not base64!")
	assert.ErrorIs(t, err, collections.ErrInvalidPayload)

	_, err = collections.Unserialize(base64.StdEncoding.EncodeToString([]byte("short")))
	assert.ErrorIs(t, err, collections.ErrInvalidPayload)

	blob, err := collections.Of(1).Serialize()
	require.NoError(t, err)
	raw, _ := base64.StdEncoding.DecodeString(blob)
	raw[len(raw)-1] ^= 0xff
	_, err = collections.Unserialize(base64.StdEncoding.EncodeToString(raw))
	assert.ErrorIs(t, err, collections.ErrChecksumMismatch)
}

func TestBinaryMarshalling(t *testing.T) {
	c := collections.Empty().Put("k", "v")
	b, err := c.MarshalBinary()
	require.NoError(t, err)

	var back collections.Collection
	require.NoError(t, back.UnmarshalBinary(b))
	assert.Equal(t, "v", back.Get("k"))

	assert.ErrorIs(t, back.UnmarshalBinary([]byte("garbage")), collections.ErrInvalidPayload)
}
