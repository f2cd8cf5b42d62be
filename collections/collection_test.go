package collections_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/collections"
	"github.com/hasbyte1/go-collection/omap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func keysOf(c *collections.Collection) []any { return c.Keys().ToSlice() }

func people() *collections.Collection {
	return collections.New([]any{
		map[string]any{"name": "Alice", "age": 30, "city": "London"},
		map[string]any{"name": "Bob", "age": 20, "city": "Paris"},
		map[string]any{"name": "Carol", "age": 30, "city": "London"},
	})
}

type point struct{ X, Y int }

type exporter struct{ m *omap.Map }

func (e exporter) ToArray() *omap.Map { return e.m }

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

func TestNewCoercesInput(t *testing.T) {
	assert.Equal(t, 0, collections.New(nil).Count())
	assert.Equal(t, []any{1, 2, 3}, collections.New([]int{1, 2, 3}).ToSlice())
	assert.Equal(t, []any{"x"}, collections.New("x").ToSlice())
	assert.Equal(t, []any{point{1, 2}}, collections.New(point{1, 2}).ToSlice())

	m := collections.New(map[string]any{"b": 2, "a": 1})
	assert.Equal(t, []any{"a", "b"}, keysOf(m))

	src := omap.New()
	src.Set(omap.String("k"), "v")
	c := collections.New(exporter{src})
	assert.Equal(t, "v", c.Get("k"))
	c.Put("k", "changed")
	v, _ := src.Get(omap.String("k"))
	assert.Equal(t, "v", v, "New must not alias an Arrayable's mapping")
}

func TestNewFromCollectionCopies(t *testing.T) {
	a := collections.Of(1, 2)
	b := collections.New(a)
	b.Push(3)
	assert.Equal(t, 2, a.Count())
	assert.Equal(t, 3, b.Count())
}

func TestNumericStringKeysBecomeInts(t *testing.T) {
	c := collections.Empty().Put("7", "seven").Put("07", "padded")
	assert.Equal(t, []any{7, "07"}, keysOf(c))
	c.Push("next")
	assert.Equal(t, []any{7, "07", 8}, keysOf(c))
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

func TestCountAndEmptiness(t *testing.T) {
	assert.True(t, collections.Empty().IsEmpty())
	assert.False(t, collections.Empty().IsNotEmpty())
	assert.Equal(t, 3, people().Count())
	assert.True(t, people().IsNotEmpty())
}

func TestAllReturnsCopy(t *testing.T) {
	c := collections.Of(1, 2)
	all := c.All()
	all.Append(3)
	assert.Equal(t, 2, c.Count())
}

func TestFirstAndLast(t *testing.T) {
	c := collections.Of(1, 2, 3, 4)
	even := func(v any, _ omap.Key) bool { return v.(int)%2 == 0 }

	assert.Equal(t, 1, c.First(nil))
	assert.Equal(t, 2, c.First(even))
	assert.Equal(t, 4, c.Last(nil))
	assert.Equal(t, 4, c.Last(even))
	assert.Equal(t, "none", collections.Empty().First(nil, "none"))
	assert.Equal(t, "lazy", c.First(func(any, omap.Key) bool { return false }, arr.Lazy(func() any { return "lazy" })))

	_, err := c.FirstOrFail(func(v any, _ omap.Key) bool { return v.(int) > 10 })
	assert.ErrorIs(t, err, collections.ErrNoMatchingItems)
	v, err := c.LastOrFail(even)
	require.NoError(t, err)
	assert.Equal(t, 4, v)
}

// ─────────────────────────────────────────────────────────────────────────────
// Searching
// ─────────────────────────────────────────────────────────────────────────────

func TestContains(t *testing.T) {
	c := collections.Of(1, "2", 3)
	assert.True(t, c.Contains(2))
	assert.True(t, c.Contains("1"))
	assert.False(t, c.Contains(4))
	assert.False(t, c.ContainsStrict(2))
	assert.True(t, c.ContainsStrict("2"))
	assert.True(t, c.Contains(func(v any) bool { return v == 3 }))

	assert.True(t, people().Contains("name", "Bob"))
	assert.False(t, people().Contains("name", "Dave"))
}

func TestSearch(t *testing.T) {
	c := collections.New(map[string]any{"a": 1, "b": "2"})
	k, ok := c.Search(2)
	require.True(t, ok)
	assert.Equal(t, "b", k.String())

	_, ok = c.Search(2, true)
	assert.False(t, ok)

	k, ok = c.Search(func(v any, _ omap.Key) bool { return v == 1 })
	require.True(t, ok)
	assert.Equal(t, "a", k.String())
}

// ─────────────────────────────────────────────────────────────────────────────
// Projection
// ─────────────────────────────────────────────────────────────────────────────

func TestPluck(t *testing.T) {
	assert.Equal(t, []any{"Alice", "Bob", "Carol"}, people().Pluck("name").ToSlice())

	byName := people().Pluck("age", "name")
	assert.Equal(t, []any{"Alice", "Bob", "Carol"}, keysOf(byName))
	assert.Equal(t, 20, byName.Get("Bob"))

	assert.Equal(t, people().Pluck("city").ToSlice(), people().Lists("city").ToSlice())
}

func TestFetchKeepsKeys(t *testing.T) {
	c := collections.New(map[string]any{
		"x": map[string]any{"id": 1},
		"y": map[string]any{},
	})
	got := c.Fetch("id")
	assert.Equal(t, []any{"x", "y"}, keysOf(got))
	assert.Equal(t, []any{1, nil}, got.ToSlice())
}

func TestImplode(t *testing.T) {
	assert.Equal(t, "1, 2, 3", collections.Of(1, 2, 3).Implode(", "))
	assert.Equal(t, "Alice-Bob-Carol", people().Implode("name", "-"))
	assert.Equal(t, "1,,x", collections.Of(true, false, "x").Implode(","))
}

// ─────────────────────────────────────────────────────────────────────────────
// Control flow
// ─────────────────────────────────────────────────────────────────────────────

func TestTapWhenUnless(t *testing.T) {
	c := collections.Of(1)
	seen := 0
	assert.Same(t, c, c.Tap(func(got *collections.Collection) { seen = got.Count() }))
	assert.Equal(t, 1, seen)

	pushed := c.When(true, func(x *collections.Collection) *collections.Collection { return x.Push(2) })
	assert.Equal(t, 2, pushed.Count())

	c.Unless(true, func(x *collections.Collection) *collections.Collection { return x.Push(3) })
	assert.Equal(t, 2, c.Count())
}

func TestString(t *testing.T) {
	assert.Equal(t, `[1,"a"]`, collections.Of(1, "a").String())
	assert.Equal(t, `{"k":"<b>"}`, collections.Empty().Put("k", "<b>").String())
}
