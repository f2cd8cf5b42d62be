package collections_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection/arr"
	"github.com/hasbyte1/go-collection/collections"
	"github.com/hasbyte1/go-collection/omap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Callbacks
// ─────────────────────────────────────────────────────────────────────────────

func TestInvalidCallbackPanics(t *testing.T) {
	assert.PanicsWithError(t, "collections: argument is not a path or callback: int", func() {
		people().GroupBy(42)
	})
	assert.Panics(t, func() { people().SortBy(struct{}{}) })
}

func TestEach(t *testing.T) {
	var seen []string
	c := collections.New(map[string]any{"a": 1, "b": 2})
	assert.Same(t, c, c.Each(func(_ any, k omap.Key) { seen = append(seen, k.String()) }))
	assert.Equal(t, []string{"a", "b"}, seen)

	count := 0
	collections.Of(1, 2, 3).EachUntil(func(v any, _ omap.Key) bool { count++; return v.(int) < 2 })
	assert.Equal(t, 2, count)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformations
// ─────────────────────────────────────────────────────────────────────────────

func TestMapPreservesCardinality(t *testing.T) {
	c := collections.New(map[string]any{"x": 1, "y": 2, "z": 3})
	got := c.Map(func(v any, _ omap.Key) any { return v.(int) * 10 })
	assert.Equal(t, c.Count(), got.Count())
	assert.Equal(t, []any{10, 20, 30}, got.ToSlice())
	assert.Equal(t, []any{0, 1, 2}, keysOf(got))
	assert.Equal(t, []any{1, 2, 3}, c.ToSlice(), "Map leaves the receiver alone")
}

func TestMapWithKeys(t *testing.T) {
	got := people().MapWithKeys(func(v any, _ omap.Key) (any, any) {
		return arr.Get(v, "name"), arr.Get(v, "age")
	})
	assert.Equal(t, []any{"Alice", "Bob", "Carol"}, keysOf(got))
	assert.Equal(t, 30, got.Get("Carol"))
}

func TestTransformKeepsKeysAndMutates(t *testing.T) {
	c := collections.New(map[string]any{"a": "x", "b": "y"})
	out := c.Transform(func(v any, k omap.Key) any { return k.String() + v.(string) })
	assert.Same(t, c, out)
	assert.Equal(t, []any{"a", "b"}, keysOf(c))
	assert.Equal(t, []any{"ax", "by"}, c.ToSlice())
}

func TestFilterPreservesKeys(t *testing.T) {
	c := collections.Of(10, 11, 12, 13, 14)
	odd := c.Filter(func(v any, _ omap.Key) bool { return v.(int)%2 == 1 })
	require.Equal(t, 2, odd.Count())
	for k, v := range odd.Entries() {
		src, ok := c.All().Get(k)
		require.True(t, ok)
		assert.Equal(t, src, v)
	}
	assert.Equal(t, []any{1, 3}, keysOf(odd))
}

func TestFilterNilKeepsTruthy(t *testing.T) {
	got := collections.Of(0, 1, "", "a", nil, false, "0", []any{}).Filter(nil)
	assert.Equal(t, []any{1, "a"}, got.ToSlice())
	assert.Equal(t, []any{1, 3}, keysOf(got))
}

func TestReject(t *testing.T) {
	c := collections.Of(1, 2, 3, "2")
	assert.Equal(t, []any{1, 3}, c.Reject(2).ToSlice())
	assert.Equal(t, []any{1, "2"}, c.Reject(func(v any) bool { return v == 2 || v == 3 }).ToSlice())
}

func TestWhere(t *testing.T) {
	assert.Equal(t, []any{"Alice", "Carol"}, people().Where("age", 30).Pluck("name").ToSlice())
	assert.Equal(t, 0, people().Where("age", "30").Count())
	assert.Equal(t, 2, people().WhereLoose("age", "30").Count())
	assert.Equal(t, 3, people().WhereIn("city", "London", "Paris").Count())
}

func TestReduce(t *testing.T) {
	sum := collections.Of(1, 2, 3).Reduce(func(carry, v any) any { return carry.(int) + v.(int) }, 0)
	assert.Equal(t, []any{6}, sum.ToSlice())

	joined := collections.Of("a", "b").Reduce(func(carry, v any) any {
		return carry.(string) + v.(string)
	}, "")
	assert.Equal(t, "ab", joined.First(nil))
}

func TestGroupByExample(t *testing.T) {
	c := collections.New([]any{
		map[string]any{"age": 30},
		map[string]any{"age": 20},
		map[string]any{"age": 30},
	})
	groups := c.GroupBy("age")
	assert.Equal(t, []any{30, 20}, keysOf(groups))

	thirty, ok := groups.Get("30").(*omap.Map)
	require.True(t, ok)
	assert.Equal(t, 2, thirty.Len())
	assert.True(t, thirty.IsList())

	twenty, ok := groups.Get("20").(*omap.Map)
	require.True(t, ok)
	assert.Equal(t, 1, twenty.Len())
}

func TestGroupByCallback(t *testing.T) {
	groups := collections.Of("apple", "avocado", "banana").GroupBy(func(v any) any {
		return v.(string)[:1]
	})
	assert.Equal(t, []any{"a", "b"}, keysOf(groups))
	assert.Equal(t, 2, groups.GetArray("a").Count())
}

func TestKeyByLastWins(t *testing.T) {
	got := people().KeyBy("city")
	assert.Equal(t, []any{"London", "Paris"}, keysOf(got))
	assert.Equal(t, "Carol", got.Get("London.name"))
}

func TestCountBy(t *testing.T) {
	got := collections.Of("a", "b", "a").CountBy()
	assert.Equal(t, 2, got.Get("a"))
	assert.Equal(t, 1, got.Get("b"))
	assert.Equal(t, 2, people().CountBy("city").Get("London"))
}

func TestPartition(t *testing.T) {
	pass, fail := collections.Of(1, 2, 3, 4).Partition(func(v any, _ omap.Key) bool { return v.(int) > 2 })
	assert.Equal(t, []any{2, 3}, keysOf(pass))
	assert.Equal(t, []any{0, 1}, keysOf(fail))
}

// ─────────────────────────────────────────────────────────────────────────────
// Aggregates
// ─────────────────────────────────────────────────────────────────────────────

func TestSum(t *testing.T) {
	assert.Equal(t, 6.0, collections.Of(1, "2", 3.0, "x").Sum())
	assert.Equal(t, 80.0, people().Sum("age"))
	assert.Equal(t, 3.0, collections.Of("a", "bb").Sum(func(v any) any { return len(v.(string)) }))
	assert.Equal(t, 0.0, collections.Empty().Sum())
}

func TestAvgMinMax(t *testing.T) {
	c := collections.Of(3, 1, 2)
	assert.Equal(t, 2.0, c.Avg())
	assert.Equal(t, 3, c.Max())
	assert.Equal(t, 1, c.Min())
	assert.Equal(t, 20, people().Min("age"))
	assert.Nil(t, collections.Empty().Max())
	assert.Equal(t, 0.0, collections.Empty().Avg())
}

// ─────────────────────────────────────────────────────────────────────────────
// Cleaning
// ─────────────────────────────────────────────────────────────────────────────

func TestCleanFalsy(t *testing.T) {
	c := collections.New(map[string]any{
		"a": 0,
		"b": "keep",
		"c": map[string]any{"d": "", "e": 1},
		"f": []any{},
	})
	c.Clean("", false)
	assert.Equal(t, []any{"b", "c", "f"}, keysOf(c))
	assert.Equal(t, []any{"e"}, keysOf(c.GetArray("c")))
}

func TestCleanSubstring(t *testing.T) {
	c := collections.Of("Hello world", "goodbye", "HELLO again", 42)
	c.Clean("hello", false)
	assert.Equal(t, []any{"goodbye", 42}, c.ToSlice())

	c = collections.Of("Hello", "hello")
	c.Clean("hello", true)
	assert.Equal(t, []any{"Hello"}, c.ToSlice())

	c = collections.Of(1042, 7)
	c.Clean("42", false)
	assert.Equal(t, []any{7}, c.ToSlice())
}

func TestCleanNestedKeepsStructure(t *testing.T) {
	c := collections.Empty().Put("logs.0", "debug: x").Put("logs.1", "info: y")
	c.Clean("DEBUG", false)
	logs := c.GetArray("logs")
	assert.Equal(t, []any{"info: y"}, logs.ToSlice())
	assert.True(t, strings.HasPrefix(logs.First(nil).(string), "info"))
}
