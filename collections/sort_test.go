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
// Sorting
// ─────────────────────────────────────────────────────────────────────────────

func TestSortKeepsKeys(t *testing.T) {
	c := collections.Of(3, 1, 2)
	assert.Same(t, c, c.Sort(nil))
	assert.Equal(t, []any{1, 2, 3}, c.ToSlice())
	assert.Equal(t, []any{1, 2, 0}, keysOf(c))

	c.Sort(func(a, b any) int { return b.(int) - a.(int) })
	assert.Equal(t, []any{3, 2, 1}, c.ToSlice())
}

func TestSortByIsStable(t *testing.T) {
	c := people().SortBy("age")
	assert.Equal(t, []any{"Bob", "Alice", "Carol"}, c.Pluck("name").ToSlice())
	assert.Equal(t, []any{1, 0, 2}, keysOf(c))

	desc := people().SortByDesc("age")
	assert.Equal(t, []any{"Alice", "Carol", "Bob"}, desc.Pluck("name").ToSlice())
}

func TestSortByFlags(t *testing.T) {
	files := collections.Of("img12", "IMG10", "img2")
	files.SortBy(func(v any) any { return v }, arr.SortNatural, arr.SortFlagCase)
	assert.Equal(t, []any{"img2", "IMG10", "img12"}, files.ToSlice())

	files.SortBy(func(v any) any { return v }, arr.SortString)
	assert.Equal(t, []any{"IMG10", "img12", "img2"}, files.ToSlice())

	nums := collections.Of("10", "9", "100")
	nums.SortBy(func(v any) any { return v }, arr.SortNumeric)
	assert.Equal(t, []any{"9", "10", "100"}, nums.ToSlice())
}

func TestSortKeys(t *testing.T) {
	c := collections.Empty().Put("b", 1).Put("a", 2).Put("c", 3)
	assert.Equal(t, []any{"a", "b", "c"}, keysOf(c.SortKeys()))
	assert.Equal(t, []any{"c", "b", "a"}, keysOf(c.SortKeys(true)))
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestReverse(t *testing.T) {
	c := collections.Of(1, 2).Put("k", "v")
	r := c.Reverse()
	assert.Equal(t, []any{"v", 2, 1}, r.ToSlice())
	assert.Equal(t, []any{"k", 0, 1}, keysOf(r))
	assert.Equal(t, []any{1, 2, "v"}, c.ToSlice())
}

func TestShuffleKeepsValues(t *testing.T) {
	c := collections.Of(1, 2, 3, 4, 5).Put("k", 6)
	c.Shuffle()
	assert.Equal(t, 6, c.Count())
	assert.ElementsMatch(t, []any{1, 2, 3, 4, 5, 6}, c.ToSlice())
	assert.Equal(t, []any{0, 1, 2, 3, 4, 5}, keysOf(c))
}

func TestRandomAlwaysReturnsCollection(t *testing.T) {
	c := collections.New(map[string]any{"a": 1, "b": 2, "c": 3})

	one := c.Random()
	require.Equal(t, 1, one.Count())

	two := c.Random(2)
	require.Equal(t, 2, two.Count())
	keys := keysOf(two)
	for _, k := range keys {
		assert.True(t, c.Has(k.(string)))
	}
	assert.True(t, keys[0].(string) < keys[1].(string), "picked entries keep source order")

	assert.Equal(t, 3, c.Random(10).Count())
	assert.True(t, c.Random(0).IsEmpty())
	assert.True(t, collections.Empty().Random().IsEmpty())
}

// ─────────────────────────────────────────────────────────────────────────────
// Slicing
// ─────────────────────────────────────────────────────────────────────────────

func TestSlice(t *testing.T) {
	c := collections.Of("a", "b", "c", "d", "e")
	assert.Equal(t, []any{"c", "d", "e"}, c.Slice(2).ToSlice())
	assert.Equal(t, []any{"b", "c"}, c.Slice(1, 2).ToSlice())
	assert.Equal(t, []any{"d", "e"}, c.Slice(-2).ToSlice())
	assert.Equal(t, []any{"b", "c"}, c.Slice(1, -2).ToSlice())
	assert.True(t, c.Slice(9).IsEmpty())
	assert.Equal(t, []any{0, 1}, keysOf(c.Slice(3)))
	assert.Equal(t, []any{3, 4}, keysOf(c.SlicePreserveKeys(3)))
}

func TestTakeSkipForPage(t *testing.T) {
	c := collections.Of(1, 2, 3, 4, 5)
	assert.Equal(t, []any{1, 2}, c.Take(2).ToSlice())
	assert.Equal(t, []any{4, 5}, c.Take(-2).ToSlice())
	assert.Equal(t, []any{4, 5}, c.Skip(3).ToSlice())
	assert.Equal(t, []any{3, 4}, c.ForPage(2, 2).ToSlice())
	assert.Equal(t, []any{5}, c.ForPage(3, 2).ToSlice())
}

func TestChunk(t *testing.T) {
	c := collections.Of(1, 2, 3, 4, 5)
	chunks := c.Chunk(2, false)
	require.Equal(t, 3, chunks.Count())

	last, ok := chunks.Last(nil).(*collections.Collection)
	require.True(t, ok)
	assert.Equal(t, []any{5}, last.ToSlice())
	assert.Equal(t, []any{0}, keysOf(last))

	kept := c.Chunk(2, true).Last(nil).(*collections.Collection)
	assert.Equal(t, []any{4}, keysOf(kept))

	assert.True(t, c.Chunk(0, false).IsEmpty())
}

func TestSplice(t *testing.T) {
	c := collections.Of("a", "b", "c", "d")
	removed := c.Splice(1, 2, "X")
	assert.Equal(t, []any{"b", "c"}, removed.ToSlice())
	assert.Equal(t, []any{"a", "X", "d"}, c.ToSlice())
	assert.Equal(t, []any{0, 1, 2}, keysOf(c))
}

// ─────────────────────────────────────────────────────────────────────────────
// Stack and queue operations
// ─────────────────────────────────────────────────────────────────────────────

func TestPushPop(t *testing.T) {
	c := collections.Of(1)
	assert.Same(t, c, c.Push(2, 3))
	assert.Equal(t, 3, c.Pop())
	c.Push(4)
	assert.Equal(t, []any{0, 1, 2}, keysOf(c), "Pop releases the popped index")
	assert.Nil(t, collections.Empty().Pop())
}

func TestPrependRenumbers(t *testing.T) {
	c := collections.Of("b", "c").Put("k", "v")
	c.Prepend("a")
	assert.Equal(t, []any{"a", "b", "c", "v"}, c.ToSlice())
	assert.Equal(t, []any{0, 1, 2, "k"}, keysOf(c))
}

func TestShift(t *testing.T) {
	c := collections.Of("a", "b", "c")
	assert.Equal(t, "a", c.Shift())
	assert.Equal(t, []any{0, 1}, keysOf(c))
	assert.Nil(t, collections.Empty().Shift())
}

// ─────────────────────────────────────────────────────────────────────────────
// Set operations
// ─────────────────────────────────────────────────────────────────────────────

func TestUniqueExample(t *testing.T) {
	got := collections.Of(1, 2, 3, 2).Unique()
	assert.Equal(t, []any{0, 1, 2}, keysOf(got))
	assert.Equal(t, []any{1, 2, 3}, got.Values().ToSlice())
}

func TestUniqueByPath(t *testing.T) {
	got := people().Unique("city")
	assert.Equal(t, []any{"Alice", "Bob"}, got.Pluck("name").ToSlice())
}

func TestUniqueComparesLoosely(t *testing.T) {
	got := collections.Of(1, "1", true, omap.FromValues(1), []any{1})
	assert.Equal(t, 2, got.Unique().Count())
}

func TestDiffAndIntersect(t *testing.T) {
	c := collections.Of(1, 2, 3, 4)
	diff := c.Diff([]any{2, "4"})
	assert.Equal(t, []any{1, 3}, diff.ToSlice())
	assert.Equal(t, []any{0, 2}, keysOf(diff))

	inter := c.Intersect(collections.Of(3, 4, 5))
	assert.Equal(t, []any{3, 4}, inter.ToSlice())
	assert.Equal(t, []any{2, 3}, keysOf(inter))
}

func TestDiffKeysAndIntersectKeys(t *testing.T) {
	c := collections.New(map[string]any{"a": 1, "b": 2, "c": 3})
	other := map[string]any{"b": 0}
	assert.Equal(t, []any{"a", "c"}, keysOf(c.DiffKeys(other)))
	assert.Equal(t, []any{"b"}, keysOf(c.IntersectKeys(other)))
}

func TestMerge(t *testing.T) {
	c := collections.Of("x", "y").Put("k", 1)
	got := c.Merge(map[string]any{"k": 2, "0": "z"})
	assert.Equal(t, []any{0, 1, "k", 2}, keysOf(got))
	assert.Equal(t, []any{"x", "y", 2, "z"}, got.ToSlice())
}

func TestUnionAndCombine(t *testing.T) {
	u := collections.Empty().Put("a", 1).Union(map[string]any{"a": 9, "b": 2})
	assert.Equal(t, []any{1, 2}, u.ToSlice())

	comb := collections.Of("name", "age").Combine([]any{"Alice", 30})
	assert.Equal(t, "Alice", comb.Get("name"))
	assert.Equal(t, 30, comb.Get("age"))
}

func TestFlip(t *testing.T) {
	c := collections.New(map[string]any{"a": "x", "b": 2, "c": 1.5})
	got := c.Flip()
	assert.Equal(t, []any{"x", 2}, keysOf(got))
	assert.Equal(t, []any{"a", "b"}, got.ToSlice())
}

func TestCollapseAndFlatten(t *testing.T) {
	c := collections.Of([]any{1, 2}, collections.Of(3), "skip", []any{[]any{4}})
	collapsed := c.Collapse()
	assert.Equal(t, 4, collapsed.Count())
	assert.Equal(t, []any{0, 1, 2, 3}, keysOf(collapsed))

	flat := c.Flatten()
	assert.Equal(t, []any{1, 2, 3, "skip", 4}, flat.ToSlice())
}

func TestImplodeAfterSort(t *testing.T) {
	got := collections.Of("b", "c", "a").Sort(func(a, b any) int {
		return strings.Compare(a.(string), b.(string))
	}).Implode("")
	assert.Equal(t, "abc", got)
}
