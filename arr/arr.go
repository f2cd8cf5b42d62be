package arr

import (
	"math/rand"
	"sort"

	"github.com/hasbyte1/go-collection/omap"
)

// ─────────────────────────────────────────────────────────────────────────────
// Slice helpers
// ─────────────────────────────────────────────────────────────────────────────

// Sort returns a sorted copy of items using less.
// The sort is stable: equal elements keep their original order.
func Sort[T any](items []T, less func(a, b T) bool) []T {
	out := make([]T, len(items))
	copy(out, items)
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// Chunk splits items into consecutive groups of size.
// The last group may contain fewer than size elements.
func Chunk[T any](items []T, size int) [][]T {
	if size <= 0 || len(items) == 0 {
		return [][]T{}
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for i := 0; i < len(items); i += size {
		end := min(i+size, len(items))
		chunk := make([]T, end-i)
		copy(chunk, items[i:end])
		chunks = append(chunks, chunk)
	}
	return chunks
}

// Reverse returns a reversed copy of items.
func Reverse[T any](items []T) []T {
	n := len(items)
	out := make([]T, n)
	for i, item := range items {
		out[n-1-i] = item
	}
	return out
}

// Shuffle returns a randomly shuffled copy of items.
func Shuffle[T any](items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	rand.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

// Sample returns n elements chosen at random without replacement, in the
// order they appear in items. n is clamped to [0, len(items)].
func Sample[T any](items []T, n int) []T {
	n = max(0, min(n, len(items)))
	picked := rand.Perm(len(items))[:n]
	sort.Ints(picked)
	out := make([]T, n)
	for i, idx := range picked {
		out[i] = items[idx]
	}
	return out
}

// Flatten collects every non-mapping leaf of v, depth first, into a list.
// Mapping-shaped values are walked recursively; see [Mapping].
func Flatten(v any) []any {
	out := make([]any, 0)
	var walk func(node any)
	walk = func(node any) {
		if m, ok := node.(*omap.Map); ok {
			for _, item := range m.All() {
				walk(item)
			}
			return
		}
		if m, ok := mappingView(node); ok {
			walk(m)
			return
		}
		out = append(out, node)
	}
	walk(v)
	return out
}
