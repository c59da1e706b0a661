package collections

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sequenceSource returns the queued values in order, modulo n.
type sequenceSource struct {
	values []int
	calls  []int
}

func (s *sequenceSource) IntN(n int) int {
	s.calls = append(s.calls, n)
	v := s.values[0]
	s.values = s.values[1:]
	return v % n
}

func TestPick(t *testing.T) {
	t.Run("empty slice", func(t *testing.T) {
		_, ok := Pick([]string{})
		assert.False(t, ok)
	})

	t.Run("uses source index", func(t *testing.T) {
		src := &sequenceSource{values: []int{2}}
		v, ok := PickFrom(src, []string{"a", "b", "c"})

		require.True(t, ok)
		assert.Equal(t, "c", v)
		assert.Equal(t, []int{3}, src.calls)
	})

	t.Run("default source stays in range", func(t *testing.T) {
		items := []int{10, 20, 30}
		for range 100 {
			v, ok := Pick(items)
			require.True(t, ok)
			assert.Contains(t, items, v)
		}
	})
}

func TestShuffle(t *testing.T) {
	t.Run("is a permutation returned in place", func(t *testing.T) {
		items := []int{1, 2, 3, 4, 5, 6, 7, 8}
		out := Shuffle(items)

		assert.Same(t, &items[0], &out[0])
		sorted := slices.Clone(out)
		slices.Sort(sorted)
		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, sorted)
	})

	t.Run("deterministic with seeded source", func(t *testing.T) {
		a := ShuffleWith(rand.New(rand.NewPCG(7, 11)), []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
		b := ShuffleWith(rand.New(rand.NewPCG(7, 11)), []int{1, 2, 3, 4, 5, 6, 7, 8, 9})
		assert.Equal(t, a, b)
	})

	t.Run("fisher-yates bounds", func(t *testing.T) {
		src := &sequenceSource{values: []int{0, 0, 0}}
		ShuffleWith(src, []string{"a", "b", "c", "d"})
		assert.Equal(t, []int{4, 3, 2}, src.calls)
	})

	t.Run("empty and single", func(t *testing.T) {
		assert.Empty(t, Shuffle([]int{}))
		assert.Equal(t, []int{1}, Shuffle([]int{1}))
	})
}

func TestChunk(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		size  int
		want  [][]int
	}{
		{name: "even split", items: []int{1, 2, 3, 4}, size: 2, want: [][]int{{1, 2}, {3, 4}}},
		{name: "remainder", items: []int{1, 2, 3, 4, 5}, size: 2, want: [][]int{{1, 2}, {3, 4}, {5}}},
		{name: "size larger than input", items: []int{1, 2}, size: 10, want: [][]int{{1, 2}}},
		{name: "empty input", items: []int{}, size: 3, want: [][]int{}},
		{name: "zero size", items: []int{1, 2}, size: 0, want: nil},
		{name: "negative size", items: []int{1, 2}, size: -1, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Chunk(tt.items, tt.size))
		})
	}
}

func TestChunk_AppendDoesNotClobberNeighbour(t *testing.T) {
	items := []int{1, 2, 3, 4}
	chunks := Chunk(items, 2)

	chunks[0] = append(chunks[0], 99)
	assert.Equal(t, []int{3, 4}, chunks[1])
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Unique([]int{1, 1, 2}))
	assert.Equal(t, []string{"b", "a", "c"}, Unique([]string{"b", "a", "b", "c", "a"}))
	assert.Empty(t, Unique([]int(nil)))
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name  string
		items []any
		want  []any
	}{
		{
			name:  "nested numbers",
			items: []any{1, []any{2, []any{3, 4}}, 5},
			want:  []any{1, 2, 3, 4, 5},
		},
		{
			name:  "already flat",
			items: []any{"a", "b"},
			want:  []any{"a", "b"},
		},
		{
			name:  "empty nested slices vanish",
			items: []any{[]any{}, 1, []any{[]any{}}},
			want:  []any{1},
		},
		{
			name:  "typed slices are kept as elements",
			items: []any{[]int{1, 2}, 3},
			want:  []any{[]int{1, 2}, 3},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Flatten(tt.items))
		})
	}
}

func TestGroupBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}

	groups := GroupBy(words, func(w string) string { return strings.ToUpper(w[:1]) })

	assert.Equal(t, map[string][]string{
		"A": {"apple", "avocado"},
		"B": {"banana", "blueberry"},
		"C": {"cherry"},
	}, groups)
}

func TestGroupByField(t *testing.T) {
	records := []map[string]any{
		{"name": "ann", "team": "red"},
		{"name": "bob", "team": "blue"},
		{"name": "cy", "team": "red"},
		{"name": "dee"},
	}

	groups := GroupByField(records, "team")

	require.Len(t, groups, 3)
	assert.Equal(t, []map[string]any{records[0], records[2]}, groups["red"])
	assert.Equal(t, []map[string]any{records[1]}, groups["blue"])
	assert.Equal(t, []map[string]any{records[3]}, groups[nil])
}

func TestGroupByField_NestedValues(t *testing.T) {
	records := []map[string]any{
		{"id": 1.0, "tags": []any{"a", "b"}},
		{"id": 2.0, "tags": map[string]any{"x": 1.0}},
		{"id": 3.0, "tags": []any{"a", "b"}},
		{"id": 4.0, "tags": [1]any{[]any{"z"}}},
		{"id": 5.0, "tags": "a"},
	}

	var groups map[any][]map[string]any
	require.NotPanics(t, func() {
		groups = GroupByField(records, "tags")
	})

	require.Len(t, groups, 4)
	assert.Equal(t, []map[string]any{records[0], records[2]}, groups[`["a","b"]`])
	assert.Equal(t, []map[string]any{records[1]}, groups[`{"x":1}`])
	assert.Equal(t, []map[string]any{records[3]}, groups[`[["z"]]`])
	assert.Equal(t, []map[string]any{records[4]}, groups["a"])
}
