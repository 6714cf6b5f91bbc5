package sortutil

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lessInt(a, b int) bool { return a < b }

func TestSort_Ints(t *testing.T) {
	tests := []struct {
		name     string
		input    []int
		expected []int
	}{
		{name: "already sorted", input: []int{1, 2, 3, 4}, expected: []int{1, 2, 3, 4}},
		{name: "reversed", input: []int{4, 3, 2, 1}, expected: []int{1, 2, 3, 4}},
		{name: "all equal", input: []int{4, 4, 4, 4}, expected: []int{4, 4, 4, 4}},
		{name: "duplicates", input: []int{3, 1, 3, 2, 1, 3}, expected: []int{1, 1, 2, 3, 3, 3}},
		{name: "negative", input: []int{0, -5, 7, -5, 2}, expected: []int{-5, -5, 0, 2, 7}},
		{name: "two elements", input: []int{2, 1}, expected: []int{1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := slices.Clone(tt.input)
			Sort(result, lessInt)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestSort_Empty(t *testing.T) {
	var empty []int
	Sort(empty, lessInt)
	assert.Empty(t, empty)

	empty = []int{}
	Sort(empty, lessInt)
	assert.Equal(t, []int{}, empty)
}

func TestSort_SingleElement(t *testing.T) {
	single := []int{42}
	Sort(single, lessInt)
	assert.Equal(t, []int{42}, single)
}

func TestSort_Chars(t *testing.T) {
	chars := []rune{'e', 'b', 'd', 'a', 'c'}
	Sort(chars, func(a, b rune) bool { return a < b })
	assert.Equal(t, []rune{'a', 'b', 'c', 'd', 'e'}, chars)
}

func TestSort_BigRandom(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for round := 0; round < 100; round++ {
		origin := make([]int, 1000)
		for i := range origin {
			origin[i] = r.IntN(100)
		}

		expected := slices.Clone(origin)
		slices.Sort(expected)

		Sort(origin, lessInt)
		require.Equal(t, expected, origin, "round %d", round)
	}
}

func TestSort_RandomStrings(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	strs := make([]string, 100)
	for i := range strs {
		strs[i] = string(rune('a' + r.IntN(26)))
	}

	Sort(strs, func(a, b string) bool { return a < b })
	assert.True(t, slices.IsSorted(strs))
}

// The output is ordered, a permutation of the input, and sorting it again keeps it ordered.
func TestSort_Properties(t *testing.T) {
	r := rand.New(rand.NewPCG(5, 6))
	for round := 0; round < 50; round++ {
		n := r.IntN(64)
		input := make([]int, n)
		for i := range input {
			input[i] = r.IntN(10) - 5
		}

		output := slices.Clone(input)
		Sort(output, lessInt)

		assert.True(t, slices.IsSorted(output), "not sorted: %v", output)

		want := slices.Clone(input)
		slices.Sort(want)
		assert.Equal(t, want, output, "not a permutation of %v", input)

		again := slices.Clone(output)
		Sort(again, lessInt)
		assert.Equal(t, output, again)
	}
}

type record struct {
	key   string
	label int
}

// Records with equal keys form one equivalence class: the keys end up ordered and
// every record survives, though their relative order may change.
func TestSort_EquivalenceClasses(t *testing.T) {
	records := []record{
		{"b", 1}, {"a", 2}, {"b", 3}, {"c", 4}, {"a", 5}, {"b", 6},
	}
	Sort(records, func(x, y record) bool { return x.key < y.key })

	keys := make([]string, len(records))
	labels := make([]int, len(records))
	for i, rec := range records {
		keys[i] = rec.key
		labels[i] = rec.label
	}
	assert.Equal(t, "aabbbc", strings.Join(keys, ""))
	assert.ElementsMatch(t, []int{1, 2, 3, 4, 5, 6}, labels)
}

func TestSortWithRand_Reproducible(t *testing.T) {
	input := []record{{"x", 1}, {"x", 2}, {"y", 3}, {"x", 4}, {"w", 5}, {"x", 6}}
	byKey := func(x, y record) bool { return x.key < y.key }

	first := slices.Clone(input)
	SortWithRand(first, byKey, rand.New(rand.NewPCG(7, 7)))
	second := slices.Clone(input)
	SortWithRand(second, byKey, rand.New(rand.NewPCG(7, 7)))

	assert.Equal(t, first, second)
	assert.Equal(t, "w", first[0].key)
	assert.Equal(t, "y", first[len(first)-1].key)
}

func TestSortWithRand_NilSource(t *testing.T) {
	values := []int{3, 2, 1}
	SortWithRand(values, lessInt, nil)
	assert.Equal(t, []int{1, 2, 3}, values)
}

func TestPartition_Bounds(t *testing.T) {
	values := []int{5, 1, 5, 9, 5, 0}
	left, right := partition(values, 0, len(values), 0, lessInt)

	assert.Equal(t, 2, left)
	assert.Equal(t, 5, right)
	for i := 0; i < left; i++ {
		assert.Less(t, values[i], 5)
	}
	for i := left; i < right; i++ {
		assert.Equal(t, 5, values[i])
	}
	for i := right; i < len(values); i++ {
		assert.Greater(t, values[i], 5)
	}
}

func BenchmarkSort(b *testing.B) {
	r := rand.New(rand.NewPCG(9, 9))
	input := make([]int, 10000)
	for i := range input {
		input[i] = r.IntN(1000)
	}
	work := make([]int, len(input))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(work, input)
		Sort(work, lessInt)
	}
}
