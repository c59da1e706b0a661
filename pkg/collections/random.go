// Package collections provides generic slice helpers: random picking and
// shuffling with an injectable random source, chunking, de-duplication,
// recursive flattening and grouping.
package collections

import "math/rand/v2"

// Source yields uniformly distributed integers in [0, n).
// *rand.Rand from math/rand/v2 satisfies it, so tests can pass a seeded generator.
type Source interface {
	IntN(n int) int
}

type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// DefaultSource returns the process-wide math/rand/v2 generator.
func DefaultSource() Source {
	return globalSource{}
}

// Pick returns a uniformly random element of items using DefaultSource.
// The boolean is false when items is empty.
func Pick[T any](items []T) (T, bool) {
	return PickFrom(DefaultSource(), items)
}

// PickFrom is Pick with an explicit random source.
func PickFrom[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.IntN(len(items))], true
}

// Shuffle permutes items in place (Fisher-Yates) and returns the same slice.
func Shuffle[T any](items []T) []T {
	return ShuffleWith(DefaultSource(), items)
}

// ShuffleWith is Shuffle with an explicit random source.
func ShuffleWith[T any](src Source, items []T) []T {
	for i := len(items) - 1; i > 0; i-- {
		j := src.IntN(i + 1)
		items[i], items[j] = items[j], items[i]
	}
	return items
}
