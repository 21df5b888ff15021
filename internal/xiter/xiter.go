package xiter

import (
	"cmp"
	"iter"
	"slices"
)

// Slice exposes a slice as an iterator sequence.
func Slice[T any](items []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}

// Collect gathers all values from a sequence.
func Collect[T any](seq iter.Seq[T]) []T {
	return slices.Collect(seq)
}

// Count returns how many values are yielded by a sequence.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Filter yields the values of seq for which keep returns true.
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range seq {
			if !keep(item) {
				continue
			}
			if !yield(item) {
				return
			}
		}
	}
}

// First returns the first value of seq matching match.
func First[T any](seq iter.Seq[T], match func(T) bool) (T, bool) {
	for item := range seq {
		if match(item) {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// GroupBy buckets the values of seq by key, preserving sequence order
// inside each bucket.
func GroupBy[K comparable, T any](seq iter.Seq[T], key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for item := range seq {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// SortedKeys yields map keys in deterministic sorted order.
func SortedKeys[K cmp.Ordered, V any](m map[K]V) iter.Seq[K] {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	slices.Sort(keys)
	return Slice(keys)
}
