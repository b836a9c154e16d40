package coll

import (
	"cmp"
	"iter"
	"maps"
	"slices"

	"github.com/ib-77/adt/pkg/adt"
)

// Contains reports whether any value of seq equals probe. probe is the left
// operand of adt.Equal.
func Contains[P, T any](probe P, seq iter.Seq[T]) bool {
	for v := range seq {
		if adt.Equal(probe, v) {
			return true
		}
	}
	return false
}

func In[P, T any](probe P, values []T) bool {
	return Contains(probe, slices.Values(values))
}

// Unique yields the pairs of seq whose value does not equal an earlier
// yielded value. Keys are kept as they are. Every range over the returned
// sequence ranges over seq again.
func Unique[K, V any](seq iter.Seq2[K, V]) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		var seen []V
		for k, v := range seq {
			if In(v, seen) {
				continue
			}
			seen = append(seen, v)

			if !yield(k, v) {
				return
			}
		}
	}
}

func UniqueValues[T any](seq iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var seen []T
		for v := range seq {
			if In(v, seen) {
				continue
			}
			seen = append(seen, v)

			if !yield(v) {
				return
			}
		}
	}
}

// Search returns the first key of seq whose value equals probe, or none.
func Search[P, K, V any](probe P, seq iter.Seq2[K, V]) adt.Option[K] {
	for k, v := range seq {
		if adt.Equal(probe, v) {
			return adt.Some(k)
		}
	}
	return adt.None[K]()
}

// SearchMap is Search over m in ascending key order.
func SearchMap[P any, K cmp.Ordered, V any](probe P, m map[K]V) adt.Option[K] {
	for _, k := range slices.Sorted(maps.Keys(m)) {
		if adt.Equal(probe, m[k]) {
			return adt.Some(k)
		}
	}
	return adt.None[K]()
}

// SliceEqual reports whether a and b have the same length and equal values
// at every index.
func SliceEqual[A, B any](a []A, b []B) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !adt.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// MapEqual reports whether a and b have the same keys and equal values
// under every key.
func MapEqual[K comparable, A, B any](a map[K]A, b map[K]B) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		w, ok := b[k]
		if !ok || !adt.Equal(v, w) {
			return false
		}
	}
	return true
}
