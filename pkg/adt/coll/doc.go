// Package coll provides sequence, slice and map helpers that compare
// elements with adt.Equal instead of ==.
//
// - Contains/In: membership test
// - Unique/UniqueValues: lazy de-duplication keeping the first occurrence
// - Search/SearchMap: first key holding a value, as adt.Option[K]
// - SliceEqual/MapEqual: same keys and pairwise equal values
package coll
