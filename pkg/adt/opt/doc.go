// Package opt contains the free-function side of adt.Option[T]: short-hand
// constructors and the combinators that change the payload type.
//
// Highlights:
// - Some/None: same as adt.Some/adt.None
// - FromPtr: some for a non-nil pointer, none for nil
// - AndThen: map the value (T -> U), none stays none
// - AndThenTo: chain lookups returning Option[U] without nesting
// - OrElseTo: fall back to another option when none
// - MapOr/MapOrElse: reduce to a concrete value
// - AsOkOr: convert to adt.Result[T, E]
package opt
