// Package res contains the free-function side of adt.Result[T, E]:
// short-hand constructors, the combinators that change a payload type, and
// bridges to functions returning (T, error).
//
// Highlights:
// - Ok/Err: same as adt.Ok/adt.Err
// - AndThen/AndThenTo: move the success value on, failures pass untouched
// - OrElse/OrElseTo: map or recover the failure value, successes pass untouched
// - MapOr/MapOrElse: reduce to a concrete value
// - Try/FromPair/Unpack: convert between (T, error) and Result[T, error]
package res
