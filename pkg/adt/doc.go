// Package adt contains the two container types Option[T] and Result[T, E]
// and the equality protocol both of them are built on.
//
// Highlights:
// - Some/None: construct Option[T]
// - Ok/Err: construct Result[T, E]
// - Equatable/Equal: opt-in comparison used by every Equal method here
// - Get/GetErr: accessors that panic with ErrMisuse on the wrong variant
// - AsOkOr, Result.AsOk, Result.AsErr: conversions between the two types
//
// Combinators that change the payload type (AndThen, AndThenTo, MapOr, ...)
// live in the opt and res packages, since methods cannot declare their own
// type parameters.
package adt
