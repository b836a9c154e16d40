package opt

import (
	"github.com/ib-77/adt/pkg/adt"
)

func Some[T any](value T) adt.Option[T] {
	return adt.Some(value)
}

func None[T any]() adt.Option[T] {
	return adt.None[T]()
}

func FromPtr[T any](value *T) adt.Option[T] {
	if value == nil {
		return adt.None[T]()
	}
	return adt.Some(*value)
}

// AndThen wraps fn(value) as some. fn is not called on none.
func AndThen[T, U any](input adt.Option[T], fn func(T) U) adt.Option[U] {
	if v, ok := input.Value(); ok {
		return adt.Some(fn(v))
	}
	return adt.None[U]()
}

// AndThenTo returns fn(value) as is. fn is not called on none.
func AndThenTo[T, U any](input adt.Option[T], fn func(T) adt.Option[U]) adt.Option[U] {
	if v, ok := input.Value(); ok {
		return fn(v)
	}
	return adt.None[U]()
}

func OrElseTo[T any](input adt.Option[T], fn func() adt.Option[T]) adt.Option[T] {
	return input.OrElseTo(fn)
}

// MapOr returns onSome(value), or defaultValue on none.
func MapOr[T, U any](input adt.Option[T], defaultValue U, onSome func(T) U) U {
	if v, ok := input.Value(); ok {
		return onSome(v)
	}
	return defaultValue
}

func MapOrElse[T, U any](input adt.Option[T], onNone func() U, onSome func(T) U) U {
	if v, ok := input.Value(); ok {
		return onSome(v)
	}
	return onNone()
}

func AsOkOr[T, E any](input adt.Option[T], err E) adt.Result[T, E] {
	return adt.AsOkOr(input, err)
}
