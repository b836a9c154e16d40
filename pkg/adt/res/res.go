package res

import (
	"github.com/ib-77/adt/pkg/adt"
)

func Ok[T, E any](value T) adt.Result[T, E] {
	return adt.Ok[T, E](value)
}

func Err[T, E any](value E) adt.Result[T, E] {
	return adt.Err[T, E](value)
}

// AndThen wraps onOk(value) as Ok. onOk is not called on an Err.
func AndThen[T, U, E any](input adt.Result[T, E], onOk func(T) U) adt.Result[U, E] {
	if input.IsOk() {
		return adt.Ok[U, E](onOk(input.Get()))
	}
	return adt.Err[U](input.GetErr())
}

// AndThenTo returns onOk(value) as is. onOk is not called on an Err.
func AndThenTo[T, U, E any](input adt.Result[T, E], onOk func(T) adt.Result[U, E]) adt.Result[U, E] {
	if input.IsOk() {
		return onOk(input.Get())
	}
	return adt.Err[U](input.GetErr())
}

// OrElse wraps onErr(err) as Err. onErr is not called on an Ok.
func OrElse[T, E, R any](input adt.Result[T, E], onErr func(E) R) adt.Result[T, R] {
	if input.IsOk() {
		return adt.Ok[T, R](input.Get())
	}
	return adt.Err[T](onErr(input.GetErr()))
}

// OrElseTo returns onErr(err) as is. onErr is not called on an Ok.
func OrElseTo[T, E, R any](input adt.Result[T, E], onErr func(E) adt.Result[T, R]) adt.Result[T, R] {
	if input.IsOk() {
		return adt.Ok[T, R](input.Get())
	}
	return onErr(input.GetErr())
}

// MapOr returns onOk(value), or defaultValue on an Err.
func MapOr[T, E, U any](input adt.Result[T, E], defaultValue U, onOk func(T) U) U {
	if input.IsOk() {
		return onOk(input.Get())
	}
	return defaultValue
}

func MapOrElse[T, E, U any](input adt.Result[T, E], onErr func(E) U, onOk func(T) U) U {
	if input.IsOk() {
		return onOk(input.Get())
	}
	return onErr(input.GetErr())
}

// Try calls fn and turns a non-nil error into an Err.
func Try[T any](fn func() (T, error)) adt.Result[T, error] {
	value, err := fn()
	return FromPair(value, err)
}

func FromPair[T any](value T, err error) adt.Result[T, error] {
	if err != nil {
		return adt.Err[T](err)
	}
	return adt.Ok[T, error](value)
}

// Unpack returns the (T, error) pair held by input. The value is the zero T
// for an Err.
func Unpack[T any](input adt.Result[T, error]) (T, error) {
	if input.IsOk() {
		return input.Get(), nil
	}
	var zero T
	return zero, input.GetErr()
}
