package adt

import "fmt"

// Result holds either a success value of type T or a failure value of type
// E. The zero Result is an Err holding the zero E.
type Result[T, E any] struct {
	result T
	err    E
	isOk   bool
}

func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{
		result: value,
		isOk:   true,
	}
}

func Err[T, E any](value E) Result[T, E] {
	return Result[T, E]{
		err:  value,
		isOk: false,
	}
}

func (r Result[T, E]) IsOk() bool {
	return r.isOk
}

func (r Result[T, E]) IsErr() bool {
	return !r.isOk
}

// Equal reports whether both results are on the same side with payloads
// equal under Equal. An Ok never equals an Err.
func (r Result[T, E]) Equal(other Result[T, E]) bool {
	if r.isOk != other.isOk {
		return false
	}
	if r.isOk {
		return Equal(r.result, other.result)
	}
	return Equal(r.err, other.err)
}

// Get returns the success value. It panics with ErrErrValue on an Err.
func (r Result[T, E]) Get() T {
	if !r.isOk {
		misuse(ErrErrValue)
	}
	return r.result
}

// GetErr returns the failure value. It panics with ErrOkValue on an Ok.
func (r Result[T, E]) GetErr() E {
	if r.isOk {
		misuse(ErrOkValue)
	}
	return r.err
}

func (r Result[T, E]) GetOr(value T) T {
	if r.isOk {
		return r.result
	}
	return value
}

// GetOrNull returns a pointer to a copy of the value, or nil on an err.
func (r Result[T, E]) GetOrNull() *T {
	if !r.isOk {
		return nil
	}
	v := r.result
	return &v
}

func (r Result[T, E]) GetOrElse(fn func(err E) T) T {
	if r.isOk {
		return r.result
	}
	return fn(r.err)
}

// AsOk returns the success value as some, or none for an Err.
func (r Result[T, E]) AsOk() Option[T] {
	if r.isOk {
		return Some(r.result)
	}
	return None[T]()
}

// AsErr returns the failure value as some, or none for an Ok.
func (r Result[T, E]) AsErr() Option[E] {
	if r.isOk {
		return None[E]()
	}
	return Some(r.err)
}

func (r Result[T, E]) String() string {
	if r.isOk {
		return fmt.Sprintf("ok(%v)", r.result)
	}
	return fmt.Sprintf("err(%v)", r.err)
}
