package adt

import "fmt"

// Option holds either some value of type T or none. The zero Option is none.
type Option[T any] struct {
	value  T
	isSome bool
}

// Some always returns the present variant, whatever value is.
func Some[T any](value T) Option[T] {
	return Option[T]{
		value:  value,
		isSome: true,
	}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

func (o Option[T]) IsSome() bool {
	return o.isSome
}

func (o Option[T]) IsNone() bool {
	return !o.isSome
}

// Equal reports whether both options are none, or both are some with
// values equal under Equal.
func (o Option[T]) Equal(other Option[T]) bool {
	if o.isSome != other.isSome {
		return false
	}
	if !o.isSome {
		return true
	}
	return Equal(o.value, other.value)
}

// OrElseTo returns o if it holds a value, otherwise fn().
func (o Option[T]) OrElseTo(fn func() Option[T]) Option[T] {
	if o.isSome {
		return o
	}
	return fn()
}

// Get returns the value. It panics with ErrNoneValue on none.
func (o Option[T]) Get() T {
	if !o.isSome {
		misuse(ErrNoneValue)
	}
	return o.value
}

func (o Option[T]) GetOr(value T) T {
	if o.isSome {
		return o.value
	}
	return value
}

// GetOrNull returns a pointer to a copy of the value, or nil on none.
func (o Option[T]) GetOrNull() *T {
	if !o.isSome {
		return nil
	}
	v := o.value
	return &v
}

func (o Option[T]) GetOrElse(fn func() T) T {
	if o.isSome {
		return o.value
	}
	return fn()
}

// Value returns the value and whether it is present.
func (o Option[T]) Value() (T, bool) {
	return o.value, o.isSome
}

func (o Option[T]) String() string {
	if o.isSome {
		return fmt.Sprintf("some(%v)", o.value)
	}
	return "none"
}

// AsOkOr converts some into Ok and none into Err(err).
func AsOkOr[T, E any](o Option[T], err E) Result[T, E] {
	if o.isSome {
		return Ok[T, E](o.value)
	}
	return Err[T](err)
}
