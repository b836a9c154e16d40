package adt

import "github.com/pkg/errors"

// ErrMisuse is matched by every value an accessor panics with when it is
// called on the wrong variant. It is never returned as an ordinary error.
var ErrMisuse = errors.New("accessor called on the wrong variant")

var (
	ErrNoneValue error = misuseError(`called on a "none" value`)
	ErrErrValue  error = misuseError(`called on an "err" value`)
	ErrOkValue   error = misuseError(`called on an "ok" value`)
)

type misuseError string

func (e misuseError) Error() string {
	return string(e)
}

func (e misuseError) Is(target error) bool {
	return target == ErrMisuse
}

// IsMisuse reports whether a value recovered from a panic signals an
// accessor called on the wrong variant.
func IsMisuse(recovered any) bool {
	err, ok := recovered.(error)
	return ok && errors.Is(err, ErrMisuse)
}

func misuse(err error) {
	panic(errors.WithStack(err))
}
