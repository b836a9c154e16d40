package adt

// Equatable is implemented by values that know how to compare themselves
// with a value of type U. The implementer picks U; Equal treats an operand
// that is not a U as unequal.
type Equatable[U any] interface {
	// Equal reports whether the receiver equals other
	Equal(other U) bool
}
