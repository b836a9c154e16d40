package adt

import (
	"reflect"
)

// Equal reports whether a equals b.
//
// If a has an Equal method of the Equatable shape, the answer is the one
// that method gives for b. When b is not of the type the method accepts,
// a and b are not equal.
//
// Otherwise a and b are equal when they share the same dynamic type and the
// same value. Comparable values are compared with ==, which makes pointers
// equal only to themselves. Slices, arrays, maps and structs are walked and
// every element, value or field is compared with Equal again, so nested
// pointers keep their identity and nested Equal methods are honoured. Nil
// and empty collections are equal. Values reached through unexported fields
// cannot have their methods called and are compared by value only.
func Equal(a, b any) bool {
	if !isNil(a) {
		if m, ok := equalMethod(a); ok {
			arg, ok := argumentOf(b, m.Type().In(0))
			if !ok {
				return false
			}
			return m.Call([]reflect.Value{arg})[0].Bool()
		}
	}

	return sameValue(a, b)
}

func sameValue(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return sameReflected(reflect.ValueOf(a), reflect.ValueOf(b))
}

// equalNested compares two values found inside a collection or struct.
func equalNested(x, y reflect.Value) bool {
	if x.CanInterface() && y.CanInterface() {
		return Equal(x.Interface(), y.Interface())
	}
	return sameReflected(x, y)
}

func sameReflected(x, y reflect.Value) bool {
	if x.Kind() == reflect.Interface {
		if x.IsNil() || y.IsNil() {
			return x.IsNil() && y.IsNil()
		}
		x, y = x.Elem(), y.Elem()
	}
	if x.Type() != y.Type() {
		return false
	}
	if x.Comparable() && y.Comparable() {
		return x.Equal(y)
	}

	switch x.Kind() {
	case reflect.Slice, reflect.Array:
		if x.Len() != y.Len() {
			return false
		}
		for i := range x.Len() {
			if !equalNested(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true
	case reflect.Map:
		if x.Len() != y.Len() {
			return false
		}
		for it := x.MapRange(); it.Next(); {
			w := y.MapIndex(it.Key())
			if !w.IsValid() || !equalNested(it.Value(), w) {
				return false
			}
		}
		return true
	case reflect.Struct:
		for i := range x.NumField() {
			if !equalNested(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true
	case reflect.Func:
		return x.IsNil() && y.IsNil()
	}
	return false
}
