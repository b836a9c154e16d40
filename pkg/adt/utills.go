package adt

import "reflect"

var boolType = reflect.TypeFor[bool]()

func isNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// equalMethod returns the bound Equal method of v if it has the Equatable
// shape: exactly one parameter and a single bool result.
func equalMethod(v any) (reflect.Value, bool) {
	m := reflect.ValueOf(v).MethodByName("Equal")
	if !m.IsValid() {
		return reflect.Value{}, false
	}

	t := m.Type()
	if t.NumIn() != 1 || t.IsVariadic() || t.NumOut() != 1 || t.Out(0) != boolType {
		return reflect.Value{}, false
	}
	return m, true
}

// argumentOf prepares v as an argument of type t. It reports false when v
// cannot be passed as a t.
func argumentOf(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		if t.Kind() == reflect.Interface {
			return reflect.Zero(t), true
		}
		return reflect.Value{}, false
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}
	return rv, true
}
