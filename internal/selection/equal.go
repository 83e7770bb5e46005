package selection

import (
	"math"
	"reflect"
	"strconv"
)

// Equal reports whether a and b are structurally equal.
//
// Unlike reflect.DeepEqual it treats values the way item data arrives from
// config files and hosts: numbers compare by value across kinds (1, int64(1)
// and 1.0 are equal), nil and empty slices or maps are equal, pointers are
// followed, and maps with different key types are compared entry by entry.
func Equal(a, b any) bool {
	return deepEqual(reflect.ValueOf(a), reflect.ValueOf(b))
}

func deepEqual(a, b reflect.Value) bool {
	a, b = indirect(a), indirect(b)
	if !a.IsValid() || !b.IsValid() {
		return a.IsValid() == b.IsValid()
	}

	if isNumber(a.Kind()) && isNumber(b.Kind()) {
		return numbersEqual(a, b)
	}

	switch a.Kind() {
	case reflect.String:
		return b.Kind() == reflect.String && a.String() == b.String()

	case reflect.Bool:
		return b.Kind() == reflect.Bool && a.Bool() == b.Bool()

	case reflect.Slice, reflect.Array:
		if b.Kind() != reflect.Slice && b.Kind() != reflect.Array {
			return false
		}
		if a.Len() != b.Len() {
			return false
		}
		for i := 0; i < a.Len(); i++ {
			if !deepEqual(a.Index(i), b.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Map:
		if b.Kind() != reflect.Map || a.Len() != b.Len() {
			return false
		}
		return mapsEqual(a, b)

	case reflect.Struct:
		if a.Type() != b.Type() {
			return false
		}
		for i := 0; i < a.NumField(); i++ {
			if !deepEqual(a.Field(i), b.Field(i)) {
				return false
			}
		}
		return true

	case reflect.Func:
		// Only nil funcs compare equal, same as reflect.DeepEqual
		return b.Kind() == reflect.Func && a.IsNil() && b.IsNil()

	case reflect.Chan, reflect.UnsafePointer:
		return a.Kind() == b.Kind() && a.Pointer() == b.Pointer()
	}

	if a.Type() != b.Type() || !a.CanInterface() || !b.CanInterface() {
		return false
	}
	return reflect.DeepEqual(a.Interface(), b.Interface())
}

// indirect unwraps interfaces and pointers. Nil interfaces and pointers
// become the invalid Value; nil slices and maps stay valid so they compare
// equal to empty ones.
func indirect(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}

func mapsEqual(a, b reflect.Value) bool {
	sameKeys := a.Type().Key() == b.Type().Key()
	iter := a.MapRange()
	for iter.Next() {
		var other reflect.Value
		if sameKeys {
			other = b.MapIndex(iter.Key())
		} else {
			other = lookupKey(b, iter.Key())
		}
		if !other.IsValid() || !deepEqual(iter.Value(), other) {
			return false
		}
	}
	return true
}

func lookupKey(m, key reflect.Value) reflect.Value {
	iter := m.MapRange()
	for iter.Next() {
		if deepEqual(iter.Key(), key) {
			return iter.Value()
		}
	}
	return reflect.Value{}
}

func isNumber(k reflect.Kind) bool {
	return isSigned(k) || isUnsigned(k) || k == reflect.Float32 || k == reflect.Float64
}

func isSigned(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isUnsigned(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

func numbersEqual(a, b reflect.Value) bool {
	ak, bk := a.Kind(), b.Kind()
	switch {
	case isSigned(ak) && isSigned(bk):
		return a.Int() == b.Int()
	case isUnsigned(ak) && isUnsigned(bk):
		return a.Uint() == b.Uint()
	case isSigned(ak) && isUnsigned(bk):
		return a.Int() >= 0 && uint64(a.Int()) == b.Uint()
	case isUnsigned(ak) && isSigned(bk):
		return b.Int() >= 0 && a.Uint() == uint64(b.Int())
	}
	return toFloat(a) == toFloat(b)
}

func toFloat(v reflect.Value) float64 {
	switch {
	case isSigned(v.Kind()):
		return float64(v.Int())
	case isUnsigned(v.Kind()):
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

// isComposite reports whether v is an object-like value that must be matched
// structurally rather than through its string form.
func isComposite(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.IsValid() && rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	if !rv.IsValid() {
		return false
	}
	switch rv.Kind() {
	case reflect.Map, reflect.Slice, reflect.Array, reflect.Struct, reflect.Func, reflect.Pointer, reflect.Chan:
		return true
	}
	return false
}

// present reports whether a key is usable for matching. Nil, the empty
// string, false and zero (or NaN) do not count as a key.
func present(k any) bool {
	rv := indirect(reflect.ValueOf(k))
	if !rv.IsValid() {
		return false
	}
	switch {
	case rv.Kind() == reflect.String:
		return rv.String() != ""
	case rv.Kind() == reflect.Bool:
		return rv.Bool()
	case isSigned(rv.Kind()):
		return rv.Int() != 0
	case isUnsigned(rv.Kind()):
		return rv.Uint() != 0
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		f := rv.Float()
		return f != 0 && !math.IsNaN(f)
	}
	return true
}

// unsetString is the string form of a Target whose value was never supplied.
const unsetString = "undefined"

// stringify renders scalar values so that "2", 2 and 2.0 share one form.
func stringify(v any) string {
	rv := indirect(reflect.ValueOf(v))
	if !rv.IsValid() {
		return "null"
	}
	switch {
	case rv.Kind() == reflect.String:
		return rv.String()
	case rv.Kind() == reflect.Bool:
		return strconv.FormatBool(rv.Bool())
	case isSigned(rv.Kind()):
		return strconv.FormatInt(rv.Int(), 10)
	case isUnsigned(rv.Kind()):
		return strconv.FormatUint(rv.Uint(), 10)
	case rv.Kind() == reflect.Float32 || rv.Kind() == reflect.Float64:
		return formatFloat(rv.Float())
	}
	if rv.CanInterface() {
		if s, ok := rv.Interface().(interface{ String() string }); ok {
			return s.String()
		}
	}
	return rv.Type().String()
}

func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.Abs(f) >= 1e21:
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
