package ordering

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/kabu1204/go-views/types"
)

// Derived returns the member-wise comparator of T: fields are compared in
// declaration order, embedded structs in the position they are embedded,
// arrays element by element and nested arrays row-major. A field whose type
// implements Comparable compares through its own Compare method; T's own
// Compare method is not consulted.
//
// Derived panics on the first comparison if T holds a kind it cannot order,
// such as a map, a func or a pointer.
func Derived[T any]() Comparator[T] {
	return func(a, b T) Ordering {
		return compareMembers(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
	}
}

// ByField compares the values found at a dotted field path, for example
// "Inner.Value". ByField panics if the path does not exist on T. A value
// whose path runs through a nil pointer sorts before every value that has
// the field.
func ByField[T any](fieldPath string) Comparator[T] {
	indices, ok := types.TypePath2Index(reflect.TypeFor[T](), fieldPath)
	if !ok {
		panic(fmt.Sprintf("ordering: bad field path %q for %s", fieldPath, reflect.TypeFor[T]()))
	}
	return func(a, b T) Ordering {
		fa, okA := types.FieldByIndex(reflect.ValueOf(&a).Elem(), indices)
		fb, okB := types.FieldByIndex(reflect.ValueOf(&b).Elem(), indices)
		if !okA || !okB {
			return Of(boolRank(okA) - boolRank(okB))
		}
		return compareValues(fa, fb)
	}
}

var orderingType = reflect.TypeOf(Equal)

func compareValues(a, b reflect.Value) Ordering {
	if o, ok := compareByMethod(a, b); ok {
		return o
	}
	return compareMembers(a, b)
}

// compareMembers ignores a Compare method on the outermost type so that
// Compare itself may be written in terms of Derived.
func compareMembers(a, b reflect.Value) Ordering {
	switch a.Kind() {
	case reflect.Bool:
		return Of(boolRank(a.Bool()) - boolRank(b.Bool()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Of(cmp.Compare(a.Int(), b.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Of(cmp.Compare(a.Uint(), b.Uint()))
	case reflect.Float32, reflect.Float64:
		return Of(cmp.Compare(a.Float(), b.Float()))
	case reflect.String:
		return Of(cmp.Compare(a.String(), b.String()))
	case reflect.Array, reflect.Slice:
		for i := 0; i < a.Len() && i < b.Len(); i++ {
			if o := compareValues(a.Index(i), b.Index(i)); o != Equal {
				return o
			}
		}
		return Of(a.Len() - b.Len())
	case reflect.Struct:
		for i := 0; i < a.NumField(); i++ {
			if o := compareValues(a.Field(i), b.Field(i)); o != Equal {
				return o
			}
		}
		return Equal
	}
	panic(fmt.Sprintf("ordering: cannot derive a comparison for %s", a.Type()))
}

// compareByMethod uses a Compare(T) Ordering method when the field type has
// one and the field is exported.
func compareByMethod(a, b reflect.Value) (Ordering, bool) {
	if !a.CanInterface() {
		return Equal, false
	}
	m, ok := a.Type().MethodByName("Compare")
	if !ok {
		return Equal, false
	}
	mt := m.Type
	if mt.NumIn() != 2 || mt.In(1) != a.Type() || mt.NumOut() != 1 || mt.Out(0) != orderingType {
		return Equal, false
	}
	return a.Method(m.Index).Call([]reflect.Value{b})[0].Interface().(Ordering), true
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
