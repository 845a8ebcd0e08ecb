package types

import (
	"reflect"
	"strings"
)

// GetFieldInterfaceByPath resolves a dotted field path such as "Inner.Value"
// on instance, following pointers.
func GetFieldInterfaceByPath(instance any, fieldPath string) (any, bool) {
	v, _, ok := FieldPath2Index(reflect.ValueOf(instance), fieldPath)
	if !ok {
		return nil, false
	}
	return v.Interface(), true
}

// FieldPath2Index resolves fieldPath on v and returns the field together with
// the index sequence leading to it, so later lookups can use FieldByIndex.
func FieldPath2Index(v reflect.Value, fieldPath string) (reflect.Value, []int, bool) {
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, len(fieldNames))
	for _, name := range fieldNames {
		v = reflect.Indirect(v)
		if !v.IsValid() || v.Kind() != reflect.Struct {
			return reflect.Value{}, nil, false
		}
		field, ok := v.Type().FieldByName(name)
		if !ok {
			return reflect.Value{}, nil, false
		}
		indices = append(indices, field.Index...)
		v = v.FieldByIndex(field.Index)
	}
	return v, indices, true
}

// TypePath2Index resolves fieldPath on the type t without needing a value,
// so nil pointers along the path do not matter.
func TypePath2Index(t reflect.Type, fieldPath string) ([]int, bool) {
	fieldNames := strings.Split(fieldPath, ".")
	indices := make([]int, 0, len(fieldNames))
	for _, name := range fieldNames {
		for t != nil && t.Kind() == reflect.Pointer {
			t = t.Elem()
		}
		if t == nil || t.Kind() != reflect.Struct {
			return nil, false
		}
		field, ok := t.FieldByName(name)
		if !ok {
			return nil, false
		}
		indices = append(indices, field.Index...)
		t = field.Type
	}
	return indices, true
}

// FieldByIndex walks indices like reflect.Value.FieldByIndex but
// dereferences pointers on the way. It reports false when a nil pointer cuts
// the path short.
func FieldByIndex(v reflect.Value, indices []int) (reflect.Value, bool) {
	for _, i := range indices {
		for v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return reflect.Value{}, false
			}
			v = v.Elem()
		}
		v = v.Field(i)
	}
	return v, true
}
