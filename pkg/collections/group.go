package collections

import (
	"encoding/json"
	"fmt"
	"reflect"
)

// GroupBy buckets items by the key computed for each of them.
// Items keep their input order inside each group.
func GroupBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	groups := make(map[K][]T)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}

// GroupByField buckets JSON-like records by the value stored under field.
// Records without the field are grouped under the nil key. Values that cannot
// be map keys (arrays, objects) are grouped under their JSON encoding, so equal
// nested values share a group.
func GroupByField(items []map[string]any, field string) map[any][]map[string]any {
	return GroupBy(items, func(item map[string]any) any {
		return fieldKey(item[field])
	})
}

func fieldKey(v any) any {
	if v == nil || reflect.TypeOf(v).Comparable() && !holdsUncomparable(reflect.ValueOf(v)) {
		return v
	}
	if b, err := json.Marshal(v); err == nil {
		return string(b)
	}
	return fmt.Sprint(v)
}

// holdsUncomparable reports whether a comparable-typed value still panics as a
// map key, e.g. an array or struct whose interface elements hold slices.
func holdsUncomparable(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface:
		if v.IsNil() {
			return false
		}
		elem := v.Elem()
		return !elem.Type().Comparable() || holdsUncomparable(elem)
	case reflect.Array:
		for i := range v.Len() {
			if holdsUncomparable(v.Index(i)) {
				return true
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if holdsUncomparable(v.Field(i)) {
				return true
			}
		}
	}
	return false
}
