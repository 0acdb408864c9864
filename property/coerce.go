package property

import (
	"fmt"
	"maps"
	"reflect"

	"attrkit/call"
)

// Pair is one key/value pair accepted by ToMap.
type Pair struct {
	Key   any
	Value any
}

// ToMap converts maps of any key and value type, a Pair, and slices or
// arrays of Pair, [2]any or two-element []any into a new map[any]any.
// nil converts to nil.
func ToMap(v any) (map[any]any, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[any]any:
		return maps.Clone(v), nil
	case Pair:
		if !hashable(v.Key) {
			return nil, unhashable(v.Key)
		}

		return map[any]any{v.Key: v.Value}, nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[any]any, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			out[it.Key().Interface()] = it.Value().Interface()
		}

		return out, nil
	case reflect.Slice, reflect.Array:
		out := make(map[any]any, rv.Len())
		for i := range rv.Len() {
			k, val, err := pairOf(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}

			out[k] = val
		}

		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a map", v)
	}
}

// ToSet converts slices, arrays, the keys of maps and other sets into a new
// map[any]struct{}. nil converts to nil.
func ToSet(v any) (map[any]struct{}, error) {
	switch v := v.(type) {
	case nil:
		return nil, nil
	case map[any]struct{}:
		return maps.Clone(v), nil
	}

	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map:
		out := make(map[any]struct{}, rv.Len())
		for it := rv.MapRange(); it.Next(); {
			out[it.Key().Interface()] = struct{}{}
		}

		return out, nil
	case reflect.Slice, reflect.Array:
		out := make(map[any]struct{}, rv.Len())
		for i := range rv.Len() {
			e := rv.Index(i).Interface()
			if !hashable(e) {
				return nil, fmt.Errorf("element %d: %w", i, unhashable(e))
			}

			out[e] = struct{}{}
		}

		return out, nil
	default:
		return nil, fmt.Errorf("cannot convert %T to a set", v)
	}
}

func pairOf(e any) (key, value any, err error) {
	switch p := e.(type) {
	case Pair:
		key, value = p.Key, p.Value
	case [2]any:
		key, value = p[0], p[1]
	case []any:
		if len(p) != 2 {
			return nil, nil, fmt.Errorf("pair must have 2 elements, got %d", len(p))
		}

		key, value = p[0], p[1]
	default:
		return nil, nil, fmt.Errorf("%T is not a key/value pair", e)
	}

	if !hashable(key) {
		return nil, nil, unhashable(key)
	}

	return key, value, nil
}

// hashable reports whether v can be used as a map key without panicking.
// Interface values held in structs and arrays are checked by their dynamic
// type.
func hashable(v any) bool {
	if v == nil {
		return true
	}

	return hashableValue(reflect.ValueOf(v))
}

func hashableValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Interface:
		return rv.IsNil() || hashableValue(rv.Elem())
	case reflect.Struct:
		for i := range rv.NumField() {
			if !hashableValue(rv.Field(i)) {
				return false
			}
		}

		return true
	case reflect.Array:
		if !rv.Type().Comparable() {
			return false
		}

		for i := range rv.Len() {
			if !hashableValue(rv.Index(i)) {
				return false
			}
		}

		return true
	default:
		return rv.Type().Comparable()
	}
}

func unhashable(v any) error {
	return fmt.Errorf("%T cannot be used as a key", v)
}

type coerceArgs struct {
	Value any
}

var (
	newMap = call.MustAdapt(func(call.Args) (any, error) {
		return map[any]any{}, nil
	})

	newSet = call.MustAdapt(func(call.Args) (any, error) {
		return map[any]struct{}{}, nil
	})

	coerceMap = call.MustBind(func(in coerceArgs) (any, error) {
		m, err := ToMap(in.Value)
		if m == nil {
			return nil, err
		}

		return m, err
	})

	coerceSet = call.MustBind(func(in coerceArgs) (any, error) {
		s, err := ToSet(in.Value)
		if s == nil {
			return nil, err
		}

		return s, err
	})
)
