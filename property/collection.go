package property

import (
	"fmt"
	"maps"
	"reflect"
)

// The live collections are map[any]any and map[any]struct{} unless a
// property declares another map type; those are handled through reflect.

func lookup(m, key any) (any, bool) {
	if mm, ok := m.(map[any]any); ok {
		v, found := mm[key]
		return v, found
	}

	rv := reflect.ValueOf(m)

	k, ok := keyValue(rv, key)
	if !ok {
		return nil, false
	}

	v := rv.MapIndex(k)
	if !v.IsValid() {
		return nil, false
	}

	return v.Interface(), true
}

func store(m, key, value any) error {
	if mm, ok := m.(map[any]any); ok {
		mm[key] = value
		return nil
	}

	rv := reflect.ValueOf(m)

	k, ok := keyValue(rv, key)
	if !ok {
		return fmt.Errorf("%T cannot be used as a key of %T", key, m)
	}

	v, ok := assignable(value, rv.Type().Elem())
	if !ok {
		return fmt.Errorf("%T cannot be stored in %T", value, m)
	}

	rv.SetMapIndex(k, v)

	return nil
}

func insert(s, value any) error {
	if ss, ok := s.(map[any]struct{}); ok {
		ss[value] = struct{}{}
		return nil
	}

	rv := reflect.ValueOf(s)

	k, ok := keyValue(rv, value)
	if !ok {
		return fmt.Errorf("%T cannot be a member of %T", value, s)
	}

	rv.SetMapIndex(k, reflect.Zero(rv.Type().Elem()))

	return nil
}

func keyValue(m reflect.Value, key any) (reflect.Value, bool) {
	if m.Kind() != reflect.Map {
		return reflect.Value{}, false
	}

	return assignable(key, m.Type().Key())
}

func assignable(v any, t reflect.Type) (reflect.Value, bool) {
	if v == nil {
		switch t.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(t), true
		default:
			return reflect.Value{}, false
		}
	}

	rv := reflect.ValueOf(v)
	if !rv.Type().AssignableTo(t) {
		return reflect.Value{}, false
	}

	return rv, true
}

// usable reports whether c is a collection that can be written to.
func usable(c any) bool {
	if c == nil {
		return false
	}

	rv := reflect.ValueOf(c)

	return rv.Kind() != reflect.Map || !rv.IsNil()
}

// snapshot returns a shallow copy of a map valued collection.
func snapshot(v any) any {
	switch v := v.(type) {
	case map[any]any:
		return maps.Clone(v)
	case map[any]struct{}:
		return maps.Clone(v)
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() {
		return v
	}

	out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
	for it := rv.MapRange(); it.Next(); {
		out.SetMapIndex(it.Key(), it.Value())
	}

	return out.Interface()
}
