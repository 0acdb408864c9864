package typecheck

import (
	"reflect"
	"strconv"
)

func typeName(t reflect.Type) string {
	// fully qualified named types, or builtin string for basics
	switch t.Kind() {
	case reflect.Ptr:
		return "*" + typeName(t.Elem())
	case reflect.Slice:
		return "[]" + typeName(t.Elem())
	case reflect.Array:
		return "[" + strconv.Itoa(t.Len()) + "]" + typeName(t.Elem())
	case reflect.Map:
		if t.Name() == "" {
			return "map[" + typeName(t.Key()) + "]" + typeName(t.Elem())
		}
	case reflect.Interface:
		if t.Name() == "" && t.NumMethod() == 0 {
			return "any"
		}
	case reflect.Struct:
		if t.Name() == "" && t.NumField() == 0 {
			return "struct{}"
		}
	}

	if t.PkgPath() == "" {
		return t.String()
	}

	return t.PkgPath() + "." + t.Name()
}
