package call

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"
)

var ErrArgumentType = errors.New("argument type mismatch")

// field binds one named argument to a struct field.
type field struct {
	index    []int
	name     string
	required bool
}

// Bind adapts a function taking a single argument struct.
//
// Every exported field of A is a keyword parameter. The `arg` struct tag
// names it ("value"), marks it required ("value,required") or skips the
// field ("-"). Untagged fields use their name with a lower-case first
// letter. Arguments the struct does not declare are dropped, and absent or
// nil arguments leave the field at its zero value.
func Bind[A any](fn func(A) (any, error)) (*Adapter, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrUnsupportedCallable)
	}

	t := reflect.TypeFor[A]()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: argument type %s is not a struct", ErrUnsupportedCallable, t)
	}

	fields := bindFields(t)

	params := make([]Param, 0, len(fields))
	for _, f := range fields {
		if f.required {
			params = append(params, Key(f.name))
		} else {
			params = append(params, OptKey(f.name))
		}
	}

	sig, err := Describe(params...)
	if err != nil {
		return nil, err
	}

	invoke := func(args Args) (any, error) {
		var a A

		v := reflect.ValueOf(&a).Elem()
		for _, f := range fields {
			raw, ok := args[f.name]
			if !ok || raw == nil {
				continue
			}

			if err := assign(v.FieldByIndex(f.index), raw); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrArgumentType, f.name, err)
			}
		}

		return fn(a)
	}

	return newAdapter(invoke, sig, sourceOf(fn))
}

// MustBind is like Bind but panics on error.
func MustBind[A any](fn func(A) (any, error)) *Adapter {
	a, err := Bind(fn)
	if err != nil {
		panic(err)
	}

	return a
}

func bindFields(t reflect.Type) []field {
	var fields []field

	for i := range t.NumField() {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := sf.Tag.Get("arg")
		if tag == "-" {
			continue
		}

		name, opts, _ := strings.Cut(tag, ",")
		if name == "" {
			name = lowerFirst(sf.Name)
		}

		fields = append(fields, field{
			index:    sf.Index,
			name:     name,
			required: opts == "required",
		})
	}

	return fields
}

func assign(dst reflect.Value, raw any) error {
	src := reflect.ValueOf(raw)

	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case convertible(src.Type(), dst.Type()):
		dst.Set(src.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot use %T as %s", raw, dst.Type())
	}

	return nil
}

// convertible allows conversions between types of the same kind and
// between numeric kinds; int -> string style conversions are rejected.
func convertible(from, to reflect.Type) bool {
	if !from.ConvertibleTo(to) {
		return false
	}

	return from.Kind() == to.Kind() || (isNumeric(from.Kind()) && isNumeric(to.Kind()))
}

func isNumeric(k reflect.Kind) bool {
	switch k {
	default:
		return false
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}

	return string(unicode.ToLower(r)) + s[size:]
}
