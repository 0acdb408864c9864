package typecheck

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/davecgh/go-spew/spew"
)

var (
	ErrEmptyUnion      = errors.New("union of no types")
	ErrUnsupportedType = errors.New("unsupported type descriptor")
	ErrTypeMismatch    = errors.New("type mismatch")
)

// Type is an opaque type descriptor. Only a Checker interprets it.
type Type = any

// Checker validates values against type descriptors and combines
// descriptors into unions. Implementations must be safe for concurrent use.
type Checker interface {
	// Valid reports whether value conforms to t. It fails with
	// ErrUnsupportedType when t is not a descriptor the checker knows.
	Valid(t Type, value any) (bool, error)

	// Union combines types into one descriptor matching any member.
	// It fails with ErrEmptyUnion when no types are given.
	Union(types ...Type) (Type, error)

	// Format renders t for humans.
	Format(t Type) string
}

// MismatchError reports a value that does not conform to a type.
type MismatchError struct {
	Value any
	Type  string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("value %s (%s) must conform to %s", Render(e.Value), dynamicType(e.Value), e.Type)
}

func (e *MismatchError) Unwrap() error {
	return ErrTypeMismatch
}

// Check fails with a *MismatchError when value does not conform to t.
func Check(c Checker, t Type, value any) error {
	ok, err := c.Valid(t, value)
	if err != nil {
		return err
	}

	if !ok {
		return &MismatchError{Value: value, Type: c.Format(t)}
	}

	return nil
}

// TypeOf returns the descriptor for the Go type T.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeFor[T]()
}

var renderer = spew.ConfigState{
	Indent:                  " ",
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	DisableMethods:          false,
	SortKeys:                true,
}

// Render formats an arbitrary value on one line for error messages.
func Render(v any) string {
	if s, ok := v.(string); ok {
		return "'" + s + "'"
	}

	return renderer.Sprintf("%v", v)
}

func dynamicType(v any) string {
	if v == nil {
		return "nil"
	}

	return typeName(reflect.TypeOf(v))
}
