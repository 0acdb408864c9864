package typecheck

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/go-playground/validator/v10"

	"attrkit/internal/common"
)

type anyType struct{}

// Any accepts every value, nil included.
var Any Type = anyType{}

// Builtin understands reflect.Type, Union, Tag and Any descriptors.
type Builtin struct {
	validate *validator.Validate
}

var defaultChecker = NewBuiltin()

// Default returns the shared built-in checker.
func Default() *Builtin {
	return defaultChecker
}

// NewBuiltin creates a built-in checker with its own validator instance.
func NewBuiltin() *Builtin {
	return &Builtin{validate: validator.New()}
}

// Valid implements Checker.
func (b *Builtin) Valid(t Type, value any) (bool, error) {
	switch t := t.(type) {
	case reflect.Type:
		if value == nil {
			return false, nil
		}

		return reflect.TypeOf(value).AssignableTo(t), nil
	case Union:
		for _, m := range t.members {
			ok, err := b.Valid(m, value)
			if err != nil {
				return false, err
			}

			if ok {
				return true, nil
			}
		}

		return false, nil
	case Tag:
		return b.validTag(t, value)
	case anyType:
		return true, nil
	default:
		return false, unsupported(t)
	}
}

// Union implements Checker.
func (b *Builtin) Union(types ...Type) (Type, error) {
	var flat []Type

	var add func(ts []Type) error
	add = func(ts []Type) error {
		for _, t := range ts {
			if u, ok := t.(Union); ok {
				if err := add(u.members); err != nil {
					return err
				}

				continue
			}

			if !b.supports(t) {
				return unsupported(t)
			}

			// supported descriptors are all comparable
			if !slices.Contains(flat, t) {
				flat = append(flat, t)
			}
		}

		return nil
	}

	if err := add(types); err != nil {
		return nil, err
	}

	switch {
	case common.IsEmpty(flat):
		return nil, ErrEmptyUnion
	case common.IsSingle(flat):
		return flat[0], nil
	}

	return Union{members: common.SortedBy(flat, b.Format)}, nil
}

// Format implements Checker.
func (b *Builtin) Format(t Type) string {
	switch t := t.(type) {
	case nil:
		return "nil"
	case reflect.Type:
		return typeName(t)
	case Union:
		return t.format(b.Format)
	case Tag:
		return "tag(" + string(t) + ")"
	case anyType:
		return "any"
	default:
		return common.UnknownStr + "(" + Render(t) + ")"
	}
}

func (b *Builtin) supports(t Type) bool {
	switch t.(type) {
	case reflect.Type, Tag, anyType:
		return true
	default:
		return false
	}
}

func unsupported(t Type) error {
	if t == nil {
		return fmt.Errorf("%w: nil", ErrUnsupportedType)
	}

	return fmt.Errorf("%w: %T", ErrUnsupportedType, t)
}
