package typecheck

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Tag is a validator constraint used as a type descriptor, e.g. "min=1"
// or "oneof=red green blue". A value conforms when it satisfies the tag.
type Tag string

func (b *Builtin) validTag(tag Tag, value any) (ok bool, err error) {
	// validator panics on tags it cannot parse
	defer func() {
		if r := recover(); r != nil {
			ok, err = false, fmt.Errorf("%w: tag(%s): %v", ErrUnsupportedType, string(tag), r)
		}
	}()

	err = b.validate.Var(value, string(tag))
	if err == nil {
		return true, nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		return false, nil
	}

	return false, fmt.Errorf("%w: tag(%s): %w", ErrUnsupportedType, string(tag), err)
}
