package property

import (
	"errors"
	"strings"

	"attrkit/typecheck"
)

// Configuration errors, returned while declaring or setting up properties.
var (
	ErrMissingName       = errors.New("missing name")
	ErrMissingType       = errors.New("missing type")
	ErrMissingKeyType    = errors.New("missing key type")
	ErrMissingValueType  = errors.New("missing value type")
	ErrDuplicateEntry    = errors.New("duplicate entry")
	ErrDuplicateShape    = errors.New("duplicate shape")
	ErrEntryNameMismatch = errors.New("entry key does not match entry name")
)

// Accessor errors, returned while reading or writing values.
var (
	ErrTransformFailed      = errors.New("cannot transform value")
	ErrKeyTransformFailed   = errors.New("cannot transform key")
	ErrValueTransformFailed = errors.New("cannot transform entry value")
	ErrTypeMismatch         = typecheck.ErrTypeMismatch
	ErrInvalidKeyType       = errors.New("illegal key type")
	ErrInvalidValueType     = errors.New("illegal value type")
	ErrFactoryFailed        = errors.New("cannot create value")
	ErrKeyNotFound          = errors.New("no value for key")
	ErrNoCollection         = errors.New("collection not initialized")
	ErrUnknownAccessor      = errors.New("unknown accessor")
)

// Error describes a failure of one property, optionally narrowed to one
// entry, key and value. errors.Is matches both Kind and the wrapped cause.
type Error struct {
	Kind     error
	Property string
	Entry    string
	Key      Optional
	Value    Optional
	Type     string // rendered expected type, for type errors
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString(e.Property)

	if e.Entry != "" {
		b.WriteString(" (")
		b.WriteString(e.Entry)
		b.WriteString(")")
	}

	b.WriteString(": ")
	b.WriteString(e.Kind.Error())

	var details []string
	if e.Key.IsPresent() {
		details = append(details, "key "+e.Key.String())
	}

	if e.Value.IsPresent() {
		details = append(details, "value "+e.Value.String())
	}

	if e.Type != "" {
		details = append(details, "expected "+e.Type)
	}

	if len(details) > 0 {
		b.WriteString(" [")
		b.WriteString(strings.Join(details, ", "))
		b.WriteString("]")
	}

	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}

	return b.String()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}

	return []error{e.Kind, e.Err}
}

// AccessorError reports an operation name the class does not define.
type AccessorError struct {
	Class       string
	Name        string
	Suggestions []string
}

func (e *AccessorError) Error() string {
	msg := ErrUnknownAccessor.Error() + " " + e.Name + " on " + e.Class
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}

	return msg
}

func (e *AccessorError) Unwrap() error {
	return ErrUnknownAccessor
}

var errSameAsProperty = errors.New("entry named like its set property")
