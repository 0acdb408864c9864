package property

import "attrkit/typecheck"

// Optional distinguishes "no value supplied" from an explicit nil.
type Optional struct {
	value   any
	present bool
}

// Absent is the empty Optional.
var Absent = Optional{}

// Some wraps v, which may be nil, as a present value.
func Some(v any) Optional {
	return Optional{value: v, present: true}
}

// Get returns the value and whether it is present.
func (o Optional) Get() (any, bool) {
	return o.value, o.present
}

// IsPresent reports whether a value was supplied.
func (o Optional) IsPresent() bool {
	return o.present
}

// Value returns the value, or nil when absent.
func (o Optional) Value() any {
	return o.value
}

// OrElse returns the value when present and def otherwise.
func (o Optional) OrElse(def any) any {
	if o.present {
		return o.value
	}

	return def
}

func (o Optional) String() string {
	if !o.present {
		return "<absent>"
	}

	return typecheck.Render(o.value)
}
