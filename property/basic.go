package property

import (
	"attrkit/call"
	"attrkit/typecheck"
)

// Basic holds what every property has: a name, a declared type and the
// default factory and transformer. It implements the value engine shared
// by all property kinds.
type Basic struct {
	name        string
	typ         typecheck.Type
	factory     *call.Adapter
	transformer *call.Adapter
}

// NewBasic creates the engine for a property without shapes or entries.
func NewBasic(name string, opts ...Option) *Basic {
	o := collect(opts)

	return &Basic{
		name:        name,
		typ:         o.typ.or(nil),
		factory:     o.factory.or(nil),
		transformer: o.transformer.or(nil),
	}
}

func (p *Basic) Name() string { return p.name }

// Type returns the declared or resolved type, nil when neither exists yet.
func (p *Basic) Type() typecheck.Type { return p.typ }

func (p *Basic) Factory() *call.Adapter { return p.factory }

func (p *Basic) Transformer() *call.Adapter { return p.transformer }

// Get returns the value stored in the shape's slot. An empty slot is filled
// from the shape's factory; without a factory Get returns Absent and leaves
// the slot empty.
func (p *Basic) Get(shape *Shape, t Target) (Optional, error) {
	if v, ok := t.Load(shape.Name); ok {
		return Some(v), nil
	}

	if shape.Factory == nil {
		return Absent, nil
	}

	v, err := shape.Factory.Invoke(call.Args{"object": t})
	if err != nil {
		return Absent, &Error{Kind: ErrFactoryFailed, Property: p.name, Err: err}
	}

	t.Store(shape.Name, v)

	return Some(v), nil
}

// Set transforms value, checks it against the shape type and stores it.
func (p *Basic) Set(shape *Shape, t Target, value any) (any, error) {
	if shape.Transformer != nil {
		v, err := shape.Transformer.Invoke(call.Args{"object": t, "value": value})
		if err != nil {
			return nil, &Error{Kind: ErrTransformFailed, Property: p.name, Value: Some(value), Err: err}
		}

		value = v
	}

	if err := p.check(t, shape.Type, value, &Error{Kind: ErrTypeMismatch, Value: Some(value)}); err != nil {
		return nil, err
	}

	t.Store(shape.Name, value)

	return value, nil
}

// Access is Get when value is absent and Set otherwise.
func (p *Basic) Access(shape *Shape, t Target, value Optional) (Optional, error) {
	v, ok := value.Get()
	if !ok {
		return p.Get(shape, t)
	}

	stored, err := p.Set(shape, t, v)
	if err != nil {
		return Absent, err
	}

	return Some(stored), nil
}

// check validates v against typ. On failure it completes and returns fail.
func (p *Basic) check(t Target, typ typecheck.Type, v any, fail *Error) error {
	c := t.Checker()

	err := typecheck.Check(c, typ, v)
	if err == nil {
		return nil
	}

	fail.Property = p.name
	fail.Type = c.Format(typ)
	fail.Err = err

	return fail
}
