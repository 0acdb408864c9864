package property

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"attrkit/call"
	"attrkit/typecheck"
)

// SetEntry is one adding accessor of a Set property.
type SetEntry struct {
	Name             string
	ValueType        typecheck.Type
	ValueTransformer *call.Adapter
}

func (e *SetEntry) String() string {
	var b strings.Builder

	b.WriteString(e.Name)
	b.WriteString(" (SetEntry) {value_type: ")
	b.WriteString(formatType(e.ValueType))
	writeSource(&b, "value_transformer", e.ValueTransformer)
	b.WriteString("}")

	return b.String()
}

// Set is a property holding a set, stored as a map with empty struct
// values. It installs "<name>" returning a copy of the whole set,
// "<name>=" replacing it, and one "<entry>" operation per entry adding a
// member to the live set.
type Set struct {
	Basic

	valueType        typecheck.Type
	valueTransformer *call.Adapter

	entries map[string]*SetEntry
	order   []string

	shapeOnce sync.Once
	shape     *Shape
}

// NewSet declares a set property. The property type defaults to
// map[any]struct{}, created empty on first access; values assigned to the
// whole set are converted with ToSet.
func NewSet(name string, opts ...Option) *Set {
	o := collect(opts)

	return &Set{
		Basic: Basic{
			name:        name,
			typ:         o.typ.or(typecheck.TypeOf[map[any]struct{}]()),
			factory:     o.factory.or(newSet),
			transformer: o.transformer.or(coerceSet),
		},
		valueType:        o.valueType.or(nil),
		valueTransformer: o.valueTransformer.or(nil),
		entries:          make(map[string]*SetEntry),
	}
}

func (p *Set) ValueType() typecheck.Type { return p.valueType }

func (p *Set) ValueTransformer() *call.Adapter { return p.valueTransformer }

// Entry declares an entry. Omitted options are inherited from the property.
func (p *Set) Entry(name string, opts ...Option) (*SetEntry, error) {
	o := collect(opts)

	e := &SetEntry{
		Name:             name,
		ValueType:        inherit(o.valueType, p.valueType),
		ValueTransformer: inherit(o.valueTransformer, p.valueTransformer),
	}

	if err := p.define(p.entries, &p.order, e); err != nil {
		return nil, err
	}

	return e, nil
}

// MustEntry is like Entry but panics on error.
func (p *Set) MustEntry(name string, opts ...Option) *Set {
	if _, err := p.Entry(name, opts...); err != nil {
		panic(err)
	}

	return p
}

// SetEntries replaces all entries.
func (p *Set) SetEntries(entries ...*SetEntry) error {
	next := make(map[string]*SetEntry, len(entries))

	var order []string

	for _, e := range entries {
		if err := p.define(next, &order, e); err != nil {
			return err
		}
	}

	p.entries, p.order = next, order

	return nil
}

// SetEntryMap replaces all entries. Every key must equal its entry name.
func (p *Set) SetEntryMap(entries map[string]*SetEntry) error {
	list := make([]*SetEntry, 0, len(entries))

	for _, name := range slices.Sorted(maps.Keys(entries)) {
		e := entries[name]
		if e.Name != name {
			return &Error{Kind: ErrEntryNameMismatch, Property: p.name, Entry: e.Name, Key: Some(name)}
		}

		list = append(list, e)
	}

	return p.SetEntries(list...)
}

// Entries returns a copy of the entry table.
func (p *Set) Entries() map[string]*SetEntry {
	return maps.Clone(p.entries)
}

func (p *Set) define(entries map[string]*SetEntry, order *[]string, e *SetEntry) error {
	switch {
	case e.Name == "":
		return &Error{Kind: ErrMissingName, Property: p.name}
	case e.Name == p.name:
		return &Error{Kind: ErrDuplicateEntry, Property: p.name, Entry: e.Name, Err: errSameAsProperty}
	case e.ValueType == nil:
		return &Error{Kind: ErrMissingValueType, Property: p.name, Entry: e.Name}
	}

	if _, ok := entries[e.Name]; ok {
		return &Error{Kind: ErrDuplicateEntry, Property: p.name, Entry: e.Name}
	}

	entries[e.Name] = e
	*order = append(*order, e.Name)

	return nil
}

// Setup implements Property. Without entries, a default entry named after
// the singular of the property name is declared from the property's value
// type.
func (p *Set) Setup(c *Class) error {
	if p.name == "" {
		return &Error{Kind: ErrMissingName, Property: "set"}
	}

	if len(p.entries) == 0 {
		if _, err := p.Entry(c.Inflector().Singularize(p.name)); err != nil {
			return err
		}
	}

	if p.valueType == nil {
		types := make([]typecheck.Type, 0, len(p.order))
		for _, name := range p.order {
			types = append(types, p.entries[name].ValueType)
		}

		union, err := c.Checker().Union(types...)
		if err != nil {
			return &Error{Kind: ErrMissingValueType, Property: p.name, Err: err}
		}

		p.valueType = union
	}

	c.Define(p.name, OpAccess, p.name, func(t Target, req Request) (Optional, error) {
		v, err := p.Access(p.Shape(), t, req.Value)
		if err != nil || !v.IsPresent() {
			return v, err
		}

		return Some(snapshot(v.Value())), nil
	})

	c.Define(p.name+"=", OpSet, p.name, func(t Target, req Request) (Optional, error) {
		v, err := requireValue(p.name+"=", req)
		if err != nil {
			return Absent, err
		}

		stored, err := p.Set(p.Shape(), t, v)
		if err != nil {
			return Absent, err
		}

		return Some(stored), nil
	})

	for _, name := range p.order {
		e := p.entries[name]

		c.Define(e.Name, OpAdd, p.name, func(t Target, req Request) (Optional, error) {
			v, err := requireValue(e.Name, req)
			if err != nil {
				return Absent, err
			}

			added, err := p.AddEntry(e, t, v, req.Configure)
			if err != nil {
				return Absent, err
			}

			return Some(added), nil
		})
	}

	return nil
}

// Shape returns the shape of the whole set, built on first use.
func (p *Set) Shape() *Shape {
	p.shapeOnce.Do(func() {
		p.shape = &Shape{Name: p.name, Type: p.typ, Factory: p.factory, Transformer: p.transformer}
	})

	return p.shape
}

// AddEntry transforms and checks value and adds it to the live set. Adding
// a member twice keeps one. configure, if not nil, runs on a non-nil value.
func (p *Set) AddEntry(e *SetEntry, t Target, value any, configure func(any) error) (any, error) {
	set, err := p.Get(p.Shape(), t)
	if err != nil {
		return nil, err
	}

	s := set.Value()
	if !usable(s) {
		return nil, &Error{Kind: ErrNoCollection, Property: p.name, Entry: e.Name}
	}

	if e.ValueTransformer != nil {
		v, err := e.ValueTransformer.Invoke(call.Args{"object": t, "value": value})
		if err != nil {
			return nil, &Error{Kind: ErrValueTransformFailed, Property: p.name, Entry: e.Name, Value: Some(value), Err: err}
		}

		value = v
	}

	if err := p.check(t, e.ValueType, value, &Error{Kind: ErrInvalidValueType, Entry: e.Name, Value: Some(value)}); err != nil {
		return nil, err
	}

	if !hashable(value) {
		return nil, &Error{Kind: ErrInvalidValueType, Property: p.name, Entry: e.Name, Value: Some(value), Err: unhashable(value)}
	}

	if err := insert(s, value); err != nil {
		return nil, &Error{Kind: ErrInvalidValueType, Property: p.name, Entry: e.Name, Value: Some(value), Err: err}
	}

	if configure != nil && value != nil {
		if err := configure(value); err != nil {
			return value, err
		}
	}

	return value, nil
}

func (p *Set) String() string {
	var b strings.Builder

	b.WriteString(p.name)
	b.WriteString(" (Set) {type: ")
	b.WriteString(formatType(p.typ))
	b.WriteString(", value_type: ")
	b.WriteString(formatType(p.valueType))
	writeSource(&b, "factory", p.factory)
	writeSource(&b, "transformer", p.transformer)
	b.WriteString(", entries: [")
	b.WriteString(strings.Join(p.order, ", "))
	b.WriteString("]}")

	return b.String()
}
