package property

import (
	"maps"
	"slices"
	"strings"
	"sync"

	"attrkit/call"
	"attrkit/typecheck"
)

// MapEntry is one keyed accessor of a Map property.
type MapEntry struct {
	Name             string
	KeyType          typecheck.Type
	KeyTransformer   *call.Adapter
	ValueType        typecheck.Type
	ValueFactory     *call.Adapter
	ValueTransformer *call.Adapter
}

func (e *MapEntry) String() string {
	var b strings.Builder

	b.WriteString(e.Name)
	b.WriteString(" (MapEntry) {key_type: ")
	b.WriteString(formatType(e.KeyType))
	writeSource(&b, "key_transformer", e.KeyTransformer)
	b.WriteString(", value_type: ")
	b.WriteString(formatType(e.ValueType))
	writeSource(&b, "value_factory", e.ValueFactory)
	writeSource(&b, "value_transformer", e.ValueTransformer)
	b.WriteString("}")

	return b.String()
}

// Map is a property holding a map. It installs "<name>" returning a copy
// of the whole map, "<name>=" replacing it, and one "<entry>" operation per
// entry reading or writing a single key of the live map.
type Map struct {
	Basic

	keyType          typecheck.Type
	keyTransformer   *call.Adapter
	valueType        typecheck.Type
	valueFactory     *call.Adapter
	valueTransformer *call.Adapter

	entries map[string]*MapEntry
	order   []string

	shapeOnce sync.Once
	shape     *Shape
}

// NewMap declares a map property. The property type defaults to
// map[any]any, created empty on first access; values assigned to the whole
// map are converted with ToMap.
func NewMap(name string, opts ...Option) *Map {
	o := collect(opts)

	return &Map{
		Basic: Basic{
			name:        name,
			typ:         o.typ.or(typecheck.TypeOf[map[any]any]()),
			factory:     o.factory.or(newMap),
			transformer: o.transformer.or(coerceMap),
		},
		keyType:          o.keyType.or(nil),
		keyTransformer:   o.keyTransformer.or(nil),
		valueType:        o.valueType.or(nil),
		valueFactory:     o.valueFactory.or(nil),
		valueTransformer: o.valueTransformer.or(nil),
		entries:          make(map[string]*MapEntry),
	}
}

func (p *Map) KeyType() typecheck.Type { return p.keyType }

func (p *Map) ValueType() typecheck.Type { return p.valueType }

func (p *Map) KeyTransformer() *call.Adapter { return p.keyTransformer }

func (p *Map) ValueFactory() *call.Adapter { return p.valueFactory }

func (p *Map) ValueTransformer() *call.Adapter { return p.valueTransformer }

// Entry declares an entry. Omitted options are inherited from the property.
func (p *Map) Entry(name string, opts ...Option) (*MapEntry, error) {
	o := collect(opts)

	e := &MapEntry{
		Name:             name,
		KeyType:          inherit(o.keyType, p.keyType),
		KeyTransformer:   inherit(o.keyTransformer, p.keyTransformer),
		ValueType:        inherit(o.valueType, p.valueType),
		ValueFactory:     inherit(o.valueFactory, p.valueFactory),
		ValueTransformer: inherit(o.valueTransformer, p.valueTransformer),
	}

	if err := p.define(p.entries, &p.order, e); err != nil {
		return nil, err
	}

	return e, nil
}

// MustEntry is like Entry but panics on error.
func (p *Map) MustEntry(name string, opts ...Option) *Map {
	if _, err := p.Entry(name, opts...); err != nil {
		panic(err)
	}

	return p
}

// SetEntries replaces all entries.
func (p *Map) SetEntries(entries ...*MapEntry) error {
	next := make(map[string]*MapEntry, len(entries))

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
func (p *Map) SetEntryMap(entries map[string]*MapEntry) error {
	list := make([]*MapEntry, 0, len(entries))

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
func (p *Map) Entries() map[string]*MapEntry {
	return maps.Clone(p.entries)
}

func (p *Map) define(entries map[string]*MapEntry, order *[]string, e *MapEntry) error {
	switch {
	case e.Name == "":
		return &Error{Kind: ErrMissingName, Property: p.name}
	case e.KeyType == nil:
		return &Error{Kind: ErrMissingKeyType, Property: p.name, Entry: e.Name}
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
// the singular of the property name is declared from the property's key
// and value types.
func (p *Map) Setup(c *Class) error {
	if p.name == "" {
		return &Error{Kind: ErrMissingName, Property: "map"}
	}

	if len(p.entries) == 0 {
		if _, err := p.Entry(c.Inflector().Singularize(p.name)); err != nil {
			return err
		}
	}

	checker := c.Checker()

	if p.keyType == nil {
		types := make([]typecheck.Type, 0, len(p.order))
		for _, name := range p.order {
			types = append(types, p.entries[name].KeyType)
		}

		union, err := checker.Union(types...)
		if err != nil {
			return &Error{Kind: ErrMissingKeyType, Property: p.name, Err: err}
		}

		p.keyType = union
	}

	if p.valueType == nil {
		types := make([]typecheck.Type, 0, len(p.order))
		for _, name := range p.order {
			types = append(types, p.entries[name].ValueType)
		}

		union, err := checker.Union(types...)
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

		c.Define(e.Name, OpEntry, p.name, func(t Target, req Request) (Optional, error) {
			key, err := requireKey(e.Name, req)
			if err != nil {
				return Absent, err
			}

			v, err := p.AccessEntry(e, t, key, req.Value, req.Configure)
			if err != nil {
				return Absent, err
			}

			return Some(v), nil
		})
	}

	return nil
}

// Shape returns the shape of the whole map, built on first use.
func (p *Map) Shape() *Shape {
	p.shapeOnce.Do(func() {
		p.shape = &Shape{Name: p.name, Type: p.typ, Factory: p.factory, Transformer: p.transformer}
	})

	return p.shape
}

// AccessEntry is GetEntry when value is absent and SetEntry otherwise.
// configure, if not nil, runs on a non-nil result.
func (p *Map) AccessEntry(e *MapEntry, t Target, key any, value Optional, configure func(any) error) (any, error) {
	var (
		result any
		err    error
	)

	if v, ok := value.Get(); ok {
		result, err = p.SetEntry(e, t, key, v)
	} else {
		result, err = p.GetEntry(e, t, key)
	}

	if err != nil {
		return nil, err
	}

	if configure != nil && result != nil {
		if err := configure(result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// GetEntry returns the value stored under key in the live map. A missing
// value is created with the entry's value factory and stored, or reported
// as ErrKeyNotFound without one.
func (p *Map) GetEntry(e *MapEntry, t Target, key any) (any, error) {
	m, err := p.live(e, t)
	if err != nil {
		return nil, err
	}

	key, err = p.transformKey(e, t, key)
	if err != nil {
		return nil, err
	}

	if !hashable(key) {
		return nil, &Error{Kind: ErrInvalidKeyType, Property: p.name, Entry: e.Name, Key: Some(key), Err: unhashable(key)}
	}

	if v, ok := lookup(m, key); ok {
		return v, nil
	}

	if e.ValueFactory == nil {
		return nil, &Error{Kind: ErrKeyNotFound, Property: p.name, Entry: e.Name, Key: Some(key)}
	}

	v, err := e.ValueFactory.Invoke(call.Args{"object": t, "key": key})
	if err != nil {
		return nil, &Error{Kind: ErrFactoryFailed, Property: p.name, Entry: e.Name, Key: Some(key), Err: err}
	}

	if err := store(m, key, v); err != nil {
		return nil, &Error{Kind: ErrInvalidValueType, Property: p.name, Entry: e.Name, Key: Some(key), Value: Some(v), Err: err}
	}

	return v, nil
}

// SetEntry transforms and checks key and value and stores them in the live
// map.
func (p *Map) SetEntry(e *MapEntry, t Target, key, value any) (any, error) {
	m, err := p.live(e, t)
	if err != nil {
		return nil, err
	}

	key, err = p.transformKey(e, t, key)
	if err != nil {
		return nil, err
	}

	if !hashable(key) {
		return nil, &Error{Kind: ErrInvalidKeyType, Property: p.name, Entry: e.Name, Key: Some(key), Err: unhashable(key)}
	}

	if err := p.check(t, e.KeyType, key, &Error{Kind: ErrInvalidKeyType, Entry: e.Name, Key: Some(key)}); err != nil {
		return nil, err
	}

	if e.ValueTransformer != nil {
		v, err := e.ValueTransformer.Invoke(call.Args{"object": t, "key": key, "value": value})
		if err != nil {
			return nil, &Error{Kind: ErrValueTransformFailed, Property: p.name, Entry: e.Name, Key: Some(key), Value: Some(value), Err: err}
		}

		value = v
	}

	if err := p.check(t, e.ValueType, value, &Error{Kind: ErrInvalidValueType, Entry: e.Name, Key: Some(key), Value: Some(value)}); err != nil {
		return nil, err
	}

	if err := store(m, key, value); err != nil {
		return nil, &Error{Kind: ErrInvalidValueType, Property: p.name, Entry: e.Name, Key: Some(key), Value: Some(value), Err: err}
	}

	return value, nil
}

func (p *Map) live(e *MapEntry, t Target) (any, error) {
	m, err := p.Get(p.Shape(), t)
	if err != nil {
		return nil, err
	}

	if v := m.Value(); usable(v) {
		return v, nil
	}

	return nil, &Error{Kind: ErrNoCollection, Property: p.name, Entry: e.Name}
}

func (p *Map) transformKey(e *MapEntry, t Target, key any) (any, error) {
	if e.KeyTransformer == nil {
		return key, nil
	}

	k, err := e.KeyTransformer.Invoke(call.Args{"object": t, "key": key})
	if err != nil {
		return nil, &Error{Kind: ErrKeyTransformFailed, Property: p.name, Entry: e.Name, Key: Some(key), Err: err}
	}

	return k, nil
}

func (p *Map) String() string {
	var b strings.Builder

	b.WriteString(p.name)
	b.WriteString(" (Map) {type: ")
	b.WriteString(formatType(p.typ))
	b.WriteString(", key_type: ")
	b.WriteString(formatType(p.keyType))
	b.WriteString(", value_type: ")
	b.WriteString(formatType(p.valueType))
	writeSource(&b, "factory", p.factory)
	writeSource(&b, "transformer", p.transformer)
	b.WriteString(", entries: [")
	b.WriteString(strings.Join(p.order, ", "))
	b.WriteString("]}")

	return b.String()
}
