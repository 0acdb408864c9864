package property

import (
	"maps"
	"strings"
)

// Scalar is a property holding a single value, exposed through one or
// more shapes. Each shape installs an accessor "<shape>" and a setter
// "<shape>=".
type Scalar struct {
	Basic

	shapes map[string]*Shape
	order  []string
}

// NewScalar declares a scalar property. Type, Factory and Transformer
// become the defaults of its shapes.
func NewScalar(name string, opts ...Option) *Scalar {
	return &Scalar{
		Basic:  *NewBasic(name, opts...),
		shapes: make(map[string]*Shape),
	}
}

// Shape declares a shape. An empty name means the property name; omitted
// options are inherited from the property.
func (p *Scalar) Shape(name string, opts ...Option) (*Shape, error) {
	if name == "" {
		name = p.name
	}

	if _, ok := p.shapes[name]; ok {
		return nil, &Error{Kind: ErrDuplicateShape, Property: p.name, Entry: name}
	}

	o := collect(opts)
	shape := &Shape{
		Name:        name,
		Type:        inherit(o.typ, p.typ),
		Factory:     inherit(o.factory, p.factory),
		Transformer: inherit(o.transformer, p.transformer),
	}

	if shape.Type == nil {
		return nil, &Error{Kind: ErrMissingType, Property: p.name, Entry: name}
	}

	p.add(shape)

	return shape, nil
}

// MustShape is like Shape but panics on error.
func (p *Scalar) MustShape(name string, opts ...Option) *Scalar {
	if _, err := p.Shape(name, opts...); err != nil {
		panic(err)
	}

	return p
}

// SetShapes replaces all shapes.
func (p *Scalar) SetShapes(shapes ...*Shape) error {
	next := &Scalar{Basic: p.Basic, shapes: make(map[string]*Shape, len(shapes))}

	for _, s := range shapes {
		if _, ok := next.shapes[s.Name]; ok {
			return &Error{Kind: ErrDuplicateShape, Property: p.name, Entry: s.Name}
		}

		next.add(s)
	}

	p.shapes, p.order = next.shapes, next.order

	return nil
}

// Shapes returns a copy of the shape table.
func (p *Scalar) Shapes() map[string]*Shape {
	return maps.Clone(p.shapes)
}

// Setup implements Property. Unless a shape is named after the property,
// one is added, typed with the property type or else the union of all
// shape types.
func (p *Scalar) Setup(c *Class) error {
	if p.name == "" {
		return &Error{Kind: ErrMissingName, Property: "scalar"}
	}

	if len(p.shapes) == 0 && p.typ == nil {
		return &Error{Kind: ErrMissingType, Property: p.name}
	}

	if p.typ == nil {
		types := make([]any, 0, len(p.order))
		for _, name := range p.order {
			types = append(types, p.shapes[name].Type)
		}

		union, err := c.Checker().Union(types...)
		if err != nil {
			return &Error{Kind: ErrMissingType, Property: p.name, Err: err}
		}

		p.typ = union
	}

	if _, ok := p.shapes[p.name]; !ok {
		p.add(&Shape{Name: p.name, Type: p.typ, Factory: p.factory, Transformer: p.transformer})
	}

	for _, name := range p.order {
		shape := p.shapes[name]

		c.Define(shape.Name, OpAccess, p.name, func(t Target, req Request) (Optional, error) {
			return p.Access(shape, t, req.Value)
		})

		c.Define(shape.Name+"=", OpSet, p.name, func(t Target, req Request) (Optional, error) {
			v, err := requireValue(shape.Name+"=", req)
			if err != nil {
				return Absent, err
			}

			stored, err := p.Set(shape, t, v)
			if err != nil {
				return Absent, err
			}

			return Some(stored), nil
		})
	}

	return nil
}

func (p *Scalar) add(s *Shape) {
	p.shapes[s.Name] = s
	p.order = append(p.order, s.Name)
}

func (p *Scalar) String() string {
	var b strings.Builder

	b.WriteString(p.name)
	b.WriteString(" (Scalar) {type: ")
	b.WriteString(formatType(p.typ))
	writeSource(&b, "factory", p.factory)
	writeSource(&b, "transformer", p.transformer)
	b.WriteString(", shapes: [")
	b.WriteString(strings.Join(p.order, ", "))
	b.WriteString("]}")

	return b.String()
}
