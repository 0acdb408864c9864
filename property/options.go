package property

import (
	"attrkit/call"
	"attrkit/typecheck"
)

type setting[T any] struct {
	value T
	set   bool
}

func (s setting[T]) or(def T) T {
	if s.set {
		return s.value
	}

	return def
}

func (s *setting[T]) put(v T) {
	s.value, s.set = v, true
}

type options struct {
	typ              setting[typecheck.Type]
	factory          setting[*call.Adapter]
	transformer      setting[*call.Adapter]
	keyType          setting[typecheck.Type]
	keyTransformer   setting[*call.Adapter]
	valueType        setting[typecheck.Type]
	valueFactory     setting[*call.Adapter]
	valueTransformer setting[*call.Adapter]
}

// Option configures a property, shape or entry. Options a target does not
// use are ignored.
type Option func(*options)

func collect(opts []Option) *options {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// Type sets the declared type of a property or shape.
func Type(t typecheck.Type) Option {
	return func(o *options) { o.typ.put(t) }
}

// Factory sets the adapter producing a value when none is stored.
// It is invoked with the "object" argument.
func Factory(a *call.Adapter) Option {
	return func(o *options) { o.factory.put(a) }
}

// Transformer sets the adapter normalizing a value before it is checked.
// It is invoked with the "object" and "value" arguments.
func Transformer(a *call.Adapter) Option {
	return func(o *options) { o.transformer.put(a) }
}

// KeyType sets the key type of a map property or entry.
func KeyType(t typecheck.Type) Option {
	return func(o *options) { o.keyType.put(t) }
}

// KeyTransformer sets the map entry key transformer, invoked with
// "object" and "key".
func KeyTransformer(a *call.Adapter) Option {
	return func(o *options) { o.keyTransformer.put(a) }
}

// ValueType sets the value type of a map or set property or entry.
func ValueType(t typecheck.Type) Option {
	return func(o *options) { o.valueType.put(t) }
}

// ValueFactory sets the map entry value factory, invoked with "object" and
// "key" when a key is read that has no value.
func ValueFactory(a *call.Adapter) Option {
	return func(o *options) { o.valueFactory.put(a) }
}

// ValueTransformer sets the entry value transformer, invoked with "object",
// "value" and, for map entries, "key".
func ValueTransformer(a *call.Adapter) Option {
	return func(o *options) { o.valueTransformer.put(a) }
}

// inherit returns the explicitly given value unless it is nil.
func inherit[T comparable](s setting[T], def T) T {
	var zero T
	if s.set && s.value != zero {
		return s.value
	}

	return def
}
