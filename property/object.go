package property

import (
	"fmt"

	"attrkit/call"
	"attrkit/typecheck"
)

// Target is the per-instance storage an operation reads and writes.
type Target interface {
	Load(slot string) (any, bool)
	Store(slot string, value any)
	Checker() typecheck.Checker
}

// Object is an instance of a Class. It is not safe for concurrent use.
//
// Host types usually embed *Object and expose typed methods calling Invoke.
type Object struct {
	class *Class
	slots map[string]any
}

func (o *Object) Class() *Class { return o.class }

// Load implements Target.
func (o *Object) Load(slot string) (any, bool) {
	v, ok := o.slots[slot]
	return v, ok
}

// Store implements Target.
func (o *Object) Store(slot string, value any) {
	o.slots[slot] = value
}

// Checker implements Target.
func (o *Object) Checker() typecheck.Checker {
	return o.class.Checker()
}

// Invoke runs the named operation of the object's class.
func (o *Object) Invoke(name string, req Request) (Optional, error) {
	return o.class.Invoke(o, name, req)
}

// Get reads through the access operation name.
func (o *Object) Get(name string) (Optional, error) {
	return o.Invoke(name, Request{})
}

// Set writes value through the setter operation "name=".
func (o *Object) Set(name string, value any) (any, error) {
	v, err := o.Invoke(name+"=", Request{Value: Some(value)})
	return v.Value(), err
}

// GetEntry reads key through the entry operation.
func (o *Object) GetEntry(entry string, key any) (any, error) {
	v, err := o.Invoke(entry, Request{Key: Some(key)})
	return v.Value(), err
}

// SetEntry writes key and value through the entry operation.
func (o *Object) SetEntry(entry string, key, value any) (any, error) {
	v, err := o.Invoke(entry, Request{Key: Some(key), Value: Some(value)})
	return v.Value(), err
}

// Add inserts value through the set entry operation.
func (o *Object) Add(entry string, value any) (any, error) {
	v, err := o.Invoke(entry, Request{Value: Some(value)})
	return v.Value(), err
}

func requireValue(name string, req Request) (any, error) {
	v, ok := req.Value.Get()
	if !ok {
		return nil, fmt.Errorf("%w: value for %s", call.ErrMissingRequiredArgument, name)
	}

	return v, nil
}

func requireKey(name string, req Request) (any, error) {
	k, ok := req.Key.Get()
	if !ok {
		return nil, fmt.Errorf("%w: key for %s", call.ErrMissingRequiredArgument, name)
	}

	return k, nil
}
