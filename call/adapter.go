package call

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"sync"
)

var (
	ErrUnsupportedCallable     = errors.New("unsupported callable")
	ErrMissingRequiredArgument = errors.New("missing required argument")
)

// Args are the named arguments of one adapter invocation.
type Args map[string]any

// Keys returns the argument names, sorted.
func (a Args) Keys() []string {
	return slices.Sorted(maps.Keys(a))
}

// Slice returns a new Args holding only the given keys that are present.
func (a Args) Slice(keys ...string) Args {
	out := make(Args, len(keys))
	for _, k := range keys {
		if v, ok := a[k]; ok {
			out[k] = v
		}
	}

	return out
}

// Func is the uniform shape of every adaptable callable.
type Func func(args Args) (any, error)

type mode int

const (
	passThrough mode = iota
	filterArgs
	ignoreArgs
)

// strategy is the resolved way of invoking the callable for one key set.
type strategy struct {
	mode     mode
	accepted []string
	missing  []string
}

// Adapter wraps a callable so it can be invoked with a superset of the
// named arguments it declares. Undeclared arguments are dropped.
//
// The invocation strategy is resolved once per distinct set of argument
// names and cached for the lifetime of the adapter. An Adapter is safe for
// concurrent use.
type Adapter struct {
	fn     Func
	sig    *Signature
	source string

	strategies sync.Map // string -> *strategy
}

// Adapt builds an Adapter for fn declaring the given parameters.
// Callables with required positional parameters cannot be adapted.
func Adapt(fn Func, params ...Param) (*Adapter, error) {
	if fn == nil {
		return nil, fmt.Errorf("%w: nil function", ErrUnsupportedCallable)
	}

	sig, err := Describe(params...)
	if err != nil {
		return nil, err
	}

	return newAdapter(fn, sig, sourceOf(fn))
}

// MustAdapt is like Adapt but panics on error.
func MustAdapt(fn Func, params ...Param) *Adapter {
	a, err := Adapt(fn, params...)
	if err != nil {
		panic(err)
	}

	return a
}

func newAdapter(fn Func, sig *Signature, source string) (*Adapter, error) {
	if n := sig.RequiredPositionalCount(); n > 0 {
		return nil, fmt.Errorf("%w: %s has %d required positional parameter(s)", ErrUnsupportedCallable, source, n)
	}

	return &Adapter{fn: fn, sig: sig, source: source}, nil
}

// Signature returns the declared signature of the wrapped callable.
func (a *Adapter) Signature() *Signature {
	return a.sig
}

// SourceInfo returns "file.go:line" of the wrapped callable.
func (a *Adapter) SourceInfo() string {
	return a.source
}

func (a *Adapter) String() string {
	return "call.Adapter" + a.sig.String() + " at " + a.source
}

// Invoke calls the wrapped callable with the subset of args it declares.
func (a *Adapter) Invoke(args Args) (any, error) {
	st := a.strategyFor(args)

	if len(st.missing) > 0 {
		return nil, fmt.Errorf("%w: %s for %s", ErrMissingRequiredArgument, strings.Join(st.missing, ", "), a.source)
	}

	switch st.mode {
	default:
		return a.fn(args)
	case ignoreArgs:
		return a.fn(nil)
	case filterArgs:
		return a.fn(args.Slice(st.accepted...))
	}
}

func (a *Adapter) strategyFor(args Args) *strategy {
	keys := args.Keys()
	cacheKey := strategyKey(keys)

	if st, ok := a.strategies.Load(cacheKey); ok {
		return st.(*strategy)
	}

	// Concurrent first calls may both get here; LoadOrStore keeps the first.
	st, _ := a.strategies.LoadOrStore(cacheKey, a.resolve(keys))

	return st.(*strategy)
}

// strategyKey encodes a sorted key set; each name is prefixed with its
// length so names containing separators cannot collide.
func strategyKey(keys []string) string {
	var b strings.Builder

	for _, k := range keys {
		b.WriteString(strconv.Itoa(len(k)))
		b.WriteByte(':')
		b.WriteString(k)
	}

	return b.String()
}

func (a *Adapter) resolve(keys []string) *strategy {
	st := &strategy{}

	for _, name := range a.sig.RequiredKeywords() {
		if _, found := slices.BinarySearch(keys, name); !found {
			st.missing = append(st.missing, name)
		}
	}

	if a.sig.restKeywords != nil {
		st.mode = passThrough
		return st
	}

	accepted := make([]string, 0, len(keys))
	for _, k := range keys {
		if a.sig.HasKeyword(k) {
			accepted = append(accepted, k)
		}
	}

	switch {
	case len(accepted) == len(keys):
		st.mode = passThrough
	case len(accepted) == 0 && !a.sig.AcceptsKeywords():
		st.mode = ignoreArgs
	default:
		st.mode = filterArgs
		st.accepted = accepted
	}

	return st
}
