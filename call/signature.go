package call

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
)

var ErrUnsupportedParameterKind = errors.New("unsupported parameter kind")

// Parameter is the normalized form of a declared parameter.
type Parameter struct {
	Name     string
	Optional bool
}

// Equal reports whether both parameters have the same name and optionality.
func (p Parameter) Equal(other Parameter) bool {
	return p.Name == other.Name && p.Optional == other.Optional
}

func (p Parameter) String() string {
	if p.Optional {
		return p.Name + "?"
	}

	return p.Name
}

// Signature describes the parameter shape of a callable.
// It is immutable once built by Describe.
type Signature struct {
	positional   []Parameter
	rest         *Parameter
	keywords     map[string]Parameter
	restKeywords *Parameter

	countOnce     sync.Once
	requiredCount int
	optionalCount int
}

// Describe partitions the declared parameters into a Signature.
//
// Declaration order of positional parameters is preserved. A later rest
// parameter (positional or keyword) replaces an earlier one.
func Describe(params ...Param) (*Signature, error) {
	s := &Signature{keywords: make(map[string]Parameter)}

	for _, p := range params {
		switch p.Kind {
		default:
			return nil, fmt.Errorf("%w: %v in signature %s", ErrUnsupportedParameterKind, p.Kind, renderParams(params))

		case Positional, OptionalPositional:
			s.positional = append(s.positional, Parameter{Name: p.Name, Optional: p.Kind == OptionalPositional})
		case RestPositional:
			s.rest = &Parameter{Name: p.Name, Optional: true}
		case Keyword, OptionalKeyword:
			s.keywords[p.Name] = Parameter{Name: p.Name, Optional: p.Kind == OptionalKeyword}
		case RestKeyword:
			s.restKeywords = &Parameter{Name: p.Name, Optional: true}
		}
	}

	return s, nil
}

// MustDescribe is like Describe but panics on error.
func MustDescribe(params ...Param) *Signature {
	s, err := Describe(params...)
	if err != nil {
		panic(err)
	}

	return s
}

// Positional returns the positional parameters in declaration order.
func (s *Signature) Positional() []Parameter {
	return slices.Clone(s.positional)
}

// Rest returns the rest positional parameter, if any.
func (s *Signature) Rest() (Parameter, bool) {
	if s.rest == nil {
		return Parameter{}, false
	}

	return *s.rest, true
}

// Keywords returns the declared keyword parameters by name.
func (s *Signature) Keywords() map[string]Parameter {
	return maps.Clone(s.keywords)
}

// RestKeywords returns the rest keyword parameter, if any.
func (s *Signature) RestKeywords() (Parameter, bool) {
	if s.restKeywords == nil {
		return Parameter{}, false
	}

	return *s.restKeywords, true
}

// HasKeyword reports whether name is a declared keyword.
func (s *Signature) HasKeyword(name string) bool {
	_, ok := s.keywords[name]
	return ok
}

// AcceptsKeywords reports whether the callable takes any keyword at all.
func (s *Signature) AcceptsKeywords() bool {
	return len(s.keywords) > 0 || s.restKeywords != nil
}

// RequiredKeywords returns the names of required keywords, sorted.
func (s *Signature) RequiredKeywords() []string {
	var names []string

	for name, p := range s.keywords {
		if !p.Optional {
			names = append(names, name)
		}
	}

	slices.Sort(names)

	return names
}

func (s *Signature) RequiredPositionalCount() int {
	s.count()
	return s.requiredCount
}

func (s *Signature) OptionalPositionalCount() int {
	s.count()
	return s.optionalCount
}

func (s *Signature) count() {
	s.countOnce.Do(func() {
		for _, p := range s.positional {
			if p.Optional {
				s.optionalCount++
			} else {
				s.requiredCount++
			}
		}
	})
}

// String renders the signature as "(a, b?, *rest; k:, o?:, **opts)".
func (s *Signature) String() string {
	var parts []string

	for _, p := range s.positional {
		parts = append(parts, p.String())
	}

	if s.rest != nil {
		parts = append(parts, "*"+s.rest.Name)
	}

	var keys []string

	for _, name := range slices.Sorted(maps.Keys(s.keywords)) {
		keys = append(keys, s.keywords[name].String()+":")
	}

	if s.restKeywords != nil {
		keys = append(keys, "**"+s.restKeywords.Name)
	}

	if len(keys) == 0 {
		return "(" + strings.Join(parts, ", ") + ")"
	}

	return "(" + strings.Join(parts, ", ") + "; " + strings.Join(keys, ", ") + ")"
}

func renderParams(params []Param) string {
	parts := make([]string, 0, len(params))
	for _, p := range params {
		parts = append(parts, fmt.Sprintf("[%v %s]", p.Kind, p.Name))
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
