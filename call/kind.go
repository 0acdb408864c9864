package call

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the declared kind of one callable parameter.
type Kind int

const (
	KindUnknown Kind = iota // zero value, rejected by Describe

	Positional         // required positional
	OptionalPositional // positional with a default
	RestPositional     // variadic positional tail
	Keyword            // required keyword
	OptionalKeyword    // keyword with a default
	RestKeyword        // catch-all keyword bag

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

// IsPositional reports whether the kind describes a positional parameter.
func (k Kind) IsPositional() bool {
	switch k {
	default:
		return false
	case Positional, OptionalPositional, RestPositional:
		return true
	}
}

// IsKeyword reports whether the kind describes a keyword parameter.
func (k Kind) IsKeyword() bool {
	switch k {
	default:
		return false
	case Keyword, OptionalKeyword, RestKeyword:
		return true
	}
}

// IsOptional reports whether a caller may omit a parameter of this kind.
func (k Kind) IsOptional() bool {
	switch k {
	default:
		return false
	case OptionalPositional, RestPositional, OptionalKeyword, RestKeyword:
		return true
	}
}

// Param is a single declared parameter: what a caller states a callable accepts.
type Param struct {
	Kind Kind
	Name string
}

func Pos(name string) Param     { return Param{Kind: Positional, Name: name} }
func OptPos(name string) Param  { return Param{Kind: OptionalPositional, Name: name} }
func Rest(name string) Param    { return Param{Kind: RestPositional, Name: name} }
func Key(name string) Param     { return Param{Kind: Keyword, Name: name} }
func OptKey(name string) Param  { return Param{Kind: OptionalKeyword, Name: name} }
func RestKey(name string) Param { return Param{Kind: RestKeyword, Name: name} }
