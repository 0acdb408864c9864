package property

//go:generate go tool stringer -type=OpKind -trimprefix=Op -output=opkind_string.go

// OpKind classifies an installed operation.
type OpKind int

const (
	OpAccess OpKind = iota // read, or write when a value is given
	OpSet                  // write only
	OpEntry                // read or write one map entry
	OpAdd                  // add one set member
)
