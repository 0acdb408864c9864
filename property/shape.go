package property

import (
	"strings"

	"attrkit/call"
	"attrkit/typecheck"
)

// Shape is one typed view of a property: the slot it is stored in, its
// type and how its value is created and normalized. Shapes must not be
// modified once a class has been set up with them.
type Shape struct {
	Name        string
	Type        typecheck.Type
	Factory     *call.Adapter
	Transformer *call.Adapter
}

func (s *Shape) String() string {
	var b strings.Builder

	b.WriteString(s.Name)
	b.WriteString(" (Shape) {type: ")
	b.WriteString(formatType(s.Type))
	writeSource(&b, "factory", s.Factory)
	writeSource(&b, "transformer", s.Transformer)
	b.WriteString("}")

	return b.String()
}

func formatType(t typecheck.Type) string {
	return typecheck.Default().Format(t)
}

func writeSource(b *strings.Builder, label string, a *call.Adapter) {
	if a == nil {
		return
	}

	b.WriteString(", ")
	b.WriteString(label)
	b.WriteString(": ")
	b.WriteString(a.SourceInfo())
}
