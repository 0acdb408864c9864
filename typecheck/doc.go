// Package typecheck validates values against opaque type descriptors.
//
// The Checker interface is the only contract the property engine relies on.
// Builtin is the stock implementation and interprets four kinds of
// descriptors:
//
//   - reflect.Type: the value's dynamic type must be assignable to it
//   - Union: the value must conform to at least one member
//   - Tag: a go-playground/validator constraint such as "min=1"
//   - Any: every value conforms
//
// Unions are canonical: nested unions are flattened, duplicates removed and
// members ordered by their formatted name. A union of a single type is that
// type.
package typecheck
