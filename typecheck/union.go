package typecheck

import (
	"slices"
	"strings"
)

// Union matches a value conforming to any of its members.
//
// Unions built by a Checker are flat (no nested unions), hold no duplicate
// members and keep their members in canonical order, so two unions over the
// same set of types are Equal regardless of how they were spelled.
type Union struct {
	members []Type
}

// Members returns a copy of the union members in canonical order.
func (u Union) Members() []Type {
	return slices.Clone(u.members)
}

// Len returns the number of members.
func (u Union) Len() int {
	return len(u.members)
}

// Has reports whether t is a member of the union.
func (u Union) Has(t Type) bool {
	return slices.Contains(u.members, t)
}

// Equal reports whether both unions have the same members.
func (u Union) Equal(other Union) bool {
	if len(u.members) != len(other.members) {
		return false
	}

	for _, m := range u.members {
		if !other.Has(m) {
			return false
		}
	}

	return true
}

func (u Union) format(f func(Type) string) string {
	parts := make([]string, len(u.members))
	for i, m := range u.members {
		parts[i] = f(m)
	}

	return strings.Join(parts, " | ")
}
