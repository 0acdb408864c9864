// Package inflect converts between singular and plural English nouns.
package inflect

import "github.com/jinzhu/inflection"

// Inflector singularizes and pluralizes words.
type Inflector interface {
	Singularize(word string) string
	Pluralize(word string) string
}

type rules struct{}

func (rules) Singularize(word string) string {
	return inflection.Singular(word)
}

func (rules) Pluralize(word string) string {
	return inflection.Plural(word)
}

// Default returns the inflector backed by the English rules of
// github.com/jinzhu/inflection.
func Default() Inflector {
	return rules{}
}

// Irregular registers an irregular singular/plural pair with the default rules.
// It must be called before any concurrent use of Default.
func Irregular(singular, plural string) {
	inflection.AddIrregular(singular, plural)
}

// Uncountable registers words that have no distinct plural with the default rules.
// It must be called before any concurrent use of Default.
func Uncountable(words ...string) {
	inflection.AddUncountable(words...)
}

// Func adapts a pair of functions to the Inflector interface.
type Func struct {
	Singular func(string) string
	Plural   func(string) string
}

func (f Func) Singularize(word string) string {
	if f.Singular == nil {
		return word
	}

	return f.Singular(word)
}

func (f Func) Pluralize(word string) string {
	if f.Plural == nil {
		return word
	}

	return f.Plural(word)
}
