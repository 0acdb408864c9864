package inflect

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	tests := []struct {
		plural, singular string
	}{
		{"tags", "tag"},
		{"chapters", "chapter"},
		{"categories", "category"},
		{"people", "person"},
		{"boxes", "box"},
	}

	in := Default()

	for _, tt := range tests {
		t.Run(tt.plural, func(t *testing.T) {
			assert.Equal(t, tt.singular, in.Singularize(tt.plural))
			assert.Equal(t, tt.plural, in.Pluralize(tt.singular))
		})
	}
}

func TestFunc(t *testing.T) {
	f := Func{Singular: func(s string) string { return strings.TrimSuffix(s, "z") }}

	assert.Equal(t, "bar", f.Singularize("barz"))
	assert.Equal(t, "bar", f.Pluralize("bar"))
}
