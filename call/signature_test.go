package call

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameter_Equal(t *testing.T) {
	a := Parameter{Name: "a", Optional: false}

	assert.True(t, a.Equal(Parameter{Name: "a", Optional: false}))
	assert.False(t, a.Equal(Parameter{Name: "a", Optional: true}))
	assert.False(t, a.Equal(Parameter{Name: "b", Optional: false}))
}

func TestDescribe_Positional(t *testing.T) {
	sig, err := Describe(Pos("a"), OptPos("b"))
	require.NoError(t, err)

	assert.Equal(t, []Parameter{
		{Name: "a", Optional: false},
		{Name: "b", Optional: true},
	}, sig.Positional())
}

func TestDescribe_RestPositional(t *testing.T) {
	sig, err := Describe(Pos("a"), Rest("b"))
	require.NoError(t, err)

	assert.Equal(t, []Parameter{{Name: "a"}}, sig.Positional())

	rest, ok := sig.Rest()
	require.True(t, ok)
	assert.Equal(t, Parameter{Name: "b", Optional: true}, rest)
}

func TestDescribe_Keywords(t *testing.T) {
	sig, err := Describe(Key("a"), OptKey("b"))
	require.NoError(t, err)

	assert.Equal(t, map[string]Parameter{
		"a": {Name: "a", Optional: false},
		"b": {Name: "b", Optional: true},
	}, sig.Keywords())
	assert.Equal(t, []string{"a"}, sig.RequiredKeywords())
	assert.True(t, sig.AcceptsKeywords())

	_, ok := sig.RestKeywords()
	assert.False(t, ok)
}

func TestDescribe_RestKeywords(t *testing.T) {
	sig, err := Describe(Key("a"), RestKey("b"))
	require.NoError(t, err)

	assert.Equal(t, map[string]Parameter{"a": {Name: "a"}}, sig.Keywords())

	rest, ok := sig.RestKeywords()
	require.True(t, ok)
	assert.Equal(t, Parameter{Name: "b", Optional: true}, rest)
}

func TestDescribe_Counts(t *testing.T) {
	sig := MustDescribe(Pos("a"), OptPos("b"), OptPos("c"))

	assert.Equal(t, 1, sig.RequiredPositionalCount())
	assert.Equal(t, 2, sig.OptionalPositionalCount())

	// memoized
	assert.Equal(t, 1, sig.RequiredPositionalCount())
}

func TestDescribe_UnknownKind(t *testing.T) {
	_, err := Describe(Pos("a"), Param{Kind: Kind(42), Name: "b"})
	require.ErrorIs(t, err, ErrUnsupportedParameterKind)
	assert.Contains(t, err.Error(), "Kind(42)")

	_, err = Describe(Param{Name: "zero"})
	require.ErrorIs(t, err, ErrUnsupportedParameterKind)
}

func TestDescribe_Empty(t *testing.T) {
	sig, err := Describe()
	require.NoError(t, err)

	assert.Empty(t, sig.Positional())
	assert.False(t, sig.AcceptsKeywords())
	assert.Equal(t, 0, sig.RequiredPositionalCount())
	assert.Equal(t, "()", sig.String())
}

func TestSignature_String(t *testing.T) {
	sig := MustDescribe(Pos("a"), OptPos("b"), Rest("c"), Key("k"), OptKey("o"), RestKey("opts"))

	assert.Equal(t, "(a, b?, *c; k:, o?:, **opts)", sig.String())
}

func TestKind_Predicates(t *testing.T) {
	tests := []struct {
		kind       Kind
		positional bool
		keyword    bool
		optional   bool
		name       string
	}{
		{Positional, true, false, false, "Positional"},
		{OptionalPositional, true, false, true, "OptionalPositional"},
		{RestPositional, true, false, true, "RestPositional"},
		{Keyword, false, true, false, "Keyword"},
		{OptionalKeyword, false, true, true, "OptionalKeyword"},
		{RestKeyword, false, true, true, "RestKeyword"},
		{KindUnknown, false, false, false, "KindUnknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.positional, tt.kind.IsPositional())
			assert.Equal(t, tt.keyword, tt.kind.IsKeyword())
			assert.Equal(t, tt.optional, tt.kind.IsOptional())
			assert.Equal(t, tt.name, tt.kind.String())
		})
	}

	assert.Equal(t, 7, KindTotal)
}
