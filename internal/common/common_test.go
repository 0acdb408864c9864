package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceHelpers(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsEmpty([]int{1}))
	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsSingle([]string{"a", "b"}))

	v, ok := First([]string{"x", "y"})
	assert.True(t, ok)
	assert.Equal(t, "x", v)

	_, ok = First([]string{})
	assert.False(t, ok)
}

func TestSortedBy(t *testing.T) {
	in := []string{"pear", "apple", "fig"}
	out := SortedBy(in, func(s string) string { return s })

	assert.Equal(t, []string{"apple", "fig", "pear"}, out)
	assert.Equal(t, []string{"pear", "apple", "fig"}, in, "input must not be reordered")
}

func TestSplitFuncName(t *testing.T) {
	tests := []struct {
		full, alias, name string
	}{
		{"github.com/acme/mod/pkg.Type.Method.func1", "pkg", "Type.Method.func1"},
		{"attrkit/call_test.TestAdapt.func2", "call_test", "TestAdapt.func2"},
		{"main.main", "main", "main"},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			alias, name := SplitFuncName(tt.full)
			assert.Equal(t, tt.alias, alias)
			assert.Equal(t, tt.name, name)
		})
	}
}

func TestPkgAlias(t *testing.T) {
	assert.Equal(t, "", PkgAlias(""))
	assert.Equal(t, "property", PkgAlias("attrkit/property"))
}
