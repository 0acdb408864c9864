package call

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entryArgs struct {
	Object any    `arg:"object"`
	Key    int    `arg:"key,required"`
	Label  string // keyword "label"
	Hidden string `arg:"-"`
	secret string
}

type myInt int

func TestBind_DerivesSignature(t *testing.T) {
	a, err := Bind(func(entryArgs) (any, error) { return nil, nil })
	require.NoError(t, err)

	assert.Equal(t, map[string]Parameter{
		"object": {Name: "object", Optional: true},
		"key":    {Name: "key", Optional: false},
		"label":  {Name: "label", Optional: true},
	}, a.Signature().Keywords())
	assert.Regexp(t, `^bind_test\.go:\d+$`, a.SourceInfo())
}

func TestBind_FillsStructAndDropsExtras(t *testing.T) {
	var got entryArgs

	a := MustBind(func(in entryArgs) (any, error) {
		got = in
		return in.Key * 2, nil
	})

	v, err := a.Invoke(Args{"key": 21, "label": "x", "Hidden": "no", "value": 3})
	require.NoError(t, err)
	assert.Equal(t, 42, v)
	assert.Equal(t, entryArgs{Key: 21, Label: "x"}, got)
}

func TestBind_ConvertsCompatibleValues(t *testing.T) {
	a := MustBind(func(in entryArgs) (any, error) { return in.Key, nil })

	v, err := a.Invoke(Args{"key": myInt(7)})
	require.NoError(t, err)
	assert.Equal(t, 7, v)

	v, err = a.Invoke(Args{"key": int64(8)})
	require.NoError(t, err)
	assert.Equal(t, 8, v)
}

func TestBind_RejectsIncompatibleValues(t *testing.T) {
	a := MustBind(func(in entryArgs) (any, error) { return in.Key, nil })

	_, err := a.Invoke(Args{"key": "seven"})
	require.ErrorIs(t, err, ErrArgumentType)
	assert.Contains(t, err.Error(), "key")
}

func TestBind_NilLeavesZeroValue(t *testing.T) {
	a := MustBind(func(in entryArgs) (any, error) { return in.Label, nil })

	v, err := a.Invoke(Args{"key": 1, "label": nil})
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestBind_MissingRequired(t *testing.T) {
	a := MustBind(func(in entryArgs) (any, error) { return nil, nil })

	_, err := a.Invoke(Args{"label": "x"})
	require.ErrorIs(t, err, ErrMissingRequiredArgument)
}

func TestBind_RejectsNonStruct(t *testing.T) {
	_, err := Bind(func(int) (any, error) { return nil, nil })
	require.ErrorIs(t, err, ErrUnsupportedCallable)

	_, err = Bind[entryArgs](nil)
	require.ErrorIs(t, err, ErrUnsupportedCallable)
}
