package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"attrkit/call"
	"attrkit/typecheck"
)

func TestScalar_ShapeInheritsFromProperty(t *testing.T) {
	calls := 0
	factory := constant("x", &calls)
	transformer := upper()

	p := NewScalar("test", Type(stringT), Factory(factory), Transformer(transformer))

	shape, err := p.Shape("")
	require.NoError(t, err)
	assert.Equal(t, "test", shape.Name)
	assert.Equal(t, stringT, shape.Type)
	assert.Same(t, factory, shape.Factory)
	assert.Same(t, transformer, shape.Transformer)

	narrowed, err := p.Shape("test_int", Type(intT))
	require.NoError(t, err)
	assert.Equal(t, intT, narrowed.Type)
	assert.Same(t, factory, narrowed.Factory)

	assert.Len(t, p.Shapes(), 2)
}

func TestScalar_ShapeErrors(t *testing.T) {
	p := NewScalar("test")

	_, err := p.Shape("test_symbol")
	require.ErrorIs(t, err, ErrMissingType)

	_, err = p.Shape("test_string", Type(stringT))
	require.NoError(t, err)

	_, err = p.Shape("test_string", Type(intT))
	require.ErrorIs(t, err, ErrDuplicateShape)
}

func TestScalar_SetShapes(t *testing.T) {
	p := NewScalar("test", Type(stringT)).MustShape("test_string")

	require.NoError(t, p.SetShapes(&Shape{Name: "test_symbol", Type: stringT}))
	assert.Contains(t, p.Shapes(), "test_symbol")
	assert.NotContains(t, p.Shapes(), "test_string")

	err := p.SetShapes(&Shape{Name: "a", Type: intT}, &Shape{Name: "a", Type: intT})
	require.ErrorIs(t, err, ErrDuplicateShape)
	assert.Contains(t, p.Shapes(), "test_symbol", "failed replacement keeps the old shapes")
}

func TestScalar_ShapesIsACopy(t *testing.T) {
	p := NewScalar("test", Type(stringT)).MustShape("")

	p.Shapes()["other"] = &Shape{Name: "other"}
	assert.Len(t, p.Shapes(), 1)
}

func TestScalar_SetupInstallsShapeOperations(t *testing.T) {
	p := NewScalar("test", Type(stringT)).MustShape("test_string")
	_, err := p.Shape("test", Type(intT))
	require.NoError(t, err)

	class := NewClass("Container")
	require.NoError(t, class.Setup(p))

	for _, name := range []string{"test", "test=", "test_string", "test_string="} {
		assert.True(t, class.Has(name), name)
	}
}

func TestScalar_SetupDefaultShape(t *testing.T) {
	class := NewClass("Container")
	require.NoError(t, class.Setup(NewScalar("test", Type(stringT))))

	assert.Equal(t, []OperationInfo{
		{Name: "test", Kind: OpAccess, Property: "test"},
		{Name: "test=", Kind: OpSet, Property: "test"},
	}, class.Operations())
}

func TestScalar_SetupMissingType(t *testing.T) {
	err := NewClass("Container").Setup(NewScalar("test"))
	require.ErrorIs(t, err, ErrMissingType)
}

func TestScalar_SetterAndAccessor(t *testing.T) {
	class := NewClass("Container").MustSetup(NewScalar("test", Type(stringT)))
	obj := class.New()

	v, err := obj.Set("test", "nothing")
	require.NoError(t, err)
	assert.Equal(t, "nothing", v)

	stored, _ := obj.Load("test")
	assert.Equal(t, "nothing", stored)

	got, err := obj.Invoke("test", Request{Value: Some("else")})
	require.NoError(t, err)
	assert.Equal(t, "else", got.Value())

	got, err = obj.Get("test")
	require.NoError(t, err)
	assert.Equal(t, "else", got.Value())

	_, err = obj.Set("test", 1)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestScalar_SetterRequiresValue(t *testing.T) {
	obj := NewClass("Container").MustSetup(NewScalar("test", Type(stringT))).New()

	_, err := obj.Invoke("test=", Request{})
	require.ErrorIs(t, err, call.ErrMissingRequiredArgument)
}

func TestScalar_ShapesAreSeparateSlots(t *testing.T) {
	p := NewScalar("value").
		MustShape("string_value", Type(stringT)).
		MustShape("int_value", Type(intT))

	obj := NewClass("Container").MustSetup(p).New()

	_, err := obj.Set("string_value", "Hello")
	require.NoError(t, err)

	_, err = obj.Set("int_value", 42)
	require.NoError(t, err)

	s, err := obj.Get("string_value")
	require.NoError(t, err)
	assert.Equal(t, "Hello", s.Value())

	n, err := obj.Get("int_value")
	require.NoError(t, err)
	assert.Equal(t, 42, n.Value())

	v, err := obj.Get("value")
	require.NoError(t, err)
	assert.False(t, v.IsPresent())
}

func TestScalar_DefaultShapeTypeIsUnionOfShapes(t *testing.T) {
	p := NewScalar("value").
		MustShape("string_value", Type(stringT)).
		MustShape("int_value", Type(intT))

	obj := NewClass("Container").MustSetup(p).New()

	u, ok := p.Type().(typecheck.Union)
	require.True(t, ok)
	assert.ElementsMatch(t, []typecheck.Type{stringT, intT}, u.Members())

	_, err := obj.Set("value", 1)
	require.NoError(t, err)

	_, err = obj.Set("value", "one")
	require.NoError(t, err)

	_, err = obj.Set("value", 1.5)
	require.ErrorIs(t, err, ErrTypeMismatch)
}

func TestScalar_Factory(t *testing.T) {
	calls := 0
	obj := NewClass("Container").
		MustSetup(NewScalar("value", Type(stringT), Factory(constant("something", &calls)))).
		New()

	for range 2 {
		v, err := obj.Get("value")
		require.NoError(t, err)
		assert.Equal(t, "something", v.Value())
	}

	assert.Equal(t, 1, calls)
}

func TestScalar_String(t *testing.T) {
	p := NewScalar("title", Type(stringT), Transformer(upper())).MustShape("short_title")

	assert.Regexp(t, `^title \(Scalar\) \{type: string, transformer: helpers_test\.go:\d+, shapes: \[short_title\]\}$`, p.String())
	assert.Equal(t, "short_title (Shape) {type: string}", (&Shape{Name: "short_title", Type: stringT}).String())
}
