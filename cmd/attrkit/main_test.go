package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"attrkit/call"
)

func run(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	var out, errOut bytes.Buffer

	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestDescribe_Text(t *testing.T) {
	out, _, err := run(t, "describe")
	require.NoError(t, err)

	assert.Contains(t, out, "class Order")
	assert.Contains(t, out, "status (Scalar) {type: tag(oneof=PENDING PAID SHIPPED CANCELLED)")
	assert.Contains(t, out, "items (Map) {type: map[any]any, key_type: int64, value_type: *attrkit/internal/demo.OrderItem")
	assert.Regexp(t, `(?m)^  item\s+Entry\s+items$`, out)
	assert.Regexp(t, `(?m)^  tag\s+Add\s+tags$`, out)
}

func TestDescribe_YAML(t *testing.T) {
	out, _, err := run(t, "describe", "--output", "yaml")
	require.NoError(t, err)

	var doc classDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, "Order", doc.Class)
	assert.Len(t, doc.Properties, 4)
	require.Len(t, doc.Operations, 14)
	assert.Equal(t, operationDoc{Name: "customer", Kind: "Access", Property: "customer"}, doc.Operations[0])
}

func TestDescribe_VerboseLogsDefinitions(t *testing.T) {
	_, stderr, err := run(t, "describe", "-v")
	require.NoError(t, err)

	assert.Contains(t, stderr, "defined operation")
	assert.Contains(t, stderr, "class=Order")
}

func TestSignature_Text(t *testing.T) {
	out, _, err := run(t, "signature", "opt:a", "keyreq:object", "key:value")
	require.NoError(t, err)

	assert.Contains(t, out, "signature:           (a?; object:, value?:)")
	assert.Contains(t, out, "required keywords:   object")
	assert.Contains(t, out, "adaptable:           true")
}

func TestSignature_YAML(t *testing.T) {
	out, _, err := run(t, "-o", "yaml", "signature", "req:a", "rest:more", "keyrest:opts")
	require.NoError(t, err)

	var doc signatureDoc
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))

	assert.Equal(t, signatureDoc{
		Signature:          "(a, *more; **opts)",
		RequiredPositional: 1,
		AcceptsKeywords:    true,
		Adaptable:          false,
	}, doc)
}

func TestSignature_BadArguments(t *testing.T) {
	_, _, err := run(t, "signature", "nokind")
	require.ErrorIs(t, err, errBadParam)

	_, _, err = run(t, "signature", "block:b")
	require.ErrorIs(t, err, call.ErrUnsupportedParameterKind)
}

func TestRoot_UnknownOutput(t *testing.T) {
	_, _, err := run(t, "describe", "-o", "json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}
