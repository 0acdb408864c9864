package property

import (
	"errors"
	"strings"
	"sync/atomic"

	"attrkit/call"
	"attrkit/typecheck"
)

var (
	intT    = typecheck.TypeOf[int]()
	stringT = typecheck.TypeOf[string]()
	boom    = errors.New("boom")
)

// box holds any value in an interface field, so its comparability
// depends on the value.
type box struct {
	V any
}

// countingChecker counts Valid calls of the default checker.
type countingChecker struct {
	typecheck.Checker
	calls atomic.Int64
}

func newCountingChecker() *countingChecker {
	return &countingChecker{Checker: typecheck.Default()}
}

func (c *countingChecker) Valid(t typecheck.Type, v any) (bool, error) {
	c.calls.Add(1)
	return c.Checker.Valid(t, v)
}

func failing() *call.Adapter {
	return call.MustAdapt(func(call.Args) (any, error) { return nil, boom })
}

// constant returns a factory producing v and counting its calls.
func constant(v any, calls *int) *call.Adapter {
	return call.MustAdapt(func(call.Args) (any, error) {
		*calls++
		return v, nil
	})
}

func upper() *call.Adapter {
	return call.MustAdapt(func(args call.Args) (any, error) {
		if s, ok := args["value"].(string); ok {
			return strings.ToUpper(s), nil
		}

		return args["value"], nil
	}, call.OptKey("value"))
}
