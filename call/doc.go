// Package call describes callable parameter shapes and adapts callables so
// they can be invoked with more named arguments than they declare.
//
// Go functions carry no parameter names at run time, so every adaptable
// callable is a Func paired with an explicit parameter list:
//
//	upper := call.MustAdapt(func(args call.Args) (any, error) {
//		return strings.ToUpper(args["value"].(string)), nil
//	}, call.Key("value"))
//
//	upper.Invoke(call.Args{"object": obj, "value": "x"}) // "object" is dropped
//
// Bind derives the parameter list from an argument struct instead:
//
//	type keyArgs struct {
//		Key any `arg:"key,required"`
//	}
//
//	double := call.MustBind(func(a keyArgs) (any, error) { ... })
//
// Key concepts:
//   - Signature: positional, rest, keyword and rest-keyword parameters
//   - Adapter: filters arguments down to the declared keywords, caching the
//     filtering decision per distinct set of argument names
//   - Required positional parameters are never adaptable: adapters are only
//     reached through keyword-style invocation
package call
