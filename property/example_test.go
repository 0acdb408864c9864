package property_test

import (
	"errors"
	"fmt"
	"strings"

	"attrkit/call"
	"attrkit/property"
	"attrkit/typecheck"
)

func Example() {
	trim := call.MustAdapt(func(args call.Args) (any, error) {
		s, _ := args["value"].(string)
		return strings.TrimSpace(s), nil
	}, call.OptKey("value"))

	book := property.NewClass("Book").MustSetup(
		property.NewScalar("title", property.Type(typecheck.TypeOf[string]()), property.Transformer(trim)),
		property.NewSet("tags", property.ValueType(typecheck.TypeOf[string]())),
		property.NewMap("chapters",
			property.KeyType(typecheck.TypeOf[int]()),
			property.ValueType(typecheck.TypeOf[string]())),
	)

	b := book.New()

	title, _ := b.Set("title", "  Dialects ")
	fmt.Printf("%q\n", title)

	_, _ = b.Add("tag", "go")
	_, _ = b.Add("tag", "go")
	tags, _ := b.Get("tags")
	fmt.Println(len(tags.Value().(map[any]struct{})))

	_, _ = b.SetEntry("chapter", 1, "Intro")
	ch, _ := b.GetEntry("chapter", 1)
	fmt.Println(ch)

	_, err := b.SetEntry("chapter", "one", "Intro")
	fmt.Println(errors.Is(err, property.ErrInvalidKeyType))

	for _, op := range book.Operations() {
		fmt.Println(op.Name, op.Kind)
	}

	// Output:
	// "Dialects"
	// 1
	// Intro
	// true
	// chapter Entry
	// chapters Access
	// chapters= Set
	// tag Add
	// tags Access
	// tags= Set
	// title Access
	// title= Set
}
