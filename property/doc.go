// Package property declares typed, lazily populated attributes of a host
// class and installs named accessor operations for them.
//
// A property is declared once per class and set up against it:
//
//	books := property.NewClass("Book")
//	books.MustSetup(
//		property.NewScalar("title", property.Type(typecheck.TypeOf[string]())),
//		property.NewSet("tags", property.ValueType(typecheck.TypeOf[string]())),
//		property.NewMap("chapters",
//			property.KeyType(typecheck.TypeOf[int]()),
//			property.ValueType(typecheck.TypeOf[string]())),
//	)
//
//	b := books.New()
//	b.Set("title", "Dialects")     // "title="
//	b.Add("tag", "go")             // default set entry, singular of "tags"
//	b.SetEntry("chapter", 1, "Intro")
//
// Reads of an empty slot run the shape's factory once and cache the result.
// Writes run the transformer, then the type check of the object's checker,
// and only then store.
//
// Property kinds:
//   - Scalar: one value, one or more typed shapes
//   - Map: a map with keyed entry accessors writing through to the live map
//   - Set: a set with adding entry accessors
//
// Whole-collection accessors return a shallow copy; entry accessors mutate
// the stored collection.
package property
