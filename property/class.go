package property

import (
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"go.uber.org/multierr"

	"attrkit/inflect"
	"attrkit/internal/suggest"
	"attrkit/typecheck"
)

// maxSuggestions bounds the "did you mean" list of unknown accessor errors.
const maxSuggestions = 3

// Property is a declaration that installs operations on a class.
type Property interface {
	Name() string
	// Setup resolves missing types and installs the property's operations.
	Setup(c *Class) error
	String() string
}

// Operation is an installed accessor, bound to one shape or entry.
type Operation func(t Target, req Request) (Optional, error)

// Request carries the arguments of one operation call. Key is used by map
// entry operations only. Configure, when set, runs on the non-nil result of
// entry operations.
type Request struct {
	Key       Optional
	Value     Optional
	Configure func(value any) error
}

// OperationInfo describes an installed operation.
type OperationInfo struct {
	Name     string
	Kind     OpKind
	Property string
}

type definition struct {
	OperationInfo
	op Operation
}

// Class is a host type: the operations its properties installed and the
// collaborators they resolve at setup and access time.
type Class struct {
	name      string
	parent    *Class
	checker   typecheck.Checker
	inflector inflect.Inflector
	logger    *slog.Logger

	ops   map[string]*definition
	props []Property
}

// ClassOption configures a Class.
type ClassOption func(*Class)

// WithParent makes c inherit operations, checker and inflector from parent.
func WithParent(parent *Class) ClassOption {
	return func(c *Class) { c.parent = parent }
}

// WithChecker sets the type checker used by the class and its subclasses.
func WithChecker(checker typecheck.Checker) ClassOption {
	return func(c *Class) { c.checker = checker }
}

// WithInflector sets the inflector naming default entries.
func WithInflector(inflector inflect.Inflector) ClassOption {
	return func(c *Class) { c.inflector = inflector }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) ClassOption {
	return func(c *Class) { c.logger = logger }
}

// NewClass creates an empty class.
func NewClass(name string, opts ...ClassOption) *Class {
	c := &Class{
		name: name,
		ops:  make(map[string]*definition),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.logger == nil {
		c.logger = slog.Default()
	}

	c.logger = c.logger.With(slog.String("class", name))

	return c
}

func (c *Class) Name() string { return c.name }

func (c *Class) Parent() *Class { return c.parent }

// Checker returns the nearest checker configured on c or its ancestors,
// falling back to typecheck.Default().
func (c *Class) Checker() typecheck.Checker {
	for k := c; k != nil; k = k.parent {
		if k.checker != nil {
			return k.checker
		}
	}

	return typecheck.Default()
}

// Inflector returns the nearest inflector configured on c or its
// ancestors, falling back to inflect.Default().
func (c *Class) Inflector() inflect.Inflector {
	for k := c; k != nil; k = k.parent {
		if k.inflector != nil {
			return k.inflector
		}
	}

	return inflect.Default()
}

// Setup sets up every property on c. All properties are attempted; the
// failures are combined into one error.
func (c *Class) Setup(props ...Property) error {
	var errs error

	for _, p := range props {
		if err := p.Setup(c); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("class %s: %w", c.name, err))
			continue
		}

		c.props = append(c.props, p)
	}

	return errs
}

// MustSetup is like Setup but panics on error.
func (c *Class) MustSetup(props ...Property) *Class {
	if err := c.Setup(props...); err != nil {
		panic(err)
	}

	return c
}

// Define installs op under name, replacing an operation of the same name.
func (c *Class) Define(name string, kind OpKind, property string, op Operation) {
	if old, ok := c.ops[name]; ok {
		c.logger.Warn("redefining operation",
			slog.String("name", name),
			slog.String("previous", old.Property),
			slog.String("property", property))
	}

	c.ops[name] = &definition{
		OperationInfo: OperationInfo{Name: name, Kind: kind, Property: property},
		op:            op,
	}

	c.logger.Debug("defined operation",
		slog.String("name", name),
		slog.String("kind", kind.String()),
		slog.String("property", property))
}

// Operation returns the operation installed under name on c or its
// ancestors.
func (c *Class) Operation(name string) (Operation, error) {
	for k := c; k != nil; k = k.parent {
		if d, ok := k.ops[name]; ok {
			return d.op, nil
		}
	}

	return nil, &AccessorError{
		Class:       c.name,
		Name:        name,
		Suggestions: suggest.Names(name, c.operationNames(), maxSuggestions),
	}
}

// Has reports whether an operation is installed under name.
func (c *Class) Has(name string) bool {
	_, err := c.Operation(name)
	return err == nil
}

// Operations lists the visible operations sorted by name. Operations of c
// hide same-named operations of its ancestors.
func (c *Class) Operations() []OperationInfo {
	seen := make(map[string]OperationInfo)

	for k := c; k != nil; k = k.parent {
		for name, d := range k.ops {
			if _, ok := seen[name]; !ok {
				seen[name] = d.OperationInfo
			}
		}
	}

	out := make([]OperationInfo, 0, len(seen))
	for _, name := range slices.Sorted(maps.Keys(seen)) {
		out = append(out, seen[name])
	}

	return out
}

// Properties returns the properties successfully set up on c, in order.
func (c *Class) Properties() []Property {
	return slices.Clone(c.props)
}

// Invoke runs the operation name against t.
func (c *Class) Invoke(t Target, name string, req Request) (Optional, error) {
	op, err := c.Operation(name)
	if err != nil {
		return Absent, err
	}

	return op(t, req)
}

// New creates an instance with empty slots.
func (c *Class) New() *Object {
	return &Object{class: c, slots: make(map[string]any)}
}

func (c *Class) operationNames() []string {
	infos := c.Operations()

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}

	return names
}
