package demo

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"attrkit/call"
	"attrkit/property"
	"attrkit/typecheck"
)

// ErrUnexpectedValue reports a slot holding a value of the wrong type,
// which the bulk items= and tags= setters do not rule out.
var ErrUnexpectedValue = errors.New("unexpected value")

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	StatusPending   OrderStatus = "PENDING"
	StatusPaid      OrderStatus = "PAID"
	StatusShipped   OrderStatus = "SHIPPED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// OrderItem is one product line of an order. UnitPrice is in cents.
type OrderItem struct {
	ProductID int64
	Name      string
	Quantity  int
	UnitPrice int64
}

type valueArgs struct {
	Value any
}

type keyArgs struct {
	Key any `arg:"key,required"`
}

var (
	pending = call.MustAdapt(func(call.Args) (any, error) {
		return StatusPending, nil
	})

	// accepts OrderStatus or any string, case-insensitively
	normalizeStatus = call.MustBind(func(in valueArgs) (any, error) {
		switch v := in.Value.(type) {
		case OrderStatus:
			return OrderStatus(strings.ToUpper(string(v))), nil
		case string:
			return OrderStatus(strings.ToUpper(strings.TrimSpace(v))), nil
		default:
			return in.Value, nil
		}
	})

	productID = call.MustBind(func(in keyArgs) (any, error) {
		switch k := in.Key.(type) {
		case int64:
			return k, nil
		case int:
			return int64(k), nil
		default:
			return nil, fmt.Errorf("product id must be an integer, got %T", in.Key)
		}
	})

	newItem = call.MustBind(func(in keyArgs) (any, error) {
		id, _ := in.Key.(int64)
		return &OrderItem{ProductID: id, Quantity: 1}, nil
	})

	normalizeTag = call.MustBind(func(in valueArgs) (any, error) {
		if s, ok := in.Value.(string); ok {
			return strings.ToLower(strings.TrimSpace(s)), nil
		}

		return in.Value, nil
	})
)

// NewOrderClass declares the Order properties on a fresh class:
//
//   - status: scalar, one of the OrderStatus values, PENDING by default
//   - customer: scalar with the shapes customer_id and customer_email
//   - items: map of product id to *OrderItem, created on first access
//   - tags: set of lower-case strings
func NewOrderClass(opts ...property.ClassOption) *property.Class {
	status := property.NewScalar("status",
		property.Type(typecheck.Tag("oneof=PENDING PAID SHIPPED CANCELLED")),
		property.Factory(pending),
		property.Transformer(normalizeStatus))

	customer := property.NewScalar("customer").
		MustShape("customer_id", property.Type(typecheck.TypeOf[int64]())).
		MustShape("customer_email", property.Type(typecheck.Tag("required,email")))

	items := property.NewMap("items",
		property.KeyType(typecheck.TypeOf[int64]()),
		property.KeyTransformer(productID),
		property.ValueType(typecheck.TypeOf[*OrderItem]()),
		property.ValueFactory(newItem))

	tags := property.NewSet("tags",
		property.ValueType(typecheck.TypeOf[string]()),
		property.ValueTransformer(normalizeTag))

	return property.NewClass("Order", opts...).MustSetup(status, customer, items, tags)
}

var orderClass = sync.OnceValue(func() *property.Class { return NewOrderClass() })

// OrderClass returns the shared Order class.
func OrderClass() *property.Class {
	return orderClass()
}

// Order is an order whose attributes live in property slots.
type Order struct {
	*property.Object
}

// NewOrder creates an order of the shared class.
func NewOrder() *Order {
	return &Order{Object: OrderClass().New()}
}

func (o *Order) Status() (OrderStatus, error) {
	v, err := o.Get("status")
	if err != nil {
		return "", err
	}

	s, _ := v.Value().(OrderStatus)

	return s, nil
}

func (o *Order) SetStatus(s OrderStatus) error {
	_, err := o.Set("status", s)
	return err
}

func (o *Order) SetCustomer(id int64, email string) error {
	if _, err := o.Set("customer_id", id); err != nil {
		return err
	}

	_, err := o.Set("customer_email", email)

	return err
}

// Item returns the line for productID, creating it with quantity 1 on
// first use. configure, if given, edits the line in place.
func (o *Order) Item(productID int64, configure func(*OrderItem)) (*OrderItem, error) {
	req := property.Request{Key: property.Some(productID)}
	if configure != nil {
		req.Configure = func(v any) error {
			item, err := asItem(v)
			if err != nil {
				return err
			}

			configure(item)

			return nil
		}
	}

	v, err := o.Invoke("item", req)
	if err != nil {
		return nil, err
	}

	return asItem(v.Value())
}

func (o *Order) Tag(tag string) error {
	_, err := o.Add("tag", tag)
	return err
}

// Tags returns the tags, sorted.
func (o *Order) Tags() ([]string, error) {
	v, err := o.Get("tags")
	if err != nil {
		return nil, err
	}

	set, _ := v.Value().(map[any]struct{})

	out := make([]string, 0, len(set))
	for t := range set {
		s, ok := t.(string)
		if !ok {
			return nil, fmt.Errorf("%w: tag %v is %T", ErrUnexpectedValue, t, t)
		}

		out = append(out, s)
	}

	slices.Sort(out)

	return out, nil
}

// TotalCents sums quantity times unit price over all lines.
func (o *Order) TotalCents() (int64, error) {
	v, err := o.Get("items")
	if err != nil {
		return 0, err
	}

	items, _ := v.Value().(map[any]any)

	var total int64
	for _, it := range items {
		item, err := asItem(it)
		if err != nil {
			return 0, err
		}

		total += int64(item.Quantity) * item.UnitPrice
	}

	return total, nil
}

func asItem(v any) (*OrderItem, error) {
	item, ok := v.(*OrderItem)
	if !ok || item == nil {
		return nil, fmt.Errorf("%w: item %v is %T", ErrUnexpectedValue, v, v)
	}

	return item, nil
}
