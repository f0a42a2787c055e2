// Package cart holds the client-side shopping cart.
//
// A Cart is owned by a single actor (one UI session) and is not safe for
// concurrent use. Lines keep the order in which products were first added.
package cart

import (
	"github.com/shopspring/decimal"

	"github.com/snapshot/storefront/internal/core/domain"
)

// AutoOpenMinWidth is the viewport width above which adding a product opens
// the cart drawer.
const AutoOpenMinWidth = 768

// AddedNotice is the transient message shown after a product is added.
const AddedNotice = "Added to cart"

// Line is one product in the cart. Name and Price are captured when the
// product is first added.
type Line struct {
	ProductID int
	Name      string
	Price     decimal.Decimal
	Quantity  int
}

// Subtotal is Price multiplied by Quantity.
func (l Line) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type EventKind uint8

const (
	EventAdded EventKind = iota + 1
	EventRemoved
	EventCleared
)

// Event describes a cart mutation for the presentation layer.
type Event struct {
	Kind      EventKind
	ProductID int
	// Quantity is the line quantity after the mutation; 0 means the line
	// is gone.
	Quantity int
	// AutoOpen is set on EventAdded when the viewport is wide enough for
	// the drawer to open on its own.
	AutoOpen bool
	Notice   string
}

type Option func(*Cart)

// WithViewportWidth sets the initial viewport width used for AutoOpen.
func WithViewportWidth(px int) Option {
	return func(c *Cart) { c.viewport = px }
}

// WithListener registers fn to receive every Event.
func WithListener(fn func(Event)) Option {
	return func(c *Cart) { c.listener = fn }
}

type Cart struct {
	lines    []Line
	viewport int
	listener func(Event)
}

func New(opts ...Option) *Cart {
	c := &Cart{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetViewportWidth records a resize of the hosting view.
func (c *Cart) SetViewportWidth(px int) { c.viewport = px }

// Add increments the product's line, creating it with quantity 1 when absent.
func (c *Cart) Add(p domain.Product) Event {
	qty := 1
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		qty = c.lines[i].Quantity
	} else {
		c.lines = append(c.lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     decimal.NewFromFloat(p.Price),
			Quantity:  1,
		})
	}
	return c.emit(Event{
		Kind:      EventAdded,
		ProductID: p.ID,
		Quantity:  qty,
		AutoOpen:  c.viewport > AutoOpenMinWidth,
		Notice:    AddedNotice,
	})
}

// Remove decrements the product's line and drops it when the quantity
// reaches zero. Removing a product that is not in the cart is a no-op and
// reports ok=false.
func (c *Cart) Remove(p domain.Product) (Event, bool) {
	return c.RemoveID(p.ID)
}

// RemoveID is Remove keyed by product id.
func (c *Cart) RemoveID(id int) (Event, bool) {
	i := c.index(id)
	if i < 0 {
		return Event{}, false
	}
	c.lines[i].Quantity--
	qty := c.lines[i].Quantity
	if qty <= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
		qty = 0
	}
	return c.emit(Event{Kind: EventRemoved, ProductID: id, Quantity: qty}), true
}

// Clear empties the cart.
func (c *Cart) Clear() Event {
	c.lines = nil
	return c.emit(Event{Kind: EventCleared})
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Quantity returns the quantity of id, 0 when absent.
func (c *Cart) Quantity(id int) int {
	if i := c.index(id); i >= 0 {
		return c.lines[i].Quantity
	}
	return 0
}

// Len is the number of distinct products.
func (c *Cart) Len() int { return len(c.lines) }

// Count is the total number of units, as shown on the cart badge.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

func (c *Cart) Empty() bool { return len(c.lines) == 0 }

// Total is the exact sum of line subtotals rounded to cents.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.lines {
		sum = sum.Add(l.Subtotal())
	}
	return sum.Round(2)
}

// Snapshot converts the cart into order items for checkout.
func (c *Cart) Snapshot() []domain.OrderItem {
	items := make([]domain.OrderItem, 0, len(c.lines))
	for _, l := range c.lines {
		items = append(items, domain.OrderItem{
			ProductID: l.ProductID,
			Name:      l.Name,
			Price:     l.Price.InexactFloat64(),
			Quantity:  l.Quantity,
		})
	}
	return items
}

func (c *Cart) index(id int) int {
	for i := range c.lines {
		if c.lines[i].ProductID == id {
			return i
		}
	}
	return -1
}

func (c *Cart) emit(ev Event) Event {
	if c.listener != nil {
		c.listener(ev)
	}
	return ev
}
