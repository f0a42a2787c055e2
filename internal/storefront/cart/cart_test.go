package cart

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/shopspring/decimal"

	"github.com/snapshot/storefront/internal/core/domain"
)

var products = domain.DefaultCatalog()

func product(id int) domain.Product {
	return products[id-1]
}

func TestAdd_NewAndExistingLine(t *testing.T) {
	c := New()

	ev := c.Add(product(1))
	if ev.Kind != EventAdded || ev.Quantity != 1 || ev.Notice != AddedNotice {
		t.Fatalf("unexpected event %+v", ev)
	}
	c.Add(product(1))

	if c.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", c.Len())
	}
	if got := c.Quantity(1); got != 2 {
		t.Fatalf("expected quantity 2, got %d", got)
	}
}

func TestAdd_AutoOpenOnWideViewport(t *testing.T) {
	c := New(WithViewportWidth(1024))
	if ev := c.Add(product(2)); !ev.AutoOpen {
		t.Fatal("expected auto open at 1024px")
	}

	c.SetViewportWidth(AutoOpenMinWidth)
	if ev := c.Add(product(2)); ev.AutoOpen {
		t.Fatal("expected no auto open at 768px")
	}
}

func TestRemove(t *testing.T) {
	c := New()
	c.Add(product(3))
	c.Add(product(3))

	ev, ok := c.Remove(product(3))
	if !ok || ev.Quantity != 1 {
		t.Fatalf("expected quantity 1 after first remove, got %+v ok=%v", ev, ok)
	}
	ev, ok = c.Remove(product(3))
	if !ok || ev.Quantity != 0 {
		t.Fatalf("expected line removed, got %+v ok=%v", ev, ok)
	}
	if !c.Empty() {
		t.Fatal("expected empty cart")
	}
	if _, ok := c.Remove(product(3)); ok {
		t.Fatal("expected no-op for absent product")
	}
}

func TestTotal_IsExact(t *testing.T) {
	c := New()
	c.Add(product(1)) // 129.99
	c.Add(product(1))
	c.Add(product(6)) // 59.99

	want := decimal.RequireFromString("319.97")
	if got := c.Total(); !got.Equal(want) {
		t.Fatalf("expected %s, got %s", want, got)
	}
	if got := c.Total().StringFixed(2); got != "319.97" {
		t.Fatalf("unexpected formatted total %q", got)
	}
}

func TestClear_NotifiesListener(t *testing.T) {
	var events []Event
	c := New(WithListener(func(ev Event) { events = append(events, ev) }))
	c.Add(product(4))
	c.Clear()

	if c.Count() != 0 || c.Len() != 0 {
		t.Fatal("expected cart to be empty")
	}
	if len(events) != 2 || events[1].Kind != EventCleared {
		t.Fatalf("unexpected events %+v", events)
	}
}

func TestSnapshot(t *testing.T) {
	c := New()
	c.Add(product(9))
	c.Add(product(2))
	c.Add(product(9))

	items := c.Snapshot()
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ProductID != 9 || items[0].Quantity != 2 || items[0].Price != 289.99 {
		t.Fatalf("unexpected first item %+v", items[0])
	}
	if items[1].ProductID != 2 || items[1].Name != product(2).Name {
		t.Fatalf("unexpected second item %+v", items[1])
	}
}

// ops encodes a cart operation per value: 1..9 adds that product,
// 10..18 removes product value-9.
func applyOps(c *Cart, ops []int) (counts map[int]int, order []int) {
	counts = map[int]int{}
	for _, op := range ops {
		if op <= 9 {
			if counts[op] == 0 {
				order = append(order, op)
			}
			counts[op]++
			c.Add(product(op))
			continue
		}
		id := op - 9
		c.RemoveID(id)
		if counts[id] > 0 {
			counts[id]--
			if counts[id] == 0 {
				for i, v := range order {
					if v == id {
						order = append(order[:i], order[i+1:]...)
						break
					}
				}
			}
		}
	}
	return counts, order
}

func TestProperty_CartMatchesModel(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("line quantities and order follow add/remove history", prop.ForAll(
		func(ops []int) bool {
			c := New()
			counts, order := applyOps(c, ops)

			lines := c.Lines()
			if len(lines) != len(order) {
				return false
			}
			for i, l := range lines {
				if l.ProductID != order[i] || l.Quantity != counts[l.ProductID] || l.Quantity < 1 {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.IntRange(1, 18)),
	))

	properties.Property("count is the sum of quantities", prop.ForAll(
		func(ops []int) bool {
			c := New()
			applyOps(c, ops)

			sum := 0
			for _, l := range c.Lines() {
				sum += l.Quantity
			}
			return c.Count() == sum
		},
		gen.SliceOf(gen.IntRange(1, 18)),
	))

	properties.Property("total equals sum of price times quantity", prop.ForAll(
		func(ops []int) bool {
			c := New()
			counts, _ := applyOps(c, ops)

			want := decimal.Zero
			for id, n := range counts {
				want = want.Add(decimal.NewFromFloat(product(id).Price).Mul(decimal.NewFromInt(int64(n))))
			}
			return c.Total().Equal(want.Round(2))
		},
		gen.SliceOf(gen.IntRange(1, 18)),
	))

	properties.TestingRun(t)
}
