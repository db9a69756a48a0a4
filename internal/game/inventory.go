package game

import "bot-atelier/internal/object"

// ItemsPerPage is the inventory/shop window page size.
const ItemsPerPage = 8

// Collection is a paginated list of owned or stocked placeables. The
// inventory and the shop share it; only the click semantics differ.
type Collection struct {
	items []*object.Placeable
	page  int
}

func NewCollection(items []*object.Placeable) *Collection {
	return &Collection{items: items}
}

func (c *Collection) Add(p *object.Placeable) {
	c.items = append(c.items, p)
}

// Remove drops p from the collection. Absent items are a no-op.
func (c *Collection) Remove(p *object.Placeable) {
	for i, x := range c.items {
		if x == p {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	if c.page > 0 && c.page >= c.Pages() {
		c.page = c.Pages() - 1
	}
}

func (c *Collection) Items() []*object.Placeable { return c.items }

func (c *Collection) Len() int { return len(c.items) }

func (c *Collection) Page() int { return c.page }

// Pages returns the page count, at least 1 so an empty window still has
// a valid page.
func (c *Collection) Pages() int {
	n := (len(c.items) + ItemsPerPage - 1) / ItemsPerPage
	if n < 1 {
		n = 1
	}
	return n
}

// PageItems returns the slice visible on the current page.
func (c *Collection) PageItems() []*object.Placeable {
	lo := c.page * ItemsPerPage
	if lo >= len(c.items) {
		return nil
	}
	hi := lo + ItemsPerPage
	if hi > len(c.items) {
		hi = len(c.items)
	}
	return c.items[lo:hi]
}

// NextPage advances, wrapping at the end.
func (c *Collection) NextPage() {
	c.page = (c.page + 1) % c.Pages()
}

// PrevPage goes back, wrapping at the start.
func (c *Collection) PrevPage() {
	c.page = (c.page - 1 + c.Pages()) % c.Pages()
}
