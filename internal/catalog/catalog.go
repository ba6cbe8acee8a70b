package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

const (
	DefaultStart = 0
	DefaultEnd   = 10

	InvalidMaxRangeMessage = "Invalid max_range value. Please provide a numeric value."
	NotFoundMessage        = "Item not found"
)

var ErrInvalidMaxRange = errors.New("invalid max_range")

// Catalog is an ordered, read-only list of items. It is built once and never
// changes, so it is safe for concurrent use without locking. Every accessor
// returns a fresh slice.
type Catalog struct {
	items []Item
}

func New(items []Item) *Catalog {
	cp := make([]Item, len(items))
	copy(cp, items)
	return &Catalog{items: cp}
}

func (c *Catalog) Len() int { return len(c.items) }

func (c *Catalog) Items() []Item {
	return c.collect(func(Item) bool { return true })
}

// Lookup returns the first item with the given id. An id of 0 means "not
// given" and never matches, even if an item carries id 0.
func (c *Catalog) Lookup(id int) (Item, bool) {
	if id == 0 {
		return Item{}, false
	}
	for _, it := range c.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// FilterByName is an exact, case-sensitive match. No match is an empty,
// non-nil slice.
func (c *Catalog) FilterByName(name string) []Item {
	return c.collect(func(it Item) bool { return it.Name == name })
}

// Paginate returns count items starting at start: the window is
// [start, start+count), not [start, count). Out-of-range bounds are clamped:
// a negative start counts as 0, a non-positive count yields nothing.
func (c *Catalog) Paginate(start, count int) []Item {
	n := len(c.items)

	lo := start
	if lo < 0 {
		lo = 0
	}
	if lo > n {
		lo = n
	}

	hi := lo
	if count > 0 {
		if count > n-lo {
			hi = n
		} else {
			hi = lo + count
		}
	}

	out := make([]Item, hi-lo)
	copy(out, c.items[lo:hi])
	return out
}

// SortedByPrice lists every item by integer price, highest first, keeping
// catalog order among equal prices. A non-empty maxRange must be an integer
// and keeps only items priced at or below it; otherwise ErrInvalidMaxRange.
// A stored price that is not an integer yields ErrBadPrice.
func (c *Catalog) SortedByPrice(maxRange string) ([]Item, error) {
	type priced struct {
		item  Item
		price int
	}

	all := make([]priced, 0, len(c.items))
	for _, it := range c.items {
		p, err := it.IntPrice()
		if err != nil {
			return nil, err
		}
		all = append(all, priced{item: it, price: p})
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].price > all[j].price })

	limit, hasLimit := 0, false
	if maxRange != "" {
		n, err := strconv.Atoi(strings.TrimSpace(maxRange))
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidMaxRange, maxRange)
		}
		limit, hasLimit = n, true
	}

	out := make([]Item, 0, len(all))
	for _, p := range all {
		if hasLimit && p.price > limit {
			continue
		}
		out = append(out, p.item)
	}
	return out, nil
}

// ByStock keeps the items whose stock flag equals inStock.
func (c *Catalog) ByStock(inStock bool) []Item {
	return c.collect(func(it Item) bool { return it.Stock == inStock })
}

func (c *Catalog) collect(keep func(Item) bool) []Item {
	out := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

func (it Item) IntPrice() (int, error) {
	p, err := strconv.Atoi(strings.TrimSpace(it.Price))
	if err != nil {
		return 0, fmt.Errorf("%w: id=%d price=%q", ErrBadPrice, it.ID, it.Price)
	}
	return p, nil
}
