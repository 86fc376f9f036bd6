// Package catalog implements the query side of the project catalog: the
// filter criteria a visitor can adjust, the pure filter over the project
// collection, and the codec that maps criteria to a shareable URL query.
package catalog

// Default price bounds for the catalog filter.
const (
	DefaultMinPrice = 0
	DefaultMaxPrice = 25000
)

// Criteria holds the current filter state: a free-text term matched against
// title and description, an optional category (empty means all categories),
// and an inclusive price interval.
//
// The interval never inverts: use SetPriceMin/SetPriceMax so that raising the
// minimum above the maximum drags the maximum up with it, and lowering the
// maximum below the minimum drags the minimum down.
type Criteria struct {
	Search   string
	Category string
	PriceMin int
	PriceMax int
}

// DefaultCriteria returns the unfiltered state: empty search, all categories,
// full default price range.
func DefaultCriteria() Criteria {
	return Criteria{PriceMin: DefaultMinPrice, PriceMax: DefaultMaxPrice}
}

// SetPriceMin sets the lower price bound, raising the upper bound to match
// when the new minimum would exceed it.
func (c *Criteria) SetPriceMin(v int) {
	c.PriceMin = v
	if v > c.PriceMax {
		c.PriceMax = v
	}
}

// SetPriceMax sets the upper price bound, lowering the lower bound to match
// when the new maximum would fall below it.
func (c *Criteria) SetPriceMax(v int) {
	c.PriceMax = v
	if v < c.PriceMin {
		c.PriceMin = v
	}
}

// Clamp restores the interval invariant after both bounds were assigned at
// once, e.g. when decoding an externally supplied query. The minimum wins:
// an inverted interval collapses to [min, min].
func (c *Criteria) Clamp() {
	if c.PriceMin > c.PriceMax {
		c.PriceMax = c.PriceMin
	}
}

// IsZero reports whether the criteria match everything, i.e. equal the
// default state.
func (c Criteria) IsZero() bool {
	return c == DefaultCriteria()
}
