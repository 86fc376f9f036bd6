package catalog

import (
	"net/url"
	"strconv"
)

// Query keys recognized by the codec. These form the shareable representation
// of the catalog filter, so bookmarked and shared links reproduce the view.
const (
	keySearch   = "search"
	keyCategory = "category"
	keyMinPrice = "minPrice"
	keyMaxPrice = "maxPrice"
)

// Encode maps criteria to URL query values. Both price bounds are always
// emitted; search and category are omitted when empty to keep shared links
// minimal.
func Encode(c Criteria) url.Values {
	q := url.Values{}
	if c.Search != "" {
		q.Set(keySearch, c.Search)
	}
	if c.Category != "" {
		q.Set(keyCategory, c.Category)
	}
	q.Set(keyMinPrice, strconv.Itoa(c.PriceMin))
	q.Set(keyMaxPrice, strconv.Itoa(c.PriceMax))
	return q
}

// Decode maps URL query values to criteria, applying defaults for absent
// keys. Malformed numeric values fall back to the default bound for that
// side; Decode never fails and never returns an inverted interval.
func Decode(q url.Values) Criteria {
	c := DefaultCriteria()
	c.Search = q.Get(keySearch)
	c.Category = q.Get(keyCategory)
	c.PriceMin = intOrDefault(q.Get(keyMinPrice), DefaultMinPrice)
	c.PriceMax = intOrDefault(q.Get(keyMaxPrice), DefaultMaxPrice)
	c.Clamp()
	return c
}

func intOrDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
