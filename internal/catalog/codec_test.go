package catalog

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeOmitsEmptySearchAndCategory(t *testing.T) {
	q := Encode(DefaultCriteria())

	assert.False(t, q.Has("search"))
	assert.False(t, q.Has("category"))
	assert.Equal(t, "0", q.Get("minPrice"))
	assert.Equal(t, "25000", q.Get("maxPrice"))
}

func TestEncodeAlwaysEmitsPriceBounds(t *testing.T) {
	c := Criteria{Search: "diary", Category: "IoT", PriceMin: 1000, PriceMax: 9000}
	q := Encode(c)

	assert.Equal(t, "diary", q.Get("search"))
	assert.Equal(t, "IoT", q.Get("category"))
	assert.Equal(t, "1000", q.Get("minPrice"))
	assert.Equal(t, "9000", q.Get("maxPrice"))
}

func TestDecodeDefaults(t *testing.T) {
	c := Decode(url.Values{})
	assert.Equal(t, DefaultCriteria(), c)
}

func TestDecodeMalformedPricesFallBack(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "abc")
	q.Set("maxPrice", "xyz")

	c := Decode(q)
	assert.Equal(t, DefaultMinPrice, c.PriceMin)
	assert.Equal(t, DefaultMaxPrice, c.PriceMax)
}

func TestDecodeNeverReturnsInvertedInterval(t *testing.T) {
	q := url.Values{}
	q.Set("minPrice", "9000")
	q.Set("maxPrice", "100")

	c := Decode(q)
	assert.LessOrEqual(t, c.PriceMin, c.PriceMax)
	assert.Equal(t, 9000, c.PriceMin)
	assert.Equal(t, 9000, c.PriceMax)
}

func TestRoundTrip(t *testing.T) {
	cases := []Criteria{
		DefaultCriteria(),
		{Search: "next", PriceMin: 0, PriceMax: 25000},
		{Category: "Blockchain", PriceMin: 500, PriceMax: 10000},
		{Search: "smart diary", Category: "IoT", PriceMin: 1000, PriceMax: 1000},
	}
	for _, c := range cases {
		assert.Equal(t, c, Decode(Encode(c)), "round-trip of %+v", c)
	}
}
