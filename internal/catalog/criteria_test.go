package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPriceMinDragsMaxUp(t *testing.T) {
	c := DefaultCriteria()
	c.SetPriceMax(5000)
	c.SetPriceMin(8000)

	assert.Equal(t, 8000, c.PriceMin)
	assert.Equal(t, 8000, c.PriceMax)
}

func TestSetPriceMaxDragsMinDown(t *testing.T) {
	c := DefaultCriteria()
	c.SetPriceMin(8000)
	c.SetPriceMax(3000)

	assert.Equal(t, 3000, c.PriceMin)
	assert.Equal(t, 3000, c.PriceMax)
}

func TestSettersKeepValidIntervalUntouched(t *testing.T) {
	c := DefaultCriteria()
	c.SetPriceMin(1000)
	c.SetPriceMax(9000)

	assert.Equal(t, 1000, c.PriceMin)
	assert.Equal(t, 9000, c.PriceMax)
}

func TestIsZero(t *testing.T) {
	c := DefaultCriteria()
	assert.True(t, c.IsZero())

	c.Search = "x"
	assert.False(t, c.IsZero())
}
