package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"devmarket/internal/models"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{ID: "1", Title: "NextGen Diary - Smart Journal System", Description: "An IoT-based smart diary system.", Category: "IoT", Price: 49999},
		{ID: "2", Title: "EvalUT - Blockchain Evaluation System", Description: "A blockchain-based academic evaluation system.", Category: "Blockchain", Price: 149999},
		{ID: "3", Title: "Modern College Website", Description: "A comprehensive college website.", Category: "Web", Price: 99999},
	}
}

func TestFilterEmptyCriteriaMatchesEverything(t *testing.T) {
	items := sampleProjects()
	c := Criteria{Search: "", Category: "", PriceMin: 0, PriceMax: 200000}

	got := Filter(items, c)
	assert.Equal(t, items, got)
}

func TestFilterSearchTermMatchesTitleOrDescription(t *testing.T) {
	items := sampleProjects()

	c := Criteria{Search: "next", PriceMin: 0, PriceMax: 200000}
	got := Filter(items, c)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// Description matches too.
	c.Search = "academic"
	got = Filter(items, c)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// Case-insensitive.
	c.Search = "NEXTGEN"
	got = Filter(items, c)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestFilterCategoryIgnoresCase(t *testing.T) {
	items := sampleProjects()

	c := Criteria{Category: "blockchain", PriceMin: 0, PriceMax: 200000}
	got := Filter(items, c)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestFilterPriceBoundsInclusive(t *testing.T) {
	items := sampleProjects()

	c := Criteria{PriceMin: 49999, PriceMax: 99999}
	got := Filter(items, c)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)
}

func TestFilterNoMatches(t *testing.T) {
	// No item is both category "web" and at most 25000: the table is empty,
	// which is exactly the "no projects found" condition.
	c := Criteria{Category: "web", PriceMin: 0, PriceMax: 25000}
	got := Filter(sampleProjects(), c)
	assert.Empty(t, got)
}

func TestFilterPreservesOrderAndIsSubsequence(t *testing.T) {
	items := sampleProjects()
	c := Criteria{PriceMin: 0, PriceMax: 150000}

	got := Filter(items, c)

	// Every result appears in the source, in the same relative order.
	pos := -1
	for _, g := range got {
		found := -1
		for i, item := range items {
			if item.ID == g.ID {
				found = i
				break
			}
		}
		require.GreaterOrEqual(t, found, 0)
		assert.Greater(t, found, pos, "result order must follow source order")
		pos = found
	}
}

func TestFilterIdempotent(t *testing.T) {
	items := sampleProjects()
	c := Criteria{Search: "system", PriceMin: 0, PriceMax: 200000}

	once := Filter(items, c)
	twice := Filter(once, c)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	items := sampleProjects()
	orig := sampleProjects()

	Filter(items, Criteria{Search: "college", PriceMin: 0, PriceMax: 200000})
	assert.Equal(t, orig, items)
}
