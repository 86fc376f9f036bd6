package catalog

import (
	"strings"

	"devmarket/internal/models"
)

// Filter returns the projects matching the criteria, preserving the order of
// the input slice. The three predicates apply conjunctively: free-text match
// on title or description (an empty term matches everything), category
// equality ignoring case (an empty category matches everything), and price
// within the inclusive interval.
//
// Filter is pure: it never mutates items and always allocates a fresh slice.
func Filter(items []models.Project, c Criteria) []models.Project {
	term := strings.ToLower(c.Search)
	out := make([]models.Project, 0, len(items))
	for _, p := range items {
		if term != "" &&
			!strings.Contains(strings.ToLower(p.Title), term) &&
			!strings.Contains(strings.ToLower(p.Description), term) {
			continue
		}
		if c.Category != "" && !strings.EqualFold(p.Category, c.Category) {
			continue
		}
		if p.Price < float64(c.PriceMin) || p.Price > float64(c.PriceMax) {
			continue
		}
		out = append(out, p)
	}
	return out
}
