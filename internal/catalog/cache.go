package catalog

import (
	"sync"

	"devmarket/internal/models"
)

// Cache holds the in-process view of the base project collection. Loads from
// the store are tagged with a generation so that a slow, stale load can never
// overwrite the result of a newer one: last write wins on the base
// collection, where "last" means the most recently started refresh.
type Cache struct {
	mu       sync.Mutex
	started  uint64
	applied  uint64
	projects []models.Project
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{}
}

// Begin marks the start of a refresh and returns its generation token.
func (c *Cache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.started++
	return c.started
}

// Complete installs the loaded collection if no newer refresh has begun or
// finished since gen was issued. It reports whether the result was applied;
// a false return means the fetch was stale and its result discarded.
func (c *Cache) Complete(gen uint64, items []models.Project) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen < c.started || gen <= c.applied {
		return false
	}
	c.applied = gen
	c.projects = items
	return true
}

// Projects returns a copy of the current collection.
func (c *Cache) Projects() []models.Project {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Len returns the size of the current collection.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.projects)
}
