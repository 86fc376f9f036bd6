// Package selection tracks which rows are checked in one admin table view.
// Each view (projects, inquiries, orders) owns its own tracker; selections
// are ephemeral and never persisted.
package selection

import "sync"

// Tracker is a set of selected record identifiers, safe for concurrent use.
type Tracker struct {
	mu  sync.Mutex
	ids map[string]struct{}
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{ids: make(map[string]struct{})}
}

// Toggle flips the selection state of one id.
func (t *Tracker) Toggle(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.ids[id]; ok {
		delete(t.ids, id)
	} else {
		t.ids[id] = struct{}{}
	}
}

// ToggleAll is all-or-nothing against the currently visible rows: when the
// selection already covers the whole visible set the selection clears,
// otherwise it becomes exactly the visible set. A partial selection therefore
// always moves to select-all, never to deselect-the-selected.
func (t *Tracker) ToggleAll(visible []string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if len(visible) > 0 && len(t.ids) == len(visible) {
		t.ids = make(map[string]struct{})
		return
	}
	t.ids = make(map[string]struct{}, len(visible))
	for _, id := range visible {
		t.ids[id] = struct{}{}
	}
}

// Contains reports whether id is selected.
func (t *Tracker) Contains(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.ids[id]
	return ok
}

// Len returns the number of selected ids.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.ids)
}

// Clear empties the selection.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.ids = make(map[string]struct{})
}

// Prune drops id from the selection. Call it when the underlying record is
// deleted so the tracker never holds a dangling id.
func (t *Tracker) Prune(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.ids, id)
}

// IDs returns the selected ids in unspecified order.
func (t *Tracker) IDs() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, 0, len(t.ids))
	for id := range t.ids {
		out = append(out, id)
	}
	return out
}
