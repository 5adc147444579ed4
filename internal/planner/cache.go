// Package planner owns the per-session cache of the selected day's
// categories and items, plus the pure projections (filter, grouping,
// totals) the board renders from it.
package planner

import "github.com/ourbigday/bigday/internal/api"

// Snapshot is one coherent view of a day: its categories and items,
// installed together. Consumers treat it as immutable.
type Snapshot struct {
	DayID      int64
	ThemeName  string
	Categories []api.Category
	Items      []api.WeddingItem
}

// Cache is the single owner of the current snapshot. Every load is tagged
// with a generation; results whose generation no longer matches are
// rejected, so a late response for a previously selected day can never
// overwrite the current one.
type Cache struct {
	gen      uint64
	dayID    int64
	selected bool
	snap     *Snapshot
}

// NewCache returns an empty cache with no selected day.
func NewCache() *Cache { return &Cache{} }

// BeginLoad selects dayID and returns the generation that the eventual
// result must present to be applied.
func (c *Cache) BeginLoad(dayID int64) uint64 {
	c.gen++
	c.dayID = dayID
	c.selected = true
	return c.gen
}

// ApplyDetail installs categories and items as one snapshot. Both slots are
// replaced together so a render never pairs stale categories with new
// items. Returns false for stale generations (no-op).
func (c *Cache) ApplyDetail(gen uint64, themeName string, cats []api.Category, items []api.WeddingItem) bool {
	if gen != c.gen {
		return false
	}
	c.snap = &Snapshot{
		DayID:      c.dayID,
		ThemeName:  themeName,
		Categories: cats,
		Items:      items,
	}
	return true
}

// ApplyItems replaces only the item slot, used after mutations. The
// categories of the current snapshot are kept. Returns false when the
// generation is stale or no snapshot is installed.
func (c *Cache) ApplyItems(gen uint64, items []api.WeddingItem) bool {
	if gen != c.gen || c.snap == nil {
		return false
	}
	next := *c.snap
	next.Items = items
	c.snap = &next
	return true
}

// Invalidate clears the snapshot after a failed detail load: no partial
// cache survives a failure. Stale generations are ignored.
func (c *Cache) Invalidate(gen uint64) bool {
	if gen != c.gen {
		return false
	}
	c.snap = nil
	return true
}

// Clear drops the snapshot and the selection, e.g. on logout.
func (c *Cache) Clear() {
	c.gen++
	c.selected = false
	c.dayID = 0
	c.snap = nil
}

// Generation returns the current generation.
func (c *Cache) Generation() uint64 { return c.gen }

// Selected returns the currently selected day, if any.
func (c *Cache) Selected() (int64, bool) { return c.dayID, c.selected }

// Snapshot returns the current snapshot, or nil while empty or loading.
func (c *Cache) Snapshot() *Snapshot { return c.snap }
