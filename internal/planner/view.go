package planner

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/ourbigday/bigday/internal/api"
)

// View projections over the cached items. All of these are pure: they are
// recomputed whenever the cache or the filter changes, never cached across
// renders, and never mutate the cache.

// FilterItems returns the items whose searchable text (name, vendor, notes,
// category name) contains query case-insensitively. An empty query returns
// the input unchanged. Input order is preserved.
func FilterItems(items []api.WeddingItem, query string) []api.WeddingItem {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}
	out := make([]api.WeddingItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(searchText(it), q) {
			out = append(out, it)
		}
	}
	return out
}

func searchText(it api.WeddingItem) string {
	parts := []string{it.Name, deref(it.VendorName), deref(it.Notes), it.CategoryName}
	return strings.ToLower(strings.Join(parts, " "))
}

// Group is one category's slice of the board, with its totals.
type Group struct {
	Category api.Category
	Items    []api.WeddingItem
	Totals   Totals
}

// Totals are per-category aggregates. Absent numeric fields count as zero
// for summation only; display still renders them as unspecified.
type Totals struct {
	Estimated   float64
	Deposit     float64
	Outstanding float64
}

// GroupItems buckets items by category for display. Categories keep the
// order they arrived in; items within a category are sorted by name with
// locale-aware collation. A category with no items is a valid empty group.
func GroupItems(cats []api.Category, items []api.WeddingItem) []Group {
	byCat := make(map[int64][]api.WeddingItem, len(cats))
	for _, it := range items {
		byCat[it.CategoryID] = append(byCat[it.CategoryID], it)
	}
	col := collate.New(language.English, collate.IgnoreCase)
	groups := make([]Group, 0, len(cats))
	for _, cat := range cats {
		list := byCat[cat.ID]
		sort.SliceStable(list, func(i, j int) bool {
			return col.CompareString(list[i].Name, list[j].Name) < 0
		})
		groups = append(groups, Group{Category: cat, Items: list, Totals: GroupTotals(list)})
	}
	return groups
}

// GroupTotals sums the monetary fields of a set of items, treating absent
// values as zero.
func GroupTotals(items []api.WeddingItem) Totals {
	var t Totals
	for _, it := range items {
		t.Estimated += value(it.EstimatedCost)
		t.Deposit += value(it.DepositPaid)
		t.Outstanding += value(it.OutstandingFees)
	}
	return t
}

func value(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
