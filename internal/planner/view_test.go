package planner

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ourbigday/bigday/internal/api"
)

func strp(s string) *string   { return &s }
func numf(f float64) *float64 { return &f }

func TestFilterItemsMatchesAcrossFields(t *testing.T) {
	items := []api.WeddingItem{
		{ID: 1, Name: "Flowers", CategoryName: "Decor"},
		{ID: 2, Name: "Catering", VendorName: strp("Spice Route"), CategoryName: "Food"},
		{ID: 3, Name: "DJ", Notes: strp("confirm playlist"), CategoryName: "Music"},
	}

	require.Len(t, FilterItems(items, "flow"), 1)
	require.Len(t, FilterItems(items, "SPICE"), 1)
	require.Len(t, FilterItems(items, "playlist"), 1)
	require.Len(t, FilterItems(items, "decor"), 1)
	require.Empty(t, FilterItems(items, "zebra"))
}

func TestFilterItemsEmptyQueryReturnsInput(t *testing.T) {
	items := []api.WeddingItem{{ID: 1, Name: "A"}, {ID: 2, Name: "B"}}
	require.Equal(t, items, FilterItems(items, ""))
	require.Equal(t, items, FilterItems(items, "   "))
}

func TestFilterItemsPreservesOrder(t *testing.T) {
	items := []api.WeddingItem{
		{ID: 1, Name: "cake one"},
		{ID: 2, Name: "other"},
		{ID: 3, Name: "cake two"},
	}
	got := FilterItems(items, "cake")
	require.Len(t, got, 2)
	require.Equal(t, int64(1), got[0].ID)
	require.Equal(t, int64(3), got[1].ID)
}

func TestGroupItemsKeepsCategoryOrderAndSortsItems(t *testing.T) {
	cats := []api.Category{
		{ID: 2, Name: "Venue", DisplayOrder: 1},
		{ID: 1, Name: "Decor", DisplayOrder: 2},
	}
	items := []api.WeddingItem{
		{ID: 10, Name: "zinnias", CategoryID: 1},
		{ID: 11, Name: "Arch", CategoryID: 1},
		{ID: 12, Name: "marquee", CategoryID: 2},
	}

	groups := GroupItems(cats, items)
	require.Len(t, groups, 2)
	require.Equal(t, "Venue", groups[0].Category.Name)
	require.Equal(t, "Decor", groups[1].Category.Name)

	// case-insensitive name order inside the group
	require.Equal(t, "Arch", groups[1].Items[0].Name)
	require.Equal(t, "zinnias", groups[1].Items[1].Name)
}

func TestGroupItemsEmptyCategoryIsValid(t *testing.T) {
	groups := GroupItems([]api.Category{{ID: 1, Name: "Decor"}}, nil)
	require.Len(t, groups, 1)
	require.Empty(t, groups[0].Items)
	require.Zero(t, groups[0].Totals)
}

func TestGroupTotalsTreatsAbsentAsZero(t *testing.T) {
	items := []api.WeddingItem{
		{ID: 1, EstimatedCost: numf(1000), DepositPaid: numf(250), OutstandingFees: numf(750)},
		{ID: 2, EstimatedCost: numf(500)},
		{ID: 3}, // fully unspecified
	}
	got := GroupTotals(items)
	require.InDelta(t, 1500, got.Estimated, 1e-9)
	require.InDelta(t, 250, got.Deposit, 1e-9)
	require.InDelta(t, 750, got.Outstanding, 1e-9)
}
