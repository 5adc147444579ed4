package planner

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ourbigday/bigday/internal/api"
)

// Detail is the joined result of a day's paired category and item fetches.
type Detail struct {
	ThemeName  string
	Categories []api.Category
	Items      []api.WeddingItem
}

// LoadDetail fetches a day's categories and items concurrently and joins
// the results. Both must succeed: if either fails the whole load fails,
// and an ErrUnauthorized from either side propagates so the caller can
// terminate the session.
func LoadDetail(ctx context.Context, client *api.Client, token string, dayID int64) (Detail, error) {
	var (
		dc    api.DayCategories
		items []api.WeddingItem
	)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		dc, err = client.DayCategories(ctx, token, dayID)
		return err
	})
	g.Go(func() error {
		var err error
		items, err = client.DayItems(ctx, token, dayID)
		return err
	})
	if err := g.Wait(); err != nil {
		return Detail{}, err
	}
	return Detail{
		ThemeName:  dc.DayThemeName,
		Categories: dc.Categories,
		Items:      items,
	}, nil
}
