package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ourbigday/bigday/internal/api"
	"github.com/ourbigday/bigday/internal/planner"
	"github.com/ourbigday/bigday/internal/session"
)

// messages

type restoredMsg struct{ sess *session.Session }

type daysMsg struct{ days []api.WeddingDay }

type daysErrMsg struct{ err error }

type detailMsg struct {
	gen    uint64
	detail planner.Detail
}

type detailErrMsg struct {
	gen uint64
	err error
}

type itemsMsg struct {
	gen   uint64
	items []api.WeddingItem
}

type refreshErrMsg struct{ err error }

type authDoneMsg struct{ err error }

type savedMsg struct{ err error }

type deletedMsg struct{ err error }

// commands

func (a *App) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		return restoredMsg{sess: a.store.Restore()}
	}
}

func (a *App) loadDaysCmd() tea.Cmd {
	token := a.store.Token()
	return func() tea.Msg {
		days, err := a.client.Days(a.ctx, token)
		if err != nil {
			return daysErrMsg{err: err}
		}
		return daysMsg{days: days}
	}
}

// loadDetailCmd carries the generation handed out by the cache; a stale
// result is rejected on arrival instead of overwriting a newer selection.
func (a *App) loadDetailCmd(dayID int64, gen uint64) tea.Cmd {
	token := a.store.Token()
	return func() tea.Msg {
		detail, err := planner.LoadDetail(a.ctx, a.client, token, dayID)
		if err != nil {
			return detailErrMsg{gen: gen, err: err}
		}
		return detailMsg{gen: gen, detail: detail}
	}
}

func (a *App) refreshItemsCmd() tea.Cmd {
	dayID, ok := a.cache.Selected()
	if !ok {
		return nil
	}
	gen := a.cache.Generation()
	token := a.store.Token()
	return func() tea.Msg {
		items, err := a.client.DayItems(a.ctx, token, dayID)
		if err != nil {
			return refreshErrMsg{err: err}
		}
		return itemsMsg{gen: gen, items: items}
	}
}

func (a *App) loginCmd(email, password string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{err: a.store.Login(a.ctx, email, password)}
	}
}

func (a *App) registerCmd(email, password, displayName string) tea.Cmd {
	return func() tea.Msg {
		return authDoneMsg{err: a.store.Register(a.ctx, email, password, displayName)}
	}
}

func (a *App) createItemCmd(req api.CreateItemRequest) tea.Cmd {
	token := a.store.Token()
	return func() tea.Msg {
		_, err := a.client.CreateItem(a.ctx, token, req)
		return savedMsg{err: err}
	}
}

func (a *App) updateItemCmd(id int64, req api.UpdateItemRequest) tea.Cmd {
	token := a.store.Token()
	return func() tea.Msg {
		_, err := a.client.UpdateItem(a.ctx, token, id, req)
		return savedMsg{err: err}
	}
}

func (a *App) deleteItemCmd(id int64) tea.Cmd {
	token := a.store.Token()
	return func() tea.Msg {
		return deletedMsg{err: a.client.DeleteItem(a.ctx, token, id)}
	}
}
