// Package tui is the dashboard view controller: an Elm-style Bubble Tea app
// that gates rendering on session restore, then the day list, then the
// selected day's detail, and routes every mutation through the item form.
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ourbigday/bigday/internal/api"
	"github.com/ourbigday/bigday/internal/config"
	"github.com/ourbigday/bigday/internal/planner"
	"github.com/ourbigday/bigday/internal/session"
)

type appState string

const (
	stateRestoring appState = "restoring"
	stateLogin     appState = "login"
	stateSchedule  appState = "schedule"
	stateBoard     appState = "board"
)

type modalState string

const (
	modalNone          modalState = ""
	modalItemForm      modalState = "itemForm"
	modalConfirmDelete modalState = "confirmDelete"
)

// App ties together the session store, the API client, and the day cache.
type App struct {
	ctx    context.Context
	cfg    config.Config
	client *api.Client
	store  *session.Store
	cache  *planner.Cache

	state  appState
	modal  modalState
	status string
	width  int
	height int
	keys   keyMap

	days        []api.WeddingDay
	dayIndex    int
	loadingDays bool
	loadingDay  bool
	daysErr     string
	detailErr   string

	login   loginForm
	form    *itemForm
	confirm *confirmDelete

	filter      textinput.Model
	filterFocus bool
	cursor      int
}

// New builds the app. Nothing is loaded until Init runs.
func New(ctx context.Context, cfg config.Config, client *api.Client, store *session.Store) *App {
	filter := textinput.New()
	filter.Placeholder = "items, vendors, notes…"
	filter.Prompt = "/ "
	filter.CharLimit = 64
	return &App{
		ctx:    ctx,
		cfg:    cfg,
		client: client,
		store:  store,
		cache:  planner.NewCache(),
		state:  stateRestoring,
		keys:   newKeyMap(),
		login:  newLoginForm(),
		filter: filter,
	}
}

func (a *App) Init() tea.Cmd {
	return a.restoreCmd()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = m.Width, m.Height
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(m)

	case restoredMsg:
		if m.sess == nil {
			a.state = stateLogin
			return a, nil
		}
		return a.enterAuthenticated()

	case daysMsg:
		a.loadingDays = false
		a.daysErr = ""
		a.days = m.days
		if a.state == stateBoard {
			if _, ok := a.cache.Selected(); !ok && len(a.days) > 0 {
				// default-select the first day as received, no reordering
				return a, a.selectDay(0)
			}
		}
		return a, nil

	case daysErrMsg:
		a.loadingDays = false
		if errors.Is(m.err, api.ErrUnauthorized) {
			return a.signOut("Session expired. Please sign in again.")
		}
		a.daysErr = m.err.Error()
		return a, nil

	case detailMsg:
		if a.cache.ApplyDetail(m.gen, m.detail.ThemeName, m.detail.Categories, m.detail.Items) {
			a.loadingDay = false
			a.detailErr = ""
			a.clampCursor()
		}
		return a, nil

	case detailErrMsg:
		if errors.Is(m.err, api.ErrUnauthorized) {
			return a.signOut("Session expired. Please sign in again.")
		}
		if a.cache.Invalidate(m.gen) {
			a.loadingDay = false
			a.detailErr = m.err.Error()
		}
		return a, nil

	case itemsMsg:
		if a.cache.ApplyItems(m.gen, m.items) {
			a.clampCursor()
		}
		return a, nil

	case refreshErrMsg:
		if errors.Is(m.err, api.ErrUnauthorized) {
			return a.signOut("Session expired. Please sign in again.")
		}
		// non-fatal: the list may be briefly stale, but say so
		a.status = "Item list may be stale: " + m.err.Error()
		return a, nil

	case authDoneMsg:
		a.login.submitting = false
		if m.err != nil {
			a.login.errText = m.err.Error()
			return a, nil
		}
		a.login = newLoginForm()
		return a.enterAuthenticated()

	case savedMsg:
		if a.form == nil {
			return a, nil
		}
		a.form.submitting = false
		if m.err != nil {
			if errors.Is(m.err, api.ErrUnauthorized) {
				return a.signOut("Session expired. Please sign in again.")
			}
			// form stays open with entered values so the user can correct
			a.form.errText = m.err.Error()
			return a, nil
		}
		a.modal = modalNone
		a.form = nil
		a.status = "Saved."
		return a, a.refreshItemsCmd()

	case deletedMsg:
		if a.confirm != nil {
			a.confirm.deleting = false
		}
		if m.err != nil {
			if errors.Is(m.err, api.ErrUnauthorized) {
				return a.signOut("Session expired. Please sign in again.")
			}
			a.modal = modalNone
			a.confirm = nil
			a.status = "Delete failed: " + m.err.Error()
			return a, nil
		}
		a.modal = modalNone
		a.confirm = nil
		a.status = "Row deleted."
		return a, a.refreshItemsCmd()
	}
	return a, nil
}

func (a *App) handleKey(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.state == stateLogin {
		return a.updateLogin(m)
	}
	if a.modal == modalItemForm {
		return a.updateItemForm(m)
	}
	if a.modal == modalConfirmDelete {
		return a.updateConfirm(m)
	}
	if a.filterFocus {
		return a.updateFilter(m)
	}
	switch a.state {
	case stateRestoring:
		if key.Matches(m, a.keys.Quit) {
			return a, tea.Quit
		}
		return a, nil
	case stateSchedule:
		return a.updateSchedule(m)
	default:
		return a.updateBoard(m)
	}
}

func (a *App) View() string {
	switch a.state {
	case stateRestoring:
		return subtitleStyle.Render("Loading…")
	case stateLogin:
		return a.viewLogin()
	case stateSchedule:
		return a.viewSchedule()
	default:
		return a.viewBoard()
	}
}

// enterAuthenticated routes by role: Guests get the read-only schedule and
// never reach the item views.
func (a *App) enterAuthenticated() (tea.Model, tea.Cmd) {
	sess := a.store.Current()
	if sess == nil {
		a.state = stateLogin
		return a, nil
	}
	if sess.User.Role.CanEdit() {
		a.state = stateBoard
	} else {
		a.state = stateSchedule
	}
	a.loadingDays = true
	a.daysErr = ""
	return a, a.loadDaysCmd()
}

func (a *App) selectDay(i int) tea.Cmd {
	if i < 0 || i >= len(a.days) {
		return nil
	}
	a.dayIndex = i
	a.cursor = 0
	a.loadingDay = true
	a.detailErr = ""
	day := a.days[i]
	gen := a.cache.BeginLoad(day.ID)
	return a.loadDetailCmd(day.ID, gen)
}

// signOut clears the session, its persisted copy, and all cached data,
// returning the user to the entry point. Used for both manual sign-out
// (empty notice) and 401-forced logout.
func (a *App) signOut(notice string) (tea.Model, tea.Cmd) {
	a.store.Logout()
	a.cache.Clear()
	a.days = nil
	a.dayIndex = 0
	a.cursor = 0
	a.modal = modalNone
	a.form = nil
	a.confirm = nil
	a.filter.SetValue("")
	a.filterFocus = false
	a.loadingDays = false
	a.loadingDay = false
	a.daysErr = ""
	a.detailErr = ""
	a.status = ""
	a.login = newLoginForm()
	a.login.notice = notice
	a.state = stateLogin
	return a, nil
}
