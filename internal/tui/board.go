package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/ourbigday/bigday/internal/api"
	"github.com/ourbigday/bigday/internal/planner"
	"github.com/ourbigday/bigday/internal/widgets"
)

// rowRef addresses one visible line of the board. item == -1 marks the
// category header row, which is selectable so empty categories can still
// receive new items.
type rowRef struct {
	group int
	item  int
}

// visibleGroups applies the filter to the cached snapshot and buckets the
// survivors. Nil while no snapshot is installed.
func (a *App) visibleGroups() []planner.Group {
	snap := a.cache.Snapshot()
	if snap == nil {
		return nil
	}
	items := planner.FilterItems(snap.Items, a.filter.Value())
	return planner.GroupItems(snap.Categories, items)
}

func boardRows(groups []planner.Group) []rowRef {
	var rows []rowRef
	for g, group := range groups {
		rows = append(rows, rowRef{group: g, item: -1})
		for i := range group.Items {
			rows = append(rows, rowRef{group: g, item: i})
		}
	}
	return rows
}

func (a *App) clampCursor() {
	rows := boardRows(a.visibleGroups())
	if len(rows) == 0 {
		a.cursor = 0
		return
	}
	if a.cursor >= len(rows) {
		a.cursor = len(rows) - 1
	}
	if a.cursor < 0 {
		a.cursor = 0
	}
}

func (a *App) updateBoard(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	groups := a.visibleGroups()
	rows := boardRows(groups)

	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit

	case key.Matches(m, a.keys.Logout):
		return a.signOut("")

	case key.Matches(m, a.keys.Retry):
		if a.daysErr != "" {
			a.daysErr = ""
			a.loadingDays = true
			return a, a.loadDaysCmd()
		}
		if a.detailErr != "" {
			return a, a.selectDay(a.dayIndex)
		}
		return a, nil

	case key.Matches(m, a.keys.Search):
		a.filterFocus = true
		a.filter.Focus()
		return a, nil

	case key.Matches(m, a.keys.PrevDay):
		if a.dayIndex > 0 {
			return a, a.selectDay(a.dayIndex - 1)
		}
		return a, nil

	case key.Matches(m, a.keys.NextDay):
		if a.dayIndex < len(a.days)-1 {
			return a, a.selectDay(a.dayIndex + 1)
		}
		return a, nil

	case key.Matches(m, a.keys.Up):
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case key.Matches(m, a.keys.Down):
		if a.cursor < len(rows)-1 {
			a.cursor++
		}
		return a, nil

	case key.Matches(m, a.keys.Add):
		if len(rows) == 0 || a.cursor >= len(rows) {
			return a, nil
		}
		dayID, ok := a.cache.Selected()
		if !ok {
			return a, nil
		}
		cat := groups[rows[a.cursor].group].Category
		a.form = newItemForm(dayID, cat, nil)
		a.modal = modalItemForm
		return a, nil

	case key.Matches(m, a.keys.Edit):
		it, ok := a.itemUnderCursor(groups, rows)
		if !ok {
			return a, nil
		}
		dayID, _ := a.cache.Selected()
		cat := groups[rows[a.cursor].group].Category
		a.form = newItemForm(dayID, cat, &it)
		a.modal = modalItemForm
		return a, nil

	case key.Matches(m, a.keys.Delete):
		it, ok := a.itemUnderCursor(groups, rows)
		if !ok {
			return a, nil
		}
		a.confirm = &confirmDelete{item: it}
		a.modal = modalConfirmDelete
		return a, nil
	}
	return a, nil
}

func (a *App) itemUnderCursor(groups []planner.Group, rows []rowRef) (api.WeddingItem, bool) {
	if a.cursor < 0 || a.cursor >= len(rows) {
		return api.WeddingItem{}, false
	}
	ref := rows[a.cursor]
	if ref.item < 0 {
		return api.WeddingItem{}, false
	}
	return groups[ref.group].Items[ref.item], true
}

func (a *App) updateFilter(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.String() {
	case "enter", "esc":
		a.filterFocus = false
		a.filter.Blur()
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	}
	var cmd tea.Cmd
	a.filter, cmd = a.filter.Update(m)
	a.clampCursor()
	return a, cmd
}

func (a *App) updateSchedule(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(m, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(m, a.keys.Logout):
		return a.signOut("")
	case key.Matches(m, a.keys.Retry):
		if a.daysErr != "" {
			a.daysErr = ""
			a.loadingDays = true
			return a, a.loadDaysCmd()
		}
	}
	return a, nil
}

// rendering

const (
	colName   = 28
	colVendor = 18
	colMoney  = 11
	colPct    = 6
)

func (a *App) viewBoard() string {
	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")

	switch {
	case a.loadingDays:
		b.WriteString(subtitleStyle.Render("Loading wedding days…"))
		b.WriteString("\n")
	case a.daysErr != "":
		b.WriteString(errStyle.Render("Could not load wedding days: " + a.daysErr))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press " + boldKey("r") + " to retry."))
		b.WriteString("\n")
	case len(a.days) == 0:
		b.WriteString(subtitleStyle.Render("No wedding days yet."))
		b.WriteString("\n")
	default:
		b.WriteString(a.renderTabs())
		b.WriteString("\n\n")
		b.WriteString(a.renderDay())
	}

	base := a.frame(b.String())
	if a.modal == modalItemForm && a.form != nil {
		return widgets.RenderPopup(base, a.form.view(), a.width, a.height)
	}
	if a.modal == modalConfirmDelete && a.confirm != nil {
		return widgets.RenderPopup(base, a.confirm.view(), a.width, a.height)
	}
	return base
}

func (a *App) renderHeader() string {
	who := ""
	if sess := a.store.Current(); sess != nil {
		who = fmt.Sprintf("%s (%s)", sess.User.DisplayName, sess.User.Role)
	}
	line := titleStyle.Render("Our Big Day")
	if who != "" {
		line += "  " + subtitleStyle.Render(who)
	}
	return line + "\n"
}

func (a *App) renderTabs() string {
	tabs := make([]string, 0, len(a.days))
	for i, day := range a.days {
		label := day.ThemeName
		if label == "" {
			label = fmt.Sprintf("Day %d", day.DayNumber)
		}
		if i == a.dayIndex {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (a *App) renderDay() string {
	var b strings.Builder
	day := a.days[a.dayIndex]
	b.WriteString(titleStyle.Render(day.ThemeName))
	b.WriteString(subtitleStyle.Render(fmt.Sprintf("  Day %d · %s", day.DayNumber, a.formatDate(day.Date))))
	b.WriteString("\n\n")

	if a.filterFocus || a.filter.Value() != "" {
		b.WriteString(a.filter.View())
		b.WriteString("\n\n")
	}

	switch {
	case a.loadingDay:
		b.WriteString(subtitleStyle.Render("Loading day…"))
		b.WriteString("\n")
		return b.String()
	case a.detailErr != "":
		b.WriteString(errStyle.Render("Could not load this day: " + a.detailErr))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press " + boldKey("r") + " to retry."))
		b.WriteString("\n")
		return b.String()
	}

	groups := a.visibleGroups()
	if groups == nil {
		return b.String()
	}
	if len(groups) == 0 {
		b.WriteString(subtitleStyle.Render("No categories for this day."))
		b.WriteString("\n")
		return b.String()
	}

	row := 0
	for _, group := range groups {
		marker := "  "
		if row == a.cursor {
			marker = cursorStyle.Render("▶ ")
		}
		header := fmt.Sprintf("%s%s", marker, groupStyle.Render(group.Category.Name))
		totals := totalsStyle.Render(fmt.Sprintf("est %s · paid %s · due %s",
			a.money(&group.Totals.Estimated),
			a.money(&group.Totals.Deposit),
			a.money(&group.Totals.Outstanding)))
		b.WriteString(header)
		b.WriteString("  ")
		b.WriteString(totals)
		b.WriteString("\n")
		row++

		if len(group.Items) == 0 {
			b.WriteString(mutedStyle.Render("    No rows yet."))
			b.WriteString("\n")
		}
		for _, it := range group.Items {
			line := a.renderItemRow(it, row == a.cursor)
			b.WriteString(line)
			b.WriteString("\n")
			row++
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (a *App) renderItemRow(it api.WeddingItem, selected bool) string {
	marker := "    "
	if selected {
		marker = "  " + cursorStyle.Render("▶ ")
	}
	cells := []string{
		padRight(truncate(it.Name, colName), colName),
		padRight(truncate(strDeref(it.VendorName), colVendor), colVendor),
		padLeft(a.money(it.EstimatedCost), colMoney),
		padLeft(a.money(it.DepositPaid), colMoney),
		padLeft(a.money(it.OutstandingFees), colMoney),
		padLeft(percent(it.PercentageComplete), colPct),
	}
	line := marker + strings.Join(cells, " ")
	if notes := strDeref(it.Notes); notes != "" {
		line += "  " + mutedStyle.Render(truncate(notes, 30))
	}
	if selected {
		return cursorStyle.Render(ansi.Strip(line))
	}
	return line
}

func (a *App) viewSchedule() string {
	var b strings.Builder
	b.WriteString(a.renderHeader())
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Wedding schedule"))
	b.WriteString("\n\n")

	switch {
	case a.loadingDays:
		b.WriteString(subtitleStyle.Render("Loading wedding days…"))
		b.WriteString("\n")
	case a.daysErr != "":
		b.WriteString(errStyle.Render("Could not load wedding days: " + a.daysErr))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("Press " + boldKey("r") + " to retry."))
		b.WriteString("\n")
	case len(a.days) == 0:
		b.WriteString(subtitleStyle.Render("No wedding days yet."))
		b.WriteString("\n")
	default:
		for _, day := range a.days {
			b.WriteString(fmt.Sprintf("  %s %s  %s\n",
				groupStyle.Render(fmt.Sprintf("Day %d", day.DayNumber)),
				titleStyle.Render(day.ThemeName),
				subtitleStyle.Render(a.formatDate(day.Date))))
		}
	}
	return a.frame(b.String())
}

// frame pins the status bar and key help to the bottom of the window.
func (a *App) frame(body string) string {
	if a.height <= 0 {
		return body
	}
	footer := a.renderFooter()
	status := a.renderStatus()
	chrome := 2
	lines := strings.Split(body, "\n")
	max := a.height - chrome
	if max < 1 {
		max = 1
	}
	if len(lines) > max {
		lines = lines[:max]
	}
	for len(lines) < max {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n") + "\n" + status + "\n" + footer
}

func (a *App) renderStatus() string {
	text := a.status
	if text == "" {
		if day, ok := a.cache.Selected(); ok {
			snap := a.cache.Snapshot()
			if snap != nil {
				text = fmt.Sprintf("day %d · %d items", day, len(snap.Items))
			}
		}
	}
	return statusBarStyle.Width(maxInt(a.width, 0)).Render(text)
}

func (a *App) renderFooter() string {
	var bindings = a.keys.readOnlyHelp()
	if a.state == stateBoard {
		bindings = a.keys.editHelp()
	}
	return footerStyle.Width(maxInt(a.width, 0)).Render(renderHelp(bindings))
}

// formatting helpers

// money renders an absent amount as an en dash, matching the item sheet.
func (a *App) money(v *float64) string {
	if v == nil {
		return "–"
	}
	return fmt.Sprintf("%s%.2f", a.cfg.UI.CurrencySymbol, *v)
}

func percent(v *float64) string {
	if v == nil {
		return "–"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64) + "%"
}

// formatDate reformats the server's ISO date for display, passing through
// anything unparseable untouched.
func (a *App) formatDate(raw string) string {
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return raw
	}
	return t.Format(a.cfg.UI.DateFormat)
}

func truncate(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

func padRight(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func padLeft(s string, width int) string {
	if w := ansi.StringWidth(s); w < width {
		return strings.Repeat(" ", width-w) + s
	}
	return s
}

func strDeref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
