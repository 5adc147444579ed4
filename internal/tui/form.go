package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/ourbigday/bigday/internal/api"
)

const (
	fieldName = iota
	fieldVendor
	fieldEstimated
	fieldDeposit
	fieldOutstanding
	fieldPercent
	fieldNotes
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Name / Title",
	"Vendor name",
	"Est. cost",
	"Deposit paid",
	"Outstanding fees",
	"% complete",
	"Notes",
}

// itemForm is the add/edit modal. Editing keeps the item pinned to its day
// and category; only the field values change.
type itemForm struct {
	editing    *api.WeddingItem
	dayID      int64
	category   api.Category
	inputs     [fieldCount]textinput.Model
	focus      int
	submitting bool
	errText    string
}

func newItemForm(dayID int64, cat api.Category, existing *api.WeddingItem) *itemForm {
	f := &itemForm{editing: existing, dayID: dayID, category: cat}
	for i := range f.inputs {
		in := textinput.New()
		in.CharLimit = 256
		in.Width = 32
		f.inputs[i] = in
	}
	f.inputs[fieldEstimated].Placeholder = "0.00"
	f.inputs[fieldDeposit].Placeholder = "0.00"
	f.inputs[fieldOutstanding].Placeholder = "0.00"
	f.inputs[fieldPercent].Placeholder = "0-100"

	if existing != nil {
		f.inputs[fieldName].SetValue(existing.Name)
		f.inputs[fieldVendor].SetValue(strDeref(existing.VendorName))
		f.inputs[fieldEstimated].SetValue(formatOptionalNumber(existing.EstimatedCost))
		f.inputs[fieldDeposit].SetValue(formatOptionalNumber(existing.DepositPaid))
		f.inputs[fieldOutstanding].SetValue(formatOptionalNumber(existing.OutstandingFees))
		f.inputs[fieldPercent].SetValue(formatOptionalNumber(existing.PercentageComplete))
		f.inputs[fieldNotes].SetValue(strDeref(existing.Notes))
	}
	f.setFocus(fieldName)
	return f
}

func (f *itemForm) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (a *App) updateItemForm(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := a.form
	switch m.String() {
	case "ctrl+c":
		return a, tea.Quit

	case "esc":
		if f.submitting {
			return a, nil
		}
		a.modal = modalNone
		a.form = nil
		return a, nil

	case "tab", "down":
		f.setFocus((f.focus + 1) % fieldCount)
		return a, nil

	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + fieldCount) % fieldCount)
		return a, nil

	case "enter":
		if f.submitting {
			return a, nil
		}
		name := strings.TrimSpace(f.inputs[fieldName].Value())
		if name == "" {
			f.errText = "Name is required"
			return a, nil
		}
		f.errText = ""
		f.submitting = true
		if f.editing != nil {
			return a, a.updateItemCmd(f.editing.ID, f.buildUpdate(name))
		}
		return a, a.createItemCmd(f.buildCreate(name))
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(m)
	return a, cmd
}

func (f *itemForm) buildCreate(name string) api.CreateItemRequest {
	return api.CreateItemRequest{
		DayID:              f.dayID,
		CategoryID:         f.category.ID,
		Name:               name,
		VendorName:         optionalString(f.inputs[fieldVendor].Value()),
		Notes:              optionalString(f.inputs[fieldNotes].Value()),
		EstimatedCost:      parseOptionalNumber(f.inputs[fieldEstimated].Value()),
		DepositPaid:        parseOptionalNumber(f.inputs[fieldDeposit].Value()),
		OutstandingFees:    parseOptionalNumber(f.inputs[fieldOutstanding].Value()),
		PercentageComplete: parseOptionalNumber(f.inputs[fieldPercent].Value()),
		AttributesJSON:     f.keptAttributes(),
	}
}

func (f *itemForm) buildUpdate(name string) api.UpdateItemRequest {
	return api.UpdateItemRequest{
		Name:               name,
		VendorName:         optionalString(f.inputs[fieldVendor].Value()),
		Notes:              optionalString(f.inputs[fieldNotes].Value()),
		EstimatedCost:      parseOptionalNumber(f.inputs[fieldEstimated].Value()),
		DepositPaid:        parseOptionalNumber(f.inputs[fieldDeposit].Value()),
		OutstandingFees:    parseOptionalNumber(f.inputs[fieldOutstanding].Value()),
		PercentageComplete: parseOptionalNumber(f.inputs[fieldPercent].Value()),
		AttributesJSON:     f.keptAttributes(),
	}
}

// keptAttributes passes an edited item's attribute blob through unchanged;
// the form has no editor for it.
func (f *itemForm) keptAttributes() *string {
	if f.editing == nil {
		return nil
	}
	return f.editing.AttributesJSON
}

func (f *itemForm) view() string {
	var b strings.Builder
	if f.editing != nil {
		b.WriteString(titleStyle.Render("Edit item"))
	} else {
		b.WriteString(titleStyle.Render("Add item"))
	}
	b.WriteString(subtitleStyle.Render("  " + f.category.Name))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		b.WriteString(fieldLabels[i])
		b.WriteString("\n")
		b.WriteString(f.inputs[i].View())
		b.WriteString("\n")
	}
	if f.errText != "" {
		b.WriteString("\n")
		b.WriteString(errStyle.Render(f.errText))
	}
	b.WriteString("\n")
	if f.submitting {
		b.WriteString(subtitleStyle.Render("Saving…"))
	} else {
		b.WriteString(mutedStyle.Render(boldKey("enter") + " save  " + boldKey("esc") + " cancel"))
	}
	return b.String()
}

// confirmDelete is the destructive-action gate in front of item deletion.
type confirmDelete struct {
	item     api.WeddingItem
	deleting bool
}

func (a *App) updateConfirm(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	c := a.confirm
	if c.deleting {
		if m.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a, nil
	}
	switch m.String() {
	case "y", "Y":
		c.deleting = true
		return a, a.deleteItemCmd(c.item.ID)
	case "n", "N", "esc":
		a.modal = modalNone
		a.confirm = nil
		return a, nil
	case "ctrl+c":
		return a, tea.Quit
	}
	return a, nil
}

func (c *confirmDelete) view() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Delete item"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Delete %q? This cannot be undone.", c.item.Name))
	b.WriteString("\n\n")
	if c.deleting {
		b.WriteString(subtitleStyle.Render("Deleting…"))
	} else {
		b.WriteString(mutedStyle.Render(boldKey("y") + " delete  " + boldKey("n") + " cancel"))
	}
	return b.String()
}

// parseOptionalNumber maps both empty and unparseable numeric text to
// "unspecified" rather than an error, so a stray character never blocks a
// save.
func parseOptionalNumber(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func formatOptionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
