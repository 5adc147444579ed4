package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldName
	loginFieldCount
)

// loginForm doubles as the registration form: the display name field only
// participates while register is set.
type loginForm struct {
	inputs     [loginFieldCount]textinput.Model
	focus      int
	register   bool
	submitting bool
	errText    string
	notice     string
}

func newLoginForm() loginForm {
	var f loginForm
	email := textinput.New()
	email.Placeholder = "you@example.com"
	email.CharLimit = 128
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 128
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'

	name := textinput.New()
	name.Placeholder = "display name"
	name.CharLimit = 64

	f.inputs[loginFieldEmail] = email
	f.inputs[loginFieldPassword] = password
	f.inputs[loginFieldName] = name
	return f
}

func (f *loginForm) fieldCount() int {
	if f.register {
		return loginFieldCount
	}
	return loginFieldCount - 1
}

func (f *loginForm) setFocus(i int) {
	f.focus = i
	for j := range f.inputs {
		if j == i {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (a *App) updateLogin(m tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := &a.login
	switch m.String() {
	case "ctrl+c", "esc":
		return a, tea.Quit

	case "ctrl+r":
		if f.submitting {
			return a, nil
		}
		f.register = !f.register
		f.errText = ""
		if !f.register && f.focus >= f.fieldCount() {
			f.setFocus(0)
		}
		return a, nil

	case "tab", "down":
		f.setFocus((f.focus + 1) % f.fieldCount())
		return a, nil

	case "shift+tab", "up":
		f.setFocus((f.focus - 1 + f.fieldCount()) % f.fieldCount())
		return a, nil

	case "enter":
		if f.submitting {
			return a, nil
		}
		email := strings.TrimSpace(f.inputs[loginFieldEmail].Value())
		password := f.inputs[loginFieldPassword].Value()
		name := strings.TrimSpace(f.inputs[loginFieldName].Value())
		switch {
		case email == "":
			f.errText = "Email is required"
		case password == "":
			f.errText = "Password is required"
		case f.register && name == "":
			f.errText = "Display name is required"
		default:
			f.errText = ""
			f.notice = ""
			f.submitting = true
			if f.register {
				return a, a.registerCmd(email, password, name)
			}
			return a, a.loginCmd(email, password)
		}
		return a, nil
	}

	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(m)
	return a, cmd
}

func (a *App) viewLogin() string {
	f := &a.login
	var b strings.Builder
	b.WriteString(titleStyle.Render("Our Big Day"))
	b.WriteString("\n")
	if f.register {
		b.WriteString(subtitleStyle.Render("Create an account to join the planning."))
	} else {
		b.WriteString(subtitleStyle.Render("Sign in to the wedding planner."))
	}
	b.WriteString("\n\n")
	if f.notice != "" {
		b.WriteString(mutedStyle.Render(f.notice))
		b.WriteString("\n\n")
	}

	b.WriteString("  Email\n  ")
	b.WriteString(f.inputs[loginFieldEmail].View())
	b.WriteString("\n\n  Password\n  ")
	b.WriteString(f.inputs[loginFieldPassword].View())
	b.WriteString("\n")
	if f.register {
		b.WriteString("\n  Display name\n  ")
		b.WriteString(f.inputs[loginFieldName].View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if f.errText != "" {
		b.WriteString("  ")
		b.WriteString(errStyle.Render(f.errText))
		b.WriteString("\n\n")
	}
	if f.submitting {
		b.WriteString(subtitleStyle.Render("  Working…"))
		b.WriteString("\n\n")
	}

	toggle := "register instead"
	if f.register {
		toggle = "back to sign in"
	}
	help := boldKey("enter") + " submit  " + boldKey("ctrl+r") + " " + toggle + "  " + boldKey("esc") + " quit"
	b.WriteString("  ")
	b.WriteString(mutedStyle.Render(help))
	b.WriteString("\n  ")
	b.WriteString(mutedStyle.Render("Demo: admin@ourbigday.com / Admin123!"))
	b.WriteString("\n")

	content := b.String()
	if a.width > 0 && a.height > 0 {
		return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}
