package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/ui/theme"
)

// DialogResultMsg is emitted when the user closes the dialog. For an
// alert Confirmed is always true; for a confirm it reflects the choice.
type DialogResultMsg struct{ Confirmed bool }

var (
	dialogStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Background(theme.Mantle).
			Foreground(theme.Text).
			Padding(1, 2)

	buttonStyle = lipgloss.NewStyle().
			Background(theme.Surface0).
			Foreground(theme.Subtext0).
			Padding(0, 2)

	buttonActive = lipgloss.NewStyle().
			Background(theme.Accent).
			Foreground(theme.Mantle).
			Bold(true).
			Padding(0, 2)
)

// Dialog is the modal overlay standing in for the host's native alert
// and confirm popups. While visible it swallows all key input.
type Dialog struct {
	visible bool
	confirm bool
	message string
	yes     bool
	width   int
}

func NewDialog() Dialog {
	return Dialog{}
}

func (d Dialog) Visible() bool { return d.visible }

// OpenAlert shows a single-button notice.
func (d *Dialog) OpenAlert(message string) {
	d.visible = true
	d.confirm = false
	d.message = message
	d.yes = true
}

// OpenConfirm shows a yes/no question. "No" is preselected so that a
// reflexive enter never destroys anything.
func (d *Dialog) OpenConfirm(message string) {
	d.visible = true
	d.confirm = true
	d.message = message
	d.yes = false
}

func (d *Dialog) SetWidth(w int) { d.width = w }

func (d Dialog) Update(msg tea.Msg) (Dialog, tea.Cmd) {
	if !d.visible {
		return d, nil
	}
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil
	}
	switch key.String() {
	case "esc":
		d.visible = false
		confirmed := !d.confirm
		return d, func() tea.Msg { return DialogResultMsg{Confirmed: confirmed} }
	case "enter":
		d.visible = false
		confirmed := !d.confirm || d.yes
		return d, func() tea.Msg { return DialogResultMsg{Confirmed: confirmed} }
	case "left", "right", "tab":
		if d.confirm {
			d.yes = !d.yes
		}
	case "y":
		if d.confirm {
			d.visible = false
			return d, func() tea.Msg { return DialogResultMsg{Confirmed: true} }
		}
	case "n":
		if d.confirm {
			d.visible = false
			return d, func() tea.Msg { return DialogResultMsg{Confirmed: false} }
		}
	}
	return d, nil
}

func (d Dialog) View() string {
	if !d.visible {
		return ""
	}
	var sb strings.Builder
	sb.WriteString(d.message + "\n\n")

	if d.confirm {
		noBtn := buttonStyle.Render("No")
		yesBtn := buttonStyle.Render("Yes")
		if d.yes {
			yesBtn = buttonActive.Render("Yes")
		} else {
			noBtn = buttonActive.Render("No")
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, noBtn, "  ", yesBtn))
	} else {
		sb.WriteString(buttonActive.Render("OK"))
	}

	w := d.width
	if w < 24 {
		w = 48
	}
	return dialogStyle.Width(w - 2).Render(sb.String())
}
