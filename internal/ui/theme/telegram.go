package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#17212b")
	Mantle   = lipgloss.Color("#0e1621")
	Surface0 = lipgloss.Color("#232e3c")
	Surface1 = lipgloss.Color("#2f3c4e")
	Text     = lipgloss.Color("#f5f5f5")
	Subtext0 = lipgloss.Color("#8b9aa8")
	Accent   = lipgloss.Color("#5eb5f7")
	Link     = lipgloss.Color("#6ab3f3")
	Green    = lipgloss.Color("#8bc34a")
	Amber    = lipgloss.Color("#f0ad4e")
	Red      = lipgloss.Color("#e57373")

	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Accent)

	Title = lipgloss.NewStyle().Foreground(Accent).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Amber).Bold(true)
	Good  = lipgloss.NewStyle().Foreground(Green)
	Bad   = lipgloss.NewStyle().Foreground(Red)
)
