package expensesview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/garage/dto"
	"partshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ExpensesPort interface {
	Expenses(ctx context.Context, vehicleID, period string) (dto.ExpenseSummaryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Summary dto.ExpenseSummaryOutput
	Err     error
}

// ─── model ───────────────────────────────────────────────────────────────────

var periodCycle = []string{"all", "month", "3months", "year"}

var periodLabels = map[string]string{
	"all": "all time", "month": "last month", "3months": "last 3 months", "year": "last year",
}

// Model is the expense breakdown for one vehicle: totals per category
// with an itemized tail, filterable by period.
type Model struct {
	port      ExpensesPort
	ctx       context.Context
	vehicleID string
	period    string

	summary dto.ExpenseSummaryOutput
	body    viewport.Model
	spinner spinner.Model
	loading bool
	errText string
	width   int
	height  int
}

func New(port ExpensesPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, ctx: context.Background(), period: "all", body: vp, spinner: sp}
}

func (m *Model) Mount(ctx context.Context, vehicleID string) tea.Cmd {
	m.ctx = ctx
	m.vehicleID = vehicleID
	m.period = "all"
	m.loading = true
	m.errText = ""
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = msg.Width - 4
		m.body.Height = msg.Height - 4

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.summary = msg.Summary
		m.body.SetContent(m.renderSummary())

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "p" {
			m.period = nextPeriod(m.period)
			m.loading = true
			return m, tea.Batch(m.loadCmd(), m.spinner.Tick)
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading expenses…")
	}
	if m.errText != "" {
		return lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(m.errText))
	}
	return m.body.View() + "\n" + theme.Muted.Render("  p: change period")
}

// ─── private ─────────────────────────────────────────────────────────────────

func nextPeriod(current string) string {
	for i, p := range periodCycle {
		if p == current {
			return periodCycle[(i+1)%len(periodCycle)]
		}
	}
	return periodCycle[0]
}

func (m Model) renderSummary() string {
	s := m.summary
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Expenses") + theme.Muted.Render("  ("+periodLabels[m.period]+")") + "\n\n")
	sb.WriteString(theme.Hot.Render(fmt.Sprintf("Total: %.2f ₽", s.Total)) + "\n\n")
	for _, c := range s.Categories {
		bar := strings.Repeat("█", int(c.Percentage/5))
		sb.WriteString(fmt.Sprintf("%-14s %8.2f ₽  %s %.0f%%\n",
			c.Name, c.Total, theme.Good.Render(bar), c.Percentage))
	}
	if len(s.Expenses) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("Recent:") + "\n")
		for _, e := range s.Expenses {
			sb.WriteString(fmt.Sprintf("%s  %-10s %8.2f ₽  %s\n",
				e.Date.Format("02.01.2006"), e.Category, e.Amount, e.Title))
		}
	}
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	ctx, vehicleID, period := m.ctx, m.vehicleID, m.period
	return func() tea.Msg {
		summary, err := m.port.Expenses(ctx, vehicleID, period)
		return LoadedMsg{Summary: summary, Err: err}
	}
}
