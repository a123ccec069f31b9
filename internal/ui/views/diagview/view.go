package diagview

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/garage/dto"
	"partshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type DiagPort interface {
	Diagnose(ctx context.Context, vehicleID, code string) (dto.DiagnosisOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type DiagnosedMsg struct {
	Diagnosis dto.DiagnosisOutput
	Err       error
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the trouble-code lookup for one vehicle. A diagnosis can come
// from the local cache, the backend, or an installed decoder plugin when
// the backend is unreachable; the badge tells the user which.
type Model struct {
	port      DiagPort
	ctx       context.Context
	vehicleID string

	input     textinput.Model
	diagnosis dto.DiagnosisOutput
	hasResult bool
	spinner   spinner.Model
	loading   bool
	errText   string
	width     int
	height    int
}

func New(port DiagPort) Model {
	ti := textinput.New()
	ti.Placeholder = "OBD-II code, e.g. P0301…"
	ti.CharLimit = 5

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, ctx: context.Background(), input: ti, spinner: sp}
}

func (m *Model) Mount(ctx context.Context, vehicleID string) tea.Cmd {
	m.ctx = ctx
	m.vehicleID = vehicleID
	m.hasResult = false
	m.loading = false
	m.errText = ""
	m.input.SetValue("")
	return m.input.Focus()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case DiagnosedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.diagnosis = msg.Diagnosis
		m.hasResult = true

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "enter" {
			code := strings.TrimSpace(m.input.Value())
			if code == "" {
				m.errText = "enter a trouble code"
				return m, nil
			}
			m.loading = true
			m.errText = ""
			m.hasResult = false
			return m, tea.Batch(m.diagnoseCmd(code), m.spinner.Tick)
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Diagnosing…")
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Diagnostics") + "\n\n")
	sb.WriteString("  Code: " + m.input.View() + "\n")
	sb.WriteString(theme.Muted.Render("  enter: diagnose") + "\n")
	if m.errText != "" {
		sb.WriteString("\n" + theme.Bad.Render("  "+m.errText) + "\n")
	}
	if m.hasResult {
		d := m.diagnosis
		badge := ""
		if d.FromCache {
			badge = theme.Muted.Render("  [cached]")
		}
		if d.Offline {
			badge += theme.Hot.Render("  [offline decoder]")
		}
		sb.WriteString("\n" + theme.Title.Render(d.Code) + badge + "\n")
		sb.WriteString("  " + severityStyle(d.Severity).Render("severity: "+d.Severity) + "\n\n")
		sb.WriteString("  " + d.Summary + "\n")
		if d.Description != "" {
			sb.WriteString("  " + theme.Muted.Render(d.Description) + "\n")
		}
		if len(d.PossibleCauses) > 0 {
			sb.WriteString("\n  " + theme.Muted.Render("Possible causes:") + "\n")
			for _, c := range d.PossibleCauses {
				sb.WriteString("   • " + c + "\n")
			}
		}
		if len(d.RecommendedActions) > 0 {
			sb.WriteString("\n  " + theme.Muted.Render("Recommended:") + "\n")
			for _, a := range d.RecommendedActions {
				sb.WriteString("   • " + a + "\n")
			}
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "high", "critical":
		return theme.Bad
	case "medium":
		return theme.Hot
	}
	return theme.Good
}

func (m Model) diagnoseCmd(code string) tea.Cmd {
	ctx, vehicleID := m.ctx, m.vehicleID
	return func() tea.Msg {
		diagnosis, err := m.port.Diagnose(ctx, vehicleID, code)
		return DiagnosedMsg{Diagnosis: diagnosis, Err: err}
	}
}
