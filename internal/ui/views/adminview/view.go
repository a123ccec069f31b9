package adminview

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/admin/dto"
	"partshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type AdminPort interface {
	Stats(ctx context.Context) (dto.StatsOutput, error)
	Users(ctx context.Context) ([]dto.UserOutput, error)
	Activity(ctx context.Context, limit, skip int) ([]dto.ActivityOutput, error)
	Settings(ctx context.Context) (dto.SettingsOutput, error)
	UpdateMarkup(ctx context.Context, percent float64) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type StatsMsg struct {
	Stats dto.StatsOutput
	Err   error
}

type UsersMsg struct {
	Users []dto.UserOutput
	Err   error
}

type ActivityMsg struct {
	Entries []dto.ActivityOutput
	Err     error
}

type SettingsMsg struct {
	Settings dto.SettingsOutput
	Err      error
}

type MarkupSavedMsg struct{ Err error }

// ─── model ───────────────────────────────────────────────────────────────────

type sectionID int

const (
	sectionStats sectionID = iota
	sectionUsers
	sectionActivity
	sectionSettings
	sectionCount
)

var sectionLabels = [sectionCount]string{"Stats", "Users", "Activity", "Settings"}

// Model is the back-office screen. The entry is visible only to the
// configured admin id; anything it writes is re-checked by the backend.
type Model struct {
	port AdminPort
	ctx  context.Context

	section  sectionID
	stats    dto.StatsOutput
	users    []dto.UserOutput
	activity []dto.ActivityOutput
	settings dto.SettingsOutput

	markup     textinput.Model
	editingMkp bool

	body    viewport.Model
	spinner spinner.Model
	loading bool
	errText string
	status  string
	width   int
	height  int
}

func New(port AdminPort) Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	mk := textinput.New()
	mk.Placeholder = "markup %…"
	mk.CharLimit = 6

	return Model{port: port, ctx: context.Background(), body: vp, spinner: sp, markup: mk}
}

func (m *Model) Mount(ctx context.Context) tea.Cmd {
	m.ctx = ctx
	m.section = sectionStats
	m.loading = true
	m.errText = ""
	m.status = ""
	m.editingMkp = false
	return tea.Batch(m.loadStatsCmd(), m.spinner.Tick)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.body.Width = msg.Width - 4
		m.body.Height = msg.Height - 6

	case StatsMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.stats = msg.Stats
		m.body.SetContent(m.renderStats())

	case UsersMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.users = msg.Users
		m.body.SetContent(m.renderUsers())

	case ActivityMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.activity = msg.Entries
		m.body.SetContent(m.renderActivity())

	case SettingsMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.settings = msg.Settings
		m.body.SetContent(m.renderSettings())

	case MarkupSavedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.status = "markup saved"
		m.editingMkp = false
		return m, m.loadSettingsCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.editingMkp {
			switch msg.String() {
			case "enter":
				percent, err := strconv.ParseFloat(strings.TrimSpace(m.markup.Value()), 64)
				if err != nil {
					m.errText = "markup must be a number"
					return m, nil
				}
				return m, m.saveMarkupCmd(percent)
			case "esc":
				m.editingMkp = false
				return m, nil
			}
			var cmd tea.Cmd
			m.markup, cmd = m.markup.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "tab":
			m.section = (m.section + 1) % sectionCount
			m.loading = true
			m.errText = ""
			return m, tea.Batch(m.loadSectionCmd(), m.spinner.Tick)
		case "m":
			if m.section == sectionSettings {
				m.editingMkp = true
				m.markup.SetValue(strconv.FormatFloat(m.settings.MarkupPercent, 'f', -1, 64))
				return m, m.markup.Focus()
			}
		}
		var cmd tea.Cmd
		m.body, cmd = m.body.Update(msg)
		return m, cmd
	}

	return m, tea.Batch(cmds...)
}

// EditingMarkup reports whether the markup field has focus, so global
// keys yield to typing.
func (m Model) EditingMarkup() bool { return m.editingMkp }

func (m Model) View() string {
	parts := make([]string, sectionCount)
	for i := sectionID(0); i < sectionCount; i++ {
		if i == m.section {
			parts[i] = theme.Hot.Render(" " + sectionLabels[i] + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + sectionLabels[i] + " ")
		}
	}
	header := strings.Join(parts, theme.Muted.Render("│"))

	if m.loading {
		return header + "\n" + lipgloss.Place(m.width, m.height-2, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading…")
	}
	if m.errText != "" {
		return header + "\n" + lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(m.errText))
	}

	footer := theme.Muted.Render("  tab: section")
	if m.section == sectionSettings {
		if m.editingMkp {
			footer = "  New markup: " + m.markup.View()
		} else {
			footer = theme.Muted.Render("  tab: section  m: change markup")
		}
	}
	if m.status != "" {
		footer += "  " + theme.Good.Render(m.status)
	}
	return header + "\n" + m.body.View() + "\n" + footer
}

// ─── private ─────────────────────────────────────────────────────────────────

func (m Model) renderStats() string {
	s := m.stats
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("users:    ") + strconv.Itoa(s.TotalUsers) + "\n")
	sb.WriteString(theme.Muted.Render("orders:   ") + strconv.Itoa(s.TotalOrders) + "\n")
	sb.WriteString(theme.Muted.Render("revenue:  ") + fmt.Sprintf("%.2f ₽", s.TotalRevenue) + "\n")
	sb.WriteString(theme.Muted.Render("searches: ") + strconv.Itoa(s.TotalSearches) + "\n")
	if len(s.PopularQueries) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("Popular queries:") + "\n")
		for _, q := range s.PopularQueries {
			sb.WriteString(fmt.Sprintf("  %-24s %d\n", q.Query, q.Count))
		}
	}
	return sb.String()
}

func (m Model) renderUsers() string {
	var sb strings.Builder
	for _, u := range m.users {
		sb.WriteString(fmt.Sprintf("%-12d @%-20s %s  %s\n",
			u.TelegramID, u.Username, u.Name, theme.Muted.Render(u.CreatedAt.Format("02.01.2006"))))
	}
	if sb.Len() == 0 {
		return theme.Muted.Render("No users.")
	}
	return sb.String()
}

func (m Model) renderActivity() string {
	var sb strings.Builder
	for _, e := range m.activity {
		sb.WriteString(fmt.Sprintf("%s  %-12d %s\n",
			theme.Muted.Render(e.Timestamp.Format("02.01 15:04")), e.TelegramID, e.Action))
	}
	if sb.Len() == 0 {
		return theme.Muted.Render("No activity.")
	}
	return sb.String()
}

func (m Model) renderSettings() string {
	var sb strings.Builder
	sb.WriteString(theme.Muted.Render("markup:  ") + fmt.Sprintf("%.1f%%", m.settings.MarkupPercent) + "\n")
	if !m.settings.UpdatedAt.IsZero() {
		sb.WriteString(theme.Muted.Render("updated: ") + m.settings.UpdatedAt.Format("02.01.2006 15:04") + "\n")
	}
	return sb.String()
}

func (m Model) loadSectionCmd() tea.Cmd {
	switch m.section {
	case sectionUsers:
		return m.loadUsersCmd()
	case sectionActivity:
		return m.loadActivityCmd()
	case sectionSettings:
		return m.loadSettingsCmd()
	default:
		return m.loadStatsCmd()
	}
}

func (m Model) loadStatsCmd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		stats, err := m.port.Stats(ctx)
		return StatsMsg{Stats: stats, Err: err}
	}
}

func (m Model) loadUsersCmd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		users, err := m.port.Users(ctx)
		return UsersMsg{Users: users, Err: err}
	}
}

func (m Model) loadActivityCmd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := m.port.Activity(ctx, 100, 0)
		return ActivityMsg{Entries: entries, Err: err}
	}
}

func (m Model) loadSettingsCmd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		settings, err := m.port.Settings(ctx)
		return SettingsMsg{Settings: settings, Err: err}
	}
}

func (m Model) saveMarkupCmd(percent float64) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return MarkupSavedMsg{Err: m.port.UpdateMarkup(ctx, percent)}
	}
}
