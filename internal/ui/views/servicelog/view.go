package servicelog

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/garage/dto"
	"partshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type ServicePort interface {
	ServiceHistory(ctx context.Context, vehicleID string) ([]dto.ServiceRecordOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Records []dto.ServiceRecordOutput
	Err     error
}

// RemoveRecordMsg asks the app to confirm and delete the record.
type RemoveRecordMsg struct{ Record dto.ServiceRecordOutput }

// ─── list item ───────────────────────────────────────────────────────────────

type recordItem struct {
	record dto.ServiceRecordOutput
}

func (i recordItem) Title() string { return i.record.Title }

func (i recordItem) Description() string {
	return fmt.Sprintf("%s  %s  %d km  %.2f ₽",
		i.record.Type, i.record.Date.Format("02.01.2006"), i.record.Mileage, i.record.Cost)
}

func (i recordItem) FilterValue() string { return i.record.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      ServicePort
	ctx       context.Context
	vehicleID string

	list    list.Model
	spinner spinner.Model
	loading bool
	errText string
	width   int
	height  int
}

func New(port ServicePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Service log"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, ctx: context.Background(), list: l, spinner: sp}
}

func (m *Model) Mount(ctx context.Context, vehicleID string) tea.Cmd {
	m.ctx = ctx
	m.vehicleID = vehicleID
	m.loading = true
	m.errText = ""
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) VehicleID() string { return m.vehicleID }

func (m Model) SelectedRecord() (dto.ServiceRecordOutput, bool) {
	if item, ok := m.list.SelectedItem().(recordItem); ok {
		return item.record, true
	}
	return dto.ServiceRecordOutput{}, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Records))
		for i, r := range msg.Records {
			items[i] = recordItem{record: r}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "d" {
			if r, ok := m.SelectedRecord(); ok {
				return m, func() tea.Msg { return RemoveRecordMsg{Record: r} }
			}
		}
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Loading service log…")
	}
	if m.errText != "" {
		return lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(m.errText))
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(
			theme.Muted.Render("No service records yet. Press a to add one."))
	}
	hint := theme.Muted.Render("  a: add  e: edit  d: remove")
	return m.list.View() + "\n" + hint
}

func (m Model) loadCmd() tea.Cmd {
	ctx, vehicleID := m.ctx, m.vehicleID
	return func() tea.Msg {
		records, err := m.port.ServiceHistory(ctx, vehicleID)
		return LoadedMsg{Records: records, Err: err}
	}
}
