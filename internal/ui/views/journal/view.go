package journal

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

type JournalPort interface {
	Journal(ctx context.Context, vehicleID string) ([]dto.LogEntryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Entries []dto.LogEntryOutput
	Err     error
}

// RemoveEntryMsg asks the app to confirm and delete the entry.
type RemoveEntryMsg struct{ Entry dto.LogEntryOutput }

// ─── list item ───────────────────────────────────────────────────────────────

type entryItem struct {
	entry dto.LogEntryOutput
}

func (i entryItem) Title() string { return i.entry.Title }

func (i entryItem) Description() string {
	e := i.entry
	desc := fmt.Sprintf("%s  %s", e.Type, e.Date.Format("02.01.2006"))
	switch e.Type {
	case "refuel":
		desc += fmt.Sprintf("  %.1f l  %.2f ₽", e.FuelAmount, e.FuelCost)
	case "trip":
		desc += fmt.Sprintf("  %d km", e.TripDistance)
	case "expense":
		desc += fmt.Sprintf("  %.2f ₽  %s", e.ExpenseAmount, e.ExpenseCategory)
	}
	return desc
}

func (i entryItem) FilterValue() string { return i.entry.Title }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the board journal: the vehicle's free-form running log of
// refuels, trips, notes, and one-off expenses.
type Model struct {
	port      JournalPort
	ctx       context.Context
	vehicleID string

	list    list.Model
	spinner spinner.Model
	loading bool
	errText string
	width   int
	height  int
}

func New(port JournalPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Board journal"
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

func (m Model) SelectedEntry() (dto.LogEntryOutput, bool) {
	if item, ok := m.list.SelectedItem().(entryItem); ok {
		return item.entry, true
	}
	return dto.LogEntryOutput{}, false
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
		items := make([]list.Item, len(msg.Entries))
		for i, e := range msg.Entries {
			items[i] = entryItem{entry: e}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "d" {
			if e, ok := m.SelectedEntry(); ok {
				return m, func() tea.Msg { return RemoveEntryMsg{Entry: e} }
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
			m.spinner.View()+" Loading journal…")
	}
	if m.errText != "" {
		return lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(m.errText))
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(
			theme.Muted.Render("No journal entries yet. Press a to add one."))
	}
	hint := theme.Muted.Render("  a: add  e: edit  d: remove")
	return m.list.View() + "\n" + hint
}

func (m Model) loadCmd() tea.Cmd {
	ctx, vehicleID := m.ctx, m.vehicleID
	return func() tea.Msg {
		entries, err := m.port.Journal(ctx, vehicleID)
		return LoadedMsg{Entries: entries, Err: err}
	}
}
