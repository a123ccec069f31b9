package remindersview

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

type RemindersPort interface {
	Reminders(ctx context.Context, vehicleID string) ([]dto.ReminderOutput, error)
	CompleteReminder(ctx context.Context, reminderID string) error
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Reminders []dto.ReminderOutput
	Err       error
}

type CompletedMsg struct{ Err error }

// RemoveReminderMsg asks the app to confirm and delete the reminder.
type RemoveReminderMsg struct{ Reminder dto.ReminderOutput }

// ─── list item ───────────────────────────────────────────────────────────────

type reminderItem struct {
	reminder dto.ReminderOutput
}

func (i reminderItem) Title() string {
	r := i.reminder
	switch {
	case r.Completed:
		return "✓ " + r.Title
	case r.Due:
		return "! " + r.Title
	}
	return r.Title
}

func (i reminderItem) Description() string {
	r := i.reminder
	desc := r.Type
	if !r.RemindAtDate.IsZero() {
		desc += "  by " + r.RemindAtDate.Format("02.01.2006")
	}
	if r.RemindAtMileage > 0 {
		desc += fmt.Sprintf("  at %d km", r.RemindAtMileage)
	}
	if r.Due {
		desc += "  due now"
	}
	return desc
}

func (i reminderItem) FilterValue() string { return i.reminder.Title }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port      RemindersPort
	ctx       context.Context
	vehicleID string

	list    list.Model
	spinner spinner.Model
	loading bool
	errText string
	width   int
	height  int
}

func New(port RemindersPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Reminders"
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

func (m Model) SelectedReminder() (dto.ReminderOutput, bool) {
	if item, ok := m.list.SelectedItem().(reminderItem); ok {
		return item.reminder, true
	}
	return dto.ReminderOutput{}, false
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
		items := make([]list.Item, len(msg.Reminders))
		for i, r := range msg.Reminders {
			items[i] = reminderItem{reminder: r}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case CompletedMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		return m, m.loadCmd()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			if r, ok := m.SelectedReminder(); ok && !r.Completed {
				return m, m.completeCmd(r.ID)
			}
		case "d":
			if r, ok := m.SelectedReminder(); ok {
				return m, func() tea.Msg { return RemoveReminderMsg{Reminder: r} }
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
			m.spinner.View()+" Loading reminders…")
	}
	if m.errText != "" {
		return lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(m.errText))
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(
			theme.Muted.Render("No reminders yet. Press a to add one."))
	}
	hint := theme.Muted.Render("  a: add  c: complete  d: remove")
	return m.list.View() + "\n" + hint
}

func (m Model) loadCmd() tea.Cmd {
	ctx, vehicleID := m.ctx, m.vehicleID
	return func() tea.Msg {
		reminders, err := m.port.Reminders(ctx, vehicleID)
		return LoadedMsg{Reminders: reminders, Err: err}
	}
}

func (m Model) completeCmd(reminderID string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return CompletedMsg{Err: m.port.CompleteReminder(ctx, reminderID)}
	}
}
