package garageview

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

type GaragePort interface {
	ListVehicles(ctx context.Context) ([]dto.VehicleOutput, error)
	GetVehicle(ctx context.Context, vehicleID string) (dto.VehicleOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type VehiclesLoadedMsg struct {
	Vehicles []dto.VehicleOutput
	Err      error
}

// RemoveVehicleMsg asks the app to confirm and delete the vehicle.
type RemoveVehicleMsg struct{ Vehicle dto.VehicleOutput }

// ─── list item ───────────────────────────────────────────────────────────────

type vehicleItem struct {
	vehicle dto.VehicleOutput
}

func (i vehicleItem) Title() string { return i.vehicle.Label }

func (i vehicleItem) Description() string {
	desc := fmt.Sprintf("%d km", i.vehicle.Mileage)
	if i.vehicle.LicensePlate != "" {
		desc += "  " + i.vehicle.LicensePlate
	}
	if i.vehicle.VIN != "" {
		desc += "  VIN " + i.vehicle.VIN
	}
	return desc
}

func (i vehicleItem) FilterValue() string { return i.vehicle.Label }

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the vehicle listing. Sub-screens (service log, journal,
// reminders, expenses, diagnostics) are separate screens the app routes
// to with the selected vehicle id.
type Model struct {
	port GaragePort
	ctx  context.Context

	list    list.Model
	spinner spinner.Model
	loading bool
	errText string
	width   int
	height  int
}

func New(port GaragePort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Garage"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, ctx: context.Background(), list: l, spinner: sp}
}

func (m *Model) Mount(ctx context.Context) tea.Cmd {
	m.ctx = ctx
	m.loading = true
	m.errText = ""
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

func (m Model) SelectedVehicle() (dto.VehicleOutput, bool) {
	if item, ok := m.list.SelectedItem().(vehicleItem); ok {
		return item.vehicle, true
	}
	return dto.VehicleOutput{}, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)

	case VehiclesLoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Vehicles))
		for i, v := range msg.Vehicles {
			items[i] = vehicleItem{vehicle: v}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if msg.String() == "d" {
			if v, ok := m.SelectedVehicle(); ok {
				return m, func() tea.Msg { return RemoveVehicleMsg{Vehicle: v} }
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
			m.spinner.View()+" Loading garage…")
	}
	if m.errText != "" {
		return lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(m.errText))
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(
			theme.Muted.Render("No vehicles yet. Press a to add one."))
	}
	hint := theme.Muted.Render("  enter: open  a: add  e: edit  d: remove")
	return m.list.View() + "\n" + hint
}

func (m Model) loadCmd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		vehicles, err := m.port.ListVehicles(ctx)
		return VehiclesLoadedMsg{Vehicles: vehicles, Err: err}
	}
}
