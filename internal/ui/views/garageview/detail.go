package garageview

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/garage/dto"
	"partshub/internal/ui/theme"
)

// Section keys consumed by the app router.
const (
	SectionService     = "service-log"
	SectionJournal     = "board-journal"
	SectionReminders   = "reminders"
	SectionExpenses    = "expenses"
	SectionDiagnostics = "diagnostics"
	SectionFindParts   = "find-parts"
)

type VehicleLoadedMsg struct {
	Vehicle dto.VehicleOutput
	Err     error
}

type section struct {
	key   string
	title string
}

var sections = []section{
	{SectionService, "Service log"},
	{SectionJournal, "Board journal"},
	{SectionReminders, "Reminders"},
	{SectionExpenses, "Expenses"},
	{SectionDiagnostics, "Diagnostics"},
	{SectionFindParts, "Find parts by VIN"},
}

// Detail shows one vehicle and routes into its sub-screens.
type Detail struct {
	port GaragePort
	ctx  context.Context

	vehicle dto.VehicleOutput
	cursor  int
	errText string
	width   int
	height  int
}

func NewDetail(port GaragePort) Detail {
	return Detail{port: port, ctx: context.Background()}
}

func (d *Detail) Mount(ctx context.Context, vehicleID string) tea.Cmd {
	d.ctx = ctx
	d.cursor = 0
	d.errText = ""
	d.vehicle = dto.VehicleOutput{}
	return d.loadCmd(vehicleID)
}

func (d Detail) Vehicle() dto.VehicleOutput { return d.vehicle }

func (d Detail) SelectedSection() (string, bool) {
	if d.cursor >= 0 && d.cursor < len(sections) {
		return sections[d.cursor].key, true
	}
	return "", false
}

func (d Detail) Update(msg tea.Msg) (Detail, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height

	case VehicleLoadedMsg:
		if msg.Err != nil {
			d.errText = msg.Err.Error()
			return d, nil
		}
		d.vehicle = msg.Vehicle

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if d.cursor > 0 {
				d.cursor--
			}
		case "down", "j":
			if d.cursor < len(sections)-1 {
				d.cursor++
			}
		}
	}
	return d, nil
}

func (d Detail) View() string {
	if d.errText != "" {
		return lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(d.errText))
	}
	v := d.vehicle
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(v.Label) + "\n\n")
	sb.WriteString(theme.Muted.Render("  mileage: ") + fmt.Sprintf("%d km", v.Mileage) + "\n")
	if v.VIN != "" {
		sb.WriteString(theme.Muted.Render("  vin:     ") + v.VIN + "\n")
	}
	if v.LicensePlate != "" {
		sb.WriteString(theme.Muted.Render("  plate:   ") + v.LicensePlate + "\n")
	}
	if v.Color != "" {
		sb.WriteString(theme.Muted.Render("  color:   ") + v.Color + "\n")
	}
	sb.WriteString("\n")
	for i, s := range sections {
		if i == d.cursor {
			sb.WriteString(theme.Hot.Render("  > "+s.title) + "\n")
		} else {
			sb.WriteString("    " + s.title + "\n")
		}
	}
	sb.WriteString("\n" + theme.Muted.Render("  enter: open section") + "\n")
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func (d Detail) loadCmd(vehicleID string) tea.Cmd {
	ctx := d.ctx
	return func() tea.Msg {
		vehicle, err := d.port.GetVehicle(ctx, vehicleID)
		return VehicleLoadedMsg{Vehicle: vehicle, Err: err}
	}
}
