package garageview

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/garage/dto"
	"partshub/internal/ui/theme"
)

// SaveVehicleMsg carries a completed vehicle form. EditID is empty when
// creating a new vehicle.
type SaveVehicleMsg struct {
	Input  dto.VehicleInput
	EditID string
}

const (
	fieldMake = iota
	fieldModel
	fieldYear
	fieldVIN
	fieldColor
	fieldPlate
	fieldMileage
	fieldPurchase
	vehicleFieldCount
)

var vehicleFieldLabels = [vehicleFieldCount]string{
	"Make", "Model", "Year", "VIN", "Color", "Plate", "Mileage", "Bought",
}

// Form is the add/edit vehicle screen. The same form serves both modes;
// an edit payload pre-populates the fields.
type Form struct {
	inputs  [vehicleFieldCount]textinput.Model
	focus   int
	editID  string
	errText string
	width   int
	height  int
}

func NewForm() Form {
	var f Form
	placeholders := [vehicleFieldCount]string{
		"Toyota", "Camry", "2018", "optional", "optional", "optional", "120000", "YYYY-MM-DD, optional",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 64
		f.inputs[i] = ti
	}
	return f
}

// Mount resets the form. edit, when non-nil, switches to edit mode.
func (f *Form) Mount(edit *dto.VehicleOutput) tea.Cmd {
	f.focus = 0
	f.errText = ""
	f.editID = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	if edit != nil {
		f.editID = edit.ID
		f.inputs[fieldMake].SetValue(edit.Make)
		f.inputs[fieldModel].SetValue(edit.Model)
		f.inputs[fieldYear].SetValue(strconv.Itoa(edit.Year))
		f.inputs[fieldVIN].SetValue(edit.VIN)
		f.inputs[fieldColor].SetValue(edit.Color)
		f.inputs[fieldPlate].SetValue(edit.LicensePlate)
		f.inputs[fieldMileage].SetValue(strconv.Itoa(edit.Mileage))
		f.inputs[fieldPurchase].SetValue(edit.PurchaseDate)
	}
	return f.inputs[0].Focus()
}

func (f Form) Editing() bool { return f.editID != "" }

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			return f.moveFocus(1)
		case "shift+tab", "up":
			return f.moveFocus(vehicleFieldCount - 1)
		case "enter":
			return f.submit()
		}
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f Form) moveFocus(step int) (Form, tea.Cmd) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + step) % vehicleFieldCount
	return f, f.inputs[f.focus].Focus()
}

func (f Form) submit() (Form, tea.Cmd) {
	make_ := strings.TrimSpace(f.inputs[fieldMake].Value())
	model := strings.TrimSpace(f.inputs[fieldModel].Value())
	if make_ == "" || model == "" {
		f.errText = "make and model are required"
		return f, nil
	}
	year, err := strconv.Atoi(strings.TrimSpace(f.inputs[fieldYear].Value()))
	if err != nil {
		f.errText = "year must be a number"
		return f, nil
	}
	mileage := 0
	if raw := strings.TrimSpace(f.inputs[fieldMileage].Value()); raw != "" {
		mileage, err = strconv.Atoi(raw)
		if err != nil {
			f.errText = "mileage must be a number"
			return f, nil
		}
	}
	input := dto.VehicleInput{
		Make:         make_,
		Model:        model,
		Year:         year,
		VIN:          strings.ToUpper(strings.TrimSpace(f.inputs[fieldVIN].Value())),
		Color:        strings.TrimSpace(f.inputs[fieldColor].Value()),
		LicensePlate: strings.TrimSpace(f.inputs[fieldPlate].Value()),
		Mileage:      mileage,
		PurchaseDate: strings.TrimSpace(f.inputs[fieldPurchase].Value()),
	}
	editID := f.editID
	return f, func() tea.Msg { return SaveVehicleMsg{Input: input, EditID: editID} }
}

func (f Form) View() string {
	title := "Add vehicle"
	if f.editID != "" {
		title = "Edit vehicle"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	for i := range f.inputs {
		label := vehicleFieldLabels[i]
		sb.WriteString("  " + theme.Muted.Render(padLabel(label)) + f.inputs[i].View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("  tab: next field  enter: save  esc: cancel") + "\n")
	if f.errText != "" {
		sb.WriteString("\n" + theme.Bad.Render("  "+f.errText) + "\n")
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func padLabel(label string) string {
	for len(label) < 9 {
		label += " "
	}
	return label
}
