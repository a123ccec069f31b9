package journal

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/garage/dto"
	"partshub/internal/ui/theme"
)

// SaveEntryMsg carries a completed journal form. EditID is empty when
// creating a new entry.
type SaveEntryMsg struct {
	Input  dto.LogEntryInput
	EditID string
}

var entryTypes = []string{"refuel", "trip", "note", "expense", "diagnostic"}

const (
	fieldTitle = iota
	fieldDescription
	fieldMileage
	fieldDate
	fieldFuelAmount
	fieldFuelCost
	fieldFuelType
	fieldTripDistance
	fieldTripPurpose
	fieldExpenseAmount
	fieldExpenseCategory
	entryFieldCount
)

var entryFieldLabels = [entryFieldCount]string{
	"Title", "Details", "Mileage", "Date",
	"Liters", "Cost", "Fuel",
	"Distance", "Purpose",
	"Amount", "Category",
}

// fieldsByType lists which fields each entry type shows, in tab order.
var fieldsByType = map[string][]int{
	"refuel":     {fieldTitle, fieldDescription, fieldMileage, fieldDate, fieldFuelAmount, fieldFuelCost, fieldFuelType},
	"trip":       {fieldTitle, fieldDescription, fieldMileage, fieldDate, fieldTripDistance, fieldTripPurpose},
	"note":       {fieldTitle, fieldDescription, fieldMileage, fieldDate},
	"expense":    {fieldTitle, fieldDescription, fieldMileage, fieldDate, fieldExpenseAmount, fieldExpenseCategory},
	"diagnostic": {fieldTitle, fieldDescription, fieldMileage, fieldDate},
}

type Form struct {
	inputs    [entryFieldCount]textinput.Model
	typeIdx   int
	focus     int
	vehicleID string
	editID    string
	errText   string
	now       func() time.Time
	width     int
	height    int
}

func NewForm() Form {
	var f Form
	placeholders := [entryFieldCount]string{
		"Filled up at Lukoil", "optional", "optional", "YYYY-MM-DD, default today",
		"45.0", "2300", "95",
		"350", "optional",
		"1200", "parking",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		f.inputs[i] = ti
	}
	f.now = time.Now
	return f
}

func (f *Form) Mount(vehicleID string, edit *dto.LogEntryOutput) tea.Cmd {
	f.vehicleID = vehicleID
	f.typeIdx = 0
	f.focus = 0
	f.errText = ""
	f.editID = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	if edit != nil {
		f.editID = edit.ID
		f.vehicleID = edit.VehicleID
		for i, et := range entryTypes {
			if et == edit.Type {
				f.typeIdx = i
			}
		}
		f.inputs[fieldTitle].SetValue(edit.Title)
		f.inputs[fieldDescription].SetValue(edit.Description)
		if edit.Mileage > 0 {
			f.inputs[fieldMileage].SetValue(strconv.Itoa(edit.Mileage))
		}
		f.inputs[fieldDate].SetValue(edit.Date.Format("2006-01-02"))
		if edit.FuelAmount > 0 {
			f.inputs[fieldFuelAmount].SetValue(strconv.FormatFloat(edit.FuelAmount, 'f', -1, 64))
		}
		if edit.FuelCost > 0 {
			f.inputs[fieldFuelCost].SetValue(strconv.FormatFloat(edit.FuelCost, 'f', -1, 64))
		}
		f.inputs[fieldFuelType].SetValue(edit.FuelType)
		if edit.TripDistance > 0 {
			f.inputs[fieldTripDistance].SetValue(strconv.Itoa(edit.TripDistance))
		}
		f.inputs[fieldTripPurpose].SetValue(edit.TripPurpose)
		if edit.ExpenseAmount > 0 {
			f.inputs[fieldExpenseAmount].SetValue(strconv.FormatFloat(edit.ExpenseAmount, 'f', -1, 64))
		}
		f.inputs[fieldExpenseCategory].SetValue(edit.ExpenseCategory)
	}
	return f.inputs[fieldTitle].Focus()
}

func (f Form) activeFields() []int {
	return fieldsByType[entryTypes[f.typeIdx]]
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height

	case tea.KeyMsg:
		fields := f.activeFields()
		switch msg.String() {
		case "tab", "down":
			return f.moveFocus(fields, 1)
		case "shift+tab", "up":
			return f.moveFocus(fields, len(fields)-1)
		case "ctrl+t":
			f.inputs[fields[f.focus]].Blur()
			f.typeIdx = (f.typeIdx + 1) % len(entryTypes)
			f.focus = 0
			return f, f.inputs[fieldTitle].Focus()
		case "enter":
			return f.submit()
		}
		idx := fields[f.focus]
		var cmd tea.Cmd
		f.inputs[idx], cmd = f.inputs[idx].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f Form) moveFocus(fields []int, step int) (Form, tea.Cmd) {
	f.inputs[fields[f.focus]].Blur()
	f.focus = (f.focus + step) % len(fields)
	return f, f.inputs[fields[f.focus]].Focus()
}

func (f Form) submit() (Form, tea.Cmd) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		f.errText = "title is required"
		return f, nil
	}
	input := dto.LogEntryInput{
		VehicleID:   f.vehicleID,
		Type:        entryTypes[f.typeIdx],
		Title:       title,
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
	}
	var err error
	if input.Mileage, err = intField(f.inputs[fieldMileage].Value()); err != nil {
		f.errText = "mileage must be a number"
		return f, nil
	}
	input.Date = f.now()
	if raw := strings.TrimSpace(f.inputs[fieldDate].Value()); raw != "" {
		input.Date, err = time.Parse("2006-01-02", raw)
		if err != nil {
			f.errText = "date must be YYYY-MM-DD"
			return f, nil
		}
	}
	switch input.Type {
	case "refuel":
		if input.FuelAmount, err = floatField(f.inputs[fieldFuelAmount].Value()); err != nil {
			f.errText = "liters must be a number"
			return f, nil
		}
		if input.FuelCost, err = floatField(f.inputs[fieldFuelCost].Value()); err != nil {
			f.errText = "cost must be a number"
			return f, nil
		}
		input.FuelType = strings.TrimSpace(f.inputs[fieldFuelType].Value())
	case "trip":
		if input.TripDistance, err = intField(f.inputs[fieldTripDistance].Value()); err != nil {
			f.errText = "distance must be a number"
			return f, nil
		}
		input.TripPurpose = strings.TrimSpace(f.inputs[fieldTripPurpose].Value())
	case "expense":
		if input.ExpenseAmount, err = floatField(f.inputs[fieldExpenseAmount].Value()); err != nil {
			f.errText = "amount must be a number"
			return f, nil
		}
		input.ExpenseCategory = strings.TrimSpace(f.inputs[fieldExpenseCategory].Value())
	}
	editID := f.editID
	return f, func() tea.Msg { return SaveEntryMsg{Input: input, EditID: editID} }
}

func (f Form) View() string {
	title := "Add journal entry"
	if f.editID != "" {
		title = "Edit journal entry"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	sb.WriteString("  " + theme.Muted.Render("Type     ") + entryTypes[f.typeIdx] +
		theme.Muted.Render("  (ctrl+t to change)") + "\n")
	for _, idx := range f.activeFields() {
		sb.WriteString("  " + theme.Muted.Render(padLabel(entryFieldLabels[idx])) + f.inputs[idx].View() + "\n")
	}
	sb.WriteString("\n" + theme.Muted.Render("  tab: next field  enter: save  esc: cancel") + "\n")
	if f.errText != "" {
		sb.WriteString("\n" + theme.Bad.Render("  "+f.errText) + "\n")
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func intField(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

func floatField(raw string) (float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.ParseFloat(raw, 64)
}

func padLabel(label string) string {
	for len(label) < 9 {
		label += " "
	}
	return label
}
