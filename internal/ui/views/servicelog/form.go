package servicelog

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

// SaveRecordMsg carries a completed service form. EditID is empty when
// creating a new record.
type SaveRecordMsg struct {
	Input  dto.ServiceRecordInput
	EditID string
}

var serviceTypes = []string{
	"oil_change", "tire_change", "brake_service", "general_maintenance", "repair", "other",
}

const (
	fieldTitle = iota
	fieldDescription
	fieldMileage
	fieldCost
	fieldDate
	fieldProvider
	fieldParts
	recordFieldCount
)

var recordFieldLabels = [recordFieldCount]string{
	"Title", "Details", "Mileage", "Cost", "Date", "Provider", "Parts",
}

type Form struct {
	inputs    [recordFieldCount]textinput.Model
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
	placeholders := [recordFieldCount]string{
		"Oil and filter change", "optional", "120000", "4500", "YYYY-MM-DD, default today", "optional", "comma-separated, optional",
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

func (f *Form) Mount(vehicleID string, edit *dto.ServiceRecordOutput) tea.Cmd {
	f.vehicleID = vehicleID
	f.focus = 0
	f.typeIdx = 0
	f.errText = ""
	f.editID = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	if edit != nil {
		f.editID = edit.ID
		f.vehicleID = edit.VehicleID
		for i, st := range serviceTypes {
			if st == edit.Type {
				f.typeIdx = i
			}
		}
		f.inputs[fieldTitle].SetValue(edit.Title)
		f.inputs[fieldDescription].SetValue(edit.Description)
		f.inputs[fieldMileage].SetValue(strconv.Itoa(edit.Mileage))
		f.inputs[fieldCost].SetValue(strconv.FormatFloat(edit.Cost, 'f', -1, 64))
		f.inputs[fieldDate].SetValue(edit.Date.Format("2006-01-02"))
		f.inputs[fieldProvider].SetValue(edit.Provider)
		f.inputs[fieldParts].SetValue(strings.Join(edit.PartsUsed, ", "))
	}
	return f.inputs[0].Focus()
}

func (f Form) Update(msg tea.Msg) (Form, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		f.width = msg.Width
		f.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "tab", "down":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + 1) % recordFieldCount
			return f, f.inputs[f.focus].Focus()
		case "shift+tab", "up":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + recordFieldCount - 1) % recordFieldCount
			return f, f.inputs[f.focus].Focus()
		case "ctrl+t":
			f.typeIdx = (f.typeIdx + 1) % len(serviceTypes)
			return f, nil
		case "enter":
			return f.submit()
		}
		var cmd tea.Cmd
		f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
		return f, cmd
	}
	return f, nil
}

func (f Form) submit() (Form, tea.Cmd) {
	title := strings.TrimSpace(f.inputs[fieldTitle].Value())
	if title == "" {
		f.errText = "title is required"
		return f, nil
	}
	mileage := 0
	if raw := strings.TrimSpace(f.inputs[fieldMileage].Value()); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			f.errText = "mileage must be a number"
			return f, nil
		}
		mileage = v
	}
	cost := 0.0
	if raw := strings.TrimSpace(f.inputs[fieldCost].Value()); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			f.errText = "cost must be a number"
			return f, nil
		}
		cost = v
	}
	date := f.now()
	if raw := strings.TrimSpace(f.inputs[fieldDate].Value()); raw != "" {
		v, err := time.Parse("2006-01-02", raw)
		if err != nil {
			f.errText = "date must be YYYY-MM-DD"
			return f, nil
		}
		date = v
	}
	var parts []string
	for _, p := range strings.Split(f.inputs[fieldParts].Value(), ",") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	input := dto.ServiceRecordInput{
		VehicleID:   f.vehicleID,
		Type:        serviceTypes[f.typeIdx],
		Title:       title,
		Description: strings.TrimSpace(f.inputs[fieldDescription].Value()),
		Mileage:     mileage,
		Cost:        cost,
		Date:        date,
		Provider:    strings.TrimSpace(f.inputs[fieldProvider].Value()),
		PartsUsed:   parts,
	}
	editID := f.editID
	return f, func() tea.Msg { return SaveRecordMsg{Input: input, EditID: editID} }
}

func (f Form) View() string {
	title := "Add service record"
	if f.editID != "" {
		title = "Edit service record"
	}
	var sb strings.Builder
	sb.WriteString(theme.Title.Render(title) + "\n\n")
	sb.WriteString("  " + theme.Muted.Render("Type     ") + serviceTypes[f.typeIdx] +
		theme.Muted.Render("  (ctrl+t to change)") + "\n")
	for i := range f.inputs {
		sb.WriteString("  " + theme.Muted.Render(padLabel(recordFieldLabels[i])) + f.inputs[i].View() + "\n")
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
