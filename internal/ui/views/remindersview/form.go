package remindersview

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

// SaveReminderMsg carries a completed reminder form.
type SaveReminderMsg struct {
	Input dto.ReminderInput
}

var reminderTypes = []string{"service", "insurance", "inspection", "custom"}

const (
	fieldTitle = iota
	fieldDescription
	fieldDate
	fieldMileage
	reminderFieldCount
)

var reminderFieldLabels = [reminderFieldCount]string{"Title", "Details", "By date", "At km"}

type Form struct {
	inputs    [reminderFieldCount]textinput.Model
	typeIdx   int
	focus     int
	vehicleID string
	errText   string
	width     int
	height    int
}

func NewForm() Form {
	var f Form
	placeholders := [reminderFieldCount]string{
		"OSAGO renewal", "optional", "YYYY-MM-DD", "e.g. 130000",
	}
	for i := range f.inputs {
		ti := textinput.New()
		ti.Placeholder = placeholders[i]
		ti.CharLimit = 256
		f.inputs[i] = ti
	}
	return f
}

func (f *Form) Mount(vehicleID string) tea.Cmd {
	f.vehicleID = vehicleID
	f.typeIdx = 0
	f.focus = 0
	f.errText = ""
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
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
			f.focus = (f.focus + 1) % reminderFieldCount
			return f, f.inputs[f.focus].Focus()
		case "shift+tab", "up":
			f.inputs[f.focus].Blur()
			f.focus = (f.focus + reminderFieldCount - 1) % reminderFieldCount
			return f, f.inputs[f.focus].Focus()
		case "ctrl+t":
			f.typeIdx = (f.typeIdx + 1) % len(reminderTypes)
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
	var date time.Time
	if raw := strings.TrimSpace(f.inputs[fieldDate].Value()); raw != "" {
		v, err := time.Parse("2006-01-02", raw)
		if err != nil {
			f.errText = "date must be YYYY-MM-DD"
			return f, nil
		}
		date = v
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
	if date.IsZero() && mileage == 0 {
		f.errText = "set a date or a mileage trigger"
		return f, nil
	}
	input := dto.ReminderInput{
		VehicleID:       f.vehicleID,
		Type:            reminderTypes[f.typeIdx],
		Title:           title,
		Description:     strings.TrimSpace(f.inputs[fieldDescription].Value()),
		RemindAtDate:    date,
		RemindAtMileage: mileage,
	}
	return f, func() tea.Msg { return SaveReminderMsg{Input: input} }
}

func (f Form) View() string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Add reminder") + "\n\n")
	sb.WriteString("  " + theme.Muted.Render("Type     ") + reminderTypes[f.typeIdx] +
		theme.Muted.Render("  (ctrl+t to change)") + "\n")
	for i := range f.inputs {
		sb.WriteString("  " + theme.Muted.Render(padLabel(reminderFieldLabels[i])) + f.inputs[i].View() + "\n")
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
