package vinsearch

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/catalog/dto"
	"partshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type VINPort interface {
	SearchVIN(ctx context.Context, in dto.VINSearchInput) (dto.VINSearchOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ResultsMsg struct {
	Out dto.VINSearchOutput
	Err error
}

// LookupArticleMsg asks the app to open the article search prefilled
// with the chosen OEM number, so the user can see live offers for it.
type LookupArticleMsg struct{ Article string }

// ─── list item ───────────────────────────────────────────────────────────────

type oemItem struct {
	part dto.OEMPartOutput
}

func (i oemItem) Title() string       { return i.part.Article }
func (i oemItem) Description() string { return i.part.Name + "  " + i.part.Source }
func (i oemItem) FilterValue() string { return i.part.Article }

// ─── model ───────────────────────────────────────────────────────────────────

const fieldCount = 2

type Model struct {
	port VINPort
	ctx  context.Context

	vin      textinput.Model
	partName textinput.Model
	focus    int

	out        dto.VINSearchOutput
	results    list.Model
	hasResults bool
	spinner    spinner.Model
	loading    bool
	errText    string
	width      int
	height     int
}

func New(port VINPort) Model {
	vin := textinput.New()
	vin.Placeholder = "17-character VIN…"
	vin.CharLimit = 17

	part := textinput.New()
	part.Placeholder = "part name, e.g. front brake pads…"
	part.CharLimit = 128

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "OEM numbers"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, ctx: context.Background(), vin: vin, partName: part, results: l, spinner: sp}
}

// Mount resets the form. prefillVIN comes from the launch deep link or
// from a garage vehicle's stored VIN.
func (m *Model) Mount(ctx context.Context, prefillVIN string) tea.Cmd {
	m.ctx = ctx
	m.hasResults = false
	m.loading = false
	m.errText = ""
	m.out = dto.VINSearchOutput{}
	m.results.SetItems(nil)
	m.vin.SetValue(prefillVIN)
	m.partName.SetValue("")
	m.focus = 0
	if prefillVIN != "" {
		m.focus = 1
		m.vin.Blur()
		return m.partName.Focus()
	}
	m.partName.Blur()
	return m.vin.Focus()
}

func (m Model) HasResults() bool { return m.hasResults }

func (m *Model) BackToForm() tea.Cmd {
	m.hasResults = false
	m.results.SetItems(nil)
	m.focus = 0
	m.partName.Blur()
	return m.vin.Focus()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetSize(msg.Width, msg.Height-6)

	case ResultsMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.out = msg.Out
		m.hasResults = true
		items := make([]list.Item, len(msg.Out.Parts))
		for i, p := range msg.Out.Parts {
			items[i] = oemItem{part: p}
		}
		cmds = append(cmds, m.results.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.hasResults {
			if msg.String() == "enter" {
				if item, ok := m.results.SelectedItem().(oemItem); ok {
					article := item.part.Article
					return m, func() tea.Msg { return LookupArticleMsg{Article: article} }
				}
			}
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % fieldCount
			if m.focus == 0 {
				m.partName.Blur()
				cmds = append(cmds, m.vin.Focus())
			} else {
				m.vin.Blur()
				cmds = append(cmds, m.partName.Focus())
			}
			return m, tea.Batch(cmds...)
		case "enter":
			vin := strings.TrimSpace(m.vin.Value())
			part := strings.TrimSpace(m.partName.Value())
			if vin == "" || part == "" {
				m.errText = "both VIN and part name are required"
				return m, nil
			}
			m.loading = true
			m.errText = ""
			return m, tea.Batch(m.searchCmd(vin, part), m.spinner.Tick)
		}
		var cmd tea.Cmd
		if m.focus == 0 {
			m.vin, cmd = m.vin.Update(msg)
		} else {
			m.partName, cmd = m.partName.Update(msg)
		}
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Resolving OEM numbers…")
	}
	if m.hasResults {
		header := theme.Title.Render(m.out.VehicleBrand+" "+m.out.VehicleName) +
			theme.Muted.Render("  VIN "+m.out.VIN) + "\n"
		hint := theme.Muted.Render("enter: find offers for this number  esc: back to form")
		return header + m.results.View() + "\n" + hint
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Search by VIN") + "\n\n")
	sb.WriteString("  VIN:  " + m.vin.View() + "\n")
	sb.WriteString("  Part: " + m.partName.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("  tab: switch field  enter: search") + "\n")
	if m.errText != "" {
		sb.WriteString("\n" + theme.Bad.Render("  "+m.errText) + "\n")
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func (m Model) searchCmd(vin, part string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		out, err := m.port.SearchVIN(ctx, dto.VINSearchInput{VIN: vin, PartName: part})
		return ResultsMsg{Out: out, Err: err}
	}
}
