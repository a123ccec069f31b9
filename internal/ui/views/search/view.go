package search

import (
	"context"
	"fmt"
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

type SearchPort interface {
	SearchArticle(ctx context.Context, in dto.ArticleSearchInput) ([]dto.PartOutput, error)
	RecentSearches(ctx context.Context, limit int) ([]dto.HistoryOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ResultsMsg struct {
	Parts []dto.PartOutput
	Err   error
}

type HistoryMsg struct {
	Entries []dto.HistoryOutput
	Err     error
}

// AddToCartMsg asks the app to put the selected offer in the cart.
type AddToCartMsg struct{ Part dto.PartOutput }

// ─── filters ─────────────────────────────────────────────────────────────────

var availabilityCycle = []string{"", "in_stock_tyumen", "on_order"}
var sortCycle = []string{"", "price_asc", "price_desc", "delivery_asc"}

func cycleLabel(v, empty string) string {
	if v == "" {
		return empty
	}
	return v
}

// ─── list item ───────────────────────────────────────────────────────────────

type partItem struct {
	part dto.PartOutput
}

func (i partItem) Title() string {
	return fmt.Sprintf("%s  %s", i.part.Brand, i.part.Article)
}

func (i partItem) Description() string {
	stock := "on order"
	if i.part.InStock {
		stock = "in stock"
	}
	return fmt.Sprintf("%.2f ₽  %s  %dd  %s", i.part.Price, stock, i.part.DeliveryDays, i.part.Description)
}

func (i partItem) FilterValue() string { return i.part.Article + " " + i.part.Brand }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port SearchPort
	ctx  context.Context

	input        textinput.Model
	availability string
	sortBy       string
	history      []dto.HistoryOutput

	results    list.Model
	hasResults bool
	spinner    spinner.Model
	loading    bool
	errText    string
	width      int
	height     int
}

func New(port SearchPort) Model {
	ti := textinput.New()
	ti.Placeholder = "article number…"
	ti.CharLimit = 64

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Offers"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, ctx: context.Background(), input: ti, results: l, spinner: sp}
}

// Mount resets the screen to its form state. prefill, when not empty,
// pre-populates the article field (used by the OEM result hand-off).
func (m *Model) Mount(ctx context.Context, prefill string) tea.Cmd {
	m.ctx = ctx
	m.hasResults = false
	m.loading = false
	m.errText = ""
	m.availability = ""
	m.sortBy = ""
	m.input.SetValue(prefill)
	m.results.SetItems(nil)
	return tea.Batch(m.input.Focus(), m.loadHistoryCmd())
}

// HasResults reports whether a results listing is on screen, which the
// back policy uses to return to the form instead of leaving.
func (m Model) HasResults() bool { return m.hasResults }

// BackToForm drops the results and refocuses the query field.
func (m *Model) BackToForm() tea.Cmd {
	m.hasResults = false
	m.results.SetItems(nil)
	return m.input.Focus()
}

func (m Model) SelectedPart() (dto.PartOutput, bool) {
	if item, ok := m.results.SelectedItem().(partItem); ok {
		return item.part, true
	}
	return dto.PartOutput{}, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.results.SetSize(msg.Width, msg.Height-4)

	case HistoryMsg:
		if msg.Err == nil {
			m.history = msg.Entries
		}

	case ResultsMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.hasResults = true
		items := make([]list.Item, len(msg.Parts))
		for i, p := range msg.Parts {
			items[i] = partItem{part: p}
		}
		cmds = append(cmds, m.results.SetItems(items))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.hasResults {
			switch msg.String() {
			case "enter", "a":
				if part, ok := m.SelectedPart(); ok {
					return m, func() tea.Msg { return AddToCartMsg{Part: part} }
				}
			}
			var cmd tea.Cmd
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}
		switch msg.String() {
		case "enter":
			query := strings.TrimSpace(m.input.Value())
			if query == "" {
				m.errText = "enter an article number"
				return m, nil
			}
			m.loading = true
			m.errText = ""
			return m, tea.Batch(m.searchCmd(query), m.spinner.Tick)
		case "ctrl+f":
			m.availability = next(availabilityCycle, m.availability)
			return m, nil
		case "ctrl+s":
			m.sortBy = next(sortCycle, m.sortBy)
			return m, nil
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center,
			m.spinner.View()+" Searching…")
	}
	if m.hasResults {
		hint := theme.Muted.Render("enter/a: add to cart  esc: back to form")
		return m.results.View() + "\n" + hint
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Search by article") + "\n\n")
	sb.WriteString("  " + m.input.View() + "\n\n")
	sb.WriteString(theme.Muted.Render("  availability: ") + cycleLabel(m.availability, "any") +
		theme.Muted.Render("   sort: ") + cycleLabel(m.sortBy, "default") + "\n")
	sb.WriteString(theme.Muted.Render("  ctrl+f: availability  ctrl+s: sort  enter: search") + "\n")
	if m.errText != "" {
		sb.WriteString("\n" + theme.Bad.Render("  "+m.errText) + "\n")
	}
	if len(m.history) > 0 {
		sb.WriteString("\n" + theme.Muted.Render("  Recent:") + "\n")
		for _, h := range m.history {
			sb.WriteString(fmt.Sprintf("    %s  %s\n", h.Query, theme.Muted.Render(fmt.Sprintf("(%d results)", h.Results))))
		}
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

// ─── private ─────────────────────────────────────────────────────────────────

func next(cycle []string, current string) string {
	for i, v := range cycle {
		if v == current {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return cycle[0]
}

func (m Model) searchCmd(query string) tea.Cmd {
	ctx := m.ctx
	in := dto.ArticleSearchInput{Article: query, Availability: m.availability, SortBy: m.sortBy}
	return func() tea.Msg {
		parts, err := m.port.SearchArticle(ctx, in)
		return ResultsMsg{Parts: parts, Err: err}
	}
}

func (m Model) loadHistoryCmd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		entries, err := m.port.RecentSearches(ctx, 5)
		return HistoryMsg{Entries: entries, Err: err}
	}
}
