package ordersview

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/orders/dto"
	"partshub/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type OrdersPort interface {
	List(ctx context.Context) ([]dto.OrderOutput, error)
	Get(ctx context.Context, orderID string) (dto.OrderOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Orders []dto.OrderOutput
	Err    error
}

type DetailMsg struct {
	Order dto.OrderOutput
	Err   error
}

// ─── list item ───────────────────────────────────────────────────────────────

type orderItem struct {
	order dto.OrderOutput
}

func (i orderItem) Title() string {
	return fmt.Sprintf("Order %s  %.2f ₽", i.order.ID, i.order.Total)
}

func (i orderItem) Description() string {
	return fmt.Sprintf("%s  %s", i.order.Status, i.order.CreatedAt.Format("02.01.2006"))
}

func (i orderItem) FilterValue() string { return i.order.ID }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port OrdersPort
	ctx  context.Context

	list    list.Model
	detail  viewport.Model
	hasDet  bool
	spinner spinner.Model
	loading bool
	errText string
	width   int
	height  int
}

func New(port OrdersPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "My orders"
	l.Styles.Title = theme.Title
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)

	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().Background(theme.Mantle).Foreground(theme.Text).Padding(1)

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Accent)

	return Model{port: port, ctx: context.Background(), list: l, detail: vp, spinner: sp}
}

func (m *Model) Mount(ctx context.Context) tea.Cmd {
	m.ctx = ctx
	m.loading = true
	m.hasDet = false
	m.errText = ""
	return tea.Batch(m.loadCmd(), m.spinner.Tick)
}

// ShowingDetail reports whether a single order is expanded; back then
// returns to the listing instead of leaving the screen.
func (m Model) ShowingDetail() bool { return m.hasDet }

func (m *Model) CloseDetail() { m.hasDet = false }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, msg.Height-2)
		m.detail.Width = msg.Width - 4
		m.detail.Height = msg.Height - 4

	case LoadedMsg:
		m.loading = false
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		items := make([]list.Item, len(msg.Orders))
		for i, o := range msg.Orders {
			items[i] = orderItem{order: o}
		}
		cmds = append(cmds, m.list.SetItems(items))

	case DetailMsg:
		if msg.Err != nil {
			m.errText = msg.Err.Error()
			return m, nil
		}
		m.hasDet = true
		m.detail.SetContent(renderOrder(msg.Order))

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case tea.KeyMsg:
		if m.hasDet {
			var cmd tea.Cmd
			m.detail, cmd = m.detail.Update(msg)
			return m, cmd
		}
		if msg.String() == "enter" {
			if item, ok := m.list.SelectedItem().(orderItem); ok {
				return m, m.detailCmd(item.order.ID)
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
			m.spinner.View()+" Loading orders…")
	}
	if m.errText != "" {
		return lipgloss.NewStyle().Padding(1).Render(theme.Bad.Render(m.errText))
	}
	if m.hasDet {
		return m.detail.View() + "\n" + theme.Muted.Render("  esc: back to list")
	}
	if len(m.list.Items()) == 0 {
		return lipgloss.NewStyle().Padding(1).Render(theme.Muted.Render("No orders yet."))
	}
	return m.list.View() + "\n" + theme.Muted.Render("  enter: details")
}

// ─── private ─────────────────────────────────────────────────────────────────

func renderOrder(o dto.OrderOutput) string {
	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Order "+o.ID) + "\n\n")
	sb.WriteString(theme.Muted.Render("status:  ") + o.Status + "\n")
	sb.WriteString(theme.Muted.Render("created: ") + o.CreatedAt.Format("02.01.2006 15:04") + "\n")
	sb.WriteString(theme.Muted.Render("name:    ") + o.Name + "\n")
	sb.WriteString(theme.Muted.Render("phone:   ") + o.Phone + "\n")
	if o.Address != "" {
		sb.WriteString(theme.Muted.Render("address: ") + o.Address + "\n")
	}
	sb.WriteString("\n")
	for _, item := range o.Items {
		sb.WriteString(fmt.Sprintf("%s %s\n", item.Brand, item.Article))
		sb.WriteString("  " + theme.Muted.Render(item.Description) + "\n")
		sb.WriteString(fmt.Sprintf("  %.2f ₽ × %d\n", item.Price, item.Quantity))
	}
	sb.WriteString("\n" + theme.Hot.Render(fmt.Sprintf("Total: %.2f ₽", o.Total)) + "\n")
	return sb.String()
}

func (m Model) loadCmd() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		orders, err := m.port.List(ctx)
		return LoadedMsg{Orders: orders, Err: err}
	}
}

func (m Model) detailCmd(orderID string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		order, err := m.port.Get(ctx, orderID)
		return DetailMsg{Order: order, Err: err}
	}
}
