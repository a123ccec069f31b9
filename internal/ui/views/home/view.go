package home

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/ui/theme"
)

// Menu entry keys consumed by the app router.
const (
	EntrySearchArticle = "search-article"
	EntrySearchVIN     = "search-vin"
	EntryCart          = "cart"
	EntryOrders        = "orders"
	EntryGarage        = "garage"
	EntryAdmin         = "admin"
)

type menuItem struct {
	key   string
	title string
	desc  string
}

func (i menuItem) Title() string       { return i.title }
func (i menuItem) Description() string { return i.desc }
func (i menuItem) FilterValue() string { return i.title }

// Model is the root menu. It owns no port: the cart badge and the admin
// entry are pushed in by the app, which owns that state.
type Model struct {
	list      list.Model
	userName  string
	cartCount int
	admin     bool
	width     int
	height    int
}

func New() Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Accent).BorderForeground(theme.Accent)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Link).BorderForeground(theme.Accent)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "PartsHub"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)

	m := Model{list: l}
	m.rebuild()
	return m
}

// SetUser updates the greeting under the title.
func (m *Model) SetUser(name string) {
	m.userName = name
}

// SetCartCount refreshes the badge on the cart entry.
func (m *Model) SetCartCount(n int) {
	m.cartCount = n
	m.rebuild()
}

// SetAdminVisible toggles the admin entry. Visibility only; the backend
// decides what an admin may actually do.
func (m *Model) SetAdminVisible(v bool) {
	m.admin = v
	m.rebuild()
}

func (m *Model) rebuild() {
	cartDesc := "Your selected parts"
	if m.cartCount > 0 {
		cartDesc = fmt.Sprintf("%d item(s) waiting", m.cartCount)
	}
	items := []list.Item{
		menuItem{key: EntrySearchArticle, title: "Search by article", desc: "Find a part by its article number"},
		menuItem{key: EntrySearchVIN, title: "Search by VIN", desc: "Resolve OEM numbers from your VIN"},
		menuItem{key: EntryCart, title: "Cart", desc: cartDesc},
		menuItem{key: EntryOrders, title: "My orders", desc: "Order history and status"},
		menuItem{key: EntryGarage, title: "Garage", desc: "Vehicles, service log, reminders"},
	}
	if m.admin {
		items = append(items, menuItem{key: EntryAdmin, title: "Admin", desc: "Stats, users, markup"})
	}
	idx := m.list.Index()
	m.list.SetItems(items)
	if idx < len(items) {
		m.list.Select(idx)
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if sz, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = sz.Width
		m.height = sz.Height
		m.list.SetSize(sz.Width, sz.Height-2)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	greeting := ""
	if m.userName != "" {
		greeting = theme.Muted.Render("Hello, "+m.userName) + "\n"
	}
	return lipgloss.NewStyle().Padding(0, 1).Render(greeting + m.list.View())
}

// SelectedKey returns the highlighted menu entry's key.
func (m Model) SelectedKey() (string, bool) {
	if item, ok := m.list.SelectedItem().(menuItem); ok {
		return item.key, true
	}
	return "", false
}
