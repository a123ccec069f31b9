package cartview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"partshub/internal/modules/cart/dto"
	"partshub/internal/ui/theme"
)

// ─── messages ────────────────────────────────────────────────────────────────
// Cart mutations are not performed here: the view raises intents and the
// app routes them through the cart manager (and the confirm dialog for
// removals).

type ChangeQtyMsg struct {
	Article  string
	Quantity int
}

type RemoveRequestMsg struct{ Article string }

type CheckoutSubmitMsg struct {
	Name    string
	Phone   string
	Address string
}

// ─── model ───────────────────────────────────────────────────────────────────

const checkoutFields = 3

type Model struct {
	cart   dto.CartOutput
	cursor int

	checkingOut bool
	name        textinput.Model
	phone       textinput.Model
	address     textinput.Model
	focus       int
	errText     string

	width  int
	height int
}

func New() Model {
	name := textinput.New()
	name.Placeholder = "full name…"
	name.CharLimit = 128
	phone := textinput.New()
	phone.Placeholder = "phone…"
	phone.CharLimit = 32
	address := textinput.New()
	address.Placeholder = "delivery address (optional)…"
	address.CharLimit = 256
	return Model{name: name, phone: phone, address: address}
}

// Mount resets transient state. The cart itself is pushed via SetCart.
func (m *Model) Mount() {
	m.cursor = 0
	m.checkingOut = false
	m.errText = ""
}

// SetCart replaces the rendered cart and clamps the cursor.
func (m *Model) SetCart(cart dto.CartOutput) {
	m.cart = cart
	if m.cursor >= len(cart.Lines) {
		m.cursor = len(cart.Lines) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Cart returns the state the view currently renders.
func (m Model) Cart() dto.CartOutput { return m.cart }

// CheckingOut reports whether the checkout form is open, so the app can
// let back close the form instead of leaving the screen.
func (m Model) CheckingOut() bool { return m.checkingOut }

// CloseCheckout drops back to the line listing.
func (m *Model) CloseCheckout() {
	m.checkingOut = false
	m.errText = ""
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.checkingOut {
			return m.updateCheckout(msg)
		}
		switch msg.String() {
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.cart.Lines)-1 {
				m.cursor++
			}
		case "+", "=", "right":
			if line, ok := m.selected(); ok {
				article, qty := line.Article, line.Quantity+1
				return m, func() tea.Msg { return ChangeQtyMsg{Article: article, Quantity: qty} }
			}
		case "-", "left":
			// The UI never requests a quantity below one.
			if line, ok := m.selected(); ok && line.Quantity > 1 {
				article, qty := line.Article, line.Quantity-1
				return m, func() tea.Msg { return ChangeQtyMsg{Article: article, Quantity: qty} }
			}
		case "d", "delete":
			if line, ok := m.selected(); ok {
				article := line.Article
				return m, func() tea.Msg { return RemoveRequestMsg{Article: article} }
			}
		case "c":
			if len(m.cart.Lines) > 0 {
				m.checkingOut = true
				m.focus = 0
				m.phone.Blur()
				m.address.Blur()
				return m, m.name.Focus()
			}
		}
	}
	return m, nil
}

func (m Model) updateCheckout(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		return m.moveFocus(1)
	case "shift+tab", "up":
		return m.moveFocus(checkoutFields - 1)
	case "enter":
		name := strings.TrimSpace(m.name.Value())
		phone := strings.TrimSpace(m.phone.Value())
		if name == "" || phone == "" {
			m.errText = "name and phone are required"
			return m, nil
		}
		address := strings.TrimSpace(m.address.Value())
		return m, func() tea.Msg {
			return CheckoutSubmitMsg{Name: name, Phone: phone, Address: address}
		}
	}
	var cmd tea.Cmd
	switch m.focus {
	case 0:
		m.name, cmd = m.name.Update(msg)
	case 1:
		m.phone, cmd = m.phone.Update(msg)
	case 2:
		m.address, cmd = m.address.Update(msg)
	}
	return m, cmd
}

func (m Model) moveFocus(step int) (Model, tea.Cmd) {
	m.focus = (m.focus + step) % checkoutFields
	m.name.Blur()
	m.phone.Blur()
	m.address.Blur()
	switch m.focus {
	case 0:
		return m, m.name.Focus()
	case 1:
		return m, m.phone.Focus()
	default:
		return m, m.address.Focus()
	}
}

func (m Model) View() string {
	if m.checkingOut {
		var sb strings.Builder
		sb.WriteString(theme.Title.Render("Checkout") + "\n\n")
		sb.WriteString(fmt.Sprintf("  Total: %s\n\n", theme.Hot.Render(fmt.Sprintf("%.2f ₽", m.cart.Total))))
		sb.WriteString("  Name:    " + m.name.View() + "\n")
		sb.WriteString("  Phone:   " + m.phone.View() + "\n")
		sb.WriteString("  Address: " + m.address.View() + "\n\n")
		sb.WriteString(theme.Muted.Render("  tab: next field  enter: place order  esc: back to cart") + "\n")
		if m.errText != "" {
			sb.WriteString("\n" + theme.Bad.Render("  "+m.errText) + "\n")
		}
		return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
	}

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Cart") + "\n\n")
	if len(m.cart.Lines) == 0 {
		sb.WriteString(theme.Muted.Render("  Your cart is empty.") + "\n")
		return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
	}
	for i, line := range m.cart.Lines {
		marker := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			marker = theme.Hot.Render("> ")
			style = style.Foreground(theme.Accent)
		}
		sb.WriteString(marker + style.Render(fmt.Sprintf("%s %s", line.Brand, line.Article)) + "\n")
		sb.WriteString("    " + theme.Muted.Render(line.Description) + "\n")
		sb.WriteString(fmt.Sprintf("    %.2f ₽ × %d = %s\n",
			line.Price, line.Quantity, theme.Good.Render(fmt.Sprintf("%.2f ₽", line.Subtotal))))
	}
	sb.WriteString(fmt.Sprintf("\n  Total: %s\n", theme.Hot.Render(fmt.Sprintf("%.2f ₽", m.cart.Total))))
	sb.WriteString("\n" + theme.Muted.Render("  +/-: quantity  d: remove  c: checkout") + "\n")
	return lipgloss.NewStyle().Padding(0, 1).Render(sb.String())
}

func (m Model) selected() (dto.LineOutput, bool) {
	if m.cursor >= 0 && m.cursor < len(m.cart.Lines) {
		return m.cart.Lines[m.cursor], true
	}
	return dto.LineOutput{}, false
}
