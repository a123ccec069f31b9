package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	adminin "partshub/internal/modules/admin/port/in"
	cartdto "partshub/internal/modules/cart/dto"
	cartin "partshub/internal/modules/cart/port/in"
	catalogdto "partshub/internal/modules/catalog/dto"
	catalogin "partshub/internal/modules/catalog/port/in"
	garagedto "partshub/internal/modules/garage/dto"
	garagein "partshub/internal/modules/garage/port/in"
	identitydto "partshub/internal/modules/identity/dto"
	identityin "partshub/internal/modules/identity/port/in"
	ordersdto "partshub/internal/modules/orders/dto"
	ordersin "partshub/internal/modules/orders/port/in"
	apperrors "partshub/internal/platform/errors"
	"partshub/internal/ui/components"
	"partshub/internal/ui/theme"
	"partshub/internal/ui/views/adminview"
	"partshub/internal/ui/views/cartview"
	"partshub/internal/ui/views/diagview"
	"partshub/internal/ui/views/expensesview"
	"partshub/internal/ui/views/garageview"
	"partshub/internal/ui/views/home"
	"partshub/internal/ui/views/journal"
	"partshub/internal/ui/views/ordersview"
	"partshub/internal/ui/views/remindersview"
	"partshub/internal/ui/views/search"
	"partshub/internal/ui/views/servicelog"
	"partshub/internal/ui/views/vinsearch"
)

// ─── screens ─────────────────────────────────────────────────────────────────

type screenID int

const (
	screenHome screenID = iota
	screenSearchArticle
	screenSearchVIN
	screenCart
	screenOrders
	screenAdmin
	screenGarage
	screenAddVehicle
	screenVehicleDetail
	screenServiceLog
	screenBoardJournal
	screenDiagnostics
	screenReminders
	screenExpenses
	screenAddService
	screenAddLog
	screenAddReminder
	screenCount
)

var screenTitles = [screenCount]string{
	"Home", "Search by article", "Search by VIN", "Cart", "Orders", "Admin",
	"Garage", "Add vehicle", "Vehicle", "Service log", "Board journal",
	"Diagnostics", "Reminders", "Expenses", "Service record", "Journal entry", "Reminder",
}

// ─── navigation state ────────────────────────────────────────────────────────

// navState is the whole navigation model: exactly one active screen plus
// its argument and optional edit payload. navigateTo replaces all three
// atomically, so nothing leaks from one screen into the next.
type navState struct {
	screen screenID
	params any
	edit   any
}

// ─── host messages ───────────────────────────────────────────────────────────
// These are sent into the program from outside the update loop: the host
// bridge posts dialogs and back gestures through them.

// ShowAlertMsg displays a modal notice. OnDismiss may be nil.
type ShowAlertMsg struct {
	Message   string
	OnDismiss func()
}

// ShowConfirmMsg displays a modal yes/no question.
type ShowConfirmMsg struct {
	Message  string
	OnResult func(bool)
}

// BackMsg is the host back-button gesture.
type BackMsg struct{}

// CartRefreshedMsg carries the cart state after the manager reconciled it
// with the server, so the views drop the undone optimistic change.
type CartRefreshedMsg struct {
	Cart cartdto.CartOutput
}

// ─── async messages ──────────────────────────────────────────────────────────

type identityResolvedMsg struct {
	identity identitydto.IdentityOutput
	err      error
}

type cartUpdatedMsg struct {
	cart cartdto.CartOutput
	err  error
}

// cartLoadedMsg is the initial server fetch. Unlike mutations, a failed
// load degrades silently to the empty local cart.
type cartLoadedMsg struct {
	cart cartdto.CartOutput
	err  error
}

type checkoutDoneMsg struct {
	out ordersdto.ConfirmationOutput
	err error
}

// opDoneMsg reports a completed mutation and where to land afterwards.
type opDoneMsg struct {
	err    error
	status string
	goTo   screenID
	params any
	stay   bool
}

// ─── pending removal ─────────────────────────────────────────────────────────

const (
	removeCartLine      = "cart-line"
	removeVehicle       = "vehicle"
	removeServiceRecord = "service-record"
	removeJournalEntry  = "journal-entry"
	removeReminder      = "reminder"
)

type pendingRemove struct {
	kind      string
	id        string
	vehicleID string
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns the navigation state, the
// host back-button sync, and the modal dialog; screens fetch their own
// data and raise intents for anything that mutates the cart or deletes a
// record.
type Model struct {
	bridge   identityin.Bridge
	identity identityin.Usecase
	cart     cartin.Usecase
	orders   ordersin.Usecase
	garage   garagein.Usecase
	admin    adminin.Usecase

	nav       navState
	screenCtx context.Context
	cancel    context.CancelFunc

	homeView     home.Model
	searchView   search.Model
	vinView      vinsearch.Model
	cartView     cartview.Model
	ordersView   ordersview.Model
	adminView    adminview.Model
	garageView   garageview.Model
	vehicleForm  garageview.Form
	detailView   garageview.Detail
	serviceView  servicelog.Model
	serviceForm  servicelog.Form
	journalView  journal.Model
	journalForm  journal.Form
	remindView   remindersview.Model
	remindForm   remindersview.Form
	expensesView expensesview.Model
	diagView     diagview.Model

	dialog         components.Dialog
	pendingDismiss func()
	pendingResult  func(bool)
	pendingRemoval *pendingRemove

	// initCmd is the landing screen's mount command, prepared in
	// NewModel because Init runs on a value copy.
	initCmd tea.Cmd

	status string
	width  int
	height int
}

// NewModel wires the screens. deepLinkVIN, when not empty, makes the
// VIN-search screen the landing screen (the vin launch parameter).
func NewModel(
	bridge identityin.Bridge,
	identity identityin.Usecase,
	cart cartin.Usecase,
	catalog catalogin.Usecase,
	orders ordersin.Usecase,
	garage garagein.Usecase,
	admin adminin.Usecase,
	deepLinkVIN string,
) Model {
	ctx, cancel := context.WithCancel(context.Background())

	m := Model{
		bridge:       bridge,
		identity:     identity,
		cart:         cart,
		orders:       orders,
		garage:       garage,
		admin:        admin,
		nav:          navState{screen: screenHome},
		screenCtx:    ctx,
		cancel:       cancel,
		homeView:     home.New(),
		searchView:   search.New(catalog),
		vinView:      vinsearch.New(catalog),
		cartView:     cartview.New(),
		ordersView:   ordersview.New(orders),
		adminView:    adminview.New(admin),
		garageView:   garageview.New(garage),
		vehicleForm:  garageview.NewForm(),
		detailView:   garageview.NewDetail(garage),
		serviceView:  servicelog.New(garage),
		serviceForm:  servicelog.NewForm(),
		journalView:  journal.New(garage),
		journalForm:  journal.NewForm(),
		remindView:   remindersview.New(garage),
		remindForm:   remindersview.NewForm(),
		expensesView: expensesview.New(garage),
		diagView:     diagview.New(garage),
		dialog:       components.NewDialog(),
		status:       "ready",
	}
	if admin != nil {
		m.homeView.SetAdminVisible(admin.IsAdmin())
	}
	if deepLinkVIN != "" {
		m.nav = navState{screen: screenSearchVIN, params: deepLinkVIN}
	}
	m.syncBackButton()
	m.initCmd = m.mountScreen()
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.resolveIdentityCmd()}
	if m.cart != nil {
		cmds = append(cmds, m.loadCartCmd())
	}
	if m.initCmd != nil {
		cmds = append(cmds, m.initCmd)
	}
	return tea.Batch(cmds...)
}

// ─── navigation ──────────────────────────────────────────────────────────────

// navigateTo replaces the full navigation state, cancels the previous
// screen's outstanding requests, syncs the host back button, and mounts
// the target screen.
func (m *Model) navigateTo(screen screenID, params, edit any) tea.Cmd {
	m.cancel()
	m.screenCtx, m.cancel = context.WithCancel(context.Background())
	m.nav = navState{screen: screen, params: params, edit: edit}
	m.syncBackButton()
	return m.mountScreen()
}

func (m *Model) syncBackButton() {
	if m.bridge == nil {
		return
	}
	bb := m.bridge.BackButton()
	if m.nav.screen == screenHome {
		bb.Hide()
	} else {
		bb.Show()
	}
}

func (m *Model) mountScreen() tea.Cmd {
	switch m.nav.screen {
	case screenHome:
		if m.cart != nil {
			m.homeView.SetCartCount(m.cart.Snapshot().Count)
		}
		return nil
	case screenSearchArticle:
		prefill, _ := m.nav.params.(string)
		return m.searchView.Mount(m.screenCtx, prefill)
	case screenSearchVIN:
		prefill, _ := m.nav.params.(string)
		return m.vinView.Mount(m.screenCtx, prefill)
	case screenCart:
		m.cartView.Mount()
		if m.cart != nil {
			m.cartView.SetCart(m.cart.Snapshot())
			return m.loadCartCmd()
		}
		return nil
	case screenOrders:
		return m.ordersView.Mount(m.screenCtx)
	case screenAdmin:
		return m.adminView.Mount(m.screenCtx)
	case screenGarage:
		return m.garageView.Mount(m.screenCtx)
	case screenAddVehicle:
		edit, _ := m.nav.edit.(*garagedto.VehicleOutput)
		return m.vehicleForm.Mount(edit)
	case screenVehicleDetail:
		id, _ := m.nav.params.(string)
		return m.detailView.Mount(m.screenCtx, id)
	case screenServiceLog:
		id, _ := m.nav.params.(string)
		return m.serviceView.Mount(m.screenCtx, id)
	case screenBoardJournal:
		id, _ := m.nav.params.(string)
		return m.journalView.Mount(m.screenCtx, id)
	case screenDiagnostics:
		id, _ := m.nav.params.(string)
		return m.diagView.Mount(m.screenCtx, id)
	case screenReminders:
		id, _ := m.nav.params.(string)
		return m.remindView.Mount(m.screenCtx, id)
	case screenExpenses:
		id, _ := m.nav.params.(string)
		return m.expensesView.Mount(m.screenCtx, id)
	case screenAddService:
		id, _ := m.nav.params.(string)
		edit, _ := m.nav.edit.(*garagedto.ServiceRecordOutput)
		return m.serviceForm.Mount(id, edit)
	case screenAddLog:
		id, _ := m.nav.params.(string)
		edit, _ := m.nav.edit.(*garagedto.LogEntryOutput)
		return m.journalForm.Mount(id, edit)
	case screenAddReminder:
		id, _ := m.nav.params.(string)
		return m.remindForm.Mount(id)
	}
	return nil
}

// handleBack applies the shallow back policy. There is no history stack:
// apart from the documented special cases, back always lands on home.
func (m *Model) handleBack() tea.Cmd {
	switch m.nav.screen {
	case screenHome:
		return nil
	case screenSearchArticle:
		if m.searchView.HasResults() {
			return m.searchView.BackToForm()
		}
		return m.navigateTo(screenHome, nil, nil)
	case screenSearchVIN:
		if m.vinView.HasResults() {
			return m.vinView.BackToForm()
		}
		return m.navigateTo(screenHome, nil, nil)
	case screenCart:
		if m.cartView.CheckingOut() {
			m.cartView.CloseCheckout()
			return nil
		}
		return m.navigateTo(screenHome, nil, nil)
	case screenOrders:
		if m.ordersView.ShowingDetail() {
			m.ordersView.CloseDetail()
			return nil
		}
		return m.navigateTo(screenHome, nil, nil)
	default:
		return m.navigateTo(screenHome, nil, nil)
	}
}

// ─── update ──────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The modal dialog swallows all key input while open.
	if m.dialog.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.dialog, cmd = m.dialog.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.dialog.SetWidth(min(m.width-4, 60))
		m.propagateSize()
		return m, nil

	case ShowAlertMsg:
		m.pendingDismiss = msg.OnDismiss
		m.dialog.OpenAlert(msg.Message)
		return m, nil

	case ShowConfirmMsg:
		m.pendingResult = msg.OnResult
		m.dialog.OpenConfirm(msg.Message)
		return m, nil

	case components.DialogResultMsg:
		return m.resolveDialog(msg.Confirmed)

	case BackMsg:
		return m, m.handleBack()

	case identityResolvedMsg:
		if msg.err == nil {
			m.homeView.SetUser(msg.identity.Name)
		}
		return m, nil

	case cartLoadedMsg:
		if msg.err != nil {
			// already logged at the transport layer; keep the empty cart
			return m, nil
		}
		m.cartView.SetCart(msg.cart)
		m.homeView.SetCartCount(msg.cart.Count)
		return m, nil

	case CartRefreshedMsg:
		m.cartView.SetCart(msg.Cart)
		m.homeView.SetCartCount(msg.Cart.Count)
		return m, nil

	case cartUpdatedMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrNotFound) {
				m.status = "that item is no longer in the cart"
			} else {
				m.status = msg.err.Error()
			}
			return m, nil
		}
		m.cartView.SetCart(msg.cart)
		m.homeView.SetCartCount(msg.cart.Count)
		return m, nil

	case checkoutDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, apperrors.ErrEmptyCart) {
				m.status = "cart is empty"
			} else {
				m.status = "checkout failed: " + msg.err.Error()
			}
			return m, nil
		}
		m.dialog.OpenAlert(fmt.Sprintf("Order %s placed. Total %.2f ₽. We will contact you shortly.",
			msg.out.OrderID, msg.out.Total))
		m.homeView.SetCartCount(0)
		return m, m.navigateTo(screenOrders, nil, nil)

	case opDoneMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.status = msg.status
		if msg.stay {
			return m, nil
		}
		return m, m.navigateTo(msg.goTo, msg.params, nil)

	// ── screen intents ──

	case search.AddToCartMsg:
		m.status = "adding " + msg.Part.Article + "…"
		return m, m.addToCartCmd(msg.Part)

	case vinsearch.LookupArticleMsg:
		return m, m.navigateTo(screenSearchArticle, msg.Article, nil)

	case cartview.ChangeQtyMsg:
		return m, m.updateQtyCmd(msg.Article, msg.Quantity)

	case cartview.RemoveRequestMsg:
		m.pendingRemoval = &pendingRemove{kind: removeCartLine, id: msg.Article}
		m.dialog.OpenConfirm("Remove " + msg.Article + " from the cart?")
		return m, nil

	case cartview.CheckoutSubmitMsg:
		return m, m.checkoutCmd(msg)

	case garageview.RemoveVehicleMsg:
		m.pendingRemoval = &pendingRemove{kind: removeVehicle, id: msg.Vehicle.ID}
		m.dialog.OpenConfirm("Remove " + msg.Vehicle.Label + " and all its records?")
		return m, nil

	case garageview.SaveVehicleMsg:
		return m, m.saveVehicleCmd(msg)

	case servicelog.RemoveRecordMsg:
		m.pendingRemoval = &pendingRemove{kind: removeServiceRecord, id: msg.Record.ID, vehicleID: msg.Record.VehicleID}
		m.dialog.OpenConfirm("Remove service record \"" + msg.Record.Title + "\"?")
		return m, nil

	case servicelog.SaveRecordMsg:
		return m, m.saveRecordCmd(msg)

	case journal.RemoveEntryMsg:
		m.pendingRemoval = &pendingRemove{kind: removeJournalEntry, id: msg.Entry.ID, vehicleID: msg.Entry.VehicleID}
		m.dialog.OpenConfirm("Remove journal entry \"" + msg.Entry.Title + "\"?")
		return m, nil

	case journal.SaveEntryMsg:
		return m, m.saveEntryCmd(msg)

	case remindersview.RemoveReminderMsg:
		m.pendingRemoval = &pendingRemove{kind: removeReminder, id: msg.Reminder.ID, vehicleID: msg.Reminder.VehicleID}
		m.dialog.OpenConfirm("Remove reminder \"" + msg.Reminder.Title + "\"?")
		return m, nil

	case remindersview.SaveReminderMsg:
		return m, m.saveReminderCmd(msg)

	case tea.KeyMsg:
		if handled, model, cmd := m.handleGlobalKey(msg); handled {
			return model, cmd
		}
	}

	return m.updateActiveView(msg)
}

func (m Model) handleGlobalKey(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, m, tea.Quit

	case "esc":
		// Screen-local escapes take precedence over the back gesture.
		if m.nav.screen == screenAdmin && m.adminView.EditingMarkup() {
			break
		}
		return true, m, m.handleBack()

	case "q":
		if m.nav.screen == screenHome {
			return true, m, tea.Quit
		}

	case "enter":
		switch m.nav.screen {
		case screenHome:
			if key, ok := m.homeView.SelectedKey(); ok {
				return true, m, m.openHomeEntry(key)
			}
		case screenGarage:
			if v, ok := m.garageView.SelectedVehicle(); ok {
				return true, m, m.navigateTo(screenVehicleDetail, v.ID, nil)
			}
		case screenVehicleDetail:
			if section, ok := m.detailView.SelectedSection(); ok {
				return true, m, m.openVehicleSection(section)
			}
		}

	case "a":
		switch m.nav.screen {
		case screenGarage:
			return true, m, m.navigateTo(screenAddVehicle, nil, nil)
		case screenServiceLog:
			return true, m, m.navigateTo(screenAddService, m.serviceView.VehicleID(), nil)
		case screenBoardJournal:
			return true, m, m.navigateTo(screenAddLog, m.journalView.VehicleID(), nil)
		case screenReminders:
			return true, m, m.navigateTo(screenAddReminder, m.remindView.VehicleID(), nil)
		}

	case "e":
		switch m.nav.screen {
		case screenGarage:
			if v, ok := m.garageView.SelectedVehicle(); ok {
				return true, m, m.navigateTo(screenAddVehicle, nil, &v)
			}
		case screenServiceLog:
			if r, ok := m.serviceView.SelectedRecord(); ok {
				return true, m, m.navigateTo(screenAddService, r.VehicleID, &r)
			}
		case screenBoardJournal:
			if e, ok := m.journalView.SelectedEntry(); ok {
				return true, m, m.navigateTo(screenAddLog, e.VehicleID, &e)
			}
		}
	}
	return false, m, nil
}

func (m *Model) openHomeEntry(key string) tea.Cmd {
	switch key {
	case home.EntrySearchArticle:
		return m.navigateTo(screenSearchArticle, nil, nil)
	case home.EntrySearchVIN:
		return m.navigateTo(screenSearchVIN, nil, nil)
	case home.EntryCart:
		return m.navigateTo(screenCart, nil, nil)
	case home.EntryOrders:
		return m.navigateTo(screenOrders, nil, nil)
	case home.EntryGarage:
		return m.navigateTo(screenGarage, nil, nil)
	case home.EntryAdmin:
		if m.admin != nil && m.admin.IsAdmin() {
			return m.navigateTo(screenAdmin, nil, nil)
		}
	}
	return nil
}

func (m *Model) openVehicleSection(section string) tea.Cmd {
	vehicle := m.detailView.Vehicle()
	switch section {
	case garageview.SectionService:
		return m.navigateTo(screenServiceLog, vehicle.ID, nil)
	case garageview.SectionJournal:
		return m.navigateTo(screenBoardJournal, vehicle.ID, nil)
	case garageview.SectionReminders:
		return m.navigateTo(screenReminders, vehicle.ID, nil)
	case garageview.SectionExpenses:
		return m.navigateTo(screenExpenses, vehicle.ID, nil)
	case garageview.SectionDiagnostics:
		return m.navigateTo(screenDiagnostics, vehicle.ID, nil)
	case garageview.SectionFindParts:
		return m.navigateTo(screenSearchVIN, vehicle.VIN, nil)
	}
	return nil
}

func (m Model) resolveDialog(confirmed bool) (tea.Model, tea.Cmd) {
	if cb := m.pendingDismiss; cb != nil {
		m.pendingDismiss = nil
		return m, func() tea.Msg { cb(); return nil }
	}
	if cb := m.pendingResult; cb != nil {
		m.pendingResult = nil
		return m, func() tea.Msg { cb(confirmed); return nil }
	}
	if removal := m.pendingRemoval; removal != nil {
		m.pendingRemoval = nil
		if !confirmed {
			return m, nil
		}
		return m, m.removeCmd(*removal)
	}
	return m, nil
}

func (m Model) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.nav.screen {
	case screenHome:
		m.homeView, cmd = m.homeView.Update(msg)
	case screenSearchArticle:
		m.searchView, cmd = m.searchView.Update(msg)
	case screenSearchVIN:
		m.vinView, cmd = m.vinView.Update(msg)
	case screenCart:
		m.cartView, cmd = m.cartView.Update(msg)
	case screenOrders:
		m.ordersView, cmd = m.ordersView.Update(msg)
	case screenAdmin:
		m.adminView, cmd = m.adminView.Update(msg)
	case screenGarage:
		m.garageView, cmd = m.garageView.Update(msg)
	case screenAddVehicle:
		m.vehicleForm, cmd = m.vehicleForm.Update(msg)
	case screenVehicleDetail:
		m.detailView, cmd = m.detailView.Update(msg)
	case screenServiceLog:
		m.serviceView, cmd = m.serviceView.Update(msg)
	case screenBoardJournal:
		m.journalView, cmd = m.journalView.Update(msg)
	case screenDiagnostics:
		m.diagView, cmd = m.diagView.Update(msg)
	case screenReminders:
		m.remindView, cmd = m.remindView.Update(msg)
	case screenExpenses:
		m.expensesView, cmd = m.expensesView.Update(msg)
	case screenAddService:
		m.serviceForm, cmd = m.serviceForm.Update(msg)
	case screenAddLog:
		m.journalForm, cmd = m.journalForm.Update(msg)
	case screenAddReminder:
		m.remindForm, cmd = m.remindForm.Update(msg)
	}
	return m, cmd
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	if m.dialog.Visible() {
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.dialog.View())
	} else {
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

// activeView renders the current screen; anything out of range falls
// back to home.
func (m Model) activeView() string {
	switch m.nav.screen {
	case screenSearchArticle:
		return m.searchView.View()
	case screenSearchVIN:
		return m.vinView.View()
	case screenCart:
		return m.cartView.View()
	case screenOrders:
		return m.ordersView.View()
	case screenAdmin:
		return m.adminView.View()
	case screenGarage:
		return m.garageView.View()
	case screenAddVehicle:
		return m.vehicleForm.View()
	case screenVehicleDetail:
		return m.detailView.View()
	case screenServiceLog:
		return m.serviceView.View()
	case screenBoardJournal:
		return m.journalView.View()
	case screenDiagnostics:
		return m.diagView.View()
	case screenReminders:
		return m.remindView.View()
	case screenExpenses:
		return m.expensesView.View()
	case screenAddService:
		return m.serviceForm.View()
	case screenAddLog:
		return m.journalForm.View()
	case screenAddReminder:
		return m.remindForm.View()
	default:
		return m.homeView.View()
	}
}

func (m Model) renderHeader() string {
	title := "Home"
	if m.nav.screen > screenHome && m.nav.screen < screenCount {
		title = screenTitles[m.nav.screen]
	}
	crumb := "partshub  " + theme.Hot.Render(title)
	if m.nav.screen != screenHome {
		crumb += theme.Muted.Render("  esc: back")
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(crumb) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	right := theme.Muted.Render("ctrl+c: quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── helpers ─────────────────────────────────────────────────────────────────

func (m *Model) propagateSize() {
	sz := tea.WindowSizeMsg{Width: m.width, Height: m.height - 3}
	m.homeView, _ = m.homeView.Update(sz)
	m.searchView, _ = m.searchView.Update(sz)
	m.vinView, _ = m.vinView.Update(sz)
	m.cartView, _ = m.cartView.Update(sz)
	m.ordersView, _ = m.ordersView.Update(sz)
	m.adminView, _ = m.adminView.Update(sz)
	m.garageView, _ = m.garageView.Update(sz)
	m.vehicleForm, _ = m.vehicleForm.Update(sz)
	m.detailView, _ = m.detailView.Update(sz)
	m.serviceView, _ = m.serviceView.Update(sz)
	m.serviceForm, _ = m.serviceForm.Update(sz)
	m.journalView, _ = m.journalView.Update(sz)
	m.journalForm, _ = m.journalForm.Update(sz)
	m.remindView, _ = m.remindView.Update(sz)
	m.remindForm, _ = m.remindForm.Update(sz)
	m.expensesView, _ = m.expensesView.Update(sz)
	m.diagView, _ = m.diagView.Update(sz)
}

// ─── async commands ──────────────────────────────────────────────────────────

func (m Model) resolveIdentityCmd() tea.Cmd {
	identity := m.identity
	return func() tea.Msg {
		if identity == nil {
			return identityResolvedMsg{err: fmt.Errorf("identity not configured")}
		}
		out, err := identity.Resolve(context.Background())
		return identityResolvedMsg{identity: out, err: err}
	}
}

func (m Model) loadCartCmd() tea.Cmd {
	cart, ctx := m.cart, m.screenCtx
	return func() tea.Msg {
		out, err := cart.Load(ctx)
		return cartLoadedMsg{cart: out, err: err}
	}
}

func (m Model) addToCartCmd(part catalogdto.PartOutput) tea.Cmd {
	cart := m.cart
	return func() tea.Msg {
		out, err := cart.Add(context.Background(), cartdto.LineInput{
			Article:      part.Article,
			Brand:        part.Brand,
			Description:  part.Description,
			Supplier:     part.Supplier,
			Price:        part.Price,
			DeliveryDays: part.DeliveryDays,
			Quantity:     1,
		})
		return cartUpdatedMsg{cart: out, err: err}
	}
}

func (m Model) updateQtyCmd(article string, quantity int) tea.Cmd {
	cart := m.cart
	return func() tea.Msg {
		out, err := cart.UpdateQuantity(context.Background(), article, quantity)
		return cartUpdatedMsg{cart: out, err: err}
	}
}

func (m Model) checkoutCmd(msg cartview.CheckoutSubmitMsg) tea.Cmd {
	orders := m.orders
	return func() tea.Msg {
		out, err := orders.Checkout(context.Background(), ordersdto.CheckoutInput{
			Name:    msg.Name,
			Phone:   msg.Phone,
			Address: msg.Address,
		})
		return checkoutDoneMsg{out: out, err: err}
	}
}

func (m Model) removeCmd(removal pendingRemove) tea.Cmd {
	cart, garage := m.cart, m.garage
	return func() tea.Msg {
		switch removal.kind {
		case removeCartLine:
			out, err := cart.Remove(context.Background(), removal.id, true)
			return cartUpdatedMsg{cart: out, err: err}
		case removeVehicle:
			err := garage.RemoveVehicle(context.Background(), removal.id, true)
			return opDoneMsg{err: err, status: "vehicle removed", goTo: screenGarage}
		case removeServiceRecord:
			err := garage.RemoveServiceRecord(context.Background(), removal.id, true)
			return opDoneMsg{err: err, status: "record removed", goTo: screenServiceLog, params: removal.vehicleID}
		case removeJournalEntry:
			err := garage.RemoveLogEntry(context.Background(), removal.id, true)
			return opDoneMsg{err: err, status: "entry removed", goTo: screenBoardJournal, params: removal.vehicleID}
		case removeReminder:
			err := garage.RemoveReminder(context.Background(), removal.id, true)
			return opDoneMsg{err: err, status: "reminder removed", goTo: screenReminders, params: removal.vehicleID}
		}
		return opDoneMsg{stay: true}
	}
}

func (m Model) saveVehicleCmd(msg garageview.SaveVehicleMsg) tea.Cmd {
	garage := m.garage
	return func() tea.Msg {
		if msg.EditID == "" {
			_, err := garage.AddVehicle(context.Background(), msg.Input)
			return opDoneMsg{err: err, status: "vehicle added", goTo: screenGarage}
		}
		_, err := garage.UpdateVehicle(context.Background(), msg.EditID, msg.Input)
		return opDoneMsg{err: err, status: "vehicle updated", goTo: screenGarage}
	}
}

func (m Model) saveRecordCmd(msg servicelog.SaveRecordMsg) tea.Cmd {
	garage := m.garage
	return func() tea.Msg {
		if msg.EditID == "" {
			_, err := garage.AddServiceRecord(context.Background(), msg.Input)
			return opDoneMsg{err: err, status: "record saved", goTo: screenServiceLog, params: msg.Input.VehicleID}
		}
		err := garage.UpdateServiceRecord(context.Background(), msg.EditID, msg.Input)
		return opDoneMsg{err: err, status: "record updated", goTo: screenServiceLog, params: msg.Input.VehicleID}
	}
}

func (m Model) saveEntryCmd(msg journal.SaveEntryMsg) tea.Cmd {
	garage := m.garage
	return func() tea.Msg {
		if msg.EditID == "" {
			_, err := garage.AddLogEntry(context.Background(), msg.Input)
			return opDoneMsg{err: err, status: "entry saved", goTo: screenBoardJournal, params: msg.Input.VehicleID}
		}
		err := garage.UpdateLogEntry(context.Background(), msg.EditID, msg.Input)
		return opDoneMsg{err: err, status: "entry updated", goTo: screenBoardJournal, params: msg.Input.VehicleID}
	}
}

func (m Model) saveReminderCmd(msg remindersview.SaveReminderMsg) tea.Cmd {
	garage := m.garage
	return func() tea.Msg {
		_, err := garage.AddReminder(context.Background(), msg.Input)
		return opDoneMsg{err: err, status: "reminder saved", goTo: screenReminders, params: msg.Input.VehicleID}
	}
}
