package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"partshub/internal/modules/cart/domain"
	"partshub/internal/modules/cart/dto"
	cartout "partshub/internal/modules/cart/port/out"
	apperrors "partshub/internal/platform/errors"
)

const syncTimeout = 15 * time.Second

// Manager keeps the authoritative local cart and mirrors every mutation
// to the backend. Mutations apply locally first so the UI never waits on
// the network; when a mirror fails the local cart is reconciled against
// the server copy and an alert is raised.
type Manager struct {
	mu         sync.Mutex
	cart       domain.Cart
	api        cartout.API
	telegramID int64
	run        func(func())
	notify     func(string)
	onChange   func(dto.CartOutput)
	log        *zap.Logger
}

func NewManager(api cartout.API, telegramID int64, notify func(string), log *zap.Logger) *Manager {
	return &Manager{
		api:        api,
		telegramID: telegramID,
		run:        func(op func()) { go op() },
		notify:     notify,
		log:        log,
	}
}

// SetRunner overrides how mirror operations are scheduled. Tests use a
// synchronous runner.
func (m *Manager) SetRunner(run func(func())) { m.run = run }

// SetOnChange registers a listener for cart state replaced outside the
// request path, i.e. after a reconcile. The TUI maps it to a refresh
// message so the views follow the corrected state.
func (m *Manager) SetOnChange(fn func(dto.CartOutput)) { m.onChange = fn }

func (m *Manager) Load(ctx context.Context) (dto.CartOutput, error) {
	cart, err := m.api.Fetch(ctx, m.telegramID)
	if err != nil {
		return dto.CartOutput{}, err
	}
	m.mu.Lock()
	m.cart = cart
	out := m.snapshotLocked()
	m.mu.Unlock()
	return out, nil
}

func (m *Manager) Add(ctx context.Context, in dto.LineInput) (dto.CartOutput, error) {
	line := domain.Line{
		Article:      in.Article,
		Brand:        in.Brand,
		Description:  in.Description,
		Supplier:     in.Supplier,
		Price:        in.Price,
		DeliveryDays: in.DeliveryDays,
		Quantity:     in.Quantity,
	}
	m.mu.Lock()
	if err := m.cart.Add(line); err != nil {
		m.mu.Unlock()
		return dto.CartOutput{}, err
	}
	out := m.snapshotLocked()
	m.mu.Unlock()

	m.mirror("add "+line.Article, func(ctx context.Context) error {
		return m.api.Add(ctx, m.telegramID, line)
	})
	return out, nil
}

func (m *Manager) UpdateQuantity(ctx context.Context, article string, quantity int) (dto.CartOutput, error) {
	m.mu.Lock()
	if err := m.cart.SetQuantity(article, quantity); err != nil {
		m.mu.Unlock()
		return dto.CartOutput{}, err
	}
	out := m.snapshotLocked()
	m.mu.Unlock()

	m.mirror("update "+article, func(ctx context.Context) error {
		return m.api.Update(ctx, m.telegramID, article, quantity)
	})
	return out, nil
}

func (m *Manager) Remove(ctx context.Context, article string, confirmed bool) (dto.CartOutput, error) {
	if !confirmed {
		return dto.CartOutput{}, apperrors.ErrInvalidInput
	}
	m.mu.Lock()
	if err := m.cart.Remove(article); err != nil {
		m.mu.Unlock()
		return dto.CartOutput{}, err
	}
	out := m.snapshotLocked()
	m.mu.Unlock()

	m.mirror("remove "+article, func(ctx context.Context) error {
		return m.api.Remove(ctx, m.telegramID, article)
	})
	return out, nil
}

// Clear drops the local cart. Used after checkout, where the backend
// empties the server copy itself.
func (m *Manager) Clear() {
	m.mu.Lock()
	m.cart = domain.Cart{}
	m.mu.Unlock()
}

// Empty reports whether the cart has no lines.
func (m *Manager) Empty() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.cart.Lines) == 0
}

func (m *Manager) Snapshot() dto.CartOutput {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshotLocked()
}

// mirror runs the backend call off the UI path. The mirror context is
// independent of the triggering request so leaving a screen does not
// abort an already-applied mutation.
func (m *Manager) mirror(op string, call func(context.Context) error) {
	m.run(func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()
		err := call(ctx)
		if err == nil {
			return
		}
		m.log.Warn("cart sync failed, reconciling with server", zap.String("op", op), zap.Error(err))
		m.reconcile()
	})
}

// reconcile replaces the local cart with the server copy after a failed
// mirror. Restoring a pre-mutation snapshot instead would also erase any
// later mutation whose own mirror already landed, so the server state is
// the only safe source. A failed fetch leaves the local cart alone.
func (m *Manager) reconcile() {
	ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
	defer cancel()
	cart, err := m.api.Fetch(ctx, m.telegramID)
	if err != nil {
		m.log.Warn("cart reconcile fetch failed", zap.Error(err))
		if m.notify != nil {
			m.notify("Could not sync your cart, it may be out of date.")
		}
		return
	}
	m.mu.Lock()
	m.cart = cart
	out := m.snapshotLocked()
	m.mu.Unlock()
	if m.onChange != nil {
		m.onChange(out)
	}
	if m.notify != nil {
		m.notify("Could not sync your cart, the last change was undone.")
	}
}

func (m *Manager) snapshotLocked() dto.CartOutput {
	out := dto.CartOutput{
		Lines: make([]dto.LineOutput, 0, len(m.cart.Lines)),
		Total: m.cart.Total(),
		Count: m.cart.Count(),
	}
	for _, line := range m.cart.Lines {
		out.Lines = append(out.Lines, dto.LineOutput{
			Article:      line.Article,
			Brand:        line.Brand,
			Description:  line.Description,
			Supplier:     line.Supplier,
			Price:        line.Price,
			DeliveryDays: line.DeliveryDays,
			Quantity:     line.Quantity,
			Subtotal:     line.Subtotal(),
		})
	}
	return out
}
