package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"partshub/internal/modules/cart/domain"
	"partshub/internal/modules/cart/dto"
	apperrors "partshub/internal/platform/errors"
)

// fakeAPI keeps its own cart in fetched so a reconcile fetch returns
// whatever the successful mirrors actually left on the server side.
type fakeAPI struct {
	fetched     domain.Cart
	fetchErr    error
	addErr      error
	failArticle string
	updateErr   error
	removeErr   error
	calls       []string
}

func (a *fakeAPI) Fetch(_ context.Context, _ int64) (domain.Cart, error) {
	a.calls = append(a.calls, "fetch")
	return a.fetched, a.fetchErr
}

func (a *fakeAPI) Add(_ context.Context, _ int64, line domain.Line) error {
	a.calls = append(a.calls, "add "+line.Article)
	if a.addErr != nil {
		return a.addErr
	}
	if line.Article == a.failArticle {
		return errors.New("rejected " + line.Article)
	}
	a.fetched.Add(line)
	return nil
}

func (a *fakeAPI) Update(_ context.Context, _ int64, article string, qty int) error {
	a.calls = append(a.calls, "update "+article)
	if a.updateErr != nil {
		return a.updateErr
	}
	a.fetched.SetQuantity(article, qty)
	return nil
}

func (a *fakeAPI) Remove(_ context.Context, _ int64, article string) error {
	a.calls = append(a.calls, "remove "+article)
	if a.removeErr != nil {
		return a.removeErr
	}
	a.fetched.Remove(article)
	return nil
}

func newTestManager(api *fakeAPI, notify func(string)) *Manager {
	m := NewManager(api, 42, notify, zap.NewNop())
	m.SetRunner(func(op func()) { op() })
	return m
}

func line(article string, price float64, qty int) dto.LineInput {
	return dto.LineInput{Article: article, Brand: "Bosch", Supplier: "emex", Price: price, Quantity: qty}
}

func TestAddAppliesLocallyAndMirrors(t *testing.T) {
	api := &fakeAPI{}
	m := newTestManager(api, nil)

	out, err := m.Add(context.Background(), line("0986AB1234", 30, 2))
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out.Count != 2 || out.Total != 60 {
		t.Fatalf("snapshot = %+v", out)
	}
	if len(api.calls) != 1 || api.calls[0] != "add 0986AB1234" {
		t.Fatalf("calls = %v", api.calls)
	}
}

func TestFailedMirrorReconcilesAndAlerts(t *testing.T) {
	api := &fakeAPI{addErr: errors.New("boom")}
	var alerts []string
	m := newTestManager(api, func(msg string) { alerts = append(alerts, msg) })

	m.Add(context.Background(), line("0986AB1234", 30, 2))

	snap := m.Snapshot()
	if snap.Count != 0 || len(snap.Lines) != 0 {
		t.Fatalf("cart not reconciled: %+v", snap)
	}
	if len(api.calls) != 2 || api.calls[1] != "fetch" {
		t.Fatalf("calls = %v, want a fetch after the failed add", api.calls)
	}
	if len(alerts) != 1 {
		t.Fatalf("alerts = %v, want one", alerts)
	}
}

func TestFailedMirrorKeepsLaterSyncedChanges(t *testing.T) {
	api := &fakeAPI{failArticle: "REJECT-1"}
	m := newTestManager(api, func(string) {})

	var mirrors []func()
	m.SetRunner(func(op func()) { mirrors = append(mirrors, op) })
	m.Add(context.Background(), line("REJECT-1", 30, 2))
	m.Add(context.Background(), line("0986AB1234", 15, 1))

	// The second add reaches the backend before the first one fails.
	mirrors[1]()
	mirrors[0]()

	snap := m.Snapshot()
	if len(snap.Lines) != 1 || snap.Lines[0].Article != "0986AB1234" {
		t.Fatalf("lines = %+v, want only the synced add to survive", snap.Lines)
	}
}

func TestReconcilePushesServerSnapshot(t *testing.T) {
	api := &fakeAPI{addErr: errors.New("boom")}
	m := newTestManager(api, func(string) {})
	var pushed []dto.CartOutput
	m.SetOnChange(func(out dto.CartOutput) { pushed = append(pushed, out) })

	m.Add(context.Background(), line("0986AB1234", 30, 2))

	if len(pushed) != 1 {
		t.Fatalf("pushed %d snapshots, want one", len(pushed))
	}
	if pushed[0].Count != 0 || len(pushed[0].Lines) != 0 {
		t.Fatalf("pushed snapshot = %+v, want the server cart", pushed[0])
	}
}

func TestReconcileFetchFailureKeepsLocalCart(t *testing.T) {
	api := &fakeAPI{updateErr: errors.New("boom"), fetchErr: errors.New("down")}
	var alerts []string
	m := newTestManager(api, func(msg string) { alerts = append(alerts, msg) })
	m.Add(context.Background(), line("0986AB1234", 30, 2))

	m.UpdateQuantity(context.Background(), "0986AB1234", 9)

	snap := m.Snapshot()
	if snap.Lines[0].Quantity != 9 {
		t.Fatalf("quantity = %d, want the local value kept", snap.Lines[0].Quantity)
	}
	if len(alerts) != 1 {
		t.Fatalf("alerts = %v, want one", alerts)
	}
}

func TestFailedUpdateRestoresPreviousQuantity(t *testing.T) {
	api := &fakeAPI{}
	m := newTestManager(api, func(string) {})
	m.Add(context.Background(), line("0986AB1234", 30, 2))

	api.updateErr = errors.New("boom")
	m.UpdateQuantity(context.Background(), "0986AB1234", 9)

	snap := m.Snapshot()
	if snap.Lines[0].Quantity != 2 {
		t.Fatalf("quantity = %d, want rollback to 2", snap.Lines[0].Quantity)
	}
}

func TestUpdateUnknownArticleSkipsMirror(t *testing.T) {
	api := &fakeAPI{}
	m := newTestManager(api, nil)

	_, err := m.UpdateQuantity(context.Background(), "GHOST-1", 3)
	if !errors.Is(err, apperrors.ErrNotFound) {
		t.Fatalf("err = %v, want not found", err)
	}
	if len(api.calls) != 0 {
		t.Fatalf("no backend call expected, got %v", api.calls)
	}
}

func TestRemoveRequiresConfirmation(t *testing.T) {
	api := &fakeAPI{}
	m := newTestManager(api, nil)
	m.Add(context.Background(), line("0986AB1234", 30, 1))
	api.calls = nil

	_, err := m.Remove(context.Background(), "0986AB1234", false)
	if !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
	if got := m.Snapshot(); len(got.Lines) != 1 {
		t.Fatal("unconfirmed remove must not change the cart")
	}
	if len(api.calls) != 0 {
		t.Fatalf("unconfirmed remove must not reach the backend, got %v", api.calls)
	}

	out, err := m.Remove(context.Background(), "0986AB1234", true)
	if err != nil {
		t.Fatalf("confirmed remove: %v", err)
	}
	if len(out.Lines) != 0 {
		t.Fatalf("lines = %+v, want empty", out.Lines)
	}
	if len(api.calls) != 1 || api.calls[0] != "remove 0986AB1234" {
		t.Fatalf("calls = %v", api.calls)
	}
}

func TestLoadReplacesLocalCart(t *testing.T) {
	api := &fakeAPI{}
	m := newTestManager(api, nil)
	m.Add(context.Background(), line("LOCAL-1", 5, 1))

	api.fetched = domain.Cart{Lines: []domain.Line{{Article: "SRV-9", Price: 12, Quantity: 3}}}
	out, err := m.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Lines) != 1 || out.Lines[0].Article != "SRV-9" || out.Total != 36 {
		t.Fatalf("snapshot = %+v", out)
	}
}
