package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"
)

type fakeSink struct {
	alerts   []string
	confirms []string
	answer   bool
}

func (s *fakeSink) ShowAlert(message string, onDismiss func()) {
	s.alerts = append(s.alerts, message)
	if onDismiss != nil {
		onDismiss()
	}
}

func (s *fakeSink) ShowConfirm(message string, onResult func(bool)) {
	s.confirms = append(s.confirms, message)
	onResult(s.answer)
}

type fakeMirror struct {
	mu    sync.Mutex
	sent  []string
	chats []int64
	done  chan struct{}
}

func newFakeMirror() *fakeMirror { return &fakeMirror{done: make(chan struct{}, 8)} }

func (m *fakeMirror) Send(_ context.Context, chatID int64, text string) error {
	m.mu.Lock()
	m.sent = append(m.sent, text)
	m.chats = append(m.chats, chatID)
	m.mu.Unlock()
	m.done <- struct{}{}
	return nil
}

const sampleInitData = "auth_date=1700000000&query_id=AAH&user=%7B%22id%22%3A42%2C%22username%22%3A%22vasya%22%2C%22first_name%22%3A%22Vasya%22%7D&hash=deadbeef"

func TestStandaloneBridgeUsesPreviewIdentity(t *testing.T) {
	bridge := NewHostBridge("", "", nil, zap.NewNop())

	if bridge.Present() {
		t.Fatal("bridge should not report a host without launch data")
	}
	id := bridge.Identity()
	if id.TelegramID != 123456789 || id.Username != "testuser" {
		t.Fatalf("unexpected preview identity: %+v", id)
	}
	if bridge.BackButton().Visible() {
		t.Fatal("standalone back button should stay hidden")
	}
	bridge.BackButton().Show()
	if bridge.BackButton().Visible() {
		t.Fatal("standalone back button must ignore Show")
	}
}

func TestHostBridgeParsesIdentity(t *testing.T) {
	bridge := NewHostBridge(sampleInitData, "", nil, zap.NewNop())

	if !bridge.Present() {
		t.Fatal("bridge should report a host when launch data is supplied")
	}
	id := bridge.Identity()
	if id.TelegramID != 42 || id.Username != "vasya" || id.Name != "Vasya" {
		t.Fatalf("unexpected identity: %+v", id)
	}
}

func TestHostBridgeMalformedDataFallsBack(t *testing.T) {
	bridge := NewHostBridge("auth_date=1700000000&hash=deadbeef", "", nil, zap.NewNop())

	if !bridge.Present() {
		t.Fatal("presence follows launch data, not parse success")
	}
	if bridge.Identity().TelegramID != 123456789 {
		t.Fatal("expected preview identity after parse failure")
	}
}

func TestAlertReachesSinkAndMirror(t *testing.T) {
	sink := &fakeSink{}
	mirror := newFakeMirror()
	bridge := NewHostBridge(sampleInitData, "", mirror, zap.NewNop())
	bridge.SetDialogSink(sink)

	dismissed := false
	bridge.Alert("order placed", func() { dismissed = true })

	if len(sink.alerts) != 1 || sink.alerts[0] != "order placed" {
		t.Fatalf("sink alerts = %v", sink.alerts)
	}
	if !dismissed {
		t.Fatal("dismiss callback not invoked")
	}
	select {
	case <-mirror.done:
	case <-time.After(2 * time.Second):
		t.Fatal("mirror send never happened")
	}
	mirror.mu.Lock()
	defer mirror.mu.Unlock()
	if mirror.chats[0] != 42 || mirror.sent[0] != "order placed" {
		t.Fatalf("mirror got chat=%d text=%q", mirror.chats[0], mirror.sent[0])
	}
}

func TestStandaloneAlertSkipsMirror(t *testing.T) {
	mirror := newFakeMirror()
	bridge := NewHostBridge("", "", mirror, zap.NewNop())
	bridge.SetDialogSink(&fakeSink{})

	bridge.Alert("hello", nil)

	select {
	case <-mirror.done:
		t.Fatal("standalone alerts must not reach the chat")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestConfirmDefaultsToNoWithoutSink(t *testing.T) {
	bridge := NewHostBridge("", "", nil, zap.NewNop())

	got := true
	bridge.Confirm("delete vehicle?", func(ok bool) { got = ok })
	if got {
		t.Fatal("confirm without a sink must answer no")
	}

	sink := &fakeSink{answer: true}
	bridge.SetDialogSink(sink)
	bridge.Confirm("delete vehicle?", func(ok bool) { got = ok })
	if !got {
		t.Fatal("confirm should relay the sink's answer")
	}
}

func TestHostBackButtonClick(t *testing.T) {
	bridge := NewHostBridge(sampleInitData, "", nil, zap.NewNop())
	back := bridge.BackButton()

	clicks := 0
	back.OnClick(func() { clicks++ })

	back.Click()
	if clicks != 0 {
		t.Fatal("hidden button must ignore clicks")
	}

	back.Show()
	if !back.Visible() {
		t.Fatal("Show should make the button visible")
	}
	back.Click()
	if clicks != 1 {
		t.Fatalf("clicks = %d, want 1", clicks)
	}

	back.Hide()
	back.Click()
	if clicks != 1 {
		t.Fatal("Hide should disarm the button")
	}
}
