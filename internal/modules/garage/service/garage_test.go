package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"partshub/internal/modules/garage/domain"
	"partshub/internal/platform/clock"
	apperrors "partshub/internal/platform/errors"
)

type fakeGarageAPI struct {
	vehicles  []domain.Vehicle
	vehicle   domain.Vehicle
	diagnosis domain.Diagnosis
	diagErr   error
	deleted   []string
	diagCalls int
	addedID   string
}

func (a *fakeGarageAPI) ListVehicles(_ context.Context, _ int64) ([]domain.Vehicle, error) {
	return a.vehicles, nil
}

func (a *fakeGarageAPI) AddVehicle(_ context.Context, _ int64, _ domain.Vehicle) (string, error) {
	return a.addedID, nil
}

func (a *fakeGarageAPI) GetVehicle(_ context.Context, _ string) (domain.Vehicle, error) {
	return a.vehicle, nil
}

func (a *fakeGarageAPI) UpdateVehicle(_ context.Context, _ string, _ domain.Vehicle) error {
	return nil
}

func (a *fakeGarageAPI) DeleteVehicle(_ context.Context, id string) error {
	a.deleted = append(a.deleted, id)
	return nil
}

func (a *fakeGarageAPI) ListServiceRecords(_ context.Context, _ string) ([]domain.ServiceRecord, error) {
	return nil, nil
}

func (a *fakeGarageAPI) AddServiceRecord(_ context.Context, _ int64, _ domain.ServiceRecord) (string, error) {
	return a.addedID, nil
}

func (a *fakeGarageAPI) UpdateServiceRecord(_ context.Context, _ string, _ domain.ServiceRecord) error {
	return nil
}

func (a *fakeGarageAPI) DeleteServiceRecord(_ context.Context, id string) error {
	a.deleted = append(a.deleted, id)
	return nil
}

func (a *fakeGarageAPI) ListLogEntries(_ context.Context, _ string) ([]domain.LogEntry, error) {
	return nil, nil
}

func (a *fakeGarageAPI) AddLogEntry(_ context.Context, _ int64, _ domain.LogEntry) (string, error) {
	return a.addedID, nil
}

func (a *fakeGarageAPI) UpdateLogEntry(_ context.Context, _ string, _ domain.LogEntry) error {
	return nil
}

func (a *fakeGarageAPI) DeleteLogEntry(_ context.Context, id string) error {
	a.deleted = append(a.deleted, id)
	return nil
}

func (a *fakeGarageAPI) ListReminders(_ context.Context, _ string) ([]domain.Reminder, error) {
	return nil, nil
}

func (a *fakeGarageAPI) AddReminder(_ context.Context, _ int64, _ domain.Reminder) (string, error) {
	return a.addedID, nil
}

func (a *fakeGarageAPI) CompleteReminder(_ context.Context, _ string) error { return nil }

func (a *fakeGarageAPI) DeleteReminder(_ context.Context, id string) error {
	a.deleted = append(a.deleted, id)
	return nil
}

func (a *fakeGarageAPI) Expenses(_ context.Context, _, period string) (domain.ExpenseSummary, error) {
	return domain.ExpenseSummary{Period: period}, nil
}

func (a *fakeGarageAPI) Diagnose(_ context.Context, _ int64, _, _ string) (domain.Diagnosis, error) {
	a.diagCalls++
	return a.diagnosis, a.diagErr
}

type fakeDecoder struct {
	diagnosis domain.Diagnosis
	err       error
	calls     int
}

func (d *fakeDecoder) Decode(_ context.Context, code, vehicle string) (domain.Diagnosis, error) {
	d.calls++
	d.diagnosis.Code = code
	d.diagnosis.Vehicle = vehicle
	return d.diagnosis, d.err
}

type memCache struct {
	store map[string]domain.Diagnosis
}

func newMemCache() *memCache { return &memCache{store: map[string]domain.Diagnosis{}} }

func (c *memCache) Get(_ context.Context, vehicle, code string) (domain.Diagnosis, bool, error) {
	d, ok := c.store[vehicle+"|"+code]
	return d, ok, nil
}

func (c *memCache) Put(_ context.Context, vehicle, code string, d domain.Diagnosis) error {
	c.store[vehicle+"|"+code] = d
	return nil
}

func newService(api *fakeGarageAPI, decoder *fakeDecoder, cache *memCache) *Service {
	s := New(api, nil, nil, 42, clock.Fixed{T: time.Unix(1700000000, 0)}, zap.NewNop())
	if decoder != nil {
		s.decoder = decoder
	}
	if cache != nil {
		s.cache = cache
	}
	return s
}

func TestAddVehicleValidates(t *testing.T) {
	api := &fakeGarageAPI{addedID: "veh-1"}
	s := newService(api, nil, nil)

	if _, err := s.AddVehicle(context.Background(), domain.Vehicle{Make: "Toyota"}); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}

	v, err := s.AddVehicle(context.Background(), domain.Vehicle{Make: "Toyota", Model: "Camry", Year: 2018})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if v.ID != "veh-1" {
		t.Fatalf("id = %q", v.ID)
	}
}

func TestRemoveVehicleRequiresConfirmation(t *testing.T) {
	api := &fakeGarageAPI{}
	s := newService(api, nil, nil)

	if err := s.RemoveVehicle(context.Background(), "veh-1", false); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
	if len(api.deleted) != 0 {
		t.Fatal("unconfirmed delete must not reach the backend")
	}

	if err := s.RemoveVehicle(context.Background(), "veh-1", true); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != "veh-1" {
		t.Fatalf("deleted = %v", api.deleted)
	}
}

func TestAddServiceRecordDefaultsDate(t *testing.T) {
	api := &fakeGarageAPI{addedID: "rec-1"}
	s := newService(api, nil, nil)

	rec, err := s.AddServiceRecord(context.Background(), domain.ServiceRecord{
		VehicleID: "veh-1",
		Type:      domain.ServiceOilChange,
		Title:     "Oil and filter",
		Mileage:   95000,
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if !rec.Date.Equal(time.Unix(1700000000, 0)) {
		t.Fatalf("date = %v, want clock time", rec.Date)
	}
}

func TestExpensesRejectsUnknownPeriod(t *testing.T) {
	s := newService(&fakeGarageAPI{}, nil, nil)

	if _, err := s.Expenses(context.Background(), "veh-1", "decade"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}

	summary, err := s.Expenses(context.Background(), "veh-1", "")
	if err != nil {
		t.Fatalf("expenses: %v", err)
	}
	if summary.Period != "all" {
		t.Fatalf("period = %q, want all", summary.Period)
	}
}

func TestDiagnoseUsesCacheFirst(t *testing.T) {
	api := &fakeGarageAPI{vehicle: domain.Vehicle{Make: "Toyota", Model: "Camry", Year: 2018}}
	cache := newMemCache()
	cache.Put(context.Background(), "2018 Toyota Camry", "P0301", domain.Diagnosis{Code: "P0301", Summary: "Misfire"})
	s := newService(api, nil, cache)

	diagnosis, cached, offline, err := s.Diagnose(context.Background(), "veh-1", "p0301")
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if !cached || offline {
		t.Fatalf("cached = %v offline = %v", cached, offline)
	}
	if diagnosis.Summary != "Misfire" {
		t.Fatalf("diagnosis = %+v", diagnosis)
	}
	if api.diagCalls != 0 {
		t.Fatal("cache hit must skip the backend")
	}
}

func TestDiagnoseFallsBackToLocalDecoder(t *testing.T) {
	api := &fakeGarageAPI{
		vehicle: domain.Vehicle{Make: "Toyota", Model: "Camry", Year: 2018},
		diagErr: errors.New("backend down"),
	}
	decoder := &fakeDecoder{diagnosis: domain.Diagnosis{Summary: "Cylinder 1 misfire"}}
	cache := newMemCache()
	s := newService(api, decoder, cache)

	diagnosis, cached, offline, err := s.Diagnose(context.Background(), "veh-1", "P0301")
	if err != nil {
		t.Fatalf("diagnose: %v", err)
	}
	if cached || !offline {
		t.Fatalf("cached = %v offline = %v", cached, offline)
	}
	if decoder.calls != 1 || diagnosis.Summary != "Cylinder 1 misfire" {
		t.Fatalf("decoder calls = %d, diagnosis = %+v", decoder.calls, diagnosis)
	}
	if _, ok, _ := cache.Get(context.Background(), "2018 Toyota Camry", "P0301"); !ok {
		t.Fatal("offline diagnosis should be cached")
	}
}

func TestDiagnoseRejectsBadCode(t *testing.T) {
	s := newService(&fakeGarageAPI{}, nil, nil)
	if _, _, _, err := s.Diagnose(context.Background(), "veh-1", "NOPE"); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}
}

func TestDiagnoseSurfacesAPIErrorWithoutDecoder(t *testing.T) {
	api := &fakeGarageAPI{
		vehicle: domain.Vehicle{Make: "Toyota", Model: "Camry", Year: 2018},
		diagErr: errors.New("backend down"),
	}
	s := newService(api, nil, nil)

	if _, _, _, err := s.Diagnose(context.Background(), "veh-1", "P0301"); err == nil {
		t.Fatal("expected backend error to surface")
	}
}
