package service

import (
	"context"

	"go.uber.org/zap"

	"partshub/internal/modules/garage/domain"
	garageout "partshub/internal/modules/garage/port/out"
	"partshub/internal/platform/clock"
	apperrors "partshub/internal/platform/errors"
)

// Service validates garage mutations before they reach the backend and
// answers diagnosis requests with a cache, the backend AI and a local
// decoder fallback, in that order.
type Service struct {
	api        garageout.API
	decoder    garageout.Decoder
	cache      garageout.DiagnosisCache
	telegramID int64
	clock      clock.Clock
	log        *zap.Logger
}

func New(api garageout.API, decoder garageout.Decoder, cache garageout.DiagnosisCache, telegramID int64, clk clock.Clock, log *zap.Logger) *Service {
	return &Service{api: api, decoder: decoder, cache: cache, telegramID: telegramID, clock: clk, log: log}
}

func (s *Service) ListVehicles(ctx context.Context) ([]domain.Vehicle, error) {
	return s.api.ListVehicles(ctx, s.telegramID)
}

func (s *Service) AddVehicle(ctx context.Context, vehicle domain.Vehicle) (domain.Vehicle, error) {
	if err := vehicle.Validate(); err != nil {
		return domain.Vehicle{}, err
	}
	id, err := s.api.AddVehicle(ctx, s.telegramID, vehicle)
	if err != nil {
		return domain.Vehicle{}, err
	}
	vehicle.ID = id
	return vehicle, nil
}

func (s *Service) GetVehicle(ctx context.Context, vehicleID string) (domain.Vehicle, error) {
	if vehicleID == "" {
		return domain.Vehicle{}, apperrors.ErrInvalidInput
	}
	return s.api.GetVehicle(ctx, vehicleID)
}

func (s *Service) UpdateVehicle(ctx context.Context, vehicleID string, vehicle domain.Vehicle) (domain.Vehicle, error) {
	if vehicleID == "" {
		return domain.Vehicle{}, apperrors.ErrInvalidInput
	}
	if err := vehicle.Validate(); err != nil {
		return domain.Vehicle{}, err
	}
	if err := s.api.UpdateVehicle(ctx, vehicleID, vehicle); err != nil {
		return domain.Vehicle{}, err
	}
	vehicle.ID = vehicleID
	return vehicle, nil
}

func (s *Service) RemoveVehicle(ctx context.Context, vehicleID string, confirmed bool) error {
	if !confirmed {
		return apperrors.ErrInvalidInput
	}
	if vehicleID == "" {
		return apperrors.ErrInvalidInput
	}
	return s.api.DeleteVehicle(ctx, vehicleID)
}

func (s *Service) ServiceHistory(ctx context.Context, vehicleID string) ([]domain.ServiceRecord, error) {
	return s.api.ListServiceRecords(ctx, vehicleID)
}

func (s *Service) AddServiceRecord(ctx context.Context, record domain.ServiceRecord) (domain.ServiceRecord, error) {
	if record.VehicleID == "" {
		return domain.ServiceRecord{}, apperrors.ErrInvalidInput
	}
	if err := record.Validate(); err != nil {
		return domain.ServiceRecord{}, err
	}
	if record.Date.IsZero() {
		record.Date = s.clock.Now()
	}
	id, err := s.api.AddServiceRecord(ctx, s.telegramID, record)
	if err != nil {
		return domain.ServiceRecord{}, err
	}
	record.ID = id
	return record, nil
}

func (s *Service) UpdateServiceRecord(ctx context.Context, recordID string, record domain.ServiceRecord) error {
	if recordID == "" {
		return apperrors.ErrInvalidInput
	}
	if err := record.Validate(); err != nil {
		return err
	}
	return s.api.UpdateServiceRecord(ctx, recordID, record)
}

func (s *Service) RemoveServiceRecord(ctx context.Context, recordID string, confirmed bool) error {
	if !confirmed || recordID == "" {
		return apperrors.ErrInvalidInput
	}
	return s.api.DeleteServiceRecord(ctx, recordID)
}

func (s *Service) Journal(ctx context.Context, vehicleID string) ([]domain.LogEntry, error) {
	return s.api.ListLogEntries(ctx, vehicleID)
}

func (s *Service) AddLogEntry(ctx context.Context, entry domain.LogEntry) (domain.LogEntry, error) {
	if entry.VehicleID == "" {
		return domain.LogEntry{}, apperrors.ErrInvalidInput
	}
	if err := entry.Validate(); err != nil {
		return domain.LogEntry{}, err
	}
	if entry.Date.IsZero() {
		entry.Date = s.clock.Now()
	}
	id, err := s.api.AddLogEntry(ctx, s.telegramID, entry)
	if err != nil {
		return domain.LogEntry{}, err
	}
	entry.ID = id
	return entry, nil
}

func (s *Service) UpdateLogEntry(ctx context.Context, entryID string, entry domain.LogEntry) error {
	if entryID == "" {
		return apperrors.ErrInvalidInput
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	return s.api.UpdateLogEntry(ctx, entryID, entry)
}

func (s *Service) RemoveLogEntry(ctx context.Context, entryID string, confirmed bool) error {
	if !confirmed || entryID == "" {
		return apperrors.ErrInvalidInput
	}
	return s.api.DeleteLogEntry(ctx, entryID)
}

func (s *Service) Reminders(ctx context.Context, vehicleID string) ([]domain.Reminder, error) {
	return s.api.ListReminders(ctx, vehicleID)
}

func (s *Service) AddReminder(ctx context.Context, reminder domain.Reminder) (domain.Reminder, error) {
	if reminder.VehicleID == "" {
		return domain.Reminder{}, apperrors.ErrInvalidInput
	}
	if err := reminder.Validate(); err != nil {
		return domain.Reminder{}, err
	}
	id, err := s.api.AddReminder(ctx, s.telegramID, reminder)
	if err != nil {
		return domain.Reminder{}, err
	}
	reminder.ID = id
	return reminder, nil
}

func (s *Service) CompleteReminder(ctx context.Context, reminderID string) error {
	if reminderID == "" {
		return apperrors.ErrInvalidInput
	}
	return s.api.CompleteReminder(ctx, reminderID)
}

func (s *Service) RemoveReminder(ctx context.Context, reminderID string, confirmed bool) error {
	if !confirmed || reminderID == "" {
		return apperrors.ErrInvalidInput
	}
	return s.api.DeleteReminder(ctx, reminderID)
}

func (s *Service) Expenses(ctx context.Context, vehicleID, period string) (domain.ExpenseSummary, error) {
	if vehicleID == "" {
		return domain.ExpenseSummary{}, apperrors.ErrInvalidInput
	}
	switch period {
	case "", "all":
		period = "all"
	case "month", "3months", "year":
	default:
		return domain.ExpenseSummary{}, apperrors.ErrInvalidInput
	}
	return s.api.Expenses(ctx, vehicleID, period)
}

// Diagnose resolves a trouble code. Cached answers win; otherwise the
// backend AI is asked, and when it is unreachable a local decoder plugin
// gives an offline answer. Successful lookups land in the cache.
func (s *Service) Diagnose(ctx context.Context, vehicleID, rawCode string) (domain.Diagnosis, bool, bool, error) {
	code, err := domain.NormalizeOBDCode(rawCode)
	if err != nil {
		return domain.Diagnosis{}, false, false, err
	}
	vehicle, err := s.api.GetVehicle(ctx, vehicleID)
	if err != nil {
		return domain.Diagnosis{}, false, false, err
	}
	label := vehicle.Label()

	if s.cache != nil {
		if cached, ok, err := s.cache.Get(ctx, label, code); err != nil {
			s.log.Warn("diagnosis cache read failed", zap.Error(err))
		} else if ok {
			return cached, true, false, nil
		}
	}

	diagnosis, apiErr := s.api.Diagnose(ctx, s.telegramID, vehicleID, code)
	if apiErr == nil {
		s.store(ctx, label, code, diagnosis)
		return diagnosis, false, false, nil
	}
	s.log.Warn("remote diagnosis failed, trying local decoder", zap.String("code", code), zap.Error(apiErr))

	if s.decoder == nil {
		return domain.Diagnosis{}, false, false, apiErr
	}
	diagnosis, err = s.decoder.Decode(ctx, code, label)
	if err != nil {
		return domain.Diagnosis{}, false, false, apiErr
	}
	s.store(ctx, label, code, diagnosis)
	return diagnosis, false, true, nil
}

func (s *Service) store(ctx context.Context, vehicle, code string, diagnosis domain.Diagnosis) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Put(ctx, vehicle, code, diagnosis); err != nil {
		s.log.Warn("diagnosis cache write failed", zap.Error(err))
	}
}
