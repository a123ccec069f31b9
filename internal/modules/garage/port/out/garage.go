package out

import (
	"context"

	"partshub/internal/modules/garage/domain"
)

// API covers the backend's garage endpoints.
type API interface {
	ListVehicles(ctx context.Context, telegramID int64) ([]domain.Vehicle, error)
	AddVehicle(ctx context.Context, telegramID int64, vehicle domain.Vehicle) (string, error)
	GetVehicle(ctx context.Context, vehicleID string) (domain.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID string, vehicle domain.Vehicle) error
	DeleteVehicle(ctx context.Context, vehicleID string) error

	ListServiceRecords(ctx context.Context, vehicleID string) ([]domain.ServiceRecord, error)
	AddServiceRecord(ctx context.Context, telegramID int64, record domain.ServiceRecord) (string, error)
	UpdateServiceRecord(ctx context.Context, recordID string, record domain.ServiceRecord) error
	DeleteServiceRecord(ctx context.Context, recordID string) error

	ListLogEntries(ctx context.Context, vehicleID string) ([]domain.LogEntry, error)
	AddLogEntry(ctx context.Context, telegramID int64, entry domain.LogEntry) (string, error)
	UpdateLogEntry(ctx context.Context, entryID string, entry domain.LogEntry) error
	DeleteLogEntry(ctx context.Context, entryID string) error

	ListReminders(ctx context.Context, vehicleID string) ([]domain.Reminder, error)
	AddReminder(ctx context.Context, telegramID int64, reminder domain.Reminder) (string, error)
	CompleteReminder(ctx context.Context, reminderID string) error
	DeleteReminder(ctx context.Context, reminderID string) error

	Expenses(ctx context.Context, vehicleID, period string) (domain.ExpenseSummary, error)
	Diagnose(ctx context.Context, telegramID int64, vehicleID, code string) (domain.Diagnosis, error)
}

// Decoder resolves a trouble code locally when the backend's AI
// diagnosis is unreachable.
type Decoder interface {
	Decode(ctx context.Context, code, vehicle string) (domain.Diagnosis, error)
}

// DiagnosisCache keeps past diagnoses on the device. Entries expire,
// the store handles staleness itself.
type DiagnosisCache interface {
	Get(ctx context.Context, vehicle, code string) (domain.Diagnosis, bool, error)
	Put(ctx context.Context, vehicle, code string, diagnosis domain.Diagnosis) error
}
