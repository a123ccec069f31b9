package in

import (
	"context"

	"partshub/internal/modules/garage/dto"
)

type Usecase interface {
	ListVehicles(ctx context.Context) ([]dto.VehicleOutput, error)
	AddVehicle(ctx context.Context, in dto.VehicleInput) (dto.VehicleOutput, error)
	GetVehicle(ctx context.Context, vehicleID string) (dto.VehicleOutput, error)
	UpdateVehicle(ctx context.Context, vehicleID string, in dto.VehicleInput) (dto.VehicleOutput, error)
	RemoveVehicle(ctx context.Context, vehicleID string, confirmed bool) error

	ServiceHistory(ctx context.Context, vehicleID string) ([]dto.ServiceRecordOutput, error)
	AddServiceRecord(ctx context.Context, in dto.ServiceRecordInput) (dto.ServiceRecordOutput, error)
	UpdateServiceRecord(ctx context.Context, recordID string, in dto.ServiceRecordInput) error
	RemoveServiceRecord(ctx context.Context, recordID string, confirmed bool) error

	Journal(ctx context.Context, vehicleID string) ([]dto.LogEntryOutput, error)
	AddLogEntry(ctx context.Context, in dto.LogEntryInput) (dto.LogEntryOutput, error)
	UpdateLogEntry(ctx context.Context, entryID string, in dto.LogEntryInput) error
	RemoveLogEntry(ctx context.Context, entryID string, confirmed bool) error

	Reminders(ctx context.Context, vehicleID string) ([]dto.ReminderOutput, error)
	AddReminder(ctx context.Context, in dto.ReminderInput) (dto.ReminderOutput, error)
	CompleteReminder(ctx context.Context, reminderID string) error
	RemoveReminder(ctx context.Context, reminderID string, confirmed bool) error

	Expenses(ctx context.Context, vehicleID, period string) (dto.ExpenseSummaryOutput, error)
	Diagnose(ctx context.Context, vehicleID, code string) (dto.DiagnosisOutput, error)
}
