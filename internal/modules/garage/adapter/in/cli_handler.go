package in

import (
	"context"
	"time"

	"partshub/internal/modules/garage/dto"
	garagein "partshub/internal/modules/garage/port/in"
)

type CLIHandler struct {
	usecase garagein.Usecase
}

func NewCLIHandler(usecase garagein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListVehicles(ctx context.Context) ([]dto.VehicleOutput, error) {
	return h.usecase.ListVehicles(ctx)
}

func (h CLIHandler) AddVehicle(ctx context.Context, make, model string, year, mileage int, vin, plate string) (dto.VehicleOutput, error) {
	return h.usecase.AddVehicle(ctx, dto.VehicleInput{
		Make:         make,
		Model:        model,
		Year:         year,
		Mileage:      mileage,
		VIN:          vin,
		LicensePlate: plate,
	})
}

func (h CLIHandler) RemoveVehicle(ctx context.Context, vehicleID string, confirmed bool) error {
	return h.usecase.RemoveVehicle(ctx, vehicleID, confirmed)
}

func (h CLIHandler) ServiceHistory(ctx context.Context, vehicleID string) ([]dto.ServiceRecordOutput, error) {
	return h.usecase.ServiceHistory(ctx, vehicleID)
}

func (h CLIHandler) AddServiceRecord(ctx context.Context, vehicleID, serviceType, title string, mileage int, cost float64, date time.Time) (dto.ServiceRecordOutput, error) {
	return h.usecase.AddServiceRecord(ctx, dto.ServiceRecordInput{
		VehicleID: vehicleID,
		Type:      serviceType,
		Title:     title,
		Mileage:   mileage,
		Cost:      cost,
		Date:      date,
	})
}

func (h CLIHandler) Journal(ctx context.Context, vehicleID string) ([]dto.LogEntryOutput, error) {
	return h.usecase.Journal(ctx, vehicleID)
}

func (h CLIHandler) AddLogEntry(ctx context.Context, in dto.LogEntryInput) (dto.LogEntryOutput, error) {
	return h.usecase.AddLogEntry(ctx, in)
}

func (h CLIHandler) Reminders(ctx context.Context, vehicleID string) ([]dto.ReminderOutput, error) {
	return h.usecase.Reminders(ctx, vehicleID)
}

func (h CLIHandler) AddReminder(ctx context.Context, in dto.ReminderInput) (dto.ReminderOutput, error) {
	return h.usecase.AddReminder(ctx, in)
}

func (h CLIHandler) CompleteReminder(ctx context.Context, reminderID string) error {
	return h.usecase.CompleteReminder(ctx, reminderID)
}

func (h CLIHandler) Expenses(ctx context.Context, vehicleID, period string) (dto.ExpenseSummaryOutput, error) {
	return h.usecase.Expenses(ctx, vehicleID, period)
}

func (h CLIHandler) Diagnose(ctx context.Context, vehicleID, code string) (dto.DiagnosisOutput, error) {
	return h.usecase.Diagnose(ctx, vehicleID, code)
}
