package usecase

import (
	"context"

	"partshub/internal/modules/garage/domain"
	"partshub/internal/modules/garage/dto"
	"partshub/internal/modules/garage/service"
	"partshub/internal/platform/clock"
)

type Interactor struct {
	service *service.Service
	clock   clock.Clock
}

func New(svc *service.Service, clk clock.Clock) *Interactor {
	return &Interactor{service: svc, clock: clk}
}

func (i *Interactor) ListVehicles(ctx context.Context) ([]dto.VehicleOutput, error) {
	vehicles, err := i.service.ListVehicles(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.VehicleOutput, 0, len(vehicles))
	for _, v := range vehicles {
		out = append(out, vehicleOutput(v))
	}
	return out, nil
}

func (i *Interactor) AddVehicle(ctx context.Context, in dto.VehicleInput) (dto.VehicleOutput, error) {
	vehicle, err := i.service.AddVehicle(ctx, vehicleDomain(in))
	if err != nil {
		return dto.VehicleOutput{}, err
	}
	return vehicleOutput(vehicle), nil
}

func (i *Interactor) GetVehicle(ctx context.Context, vehicleID string) (dto.VehicleOutput, error) {
	vehicle, err := i.service.GetVehicle(ctx, vehicleID)
	if err != nil {
		return dto.VehicleOutput{}, err
	}
	return vehicleOutput(vehicle), nil
}

func (i *Interactor) UpdateVehicle(ctx context.Context, vehicleID string, in dto.VehicleInput) (dto.VehicleOutput, error) {
	vehicle, err := i.service.UpdateVehicle(ctx, vehicleID, vehicleDomain(in))
	if err != nil {
		return dto.VehicleOutput{}, err
	}
	return vehicleOutput(vehicle), nil
}

func (i *Interactor) RemoveVehicle(ctx context.Context, vehicleID string, confirmed bool) error {
	return i.service.RemoveVehicle(ctx, vehicleID, confirmed)
}

func (i *Interactor) ServiceHistory(ctx context.Context, vehicleID string) ([]dto.ServiceRecordOutput, error) {
	records, err := i.service.ServiceHistory(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ServiceRecordOutput, 0, len(records))
	for _, r := range records {
		out = append(out, serviceRecordOutput(r))
	}
	return out, nil
}

func (i *Interactor) AddServiceRecord(ctx context.Context, in dto.ServiceRecordInput) (dto.ServiceRecordOutput, error) {
	record, err := i.service.AddServiceRecord(ctx, serviceRecordDomain(in))
	if err != nil {
		return dto.ServiceRecordOutput{}, err
	}
	return serviceRecordOutput(record), nil
}

func (i *Interactor) UpdateServiceRecord(ctx context.Context, recordID string, in dto.ServiceRecordInput) error {
	return i.service.UpdateServiceRecord(ctx, recordID, serviceRecordDomain(in))
}

func (i *Interactor) RemoveServiceRecord(ctx context.Context, recordID string, confirmed bool) error {
	return i.service.RemoveServiceRecord(ctx, recordID, confirmed)
}

func (i *Interactor) Journal(ctx context.Context, vehicleID string) ([]dto.LogEntryOutput, error) {
	entries, err := i.service.Journal(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.LogEntryOutput, 0, len(entries))
	for _, e := range entries {
		out = append(out, logEntryOutput(e))
	}
	return out, nil
}

func (i *Interactor) AddLogEntry(ctx context.Context, in dto.LogEntryInput) (dto.LogEntryOutput, error) {
	entry, err := i.service.AddLogEntry(ctx, logEntryDomain(in))
	if err != nil {
		return dto.LogEntryOutput{}, err
	}
	return logEntryOutput(entry), nil
}

func (i *Interactor) UpdateLogEntry(ctx context.Context, entryID string, in dto.LogEntryInput) error {
	return i.service.UpdateLogEntry(ctx, entryID, logEntryDomain(in))
}

func (i *Interactor) RemoveLogEntry(ctx context.Context, entryID string, confirmed bool) error {
	return i.service.RemoveLogEntry(ctx, entryID, confirmed)
}

func (i *Interactor) Reminders(ctx context.Context, vehicleID string) ([]dto.ReminderOutput, error) {
	reminders, err := i.service.Reminders(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	// Due is computed against the vehicle's current mileage.
	mileage := 0
	if vehicle, err := i.service.GetVehicle(ctx, vehicleID); err == nil {
		mileage = vehicle.Mileage
	}
	now := i.clock.Now()
	out := make([]dto.ReminderOutput, 0, len(reminders))
	for _, r := range reminders {
		out = append(out, dto.ReminderOutput{
			ID:              r.ID,
			VehicleID:       r.VehicleID,
			Type:            string(r.Type),
			Title:           r.Title,
			Description:     r.Description,
			RemindAtDate:    r.RemindAtDate,
			RemindAtMileage: r.RemindAtMileage,
			Completed:       r.Completed,
			CompletedAt:     r.CompletedAt,
			Due:             r.Due(now, mileage),
		})
	}
	return out, nil
}

func (i *Interactor) AddReminder(ctx context.Context, in dto.ReminderInput) (dto.ReminderOutput, error) {
	reminder, err := i.service.AddReminder(ctx, domain.Reminder{
		VehicleID:       in.VehicleID,
		Type:            domain.ReminderType(in.Type),
		Title:           in.Title,
		Description:     in.Description,
		RemindAtDate:    in.RemindAtDate,
		RemindAtMileage: in.RemindAtMileage,
	})
	if err != nil {
		return dto.ReminderOutput{}, err
	}
	return dto.ReminderOutput{
		ID:              reminder.ID,
		VehicleID:       reminder.VehicleID,
		Type:            string(reminder.Type),
		Title:           reminder.Title,
		Description:     reminder.Description,
		RemindAtDate:    reminder.RemindAtDate,
		RemindAtMileage: reminder.RemindAtMileage,
	}, nil
}

func (i *Interactor) CompleteReminder(ctx context.Context, reminderID string) error {
	return i.service.CompleteReminder(ctx, reminderID)
}

func (i *Interactor) RemoveReminder(ctx context.Context, reminderID string, confirmed bool) error {
	return i.service.RemoveReminder(ctx, reminderID, confirmed)
}

func (i *Interactor) Expenses(ctx context.Context, vehicleID, period string) (dto.ExpenseSummaryOutput, error) {
	summary, err := i.service.Expenses(ctx, vehicleID, period)
	if err != nil {
		return dto.ExpenseSummaryOutput{}, err
	}
	out := dto.ExpenseSummaryOutput{
		Total:      summary.Total,
		Period:     summary.Period,
		Categories: make([]dto.ExpenseCategoryOutput, 0, len(summary.Categories)),
		Expenses:   make([]dto.ExpenseItemOutput, 0, len(summary.Expenses)),
	}
	for _, cat := range summary.Categories {
		out.Categories = append(out.Categories, dto.ExpenseCategoryOutput{
			Key:        cat.Key,
			Name:       cat.Name,
			Total:      cat.Total,
			Count:      cat.Count,
			Percentage: cat.Percentage,
		})
	}
	for _, item := range summary.Expenses {
		out.Expenses = append(out.Expenses, dto.ExpenseItemOutput{
			Date:     item.Date,
			Category: item.Category,
			Title:    item.Title,
			Amount:   item.Amount,
		})
	}
	return out, nil
}

func (i *Interactor) Diagnose(ctx context.Context, vehicleID, code string) (dto.DiagnosisOutput, error) {
	diagnosis, cached, offline, err := i.service.Diagnose(ctx, vehicleID, code)
	if err != nil {
		return dto.DiagnosisOutput{}, err
	}
	return dto.DiagnosisOutput{
		Code:               diagnosis.Code,
		Vehicle:            diagnosis.Vehicle,
		Summary:            diagnosis.Summary,
		Description:        diagnosis.Description,
		PossibleCauses:     diagnosis.PossibleCauses,
		RecommendedActions: diagnosis.RecommendedActions,
		Severity:           string(diagnosis.Severity),
		FromCache:          cached,
		Offline:            offline,
	}, nil
}

func vehicleDomain(in dto.VehicleInput) domain.Vehicle {
	return domain.Vehicle{
		Make:         in.Make,
		Model:        in.Model,
		Year:         in.Year,
		VIN:          in.VIN,
		Color:        in.Color,
		LicensePlate: in.LicensePlate,
		Mileage:      in.Mileage,
		PurchaseDate: in.PurchaseDate,
	}
}

func vehicleOutput(v domain.Vehicle) dto.VehicleOutput {
	return dto.VehicleOutput{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		VIN:          v.VIN,
		Color:        v.Color,
		LicensePlate: v.LicensePlate,
		Mileage:      v.Mileage,
		PurchaseDate: v.PurchaseDate,
		Label:        v.Label(),
	}
}

func serviceRecordDomain(in dto.ServiceRecordInput) domain.ServiceRecord {
	return domain.ServiceRecord{
		VehicleID:   in.VehicleID,
		Type:        domain.ServiceType(in.Type),
		Title:       in.Title,
		Description: in.Description,
		Mileage:     in.Mileage,
		Cost:        in.Cost,
		Date:        in.Date,
		Provider:    in.Provider,
		PartsUsed:   in.PartsUsed,
	}
}

func serviceRecordOutput(r domain.ServiceRecord) dto.ServiceRecordOutput {
	return dto.ServiceRecordOutput{
		ID:          r.ID,
		VehicleID:   r.VehicleID,
		Type:        string(r.Type),
		Title:       r.Title,
		Description: r.Description,
		Mileage:     r.Mileage,
		Cost:        r.Cost,
		Date:        r.Date,
		Provider:    r.Provider,
		PartsUsed:   r.PartsUsed,
	}
}

func logEntryDomain(in dto.LogEntryInput) domain.LogEntry {
	return domain.LogEntry{
		VehicleID:       in.VehicleID,
		Type:            domain.EntryType(in.Type),
		Title:           in.Title,
		Description:     in.Description,
		FuelAmount:      in.FuelAmount,
		FuelCost:        in.FuelCost,
		FuelType:        in.FuelType,
		TripDistance:    in.TripDistance,
		TripPurpose:     in.TripPurpose,
		ExpenseAmount:   in.ExpenseAmount,
		ExpenseCategory: in.ExpenseCategory,
		Mileage:         in.Mileage,
		Date:            in.Date,
	}
}

func logEntryOutput(e domain.LogEntry) dto.LogEntryOutput {
	return dto.LogEntryOutput{
		ID:              e.ID,
		VehicleID:       e.VehicleID,
		Type:            string(e.Type),
		Title:           e.Title,
		Description:     e.Description,
		FuelAmount:      e.FuelAmount,
		FuelCost:        e.FuelCost,
		FuelType:        e.FuelType,
		TripDistance:    e.TripDistance,
		TripPurpose:     e.TripPurpose,
		ExpenseAmount:   e.ExpenseAmount,
		ExpenseCategory: e.ExpenseCategory,
		Mileage:         e.Mileage,
		Date:            e.Date,
	}
}
