package out

import (
	"context"
	"fmt"
	"time"

	"partshub/internal/modules/garage/domain"
	"partshub/internal/platform/rest"
)

const dateFormat = "2006-01-02T15:04:05"

// GarageClient covers the backend's garage endpoints.
type GarageClient struct {
	api *rest.Client
}

func NewGarageClient(api *rest.Client) *GarageClient {
	return &GarageClient{api: api}
}

type wireVehicle struct {
	ID           string `json:"id,omitempty"`
	TelegramID   int64  `json:"telegram_id,omitempty"`
	Make         string `json:"make"`
	Model        string `json:"model"`
	Year         int    `json:"year"`
	VIN          string `json:"vin,omitempty"`
	Color        string `json:"color,omitempty"`
	LicensePlate string `json:"license_plate,omitempty"`
	Mileage      int    `json:"mileage"`
	PurchaseDate string `json:"purchase_date,omitempty"`
	CreatedAt    string `json:"created_at,omitempty"`
}

func (v wireVehicle) toDomain() domain.Vehicle {
	vehicle := domain.Vehicle{
		ID:           v.ID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		VIN:          v.VIN,
		Color:        v.Color,
		LicensePlate: v.LicensePlate,
		Mileage:      v.Mileage,
		PurchaseDate: v.PurchaseDate,
	}
	vehicle.CreatedAt = parseDate(v.CreatedAt)
	return vehicle
}

func vehicleWire(telegramID int64, v domain.Vehicle) wireVehicle {
	return wireVehicle{
		TelegramID:   telegramID,
		Make:         v.Make,
		Model:        v.Model,
		Year:         v.Year,
		VIN:          v.VIN,
		Color:        v.Color,
		LicensePlate: v.LicensePlate,
		Mileage:      v.Mileage,
		PurchaseDate: v.PurchaseDate,
	}
}

func (c *GarageClient) ListVehicles(ctx context.Context, telegramID int64) ([]domain.Vehicle, error) {
	var resp struct {
		Vehicles []wireVehicle `json:"vehicles"`
	}
	if err := c.api.Get(ctx, fmt.Sprintf("/garage/%d", telegramID), &resp); err != nil {
		return nil, err
	}
	vehicles := make([]domain.Vehicle, 0, len(resp.Vehicles))
	for _, v := range resp.Vehicles {
		vehicles = append(vehicles, v.toDomain())
	}
	return vehicles, nil
}

func (c *GarageClient) AddVehicle(ctx context.Context, telegramID int64, vehicle domain.Vehicle) (string, error) {
	var resp struct {
		VehicleID string `json:"vehicle_id"`
	}
	if err := c.api.Post(ctx, "/garage", vehicleWire(telegramID, vehicle), &resp); err != nil {
		return "", err
	}
	return resp.VehicleID, nil
}

func (c *GarageClient) GetVehicle(ctx context.Context, vehicleID string) (domain.Vehicle, error) {
	var v wireVehicle
	if err := c.api.Get(ctx, "/garage/vehicle/"+vehicleID, &v); err != nil {
		return domain.Vehicle{}, err
	}
	return v.toDomain(), nil
}

func (c *GarageClient) UpdateVehicle(ctx context.Context, vehicleID string, vehicle domain.Vehicle) error {
	return c.api.Put(ctx, "/garage/vehicle/"+vehicleID, vehicleWire(0, vehicle), nil)
}

func (c *GarageClient) DeleteVehicle(ctx context.Context, vehicleID string) error {
	return c.api.Delete(ctx, "/garage/vehicle/"+vehicleID, nil)
}

type wireServiceRecord struct {
	ID          string   `json:"id,omitempty"`
	TelegramID  int64    `json:"telegram_id,omitempty"`
	ServiceType string   `json:"service_type"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Mileage     int      `json:"mileage"`
	Cost        float64  `json:"cost"`
	ServiceDate string   `json:"service_date"`
	Provider    string   `json:"service_provider,omitempty"`
	PartsUsed   []string `json:"parts_used,omitempty"`
}

func (c *GarageClient) ListServiceRecords(ctx context.Context, vehicleID string) ([]domain.ServiceRecord, error) {
	var resp struct {
		Records []wireServiceRecord `json:"records"`
	}
	if err := c.api.Get(ctx, "/garage/vehicle/"+vehicleID+"/service", &resp); err != nil {
		return nil, err
	}
	records := make([]domain.ServiceRecord, 0, len(resp.Records))
	for _, r := range resp.Records {
		records = append(records, domain.ServiceRecord{
			ID:          r.ID,
			VehicleID:   vehicleID,
			Type:        domain.ServiceType(r.ServiceType),
			Title:       r.Title,
			Description: r.Description,
			Mileage:     r.Mileage,
			Cost:        r.Cost,
			Date:        parseDate(r.ServiceDate),
			Provider:    r.Provider,
			PartsUsed:   r.PartsUsed,
		})
	}
	return records, nil
}

func serviceWire(telegramID int64, record domain.ServiceRecord) wireServiceRecord {
	return wireServiceRecord{
		TelegramID:  telegramID,
		ServiceType: string(record.Type),
		Title:       record.Title,
		Description: record.Description,
		Mileage:     record.Mileage,
		Cost:        record.Cost,
		ServiceDate: record.Date.UTC().Format(dateFormat),
		Provider:    record.Provider,
		PartsUsed:   record.PartsUsed,
	}
}

func (c *GarageClient) AddServiceRecord(ctx context.Context, telegramID int64, record domain.ServiceRecord) (string, error) {
	var resp struct {
		RecordID string `json:"record_id"`
	}
	err := c.api.Post(ctx, "/garage/vehicle/"+record.VehicleID+"/service", serviceWire(telegramID, record), &resp)
	if err != nil {
		return "", err
	}
	return resp.RecordID, nil
}

func (c *GarageClient) UpdateServiceRecord(ctx context.Context, recordID string, record domain.ServiceRecord) error {
	return c.api.Put(ctx, "/garage/service/"+recordID, serviceWire(0, record), nil)
}

func (c *GarageClient) DeleteServiceRecord(ctx context.Context, recordID string) error {
	return c.api.Delete(ctx, "/garage/service/"+recordID, nil)
}

type wireLogEntry struct {
	ID          string `json:"id,omitempty"`
	TelegramID  int64  `json:"telegram_id,omitempty"`
	EntryType   string `json:"entry_type"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`

	FuelAmount float64 `json:"fuel_amount,omitempty"`
	FuelCost   float64 `json:"fuel_cost,omitempty"`
	FuelType   string  `json:"fuel_type,omitempty"`

	TripDistance int    `json:"trip_distance,omitempty"`
	TripPurpose  string `json:"trip_purpose,omitempty"`

	ExpenseAmount   float64 `json:"expense_amount,omitempty"`
	ExpenseCategory string  `json:"expense_category,omitempty"`

	Mileage   int    `json:"mileage"`
	EntryDate string `json:"entry_date"`
}

func (c *GarageClient) ListLogEntries(ctx context.Context, vehicleID string) ([]domain.LogEntry, error) {
	var resp struct {
		Entries []wireLogEntry `json:"entries"`
	}
	if err := c.api.Get(ctx, "/garage/vehicle/"+vehicleID+"/log", &resp); err != nil {
		return nil, err
	}
	entries := make([]domain.LogEntry, 0, len(resp.Entries))
	for _, e := range resp.Entries {
		entries = append(entries, domain.LogEntry{
			ID:              e.ID,
			VehicleID:       vehicleID,
			Type:            domain.EntryType(e.EntryType),
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
			Date:            parseDate(e.EntryDate),
		})
	}
	return entries, nil
}

func logWire(telegramID int64, entry domain.LogEntry) wireLogEntry {
	return wireLogEntry{
		TelegramID:      telegramID,
		EntryType:       string(entry.Type),
		Title:           entry.Title,
		Description:     entry.Description,
		FuelAmount:      entry.FuelAmount,
		FuelCost:        entry.FuelCost,
		FuelType:        entry.FuelType,
		TripDistance:    entry.TripDistance,
		TripPurpose:     entry.TripPurpose,
		ExpenseAmount:   entry.ExpenseAmount,
		ExpenseCategory: entry.ExpenseCategory,
		Mileage:         entry.Mileage,
		EntryDate:       entry.Date.UTC().Format(dateFormat),
	}
}

func (c *GarageClient) AddLogEntry(ctx context.Context, telegramID int64, entry domain.LogEntry) (string, error) {
	var resp struct {
		EntryID string `json:"entry_id"`
	}
	err := c.api.Post(ctx, "/garage/vehicle/"+entry.VehicleID+"/log", logWire(telegramID, entry), &resp)
	if err != nil {
		return "", err
	}
	return resp.EntryID, nil
}

func (c *GarageClient) UpdateLogEntry(ctx context.Context, entryID string, entry domain.LogEntry) error {
	return c.api.Put(ctx, "/garage/log/"+entryID, logWire(0, entry), nil)
}

func (c *GarageClient) DeleteLogEntry(ctx context.Context, entryID string) error {
	return c.api.Delete(ctx, "/garage/log/"+entryID, nil)
}

type wireReminder struct {
	ID              string `json:"id,omitempty"`
	TelegramID      int64  `json:"telegram_id,omitempty"`
	ReminderType    string `json:"reminder_type"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	RemindAtDate    string `json:"remind_at_date,omitempty"`
	RemindAtMileage int    `json:"remind_at_mileage,omitempty"`
	IsCompleted     bool   `json:"is_completed"`
	CompletedAt     string `json:"completed_at,omitempty"`
}

func (c *GarageClient) ListReminders(ctx context.Context, vehicleID string) ([]domain.Reminder, error) {
	var resp struct {
		Reminders []wireReminder `json:"reminders"`
	}
	if err := c.api.Get(ctx, "/garage/vehicle/"+vehicleID+"/reminders", &resp); err != nil {
		return nil, err
	}
	reminders := make([]domain.Reminder, 0, len(resp.Reminders))
	for _, r := range resp.Reminders {
		reminders = append(reminders, domain.Reminder{
			ID:              r.ID,
			VehicleID:       vehicleID,
			Type:            domain.ReminderType(r.ReminderType),
			Title:           r.Title,
			Description:     r.Description,
			RemindAtDate:    parseDate(r.RemindAtDate),
			RemindAtMileage: r.RemindAtMileage,
			Completed:       r.IsCompleted,
			CompletedAt:     parseDate(r.CompletedAt),
		})
	}
	return reminders, nil
}

func (c *GarageClient) AddReminder(ctx context.Context, telegramID int64, reminder domain.Reminder) (string, error) {
	req := wireReminder{
		TelegramID:      telegramID,
		ReminderType:    string(reminder.Type),
		Title:           reminder.Title,
		Description:     reminder.Description,
		RemindAtMileage: reminder.RemindAtMileage,
	}
	if !reminder.RemindAtDate.IsZero() {
		req.RemindAtDate = reminder.RemindAtDate.UTC().Format(dateFormat)
	}
	var resp struct {
		ReminderID string `json:"reminder_id"`
	}
	err := c.api.Post(ctx, "/garage/vehicle/"+reminder.VehicleID+"/reminders", req, &resp)
	if err != nil {
		return "", err
	}
	return resp.ReminderID, nil
}

func (c *GarageClient) CompleteReminder(ctx context.Context, reminderID string) error {
	return c.api.Put(ctx, "/garage/reminders/"+reminderID+"/complete", struct{}{}, nil)
}

func (c *GarageClient) DeleteReminder(ctx context.Context, reminderID string) error {
	return c.api.Delete(ctx, "/garage/reminders/"+reminderID, nil)
}

func (c *GarageClient) Expenses(ctx context.Context, vehicleID, period string) (domain.ExpenseSummary, error) {
	var resp struct {
		Total      float64 `json:"total"`
		Period     string  `json:"period"`
		Categories []struct {
			Key        string  `json:"key"`
			Name       string  `json:"name"`
			Total      float64 `json:"total"`
			Count      int     `json:"count"`
			Percentage float64 `json:"percentage"`
		} `json:"categories"`
		Expenses []struct {
			Date     string  `json:"date"`
			Category string  `json:"category"`
			Title    string  `json:"title"`
			Amount   float64 `json:"amount"`
		} `json:"expenses"`
	}
	path := "/garage/vehicle/" + vehicleID + "/expenses?period=" + period
	if err := c.api.Get(ctx, path, &resp); err != nil {
		return domain.ExpenseSummary{}, err
	}
	summary := domain.ExpenseSummary{
		Total:      resp.Total,
		Period:     resp.Period,
		Categories: make([]domain.ExpenseCategory, 0, len(resp.Categories)),
		Expenses:   make([]domain.ExpenseItem, 0, len(resp.Expenses)),
	}
	for _, cat := range resp.Categories {
		summary.Categories = append(summary.Categories, domain.ExpenseCategory{
			Key:        cat.Key,
			Name:       cat.Name,
			Total:      cat.Total,
			Count:      cat.Count,
			Percentage: cat.Percentage,
		})
	}
	for _, item := range resp.Expenses {
		summary.Expenses = append(summary.Expenses, domain.ExpenseItem{
			Date:     parseDate(item.Date),
			Category: item.Category,
			Title:    item.Title,
			Amount:   item.Amount,
		})
	}
	return summary, nil
}

type diagnoseRequest struct {
	OBDCode    string `json:"obd_code"`
	VehicleID  string `json:"vehicle_id"`
	TelegramID int64  `json:"telegram_id"`
}

func (c *GarageClient) Diagnose(ctx context.Context, telegramID int64, vehicleID, code string) (domain.Diagnosis, error) {
	req := diagnoseRequest{OBDCode: code, VehicleID: vehicleID, TelegramID: telegramID}
	var resp struct {
		OBDCode   string `json:"obd_code"`
		Vehicle   string `json:"vehicle"`
		Diagnosis struct {
			Summary            string   `json:"summary"`
			Description        string   `json:"description"`
			PossibleCauses     []string `json:"possible_causes"`
			RecommendedActions []string `json:"recommended_actions"`
			Severity           string   `json:"severity"`
		} `json:"diagnosis"`
	}
	if err := c.api.Post(ctx, "/garage/diagnostics", req, &resp); err != nil {
		return domain.Diagnosis{}, err
	}
	return domain.Diagnosis{
		Code:               resp.OBDCode,
		Vehicle:            resp.Vehicle,
		Summary:            resp.Diagnosis.Summary,
		Description:        resp.Diagnosis.Description,
		PossibleCauses:     resp.Diagnosis.PossibleCauses,
		RecommendedActions: resp.Diagnosis.RecommendedActions,
		Severity:           domain.Severity(resp.Diagnosis.Severity),
	}, nil
}

// parseDate tolerates the two timestamp shapes the backend emits.
func parseDate(value string) time.Time {
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t
	}
	if t, err := time.Parse(dateFormat, value); err == nil {
		return t.UTC()
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC()
	}
	return time.Time{}
}
