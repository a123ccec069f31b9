package domain

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	apperrors "partshub/internal/platform/errors"
)

// Vehicle is one car in the user's garage.
type Vehicle struct {
	ID           string
	Make         string
	Model        string
	Year         int
	VIN          string
	Color        string
	LicensePlate string
	Mileage      int
	PurchaseDate string
	CreatedAt    time.Time
}

func (v Vehicle) Validate() error {
	if strings.TrimSpace(v.Make) == "" || strings.TrimSpace(v.Model) == "" {
		return apperrors.ErrInvalidInput
	}
	if v.Year < 1900 || v.Year > time.Now().Year()+1 {
		return apperrors.ErrInvalidInput
	}
	if v.Mileage < 0 {
		return apperrors.ErrInvalidInput
	}
	return nil
}

// Label is how a vehicle shows up in lists and diagnosis prompts.
func (v Vehicle) Label() string {
	return fmt.Sprintf("%d %s %s", v.Year, v.Make, v.Model)
}

type ServiceType string

const (
	ServiceOilChange   ServiceType = "oil_change"
	ServiceTireChange  ServiceType = "tire_change"
	ServiceBrakes      ServiceType = "brake_service"
	ServiceMaintenance ServiceType = "general_maintenance"
	ServiceRepair      ServiceType = "repair"
	ServiceOther       ServiceType = "other"
)

// ServiceRecord is one maintenance event in the vehicle's history.
type ServiceRecord struct {
	ID          string
	VehicleID   string
	Type        ServiceType
	Title       string
	Description string
	Mileage     int
	Cost        float64
	Date        time.Time
	Provider    string
	PartsUsed   []string
}

func (r ServiceRecord) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ErrInvalidInput
	}
	if r.Mileage < 0 || r.Cost < 0 {
		return apperrors.ErrInvalidInput
	}
	return nil
}

type EntryType string

const (
	EntryRefuel     EntryType = "refuel"
	EntryTrip       EntryType = "trip"
	EntryNote       EntryType = "note"
	EntryExpense    EntryType = "expense"
	EntryDiagnostic EntryType = "diagnostic"
)

// LogEntry is one board journal record. Which optional fields matter
// depends on the entry type.
type LogEntry struct {
	ID          string
	VehicleID   string
	Type        EntryType
	Title       string
	Description string

	FuelAmount float64
	FuelCost   float64
	FuelType   string

	TripDistance int
	TripPurpose  string

	ExpenseAmount   float64
	ExpenseCategory string

	Mileage int
	Date    time.Time
}

func (e LogEntry) Validate() error {
	if strings.TrimSpace(e.Title) == "" || e.Mileage < 0 {
		return apperrors.ErrInvalidInput
	}
	switch e.Type {
	case EntryRefuel:
		if e.FuelAmount <= 0 {
			return apperrors.ErrInvalidInput
		}
	case EntryTrip:
		if e.TripDistance <= 0 {
			return apperrors.ErrInvalidInput
		}
	case EntryExpense:
		if e.ExpenseAmount <= 0 {
			return apperrors.ErrInvalidInput
		}
	case EntryNote, EntryDiagnostic:
	default:
		return apperrors.ErrInvalidInput
	}
	return nil
}

type ReminderType string

const (
	ReminderService    ReminderType = "service"
	ReminderInsurance  ReminderType = "insurance"
	ReminderInspection ReminderType = "inspection"
	ReminderCustom     ReminderType = "custom"
)

type Reminder struct {
	ID          string
	VehicleID   string
	Type        ReminderType
	Title       string
	Description string
	// At least one trigger must be set.
	RemindAtDate    time.Time
	RemindAtMileage int
	Completed       bool
	CompletedAt     time.Time
}

func (r Reminder) Validate() error {
	if strings.TrimSpace(r.Title) == "" {
		return apperrors.ErrInvalidInput
	}
	if r.RemindAtDate.IsZero() && r.RemindAtMileage <= 0 {
		return apperrors.ErrInvalidInput
	}
	return nil
}

// Due reports whether the reminder should fire given the current date
// and vehicle mileage.
func (r Reminder) Due(now time.Time, mileage int) bool {
	if r.Completed {
		return false
	}
	if !r.RemindAtDate.IsZero() && !now.Before(r.RemindAtDate) {
		return true
	}
	return r.RemindAtMileage > 0 && mileage >= r.RemindAtMileage
}

type ExpenseCategory struct {
	Key        string
	Name       string
	Total      float64
	Count      int
	Percentage float64
}

type ExpenseItem struct {
	Date     time.Time
	Category string
	Title    string
	Amount   float64
}

type ExpenseSummary struct {
	Total      float64
	Period     string
	Categories []ExpenseCategory
	Expenses   []ExpenseItem
}

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
	SeverityUnknown  Severity = "unknown"
)

// Diagnosis is the decoded meaning of an OBD-II trouble code for a
// specific vehicle.
type Diagnosis struct {
	Code               string
	Vehicle            string
	Summary            string
	Description        string
	PossibleCauses     []string
	RecommendedActions []string
	Severity           Severity
}

var obdCodePattern = regexp.MustCompile(`^[PBCU][0-9][0-9A-F]{3}$`)

// NormalizeOBDCode upper-cases and validates a trouble code. The first
// letter names the system: P powertrain, B body, C chassis, U network.
func NormalizeOBDCode(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !obdCodePattern.MatchString(code) {
		return "", apperrors.ErrInvalidInput
	}
	return code, nil
}
