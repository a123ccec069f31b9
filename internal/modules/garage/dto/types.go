package dto

import "time"

type VehicleInput struct {
	Make         string
	Model        string
	Year         int
	VIN          string
	Color        string
	LicensePlate string
	Mileage      int
	PurchaseDate string
}

type VehicleOutput struct {
	ID           string
	Make         string
	Model        string
	Year         int
	VIN          string
	Color        string
	LicensePlate string
	Mileage      int
	PurchaseDate string
	Label        string
}

type ServiceRecordInput struct {
	VehicleID   string
	Type        string
	Title       string
	Description string
	Mileage     int
	Cost        float64
	Date        time.Time
	Provider    string
	PartsUsed   []string
}

type ServiceRecordOutput struct {
	ID          string
	VehicleID   string
	Type        string
	Title       string
	Description string
	Mileage     int
	Cost        float64
	Date        time.Time
	Provider    string
	PartsUsed   []string
}

type LogEntryInput struct {
	VehicleID   string
	Type        string
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

type LogEntryOutput struct {
	ID          string
	VehicleID   string
	Type        string
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

type ReminderInput struct {
	VehicleID       string
	Type            string
	Title           string
	Description     string
	RemindAtDate    time.Time
	RemindAtMileage int
}

type ReminderOutput struct {
	ID              string
	VehicleID       string
	Type            string
	Title           string
	Description     string
	RemindAtDate    time.Time
	RemindAtMileage int
	Completed       bool
	CompletedAt     time.Time
	Due             bool
}

type ExpenseCategoryOutput struct {
	Key        string
	Name       string
	Total      float64
	Count      int
	Percentage float64
}

type ExpenseItemOutput struct {
	Date     time.Time
	Category string
	Title    string
	Amount   float64
}

type ExpenseSummaryOutput struct {
	Total      float64
	Period     string
	Categories []ExpenseCategoryOutput
	Expenses   []ExpenseItemOutput
}

type DiagnosisOutput struct {
	Code               string
	Vehicle            string
	Summary            string
	Description        string
	PossibleCauses     []string
	RecommendedActions []string
	Severity           string
	FromCache          bool
	Offline            bool
}
