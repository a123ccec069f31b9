package domain

import (
	"errors"
	"testing"
	"time"

	apperrors "partshub/internal/platform/errors"
)

func TestVehicleValidate(t *testing.T) {
	valid := Vehicle{Make: "Toyota", Model: "Camry", Year: 2018, Mileage: 95000}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid vehicle rejected: %v", err)
	}

	cases := []Vehicle{
		{Model: "Camry", Year: 2018},
		{Make: "Toyota", Year: 2018},
		{Make: "Toyota", Model: "Camry", Year: 1850},
		{Make: "Toyota", Model: "Camry", Year: 2018, Mileage: -1},
	}
	for _, v := range cases {
		if err := v.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("vehicle %+v: err = %v, want invalid input", v, err)
		}
	}
}

func TestVehicleLabel(t *testing.T) {
	v := Vehicle{Make: "BMW", Model: "X5", Year: 2020}
	if got := v.Label(); got != "2020 BMW X5" {
		t.Fatalf("label = %q", got)
	}
}

func TestLogEntryValidatePerType(t *testing.T) {
	refuel := LogEntry{Type: EntryRefuel, Title: "Lukoil", Mileage: 95000, FuelAmount: 40}
	if err := refuel.Validate(); err != nil {
		t.Fatalf("valid refuel rejected: %v", err)
	}

	cases := []LogEntry{
		{Type: EntryRefuel, Title: "Lukoil", Mileage: 95000},
		{Type: EntryTrip, Title: "To the dacha", Mileage: 95000},
		{Type: EntryExpense, Title: "Car wash", Mileage: 95000},
		{Type: "teleport", Title: "??", Mileage: 95000},
		{Type: EntryNote, Mileage: 95000},
	}
	for _, e := range cases {
		if err := e.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("entry %+v: err = %v, want invalid input", e, err)
		}
	}

	note := LogEntry{Type: EntryNote, Title: "Strange rattle at 3000 rpm", Mileage: 95000}
	if err := note.Validate(); err != nil {
		t.Fatalf("note needs no amounts: %v", err)
	}
}

func TestReminderNeedsTrigger(t *testing.T) {
	r := Reminder{Type: ReminderService, Title: "Oil change"}
	if err := r.Validate(); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("err = %v, want invalid input", err)
	}

	r.RemindAtMileage = 100000
	if err := r.Validate(); err != nil {
		t.Fatalf("mileage trigger should suffice: %v", err)
	}
}

func TestReminderDue(t *testing.T) {
	now := time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)

	byDate := Reminder{Title: "OSAGO", RemindAtDate: now.AddDate(0, 0, -1)}
	if !byDate.Due(now, 0) {
		t.Fatal("past date reminder must be due")
	}
	if byDate.Due(now.AddDate(0, 0, -5), 0) {
		t.Fatal("future date reminder must not be due")
	}

	byMileage := Reminder{Title: "Oil", RemindAtMileage: 100000}
	if !byMileage.Due(now, 100500) {
		t.Fatal("mileage reached, reminder must be due")
	}
	if byMileage.Due(now, 99000) {
		t.Fatal("mileage not reached")
	}

	done := Reminder{Title: "Oil", RemindAtMileage: 100000, Completed: true}
	if done.Due(now, 200000) {
		t.Fatal("completed reminders never fire")
	}
}

func TestNormalizeOBDCode(t *testing.T) {
	got, err := NormalizeOBDCode(" p0301 ")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got != "P0301" {
		t.Fatalf("code = %q", got)
	}

	for _, code := range []string{"", "X0301", "P03", "P03011", "0301"} {
		if _, err := NormalizeOBDCode(code); !errors.Is(err, apperrors.ErrInvalidInput) {
			t.Fatalf("code %q: err = %v, want invalid input", code, err)
		}
	}
}
