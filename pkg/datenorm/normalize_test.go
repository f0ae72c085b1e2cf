package datenorm

import (
	"errors"
	"testing"
	"time"
)

func TestNormalize_LocalDatePassthrough(t *testing.T) {
	in := time.Date(2024, time.March, 5, 14, 30, 0, 123e6, time.Local)

	got, err := Normalize(LocalDate(in))
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if !got.Equal(in) {
		t.Errorf("Normalize changed the value: got %v, want %v", got, in)
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []Input{
		LocalDate(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.Local)),
		Timestamp{Seconds: 1709629200, Nanos: 500e6},
		EpochMillis(1709629200500),
		ISOString("2024-03-05"),
	}

	for _, in := range inputs {
		once, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%v): %v", in, err)
		}
		twice, err := Normalize(LocalDate(once))
		if err != nil {
			t.Fatalf("Normalize(Normalize(%v)): %v", in, err)
		}
		if once.UnixMilli() != twice.UnixMilli() {
			t.Errorf("not idempotent for %v: %d != %d", in, once.UnixMilli(), twice.UnixMilli())
		}
	}
}

func TestNormalize_Timestamp(t *testing.T) {
	got, err := Normalize(Timestamp{Seconds: 1709596800, Nanos: 0})
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Unix() != 1709596800 {
		t.Errorf("got %d, want 1709596800", got.Unix())
	}
}

func TestNormalize_EpochMillis(t *testing.T) {
	got, err := Normalize(EpochMillis(1709596800250))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.UnixMilli() != 1709596800250 {
		t.Errorf("got %d, want 1709596800250", got.UnixMilli())
	}
}

func TestNormalize_ISOString(t *testing.T) {
	got, err := Normalize(ISOString("2024-03-05"))
	if err != nil {
		t.Fatalf("Normalize: %v", err)
	}
	if got.Year() != 2024 || got.Month() != time.March || got.Day() != 5 {
		t.Errorf("got %v, want 2024-03-05", got)
	}
	if got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("date-only string should land on midnight, got %v", got)
	}

	got, err = Normalize(ISOString("2024-03-05T09:30:00Z"))
	if err != nil {
		t.Fatalf("Normalize RFC3339: %v", err)
	}
	if got.UTC().Hour() != 9 {
		t.Errorf("got hour %d, want 9 UTC", got.UTC().Hour())
	}
}

func TestNormalize_RejectsUnrecognized(t *testing.T) {
	if _, err := Normalize(nil); !errors.Is(err, ErrUnrecognizedInput) {
		t.Errorf("nil input: got %v, want ErrUnrecognizedInput", err)
	}
	if _, err := Normalize(ISOString("not a date")); !errors.Is(err, ErrUnrecognizedInput) {
		t.Errorf("garbage string: got %v, want ErrUnrecognizedInput", err)
	}
}

func TestStartEndOfDay(t *testing.T) {
	at := time.Date(2024, time.March, 5, 14, 30, 45, 0, time.Local)

	start := StartOfDay(at)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("StartOfDay not midnight: %v", start)
	}

	end := EndOfDay(at)
	if end.Hour() != 23 || end.Minute() != 59 || end.Second() != 59 {
		t.Errorf("EndOfDay not 23:59:59: %v", end)
	}
	if end.Nanosecond() != 999e6 {
		t.Errorf("EndOfDay fraction: got %d ns, want 999ms", end.Nanosecond())
	}
	if !SameDay(start, end) {
		t.Error("start and end of day should share a calendar day")
	}
}

func TestMonthRange_LeapFebruary(t *testing.T) {
	start, end := MonthRange(2024, time.February)
	if start.Day() != 1 {
		t.Errorf("start day = %d, want 1", start.Day())
	}
	if end.Day() != 29 {
		t.Errorf("leap February should end on the 29th, got %d", end.Day())
	}

	_, end = MonthRange(2023, time.February)
	if end.Day() != 28 {
		t.Errorf("non-leap February should end on the 28th, got %d", end.Day())
	}
}

func TestDayKey(t *testing.T) {
	at := time.Date(2024, time.March, 5, 23, 59, 0, 0, time.Local)
	if got := DayKey(at); got != "2024-03-05" {
		t.Errorf("DayKey = %q, want 2024-03-05", got)
	}
}
