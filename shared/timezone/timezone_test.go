package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	loc := timezone.GetLocation()
	if loc == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneFormat(t *testing.T) {
	testTime := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	formatted := timezone.Format(testTime, "2006-01-02 15:04:05 MST")

	if formatted == "" {
		t.Error("Format() returned empty string")
	}

	parsed, err := timezone.Parse("2006-01-02", "2024-01-01")
	if err != nil {
		t.Errorf("Parse() failed: %v", err)
	}

	if parsed == (time.Time{}) {
		t.Error("Parse() returned a zero time")
	}
}

func TestDayBoundaries(t *testing.T) {
	loc := timezone.GetLocation()
	noon := time.Date(2024, 1, 10, 12, 30, 45, 123, loc)

	start := timezone.DayStart(noon)
	if start.Hour() != 0 || start.Minute() != 0 || start.Second() != 0 || start.Nanosecond() != 0 {
		t.Errorf("DayStart not at midnight: %v", start)
	}
	if start.Day() != 10 {
		t.Errorf("DayStart changed the calendar day: %v", start)
	}

	end := timezone.DayEnd(noon)
	if end.Day() != 10 {
		t.Errorf("DayEnd crossed into the next day: %v", end)
	}
	if !end.Before(start.AddDate(0, 0, 1)) {
		t.Errorf("DayEnd not before next midnight: %v", end)
	}
	if !end.After(noon) {
		t.Errorf("DayEnd not after noon of the same day: %v", end)
	}
}

func TestDayStartIsIdempotent(t *testing.T) {
	loc := timezone.GetLocation()
	day := time.Date(2024, 3, 1, 23, 59, 59, 0, loc)

	once := timezone.DayStart(day)
	twice := timezone.DayStart(once)

	if !once.Equal(twice) {
		t.Errorf("DayStart not idempotent: %v vs %v", once, twice)
	}
}

func TestBusinessDateMatchesDayStart(t *testing.T) {
	loc := timezone.GetLocation()
	at := time.Date(2024, 6, 15, 18, 4, 0, 0, loc)

	if !timezone.BusinessDate(at).Equal(timezone.DayStart(at)) {
		t.Error("BusinessDate must equal DayStart")
	}
}

func TestYesterday(t *testing.T) {
	loc := timezone.GetLocation()
	at := time.Date(2024, 1, 1, 0, 30, 0, 0, loc)

	got := timezone.Yesterday(at)
	want := time.Date(2023, 12, 31, 0, 0, 0, 0, loc)

	if !got.Equal(want) {
		t.Errorf("Yesterday(%v) = %v, want %v", at, got, want)
	}
}

func TestWithinDay(t *testing.T) {
	loc := timezone.GetLocation()
	day := time.Date(2024, 1, 10, 0, 0, 0, 0, loc)

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "midnight start", at: time.Date(2024, 1, 10, 0, 0, 0, 0, loc), want: true},
		{name: "midday", at: time.Date(2024, 1, 10, 12, 0, 0, 0, loc), want: true},
		{name: "last nanosecond", at: timezone.DayEnd(day), want: true},
		{name: "next midnight", at: time.Date(2024, 1, 11, 0, 0, 0, 0, loc), want: false},
		{name: "previous day", at: time.Date(2024, 1, 9, 23, 59, 59, 0, loc), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := timezone.WithinDay(tt.at, day); got != tt.want {
				t.Errorf("WithinDay(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}
