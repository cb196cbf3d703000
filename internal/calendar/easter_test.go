package calendar

import (
	"testing"

	"github.com/username/textcal/pkg/datemath"
)

func TestEasterSunday(t *testing.T) {
	tests := []struct {
		year      int
		wantMonth int
		wantDay   int
	}{
		{2000, 4, 23},
		{2024, 3, 31},
		{2025, 4, 20},
		{2026, 4, 5},
		{2027, 3, 28},
		{2030, 4, 21},
	}

	for _, tt := range tests {
		month, day := EasterSunday(tt.year)
		if month != tt.wantMonth || day != tt.wantDay {
			t.Errorf("EasterSunday(%d) = (%d, %d), want (%d, %d)",
				tt.year, month, day, tt.wantMonth, tt.wantDay)
		}
	}
}

func TestEasterSunday_IsSunday(t *testing.T) {
	for year := 2000; year <= 2050; year++ {
		month, day := EasterSunday(year)
		if weekday := datemath.DayOfWeek(year, month, day); weekday != 0 {
			t.Errorf("EasterSunday(%d) = %d-%d falls on weekday %d, want 0 (Sunday)",
				year, month, day, weekday)
		}
	}
}
