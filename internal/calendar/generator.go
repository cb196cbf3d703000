// Package calendar computes German public holidays, DIN 1355 calendar
// weeks and bridge days, and renders them as a plain-text year
// calendar grouped by month.
package calendar

import (
	"fmt"

	"github.com/username/textcal/pkg/datemath"
	"go.uber.org/zap"
)

// MinYear is the first year the generator accepts.
const MinYear = 2000

// monthNames holds the German month names, January first.
var monthNames = [12]string{
	"Januar", "Februar", "März", "April", "Mai", "Juni",
	"Juli", "August", "September", "Oktober", "November", "Dezember",
}

// weekdayNames holds the German weekday abbreviations, Sunday first,
// matching datemath.DayOfWeek.
var weekdayNames = [7]string{"Son", "Mon", "Die", "Mit", "Don", "Fre", "Sam"}

// Month is one rendered month: its German name and one line per day.
type Month struct {
	Name  string
	Lines []string
}

// Year is a fully rendered calendar year.
type Year struct {
	Year   int
	Months []Month
}

// Generator builds the year calendar from the holiday and bridge-day
// tables. Every call computes fresh tables; nothing is cached between
// years.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new Generator instance.
func NewGenerator(logger *zap.Logger) *Generator {
	return &Generator{logger: logger}
}

// Generate computes the calendar for the given year. Years before
// MinYear are rejected before any computation takes place.
func (g *Generator) Generate(year int) (*Year, error) {
	if year < MinYear {
		return nil, fmt.Errorf("invalid year %d: must be %d or later", year, MinYear)
	}

	holidays := BuildHolidays(year)
	bridges := BuildBridgeDays(year, holidays)

	g.logger.Debug("Built day tables",
		zap.Int("year", year),
		zap.Int("holidays", len(holidays)),
		zap.Int("bridge_days", len(bridges)))

	months := datemath.MonthLengths(year)
	cal := &Year{Year: year, Months: make([]Month, 0, 12)}

	doy := 0
	for month := 1; month <= 12; month++ {
		lines := make([]string, 0, months[month-1])
		for day := 1; day <= months[month-1]; day++ {
			doy++
			lines = append(lines, dayLine(year, month, day, doy, holidays[doy], bridges[doy]))
		}
		cal.Months = append(cal.Months, Month{Name: monthNames[month-1], Lines: lines})
	}

	return cal, nil
}

// dayLine renders a single calendar line: the zero-padded week number
// on Mondays and on January 1 (blank otherwise), the zero-padded day
// number, the weekday abbreviation, and the holiday and bridge-day
// labels when present.
func dayLine(year, month, day, doy int, holiday, bridge string) string {
	weekday := datemath.DayOfWeek(year, month, day)

	week := "  "
	if weekday == 1 || doy == 1 {
		week = fmt.Sprintf("%02d", ISOWeek(year, month, day))
	}

	line := fmt.Sprintf("%s %02d %s", week, day, weekdayNames[weekday])
	if holiday != "" {
		line += " " + holiday
	}
	if bridge != "" {
		line += " " + bridge
	}
	return line
}
