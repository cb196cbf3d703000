package calendar

import "github.com/username/textcal/pkg/datemath"

// BridgeDayLabel is the annotation attached to bridge-day candidates.
const BridgeDayLabel = "Brückentag"

// BuildHolidays returns the German public holidays of a year as a map
// from day-of-year to label. December 25 and 26 share the same label
// on two distinct keys.
func BuildHolidays(year int) map[int]string {
	holidays := map[int]string{
		datemath.DayOfYear(year, 1, 1):   "Neujahr",
		datemath.DayOfYear(year, 1, 6):   "Heilige Drei Könige",
		datemath.DayOfYear(year, 5, 1):   "Tag der Arbeit",
		datemath.DayOfYear(year, 10, 3):  "Tag der Deutschen Einheit",
		datemath.DayOfYear(year, 11, 1):  "Allerheiligen",
		datemath.DayOfYear(year, 12, 24): "Heiligabend",
		datemath.DayOfYear(year, 12, 25): "Weihnachten",
		datemath.DayOfYear(year, 12, 26): "Weihnachten",
		datemath.DayOfYear(year, 12, 31): "Silvester",
	}

	// Movable feasts, all as offsets from Easter Sunday's day-of-year.
	easterMonth, easterDay := EasterSunday(year)
	ot := datemath.DayOfYear(year, easterMonth, easterDay)

	holidays[ot-2] = "Karfreitag"
	holidays[ot] = "Ostersonntag"
	holidays[ot+1] = "Ostermontag"
	holidays[ot+39] = "Christi Himmelfahrt"
	holidays[ot+49] = "Pfingstsonntag"
	holidays[ot+50] = "Pfingstmontag"
	holidays[ot+60] = "Fronleichnam"

	return holidays
}

// BuildBridgeDays scans the holiday map for single working days that
// connect a holiday to a weekend: a Tuesday holiday marks the Monday
// before it, a Thursday holiday marks the Friday after it. A candidate
// that is itself a holiday is never marked; candidates outside the
// year are skipped.
func BuildBridgeDays(year int, holidays map[int]string) map[int]string {
	bridges := make(map[int]string)
	lastDay := datemath.DaysInYear(year)

	for doy := range holidays {
		month, day := datemath.DateFromDayOfYear(year, doy)

		switch datemath.DayOfWeek(year, month, day) {
		case 2: // Tuesday: the Monday before bridges to the weekend
			if doy-1 >= 1 {
				if _, isHoliday := holidays[doy-1]; !isHoliday {
					bridges[doy-1] = BridgeDayLabel
				}
			}
		case 4: // Thursday: the Friday after bridges to the weekend
			if doy+1 <= lastDay {
				if _, isHoliday := holidays[doy+1]; !isHoliday {
					bridges[doy+1] = BridgeDayLabel
				}
			}
		}
	}

	return bridges
}
