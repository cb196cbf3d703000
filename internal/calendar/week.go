package calendar

import "github.com/username/textcal/pkg/datemath"

// ISOWeek returns the DIN 1355 / ISO 8601 calendar week (1..53) the
// given date falls into. Weeks start on Monday; week 1 is the week
// containing the year's first Thursday.
//
// Dates in the first days of January may belong to the trailing week
// of the previous year; those are resolved by recursing on December 31
// of that year. A computed week 53 is kept only when the year actually
// has one (January 1 on a Thursday, or on a Wednesday in a leap year).
// Otherwise the date belongs to week 1 of the following year and is
// reported as week 1 without adjusting the year label.
func ISOWeek(year, month, day int) int {
	doy := datemath.DayOfYear(year, month, day)

	// January 1 on a Friday or Saturday belongs to the previous ISO
	// year; rebase its weekday to a negative offset.
	wdJan1 := datemath.DayOfWeek(year, 1, 1)
	if wdJan1 >= 5 {
		wdJan1 -= 7
	}

	if doy+wdJan1 <= 1 {
		// Trailing week of the previous year.
		return ISOWeek(year-1, 12, 31)
	}

	week := (doy + wdJan1 + 5) / 7
	if week == 53 && !hasWeek53(year, wdJan1) {
		week = 1
	}
	return week
}

// hasWeek53 reports whether a year with the given (possibly rebased)
// January 1 weekday has 53 ISO weeks.
func hasWeek53(year, wdJan1 int) bool {
	if wdJan1 == 4 || wdJan1 == -3 {
		return true // January 1 is a Thursday
	}
	// Leap years starting on Wednesday also get a 53rd week.
	return datemath.IsLeapYear(year) && (wdJan1 == 3 || wdJan1 == -4)
}
