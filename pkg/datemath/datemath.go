// Package datemath provides pure Gregorian date arithmetic on plain
// integers. It deliberately avoids time.Time so that day-of-year and
// weekday math stays exact integer arithmetic throughout.
package datemath

// monthLengths holds the month lengths of a non-leap year, January first.
var monthLengths = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// sakamoto is the month adjustment table for Sakamoto's weekday formula.
var sakamoto = [12]int{0, 3, 2, 5, 0, 3, 5, 1, 4, 6, 2, 4}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MonthLengths returns the lengths of the twelve months of year,
// January first.
func MonthLengths(year int) [12]int {
	months := monthLengths
	if IsLeapYear(year) {
		months[1] = 29
	}
	return months
}

// DaysInYear returns the number of days in year (365 or 366).
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DayOfYear returns the 1-based ordinal of (month, day) within year.
// Arguments are not validated: out-of-range month or day values
// produce an arithmetically consistent but out-of-range ordinal.
func DayOfYear(year, month, day int) int {
	months := MonthLengths(year)
	doy := day
	for m := 1; m < month; m++ {
		doy += months[m-1]
	}
	return doy
}

// DateFromDayOfYear converts a 1-based day-of-year ordinal back to
// (month, day). doy must be at least 1 and no greater than
// DaysInYear(year); values outside that range are not guarded.
func DateFromDayOfYear(year, doy int) (month, day int) {
	months := MonthLengths(year)
	month = 1
	for doy > months[month-1] {
		doy -= months[month-1]
		month++
	}
	return month, doy
}

// DayOfWeek computes the weekday of a date with Sakamoto's formula.
// The result is 0=Sunday through 6=Saturday.
func DayOfWeek(year, month, day int) int {
	y := year
	if month < 3 {
		y--
	}
	return (y + y/4 - y/100 + y/400 + sakamoto[month-1] + day) % 7
}
