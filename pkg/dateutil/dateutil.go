package dateutil

import (
	"time"
)

// StartOfMonth truncates a date to the first day of its calendar month.
func StartOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, date.Location())
}

// EndOfMonth returns the last day of the calendar month for a given date.
func EndOfMonth(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month()+1, 0, 0, 0, 0, 0, date.Location())
}

// AddMonths adds a specified number of months to a date
func AddMonths(date time.Time, months int) time.Time {
	return date.AddDate(0, months, 0)
}

// SameYearMonth reports whether two dates fall in the same calendar month.
// Activation windows and event matching compare at month granularity only.
func SameYearMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// MonthsBetween counts whole calendar months from one date to another.
// Both dates are truncated to month start; a negative count means to is
// before from.
func MonthsBetween(from, to time.Time) int {
	f := StartOfMonth(from)
	t := StartOfMonth(to)
	return (t.Year()-f.Year())*12 + int(t.Month()) - int(f.Month())
}

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// DateAtAge returns the date on which a person born on birthDate reaches
// the target age.
func DateAtAge(birthDate time.Time, targetAge int) time.Time {
	return birthDate.AddDate(targetAge, 0, 0)
}
