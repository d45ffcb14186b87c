package utils

import "time"

// DisplayDateLayout renders dates the way they appear on invoices, e.g. "30 April 2025".
const DisplayDateLayout = "2 January 2006"

// StartOfDayUTC truncates t to midnight UTC
func StartOfDayUTC(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// PreviousMonthName returns the full name of the calendar month before t.
// Computed from the first day of t's month so that month-end dates cannot
// roll over during the subtraction.
func PreviousMonthName(t time.Time) string {
	firstOfMonth := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return firstOfMonth.AddDate(0, 0, -1).Month().String()
}
