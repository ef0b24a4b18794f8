package utils

import "time"

// Calendar bucketing helpers. All math is local-calendar based: the
// reference instant's location is kept, and date strings parse in
// time.Local. The process timezone is the single timezone policy.

const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD string in local time. Malformed input is
// the fetch collaborator's problem; this returns the zero time for it.
func ParseDate(s string) time.Time {
	t, _ := time.ParseInLocation(DateLayout, s, time.Local)
	return t
}

// FormatDate renders t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// StartOfDay returns midnight of t's calendar day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of t's calendar day.
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// StartOfWeek returns midnight of the Monday beginning t's week, computed
// as t minus (weekday+6)%7 days with 0=Sunday. The rotation matters: it is
// what decides which records land in "this week".
func StartOfWeek(t time.Time) time.Time {
	diff := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t).AddDate(0, 0, -diff)
}

// EndOfWeek returns the last nanosecond of the Sunday ending t's week.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfMonth returns midnight of the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last nanosecond of the last day of t's month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
