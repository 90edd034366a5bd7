package service

import "time"

// dayStart returns midnight of t's calendar day, in t's location.
func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// weekStart returns midnight of the Monday of t's week.
// Sunday belongs to the preceding Monday's week (6 days back), matching the
// ISO-like Monday-start convention used everywhere in the dashboard.
func weekStart(t time.Time) time.Time {
	d := dayStart(t)
	back := int(d.Weekday()) - int(time.Monday)
	if d.Weekday() == time.Sunday {
		back = 6
	}
	return d.AddDate(0, 0, -back)
}

// monthStart returns midnight of the 1st of t's month.
func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// sameDay reports whether a and b fall on the same calendar day.
func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
