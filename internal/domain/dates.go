package domain

import "time"

// ISOWeekday returns the ISO-8601 weekday of t: Monday = 1 ... Sunday = 7.
// time.Weekday counts from Sunday = 0.
func ISOWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// DateOnly returns midnight UTC of t's calendar date (as seen in t's own location)
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysInRange returns the number of calendar days in [from, to], 0 if to is before from
func DaysInRange(from, to time.Time) int {
	f, t := DateOnly(from), DateOnly(to)
	if t.Before(f) {
		return 0
	}
	return int(t.Sub(f).Hours()/24) + 1
}
