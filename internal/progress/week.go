// Package progress holds the derived-state computations of the tracker: the
// semester week index, the aggregate cooked score and the catch-up feed. All
// functions are pure; they read snapshots of the record collections, never
// mutate them, and take the reference time as an explicit parameter.
package progress

import "time"

// CurrentWeek returns the 1-based semester week index at now. Weeks are
// Monday-aligned calendar weeks: any two dates inside the same Mon-Sun block
// map to the same index, regardless of which weekday the semester started on.
// Dates before the semester start clamp to week 1. No upper bound is applied;
// callers clip to the configured total weeks where needed.
func CurrentWeek(semesterStart, now time.Time) int {
	elapsed := int(WeekStart(now).Sub(WeekStart(semesterStart)).Hours()) / (24 * 7)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed + 1
}

// WeekStart maps t to the Monday beginning its calendar week, at UTC
// midnight. Normalizing to UTC keeps the day arithmetic exact across DST
// transitions in the input locations.
func WeekStart(t time.Time) time.Time {
	day := startOfDay(t)
	back := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -back)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// daysUntil counts whole calendar days from now's date to due's date.
// Negative means overdue. Time-of-day on either side is ignored.
func daysUntil(due, now time.Time) int {
	return int(startOfDay(due).Sub(startOfDay(now)).Hours() / 24)
}
