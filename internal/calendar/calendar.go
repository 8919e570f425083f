// Package calendar buckets diary entries into calendar months: a per-day
// lookup, per-mood monthly counts, the month grid shown by the calendar
// view, and overall statistics.
//
// Dates are interpreted on the local calendar. An entry whose date cannot be
// parsed never matches any month; it is skipped, not reported.
package calendar

import (
	"strings"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// ParseDate resolves an entry date to a local calendar day. It accepts
// YYYY-MM-DD (taken as a local date) and backend timestamps (converted to
// local time).
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if d, err := time.ParseInLocation(models.DateLayout, s, time.Local); err == nil {
		return d, true
	}
	if ts, ok := models.ParseTimestamp(s); ok {
		return ts.In(time.Local), true
	}
	return time.Time{}, false
}

// inMonth reports whether e falls in (year, month) and returns its day key.
func inMonth(e models.Entry, year int, month time.Month) (string, bool) {
	d, ok := ParseDate(e.Date)
	if !ok {
		return "", false
	}
	if d.Year() != year || d.Month() != month {
		return "", false
	}
	return d.Format(models.DateLayout), true
}

// BucketByDate maps each date of (year, month) to the entry written on it.
// When several entries share a date the later one in iteration order wins.
func BucketByDate(entries []models.Entry, year int, month time.Month) map[string]models.Entry {
	out := make(map[string]models.Entry)
	for _, e := range entries {
		if key, ok := inMonth(e, year, month); ok {
			out[key] = e
		}
	}
	return out
}

// CountByMood counts the entries of (year, month) per mood. Every mood of the
// enumeration is present in the result. Moods outside the enumeration are
// counted as neutral.
func CountByMood(entries []models.Entry, year int, month time.Month) map[mood.Mood]int {
	out := zeroCounts()
	for _, e := range entries {
		if _, ok := inMonth(e, year, month); ok {
			out[moodOf(e)]++
		}
	}
	return out
}

func zeroCounts() map[mood.Mood]int {
	out := make(map[mood.Mood]int, len(mood.All()))
	for _, m := range mood.All() {
		out[m] = 0
	}
	return out
}

func moodOf(e models.Entry) mood.Mood {
	if e.Mood.Valid() {
		return e.Mood
	}
	return mood.Neutral
}

// Shift moves (year, month) by delta months.
func Shift(year int, month time.Month, delta int) (int, time.Month) {
	t := time.Date(year, month, 1, 0, 0, 0, 0, time.Local).AddDate(0, delta, 0)
	return t.Year(), t.Month()
}

// ParseMonth parses "YYYY-MM".
func ParseMonth(s string) (int, time.Month, bool) {
	t, err := time.Parse("2006-01", strings.TrimSpace(s))
	if err != nil {
		return 0, 0, false
	}
	return t.Year(), t.Month(), true
}
