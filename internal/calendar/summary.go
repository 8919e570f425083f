package calendar

import (
	"time"

	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// Summary is the statistics block shown on the profile view.
type Summary struct {
	Total     int
	ThisMonth int
	ByMood    map[mood.Mood]int

	// MostCommon is meaningful only when HasMostCommon is set.
	MostCommon    mood.Mood
	HasMostCommon bool
}

// Summarize computes totals over all entries, the count for the month that
// contains now, and the most frequent mood. Ties go to the mood that comes
// first in the enumeration.
func Summarize(entries []models.Entry, now time.Time) Summary {
	now = now.In(time.Local)
	s := Summary{Total: len(entries), ByMood: zeroCounts()}

	for _, e := range entries {
		s.ByMood[moodOf(e)]++
		if _, ok := inMonth(e, now.Year(), now.Month()); ok {
			s.ThisMonth++
		}
	}

	best := 0
	for _, m := range mood.All() {
		if s.ByMood[m] > best {
			best = s.ByMood[m]
			s.MostCommon = m
			s.HasMostCommon = true
		}
	}
	return s
}
