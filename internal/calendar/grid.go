package calendar

import (
	"time"

	"github.com/dmitrijs2005/moodiary/internal/client/models"
)

// Cell is one slot of the month grid. Padding cells before the first and
// after the last day have Day == 0 and an empty Date.
type Cell struct {
	Date  string
	Day   int
	Entry *models.Entry
}

// Blank reports whether c is a padding cell.
func (c Cell) Blank() bool { return c.Day == 0 }

// Month builds the grid for (year, month) as weeks starting on Sunday.
// Each day cell carries the entry bucketed for that date, if any.
func Month(entries []models.Entry, year int, month time.Month) [][]Cell {
	byDate := BucketByDate(entries, year, month)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	days := first.AddDate(0, 1, -1).Day()
	offset := int(first.Weekday())

	var (
		weeks [][]Cell
		week  = make([]Cell, 0, 7)
	)
	for i := 0; i < offset; i++ {
		week = append(week, Cell{})
	}

	for day := 1; day <= days; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Format(models.DateLayout)
		c := Cell{Date: date, Day: day}
		if e, ok := byDate[date]; ok {
			e := e
			c.Entry = &e
		}
		week = append(week, c)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]Cell, 0, 7)
		}
	}

	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, Cell{})
		}
		weeks = append(weeks, week)
	}
	return weeks
}
