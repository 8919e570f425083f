package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodiary/internal/calendar"
	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// Calendar shows the month grid. args may name a month as YYYY-MM;
// otherwise the last shown month is used.
func (a *App) Calendar(ctx context.Context, args []string) error {
	if len(args) > 0 {
		year, month, ok := calendar.ParseMonth(args[0])
		if !ok {
			v := &common.ValidationError{}
			v.Add("month", "must be YYYY-MM")
			return v
		}
		a.year, a.month = year, month
	}

	list, err := a.entries.Entries(ctx)
	if err != nil {
		return err
	}
	a.router.Navigate(session.ViewCalendar)
	a.println(renderCalendar(list, a.year, a.month, now()))
	return nil
}

func (a *App) Prev(ctx context.Context) error {
	a.year, a.month = calendar.Shift(a.year, a.month, -1)
	return a.Calendar(ctx, nil)
}

func (a *App) Next(ctx context.Context) error {
	a.year, a.month = calendar.Shift(a.year, a.month, 1)
	return a.Calendar(ctx, nil)
}

// List prints the cached entries, optionally only those with one mood.
func (a *App) List(ctx context.Context, args []string) error {
	list, err := a.entries.Entries(ctx)
	if err != nil {
		return err
	}

	if len(args) > 0 {
		m, ok := mood.Parse(args[0])
		if !ok {
			v := &common.ValidationError{}
			v.Add("mood", "is not a known mood")
			return v
		}
		filtered := list[:0:0]
		for _, e := range list {
			if e.Mood == m {
				filtered = append(filtered, e)
			}
		}
		list = filtered
	}

	a.router.Navigate(session.ViewList)
	a.println(renderList(list))
	return nil
}

func (a *App) Show(ctx context.Context, args []string) error {
	e, err := a.entries.Get(ctx, args[0])
	if err != nil {
		return err
	}
	a.router.Navigate(session.ViewDetail)
	a.println(renderEntry(e))
	return nil
}

// Delete removes an entry after confirmation.
func (a *App) Delete(ctx context.Context, args []string) error {
	if err := a.guard.Require(ctx); err != nil {
		return err
	}
	id := args[0]

	ok, err := confirm(a.reader, fmt.Sprintf("Delete entry %s?", id), a.out)
	if err != nil || !ok {
		return err
	}
	if err := a.entries.Delete(ctx, id); err != nil {
		return err
	}
	a.router.Navigate(session.ViewList)
	a.println("Deleted.")
	return nil
}

func (a *App) Refresh(ctx context.Context) error {
	list, err := a.entries.Refresh(ctx)
	if err != nil {
		return err
	}
	a.printf("Loaded %d entries.\n", len(list))
	return nil
}

// Analyze classifies the given text, or prompts for it, without saving.
func (a *App) Analyze(ctx context.Context, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		var err error
		if text, err = getMultiline(a.reader, "Text to analyze", a.out, nil); err != nil {
			return err
		}
	}

	m, src, err := a.analyzer.Analyze(ctx, text)
	if err != nil {
		return err
	}
	a.printf("%s [%s]\n", moodStyle(m).Render(moodLabel(m)), src)
	a.printScores(text)
	return nil
}

func (a *App) printScores(text string) {
	scores := mood.New(nil).Scores(text)
	var parts []string
	for _, m := range mood.Scored() {
		if n := scores[m]; n > 0 {
			parts = append(parts, fmt.Sprintf("%s=%d", m, n))
		}
	}
	if len(parts) > 0 {
		a.println(mutedStyle.Render("keywords: " + strings.Join(parts, " ")))
	}
}

// entryLine is the confirmation printed after a save.
func entryLine(e models.Entry) string {
	return fmt.Sprintf("Saved entry %s for %s: %s", e.ID, e.Date, moodLabel(e.Mood))
}
