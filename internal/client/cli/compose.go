package cli

import (
	"context"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/dmitrijs2005/moodiary/internal/client/services"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// suggestion holds the latest mood the analyser produced for a given text.
type suggestion struct {
	mu      sync.Mutex
	content string
	mood    mood.Mood
	source  services.Source
	ok      bool
}

func (s *suggestion) set(content string, m mood.Mood, src services.Source) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.content, s.mood, s.source, s.ok = content, m, src, true
}

// get returns the suggestion only when it was made for content.
func (s *suggestion) get(content string) (mood.Mood, services.Source, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ok || s.content != content {
		return "", "", false
	}
	return s.mood, s.source, true
}

// autoAnalyze schedules a debounced classification of text when automatic
// analysis is on and text is long enough.
func (a *App) autoAnalyze(text string, sugg *suggestion) {
	if !a.config.AutoAnalyze || utf8.RuneCountInString(text) < a.config.AnalyzeMinLength {
		return
	}
	a.debounce.Trigger(func(ctx context.Context) {
		m, src, err := a.analyzer.Analyze(ctx, text)
		if err != nil {
			a.log.Debug(ctx, "auto analysis skipped", "error", err)
			return
		}
		sugg.set(text, m, src)
		a.println(mutedStyle.Render("  mood so far: " + moodLabel(m)))
	})
}

// suggest returns the debounced suggestion for content, or classifies it now.
func (a *App) suggest(ctx context.Context, content string, sugg *suggestion) (mood.Mood, error) {
	a.debounce.Cancel()
	if m, _, ok := sugg.get(content); ok {
		return m, nil
	}
	m, _, err := a.analyzer.Analyze(ctx, content)
	return m, err
}

// askMood prompts for a mood with def as the Enter default. "auto" is
// returned as the empty mood.
func (a *App) askMood(def mood.Mood, allowAuto bool) (mood.Mood, error) {
	prompt := "Mood [" + string(def) + "] (" + moodNames() + ")"
	if allowAuto {
		prompt += ", or 'auto' to classify again"
	}
	answer, err := getSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return "", err
	}
	switch {
	case answer == "":
		return def, nil
	case allowAuto && strings.EqualFold(answer, "auto"):
		return "", nil
	}
	m, ok := mood.Parse(answer)
	if !ok {
		v := &common.ValidationError{}
		v.Add("mood", "is not a known mood")
		return "", v
	}
	return m, nil
}

func moodNames() string {
	names := make([]string, 0, len(mood.All()))
	for _, m := range mood.All() {
		names = append(names, string(m))
	}
	return strings.Join(names, ", ")
}

// New runs the compose view: title, optional date, content with a debounced
// mood suggestion, then the mood itself.
func (a *App) New(ctx context.Context) error {
	if err := a.guard.Require(ctx); err != nil {
		return err
	}
	a.router.Navigate(session.ViewCompose)

	var (
		in  services.EntryInput
		err error
	)
	if in.Title, err = getSimpleText(a.reader, "Title", a.out); err != nil {
		return err
	}
	if in.Date, err = getSimpleText(a.reader, "Date (YYYY-MM-DD, Enter for today)", a.out); err != nil {
		return err
	}

	sugg := &suggestion{}
	in.Content, err = getMultiline(a.reader, "How was your day?", a.out, func(text string) {
		a.autoAnalyze(text, sugg)
	})
	if err != nil {
		return err
	}
	if strings.TrimSpace(in.Content) == "" {
		v := &common.ValidationError{}
		v.Add("content", "is required")
		return v
	}

	suggested, err := a.suggest(ctx, in.Content, sugg)
	if err != nil {
		return err
	}
	if in.Mood, err = a.askMood(suggested, false); err != nil {
		return err
	}

	e, err := a.entries.Create(ctx, in)
	if err != nil {
		return err
	}
	a.router.Navigate(session.ViewDetail)
	a.println(entryLine(e))
	return nil
}

// Edit updates an entry. Empty answers keep the current title and content.
func (a *App) Edit(ctx context.Context, args []string) error {
	current, err := a.entries.Get(ctx, args[0])
	if err != nil {
		return err
	}
	a.router.Navigate(session.ViewCompose)
	a.println(renderEntry(current))

	in := services.EntryInput{Title: current.Title, Content: current.Content}
	title, err := getSimpleText(a.reader, "Title (Enter to keep)", a.out)
	if err != nil {
		return err
	}
	if title != "" {
		in.Title = title
	}

	sugg := &suggestion{}
	content, err := getMultiline(a.reader, "Content (empty to keep)", a.out, func(text string) {
		a.autoAnalyze(text, sugg)
	})
	if err != nil {
		return err
	}
	if content != "" {
		in.Content = content
	}

	if in.Mood, err = a.askMood(current.Mood, true); err != nil {
		return err
	}
	if in.Mood == "" {
		if in.Mood, err = a.suggest(ctx, in.Content, sugg); err != nil {
			return err
		}
	}
	a.debounce.Cancel()

	e, err := a.entries.Update(ctx, current.ID, in)
	if err != nil {
		return err
	}
	a.router.Navigate(session.ViewDetail)
	a.println(entryLine(e))
	return nil
}
