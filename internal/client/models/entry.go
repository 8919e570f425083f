// Package models defines the diary client's data types and the explicit wire
// schema used to decode backend payloads.
//
// Every field the backend may omit is decoded through a pointer and then
// defaulted in one place, so callers never deal with partially populated
// payloads.
package models

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// DateLayout is the ISO calendar date layout used for entry dates.
const DateLayout = "2006-01-02"

// Entry is a single dated diary record as cached by the client.
type Entry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Mood      mood.Mood `json:"mood"`
	Date      string    `json:"date"`
	CreatedAt time.Time `json:"created_at"`

	// Written by the backend's analyser; empty when it did not run.
	Empathy  string `json:"empathy_response"`
	Feedback string `json:"feedback"`
}

// EntryDraft is the outbound payload for creating or updating an entry.
type EntryDraft struct {
	Title   string    `json:"title"`
	Content string    `json:"content"`
	Mood    mood.Mood `json:"mood,omitempty"`
	Date    string    `json:"date,omitempty"`

	// Intensity tunes the backend's empathy reply: soft, medium or hard.
	Intensity string `json:"intensity,omitempty"`
}

// FlexID decodes identifiers sent either as JSON numbers or strings.
type FlexID string

func (f *FlexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexID(n.String())
	return nil
}

// entryWire lists every field the backend has been seen to send for an entry.
//
// Defaulting rules:
//   - id: number or string, "" when absent
//   - title, content: "" when absent
//   - mood: "mood" if present, else "emotion_tag", normalised; neutral when both absent
//   - date: "date" if present, else the local calendar date of "created_at", else ""
//   - created_at: zero time when absent or unparsable
//   - empathy_response, feedback: "" when absent
type entryWire struct {
	ID         FlexID  `json:"id"`
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Mood       *string `json:"mood"`
	EmotionTag *string `json:"emotion_tag"`
	Date       *string `json:"date"`
	CreatedAt  *string `json:"created_at"`
	Empathy    *string `json:"empathy_response"`
	Feedback   *string `json:"feedback"`
}

func (w entryWire) entry() Entry {
	e := Entry{
		ID:       string(w.ID),
		Title:    deref(w.Title),
		Content:  deref(w.Content),
		Mood:     mood.Neutral,
		Empathy:  deref(w.Empathy),
		Feedback: deref(w.Feedback),
	}

	switch {
	case w.Mood != nil && strings.TrimSpace(*w.Mood) != "":
		e.Mood = mood.Normalize(*w.Mood)
	case w.EmotionTag != nil:
		e.Mood = mood.Normalize(*w.EmotionTag)
	}

	if w.CreatedAt != nil {
		if ts, ok := ParseTimestamp(*w.CreatedAt); ok {
			e.CreatedAt = ts
		}
	}

	switch {
	case w.Date != nil && strings.TrimSpace(*w.Date) != "":
		e.Date = strings.TrimSpace(*w.Date)
	case !e.CreatedAt.IsZero():
		e.Date = e.CreatedAt.In(time.Local).Format(DateLayout)
	}

	return e
}

// UnmarshalJSON decodes a backend entry payload applying the defaulting
// rules documented on entryWire.
func (e *Entry) UnmarshalJSON(b []byte) error {
	var w entryWire
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*e = w.entry()
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// ParseTimestamp parses backend timestamps. Values without a zone offset are
// produced by the backend in UTC and are read as such.
func ParseTimestamp(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}
