// Package mood defines the fixed mood enumeration used to tag diary entries,
// the keyword lexicon, and the keyword-based classifier that maps free text to
// a mood.
package mood

import "strings"

// Mood is one of the seven labels an entry can carry.
type Mood string

const (
	Happy   Mood = "happy"
	Sad     Mood = "sad"
	Angry   Mood = "angry"
	Excited Mood = "excited"
	Relaxed Mood = "relaxed"
	Focused Mood = "focused"
	Neutral Mood = "neutral"
)

var all = [...]Mood{Happy, Sad, Angry, Excited, Relaxed, Focused, Neutral}

// All returns every mood in enumeration order. Neutral is last.
func All() []Mood {
	out := make([]Mood, len(all))
	copy(out, all[:])
	return out
}

// Scored returns the moods the classifier scores, in scan order.
// Neutral is never scored; it is the fallback.
func Scored() []Mood {
	out := make([]Mood, len(all)-1)
	copy(out, all[:len(all)-1])
	return out
}

// Valid reports whether m is part of the enumeration.
func (m Mood) Valid() bool {
	for _, x := range all {
		if x == m {
			return true
		}
	}
	return false
}

func (m Mood) String() string { return string(m) }

// aliases maps labels produced by the backend analyser and older clients to
// the canonical enumeration.
var aliases = map[string]Mood{
	"happy":        Happy,
	"joy":          Happy,
	"sad":          Sad,
	"depressed":    Sad,
	"angry":        Angry,
	"frustrated":   Angry,
	"excited":      Excited,
	"relaxed":      Relaxed,
	"calm":         Relaxed,
	"focused":      Focused,
	"concentrated": Focused,
	"neutral":      Neutral,

	"행복": Happy,
	"기쁨": Happy,
	"슬픔": Sad,
	"화남": Angry,
	"분노": Angry,
	"신남": Excited,
	"편안": Relaxed,
	"집중": Focused,
	"평온": Neutral,
}

// Parse resolves a user- or server-supplied label to a Mood. Matching is
// case-insensitive and ignores surrounding whitespace.
func Parse(label string) (Mood, bool) {
	m, ok := aliases[strings.ToLower(strings.TrimSpace(label))]
	return m, ok
}

// Normalize is Parse with a fallback: unknown labels become Neutral.
func Normalize(label string) Mood {
	if m, ok := Parse(label); ok {
		return m
	}
	return Neutral
}

var korean = map[Mood]string{
	Happy:   "행복",
	Sad:     "슬픔",
	Angry:   "화남",
	Excited: "신남",
	Relaxed: "편안",
	Focused: "집중",
	Neutral: "평온",
}

var emoji = map[Mood]string{
	Happy:   "😊",
	Sad:     "😢",
	Angry:   "😡",
	Excited: "🎉",
	Relaxed: "😌",
	Focused: "🧐",
	Neutral: "😐",
}

// Korean returns the Korean display name of m.
func Korean(m Mood) string {
	if s, ok := korean[m]; ok {
		return s
	}
	return string(m)
}

// Emoji returns the emoji used to badge m in listings.
func Emoji(m Mood) string {
	if s, ok := emoji[m]; ok {
		return s
	}
	return emoji[Neutral]
}
