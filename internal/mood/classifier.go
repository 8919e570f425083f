package mood

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Lexicon maps a mood to its substring keywords. Keywords must be lower-case.
type Lexicon map[Mood][]string

// DefaultLexicon is the built-in keyword set: Korean stems plus a handful of
// English stems. No keyword of one mood is a substring of another mood's
// keyword.
var DefaultLexicon = Lexicon{
	Happy:   {"행복", "좋", "기쁘", "기뻐", "즐거", "웃", "감사", "만족", "사랑", "happy", "glad", "joy"},
	Sad:     {"슬프", "슬픔", "우울", "눈물", "울었", "외롭", "속상", "힘들", "그립", "sad", "cry", "lonely"},
	Angry:   {"화나", "화났", "짜증", "분노", "열받", "억울", "싫", "angry", "annoy", "furious"},
	Excited: {"신나", "신났", "설레", "두근", "기대", "흥분", "최고", "excit", "thrill"},
	Relaxed: {"편안", "여유", "휴식", "평화", "느긋", "힐링", "산책", "relax", "calm", "chill"},
	Focused: {"집중", "공부", "몰입", "열심", "목표", "계획", "focus", "study", "concentrat"},
}

// Classifier scores text against a lexicon. The zero value uses
// DefaultLexicon.
type Classifier struct {
	lexicon Lexicon
}

// New returns a Classifier over lex. A nil lex selects DefaultLexicon.
func New(lex Lexicon) *Classifier {
	return &Classifier{lexicon: lex}
}

func (c *Classifier) lex() Lexicon {
	if c == nil || c.lexicon == nil {
		return DefaultLexicon
	}
	return c.lexicon
}

// Scores returns the keyword hit count for every scored mood.
func (c *Classifier) Scores(content string) map[Mood]int {
	lex := c.lex()
	haystack := lower(content)

	scores := make(map[Mood]int, len(all)-1)
	for _, m := range Scored() {
		n := 0
		if haystack != "" {
			for _, kw := range lex[m] {
				if kw == "" {
					continue
				}
				n += strings.Count(haystack, kw)
			}
		}
		scores[m] = n
	}
	return scores
}

// Classify returns the mood with the highest keyword count. Moods are
// scanned in Scored order and only a strictly greater count replaces the
// current best, so ties go to the earlier mood. No hits yields Neutral.
func (c *Classifier) Classify(content string) Mood {
	if strings.TrimSpace(content) == "" {
		return Neutral
	}

	scores := c.Scores(content)
	best, max := Neutral, 0
	for _, m := range Scored() {
		if scores[m] > max {
			best, max = m, scores[m]
		}
	}
	return best
}

var defaultClassifier = New(nil)

// Classify runs the default classifier.
func Classify(content string) Mood {
	return defaultClassifier.Classify(content)
}

// ClassifyValue classifies v when it is a string (or a *string); any other
// value is treated as empty content.
func ClassifyValue(v any) Mood {
	switch s := v.(type) {
	case string:
		return Classify(s)
	case *string:
		if s != nil {
			return Classify(*s)
		}
	}
	return Neutral
}

// lower folds text with Unicode-aware rules. A Caser is not safe for
// concurrent use, so one is built per call.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}
