package mood

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    Mood
	}{
		{"happy sentence", "오늘 정말 행복하고 좋았다", Happy},
		{"no keyword", "오늘 아무 일도 없었다", Neutral},
		{"empty", "", Neutral},
		{"whitespace only", "   \n\t ", Neutral},
		{"sad", "너무 우울해서 눈물이 났다", Sad},
		{"angry", "짜증나고 화나는 하루", Angry},
		{"excited", "내일 여행이 너무 설레고 기대된다", Excited},
		{"relaxed", "공원 산책하면서 여유를 즐겼다", Relaxed},
		{"focused", "하루 종일 도서관에서 공부에 집중했다", Focused},
		{"case insensitive english", "I am SO HAPPY today", Happy},
		{"punctuation heavy", "!!!짜증!!!...??", Angry},
		{"mixed language", "study study 그리고 행복", Focused},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.content))
		})
	}
}

func TestClassify_TieGoesToEarlierMood(t *testing.T) {
	// one sad hit, one angry hit
	assert.Equal(t, Sad, Classify("슬프고 화나"))
	// one angry hit, one happy hit: happy is scanned first
	assert.Equal(t, Happy, Classify("짜증 그리고 감사"))
}

func TestClassify_CountsRepeatedKeywords(t *testing.T) {
	// happy once, sad twice
	assert.Equal(t, Sad, Classify("좋은 날이었지만 우울하고 또 우울했다"))
}

func TestClassify_SingleMoodKeywordsYieldThatMood(t *testing.T) {
	for _, m := range Scored() {
		for _, kw := range DefaultLexicon[m] {
			got := Classify("오늘은 " + kw + " 그런 날")
			assert.Equalf(t, m, got, "keyword %q", kw)
		}

		joined := strings.Join(DefaultLexicon[m], " ")
		assert.Equalf(t, m, Classify(joined), "all keywords of %s", m)
	}
}

func TestDefaultLexicon_NoCrossMoodContainment(t *testing.T) {
	for _, a := range Scored() {
		for _, b := range Scored() {
			if a == b {
				continue
			}
			for _, ka := range DefaultLexicon[a] {
				for _, kb := range DefaultLexicon[b] {
					require.Falsef(t, strings.Contains(ka, kb),
						"%s keyword %q contains %s keyword %q", a, ka, b, kb)
				}
			}
		}
	}
}

func TestClassify_Idempotent(t *testing.T) {
	inputs := []string{"", "행복", "오늘 정말 행복하고 좋았다", "random words", "슬프고 화나"}
	for _, in := range inputs {
		assert.Equal(t, Classify(in), Classify(in))
	}
}

func TestScores_CoverEveryScoredMood(t *testing.T) {
	s := New(nil).Scores("행복 행복 공부")
	require.Len(t, s, len(Scored()))
	assert.Equal(t, 2, s[Happy])
	assert.Equal(t, 1, s[Focused])
	assert.Equal(t, 0, s[Sad])
	_, hasNeutral := s[Neutral]
	assert.False(t, hasNeutral)
}

func TestClassifier_CustomLexicon(t *testing.T) {
	c := New(Lexicon{Angry: {"grr"}})
	assert.Equal(t, Angry, c.Classify("GRR grr"))
	assert.Equal(t, Neutral, c.Classify("행복"))
}

func TestClassifier_NilReceiverUsesDefault(t *testing.T) {
	var c *Classifier
	assert.Equal(t, Happy, c.Classify("행복"))
}

func TestClassifyValue(t *testing.T) {
	s := "행복"
	assert.Equal(t, Happy, ClassifyValue(s))
	assert.Equal(t, Happy, ClassifyValue(&s))
	assert.Equal(t, Neutral, ClassifyValue((*string)(nil)))
	assert.Equal(t, Neutral, ClassifyValue(42))
	assert.Equal(t, Neutral, ClassifyValue(nil))
}
