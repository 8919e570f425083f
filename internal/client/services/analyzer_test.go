package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/mood"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// analyzeOnly is a client.Client whose only working call is AnalyzeEmotion.
type analyzeOnly struct {
	client.Client
	mood  mood.Mood
	err   error
	calls int
}

func (a *analyzeOnly) AnalyzeEmotion(context.Context, string, string) (mood.Mood, error) {
	a.calls++
	return a.mood, a.err
}

func TestAnalyzer_LocalOnly(t *testing.T) {
	fake := &analyzeOnly{mood: mood.Sad}
	a := NewAnalyzer(fake, nil, nil, false, "medium", nil)

	m, src, err := a.Analyze(context.Background(), "오늘 정말 행복하고 좋았다")
	require.NoError(t, err)
	assert.Equal(t, mood.Happy, m)
	assert.Equal(t, SourceLocal, src)
	assert.Zero(t, fake.calls)
}

func TestAnalyzer_BlankSkipsNetwork(t *testing.T) {
	fake := &analyzeOnly{mood: mood.Sad}
	a := NewAnalyzer(fake, nil, nil, true, "medium", nil)

	m, _, err := a.Analyze(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, mood.Neutral, m)
	assert.Zero(t, fake.calls)
}

func TestAnalyzer_RemoteAndFallback(t *testing.T) {
	ctx := context.Background()

	fake := &analyzeOnly{mood: mood.Excited}
	a := NewAnalyzer(fake, nil, nil, true, "medium", nil)
	m, src, err := a.Analyze(ctx, "아무 말")
	require.NoError(t, err)
	assert.Equal(t, mood.Excited, m)
	assert.Equal(t, SourceRemote, src)

	fake.err = fmt.Errorf("boom: %w", common.ErrServer)
	m, src, err = a.Analyze(ctx, "시험 공부에 집중")
	require.NoError(t, err)
	assert.Equal(t, mood.Focused, m)
	assert.Equal(t, SourceLocal, src)
}

func TestAnalyzer_UnauthorizedDoesNotFallBack(t *testing.T) {
	ctx := context.Background()
	store := session.NewMemoryStore()
	require.NoError(t, store.Save(ctx, session.Session{Token: "t"}))
	nav := &fakeNav{current: session.ViewCompose}

	fake := &analyzeOnly{err: fmt.Errorf("x: %w", common.ErrUnauthorized)}
	a := NewAnalyzer(fake, session.NewGuard(store, nav, nil), nil, true, "medium", nil)

	_, _, err := a.Analyze(ctx, "행복")
	require.ErrorIs(t, err, common.ErrUnauthorized)
	assert.Equal(t, session.ViewLogin, nav.current)
}

func TestAnalyzer_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fake := &analyzeOnly{err: context.Canceled}
	a := NewAnalyzer(fake, nil, nil, true, "medium", nil)

	_, _, err := a.Analyze(ctx, "행복")
	require.ErrorIs(t, err, context.Canceled)
}
