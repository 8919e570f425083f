package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/logging"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// Source tells where a classification came from.
type Source string

const (
	SourceLocal  Source = "local"
	SourceRemote Source = "remote"
)

// Analyzer classifies entry content.
type Analyzer interface {
	Analyze(ctx context.Context, content string) (mood.Mood, Source, error)
}

type analyzer struct {
	client     client.Client
	guard      *session.Guard
	classifier *mood.Classifier
	remote     bool
	intensity  string
	log        logging.Logger
}

// NewAnalyzer returns an Analyzer. With remote set it asks the backend first
// and falls back to the local classifier; otherwise it is local only.
func NewAnalyzer(c client.Client, guard *session.Guard, classifier *mood.Classifier, remote bool, intensity string, log logging.Logger) Analyzer {
	if log == nil {
		log = logging.Nop()
	}
	return &analyzer{client: c, guard: guard, classifier: classifier, remote: remote, intensity: intensity, log: log}
}

func (a *analyzer) Analyze(ctx context.Context, content string) (mood.Mood, Source, error) {
	if strings.TrimSpace(content) == "" {
		return mood.Neutral, SourceLocal, nil
	}
	if !a.remote || a.client == nil {
		return a.classifier.Classify(content), SourceLocal, nil
	}

	m, err := a.client.AnalyzeEmotion(ctx, content, a.intensity)
	switch {
	case err == nil:
		return m, SourceRemote, nil
	case errors.Is(err, common.ErrUnauthorized):
		return mood.Neutral, SourceRemote, a.guard.HandleRejection(ctx, fmt.Errorf("analyze: %w", err))
	case ctx.Err() != nil:
		return mood.Neutral, SourceRemote, ctx.Err()
	}

	a.log.Warn(ctx, "remote analysis failed, classifying locally", "error", err)
	return a.classifier.Classify(content), SourceLocal, nil
}
