package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/moodiary/internal/client/cache"
	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/dmitrijs2005/moodiary/internal/logging"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// now is the clock used for default entry dates.
var now = time.Now

// EntryInput is the compose form. Empty Mood means "classify the content";
// empty Date means today.
type EntryInput struct {
	Title   string
	Content string
	Mood    mood.Mood
	Date    string
}

type EntryService interface {
	Refresh(ctx context.Context) ([]models.Entry, error)
	Entries(ctx context.Context) ([]models.Entry, error)
	Get(ctx context.Context, id string) (models.Entry, error)
	Create(ctx context.Context, in EntryInput) (models.Entry, error)
	Update(ctx context.Context, id string, in EntryInput) (models.Entry, error)
	Delete(ctx context.Context, id string) error
}

type entryService struct {
	client    client.Client
	guard     *session.Guard
	cache     *cache.Cache
	intensity string
	log       logging.Logger
}

// NewEntryService returns an EntryService. intensity is forwarded to the
// backend's analyser on create.
func NewEntryService(c client.Client, guard *session.Guard, entries *cache.Cache, intensity string, log logging.Logger) EntryService {
	if log == nil {
		log = logging.Nop()
	}
	return &entryService{client: c, guard: guard, cache: entries, intensity: intensity, log: log}
}

// Refresh replaces the cache with the backend's list.
func (s *entryService) Refresh(ctx context.Context) ([]models.Entry, error) {
	if err := s.guard.Require(ctx); err != nil {
		return nil, err
	}
	list, err := s.client.ListEntries(ctx)
	if err != nil {
		return nil, s.guard.HandleRejection(ctx, fmt.Errorf("list entries: %w", err))
	}
	s.cache.Replace(list)
	s.log.Debug(ctx, "entries refreshed", "count", len(list))
	return s.cache.All(), nil
}

// Entries returns the cached list, fetching it on first use.
func (s *entryService) Entries(ctx context.Context) ([]models.Entry, error) {
	if s.cache.Loaded() {
		if err := s.guard.Require(ctx); err != nil {
			return nil, err
		}
		return s.cache.All(), nil
	}
	return s.Refresh(ctx)
}

// Get serves from the cache and falls back to the backend.
func (s *entryService) Get(ctx context.Context, id string) (models.Entry, error) {
	if err := s.guard.Require(ctx); err != nil {
		return models.Entry{}, err
	}
	if e, ok := s.cache.Get(id); ok {
		return e, nil
	}
	e, err := s.client.GetEntry(ctx, id)
	if err != nil {
		return models.Entry{}, s.guard.HandleRejection(ctx, fmt.Errorf("get entry %s: %w", id, err))
	}
	return e, nil
}

func (s *entryService) validate(in *EntryInput, requireAll bool) error {
	in.Title = strings.TrimSpace(in.Title)
	in.Date = strings.TrimSpace(in.Date)

	v := &common.ValidationError{}
	if requireAll {
		checkRequired(v, "title", in.Title)
		checkRequired(v, "content", in.Content)
	}
	checkDate(v, in.Date)
	if in.Mood != "" && !in.Mood.Valid() {
		v.Add("mood", "is not a known mood")
	}
	return v.Err()
}

func (s *entryService) Create(ctx context.Context, in EntryInput) (models.Entry, error) {
	if err := s.validate(&in, true); err != nil {
		return models.Entry{}, err
	}
	if err := s.guard.Require(ctx); err != nil {
		return models.Entry{}, err
	}

	if in.Date == "" {
		in.Date = now().Format(models.DateLayout)
	}
	if in.Mood == "" {
		in.Mood = mood.Classify(in.Content)
	}

	draft := models.EntryDraft{
		Title: in.Title, Content: in.Content, Mood: in.Mood, Date: in.Date, Intensity: s.intensity,
	}
	created, err := s.client.CreateEntry(ctx, draft)
	if err != nil {
		return models.Entry{}, s.guard.HandleRejection(ctx, fmt.Errorf("create entry: %w", err))
	}

	if created.ID == "" {
		// The backend did not echo the entry; reload to pick it up.
		if _, err := s.Refresh(ctx); err != nil {
			return models.Entry{}, err
		}
		if e, ok := s.cache.ByDate(in.Date); ok {
			return e, nil
		}
		return models.Entry{}, fmt.Errorf("created entry for %s not found: %w", in.Date, common.ErrNotFound)
	}

	s.cache.Add(created)
	return created, nil
}

func (s *entryService) Update(ctx context.Context, id string, in EntryInput) (models.Entry, error) {
	if err := s.validate(&in, false); err != nil {
		return models.Entry{}, err
	}
	if err := s.guard.Require(ctx); err != nil {
		return models.Entry{}, err
	}

	draft := models.EntryDraft{Title: in.Title, Content: in.Content, Mood: in.Mood, Date: in.Date}
	updated, err := s.client.UpdateEntry(ctx, id, draft)
	if err != nil {
		return models.Entry{}, s.guard.HandleRejection(ctx, fmt.Errorf("update entry %s: %w", id, err))
	}
	if updated.ID == "" {
		updated.ID = id
	}
	if !s.cache.Update(updated) {
		s.cache.Add(updated)
	}
	return updated, nil
}

func (s *entryService) Delete(ctx context.Context, id string) error {
	if err := s.guard.Require(ctx); err != nil {
		return err
	}
	if err := s.client.DeleteEntry(ctx, id); err != nil {
		return s.guard.HandleRejection(ctx, fmt.Errorf("delete entry %s: %w", id, err))
	}
	s.cache.Remove(id)
	return nil
}
