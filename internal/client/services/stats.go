package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/moodiary/internal/calendar"
	"github.com/dmitrijs2005/moodiary/internal/client/cache"
	"github.com/dmitrijs2005/moodiary/internal/client/client"
	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/client/session"
	"golang.org/x/sync/errgroup"
)

// Overview is the profile page: the account and its writing statistics.
type Overview struct {
	Profile    models.Profile
	Summary    calendar.Summary
	DaysJoined int
}

type StatsService interface {
	Overview(ctx context.Context) (Overview, error)
}

type statsService struct {
	client client.Client
	guard  *session.Guard
	cache  *cache.Cache
}

func NewStatsService(c client.Client, guard *session.Guard, entries *cache.Cache) StatsService {
	return &statsService{client: c, guard: guard, cache: entries}
}

// Overview fetches the profile and the entry list concurrently. The entry
// list also refreshes the cache.
func (s *statsService) Overview(ctx context.Context) (Overview, error) {
	if err := s.guard.Require(ctx); err != nil {
		return Overview{}, err
	}

	var (
		profile models.Profile
		entries []models.Entry
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		p, err := s.client.Profile(gctx)
		if err != nil {
			return fmt.Errorf("profile: %w", err)
		}
		profile = p
		return nil
	})
	g.Go(func() error {
		list, err := s.client.ListEntries(gctx)
		if err != nil {
			return fmt.Errorf("list entries: %w", err)
		}
		entries = list
		return nil
	})
	if err := g.Wait(); err != nil {
		return Overview{}, s.guard.HandleRejection(ctx, err)
	}

	s.cache.Replace(entries)
	t := now()
	return Overview{
		Profile:    profile,
		Summary:    calendar.Summarize(entries, t),
		DaysJoined: profile.DaysSince(t),
	}, nil
}
