package client

import (
	"context"

	"github.com/dmitrijs2005/moodiary/internal/client/models"
	"github.com/dmitrijs2005/moodiary/internal/mood"
)

// Client is the diary backend contract consumed by the services.
type Client interface {
	Login(ctx context.Context, email, password string) (models.Token, error)
	Register(ctx context.Context, r models.Registration) error
	Profile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, username string, u models.ProfileUpdate) error
	DeleteAccount(ctx context.Context, username string) error

	ListEntries(ctx context.Context) ([]models.Entry, error)
	GetEntry(ctx context.Context, id string) (models.Entry, error)
	CreateEntry(ctx context.Context, d models.EntryDraft) (models.Entry, error)
	UpdateEntry(ctx context.Context, id string, d models.EntryDraft) (models.Entry, error)
	DeleteEntry(ctx context.Context, id string) error

	AnalyzeEmotion(ctx context.Context, content, intensity string) (mood.Mood, error)
}
