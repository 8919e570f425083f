package session

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/moodiary/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNav struct {
	current View
	visits  []View
}

func (f *fakeNav) Current() View { return f.current }

func (f *fakeNav) Navigate(v View) {
	f.current = v
	f.visits = append(f.visits, v)
}

type failingStore struct{ MemoryStore }

func (f *failingStore) Load(context.Context) (Session, error) {
	return Session{}, errors.New("disk gone")
}

func TestGuard_NoTokenRedirectsToLogin(t *testing.T) {
	ctx := context.Background()
	nav := &fakeNav{current: ViewCalendar}
	g := NewGuard(NewMemoryStore(), nav, nil)

	assert.False(t, g.IsAuthenticated(ctx))

	err := g.Require(ctx)
	require.ErrorIs(t, err, common.ErrLoginRequired)
	assert.Equal(t, ViewLogin, nav.current)
}

func TestGuard_RequirePassesWithToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	require.NoError(t, store.Save(ctx, Session{Token: "t"}))
	nav := &fakeNav{current: ViewCalendar}

	g := NewGuard(store, nav, nil)
	assert.True(t, g.IsAuthenticated(ctx))
	require.NoError(t, g.Require(ctx))
	assert.Empty(t, nav.visits)
}

func TestGuard_StoreFailureIsUnauthenticated(t *testing.T) {
	g := NewGuard(&failingStore{}, &fakeNav{}, nil)
	assert.False(t, g.IsAuthenticated(context.Background()))
}

func TestGuard_HandleRejection(t *testing.T) {
	rejected := fmt.Errorf("list entries: %w", common.ErrUnauthorized)

	tests := []struct {
		name      string
		view      View
		err       error
		wantClear bool
	}{
		{"unauthorized on calendar", ViewCalendar, rejected, true},
		{"unauthorized on compose", ViewCompose, rejected, true},
		{"unauthorized on login", ViewLogin, rejected, false},
		{"unauthorized on register", ViewRegister, rejected, false},
		{"other error", ViewCalendar, common.ErrServer, false},
		{"nil", ViewCalendar, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := NewMemoryStore()
			require.NoError(t, store.Save(ctx, sample()))
			nav := &fakeNav{current: tt.view}

			got := NewGuard(store, nav, nil).HandleRejection(ctx, tt.err)
			assert.Equal(t, tt.err, got)

			s, _ := store.Load(ctx)
			if tt.wantClear {
				assert.False(t, s.Authenticated())
				assert.Equal(t, ViewLogin, nav.current)
			} else {
				assert.True(t, s.Authenticated())
				assert.Empty(t, nav.visits)
			}
		})
	}
}
