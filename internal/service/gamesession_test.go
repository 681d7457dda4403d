package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository"
)

// fakeGameSessionRepo reproduces the all-or-nothing decrement the real
// DAO runs inside a transaction: every participant is checked before
// anything is written.
type fakeGameSessionRepo struct {
	donators map[uint]*domain.Donator
	sessions []domain.GameSession
}

func (f *fakeGameSessionRepo) RecordSession(_ context.Context, actor, sessionID string, donatorIDs []uint, playedAt time.Time) ([]domain.GameSession, error) {
	for _, id := range donatorIDs {
		d, ok := f.donators[id]
		if !ok || d.CreatedBy != actor {
			return nil, repository.ErrDonatorNotFound
		}
		if d.TotalGame <= 0 {
			return nil, &NoGamesRemainingError{DonatorID: d.ID, DonatorName: d.Name}
		}
	}

	out := make([]domain.GameSession, 0, len(donatorIDs))
	for _, id := range donatorIDs {
		d := f.donators[id]
		d.TotalGame--

		row := domain.GameSession{
			ID:        uint(len(f.sessions) + 1),
			SessionID: sessionID,
			DonatorID: id,
			PlayedAt:  playedAt,
			CreatedBy: actor,
		}
		f.sessions = append(f.sessions, row)
		out = append(out, row)
	}

	return out, nil
}

func (f *fakeGameSessionRepo) RecentSessions(_ context.Context, actor string, limit int) ([]domain.SessionGroup, error) {
	byID := map[string]*domain.SessionGroup{}
	for _, s := range f.sessions {
		if s.CreatedBy != actor {
			continue
		}
		group, ok := byID[s.SessionID]
		if !ok {
			group = &domain.SessionGroup{SessionID: s.SessionID, PlayedAt: s.PlayedAt}
			byID[s.SessionID] = group
		}
		group.Donators = append(group.Donators, domain.SessionParticipant{Donator: *f.donators[s.DonatorID]})
	}

	groups := make([]domain.SessionGroup, 0, len(byID))
	for _, g := range byID {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].PlayedAt.After(groups[j].PlayedAt) })

	if len(groups) > limit {
		groups = groups[:limit]
	}

	return groups, nil
}

func newGameSessionFixture() (*GameSessionService, *fakeGameSessionRepo) {
	repo := &fakeGameSessionRepo{donators: map[uint]*domain.Donator{
		1: {ID: 1, Name: "Alice", TotalGame: 3, CreatedBy: "streamer@example.com"},
		2: {ID: 2, Name: "Bob", TotalGame: 1, CreatedBy: "streamer@example.com"},
		3: {ID: 3, Name: "Carol", TotalGame: 0, CreatedBy: "streamer@example.com"},
	}}

	return NewGameSessionService(repo), repo
}

func TestGameSessionService_RecordSession(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	t.Run("requires an actor", func(t *testing.T) {
		svc, _ := newGameSessionFixture()

		_, err := svc.RecordSession(ctx, "", []uint{1})

		require.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("rejects an empty roster", func(t *testing.T) {
		svc, _ := newGameSessionFixture()

		_, err := svc.RecordSession(ctx, actor, nil)
		require.ErrorIs(t, err, ErrEmptyRoster)

		_, err = svc.RecordSession(ctx, actor, []uint{})
		require.ErrorIs(t, err, ErrEmptyRoster)
	})

	t.Run("rejects more participants than roster positions", func(t *testing.T) {
		svc, _ := newGameSessionFixture()

		_, err := svc.RecordSession(ctx, actor, []uint{1, 2, 3, 4, 5})

		require.ErrorIs(t, err, ErrRosterTooLarge)
	})

	t.Run("duplicate ids count once", func(t *testing.T) {
		svc, repo := newGameSessionFixture()

		sessions, err := svc.RecordSession(ctx, actor, []uint{1, 1, 1})

		require.NoError(t, err)
		require.Len(t, sessions, 1)
		assert.Equal(t, 2, repo.donators[1].TotalGame)
	})

	t.Run("participants share one session id and each loses one game", func(t *testing.T) {
		svc, repo := newGameSessionFixture()

		sessions, err := svc.RecordSession(ctx, actor, []uint{1, 2})

		require.NoError(t, err)
		require.Len(t, sessions, 2)
		assert.NotEmpty(t, sessions[0].SessionID)
		assert.Equal(t, sessions[0].SessionID, sessions[1].SessionID)
		assert.Equal(t, 2, repo.donators[1].TotalGame)
		assert.Equal(t, 0, repo.donators[2].TotalGame)
	})

	t.Run("distinct recordings get distinct session ids", func(t *testing.T) {
		svc, _ := newGameSessionFixture()

		first, err := svc.RecordSession(ctx, actor, []uint{1})
		require.NoError(t, err)
		second, err := svc.RecordSession(ctx, actor, []uint{1})
		require.NoError(t, err)

		assert.NotEqual(t, first[0].SessionID, second[0].SessionID)
	})

	t.Run("a drained participant blocks the whole batch", func(t *testing.T) {
		svc, repo := newGameSessionFixture()

		_, err := svc.RecordSession(ctx, actor, []uint{1, 3})

		var noGames *NoGamesRemainingError
		require.ErrorAs(t, err, &noGames)
		assert.Equal(t, uint(3), noGames.DonatorID)
		assert.Equal(t, "Carol", noGames.DonatorName)

		// Nothing was written and no counter moved.
		assert.Empty(t, repo.sessions)
		assert.Equal(t, 3, repo.donators[1].TotalGame)
	})
}

func TestGameSessionService_GetRecentSessions(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	t.Run("requires an actor", func(t *testing.T) {
		svc, _ := newGameSessionFixture()

		_, err := svc.GetRecentSessions(ctx, "", 5)

		require.ErrorIs(t, err, ErrAuthRequired)
	})

	t.Run("returns newest sessions first, capped at the limit", func(t *testing.T) {
		svc, repo := newGameSessionFixture()
		base := time.Date(2026, time.August, 1, 20, 0, 0, 0, time.UTC)
		repo.sessions = []domain.GameSession{
			{ID: 1, SessionID: "s-old", DonatorID: 1, PlayedAt: base, CreatedBy: actor},
			{ID: 2, SessionID: "s-new", DonatorID: 1, PlayedAt: base.Add(time.Hour), CreatedBy: actor},
			{ID: 3, SessionID: "s-new", DonatorID: 2, PlayedAt: base.Add(time.Hour), CreatedBy: actor},
		}

		groups, err := svc.GetRecentSessions(ctx, actor, 1)

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, "s-new", groups[0].SessionID)
		assert.Len(t, groups[0].Donators, 2)
	})

	t.Run("a non-positive limit falls back to the default", func(t *testing.T) {
		svc, repo := newGameSessionFixture()
		base := time.Date(2026, time.August, 1, 20, 0, 0, 0, time.UTC)
		for i := 0; i < 15; i++ {
			repo.sessions = append(repo.sessions, domain.GameSession{
				ID:        uint(i + 1),
				SessionID: string(rune('a' + i)),
				DonatorID: 1,
				PlayedAt:  base.Add(time.Duration(i) * time.Minute),
				CreatedBy: actor,
			})
		}

		groups, err := svc.GetRecentSessions(ctx, actor, 0)

		require.NoError(t, err)
		assert.Len(t, groups, defaultRecentSessionLimit)
	})
}
