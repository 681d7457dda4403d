package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository/dao"
)

const defaultRecentSessionLimit = 10

var (
	ErrEmptyRoster    = errors.New("at least one donator is required to record a session")
	ErrRosterTooLarge = fmt.Errorf("a session can have at most %d donators", domain.MaxSlotPosition)
)

// NoGamesRemainingError surfaces the participant that blocked the
// batch; nothing is written when it is returned.
type NoGamesRemainingError = dao.NoGamesRemainingError

type GameSessionRepository interface {
	RecordSession(ctx context.Context, actor, sessionID string, donatorIDs []uint, playedAt time.Time) ([]domain.GameSession, error)
	RecentSessions(ctx context.Context, actor string, limit int) ([]domain.SessionGroup, error)
}

// GameSessionService records play events. All participants of one
// event share a freshly generated session id, and each participant's
// remaining game count drops by exactly one; total_donation is never
// touched here.
type GameSessionService struct {
	repo GameSessionRepository
}

func NewGameSessionService(repo GameSessionRepository) *GameSessionService {
	return &GameSessionService{
		repo: repo,
	}
}

func (s *GameSessionService) RecordSession(ctx context.Context, actor string, donatorIDs []uint) ([]domain.GameSession, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	ids := dedupe(donatorIDs)
	if len(ids) == 0 {
		return nil, ErrEmptyRoster
	}
	if len(ids) > domain.MaxSlotPosition {
		return nil, ErrRosterTooLarge
	}

	sessionID := uuid.NewString()
	playedAt := time.Now().UTC()

	sessions, err := s.repo.RecordSession(ctx, actor, sessionID, ids, playedAt)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RecordSession -> %w", err)
	}

	return sessions, nil
}

func (s *GameSessionService) GetRecentSessions(ctx context.Context, actor string, limit int) ([]domain.SessionGroup, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}
	if limit <= 0 {
		limit = defaultRecentSessionLimit
	}

	groups, err := s.repo.RecentSessions(ctx, actor, limit)
	if err != nil {
		return nil, fmt.Errorf("s.repo.RecentSessions -> %w", err)
	}

	return groups, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
