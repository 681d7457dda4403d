package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository/dao"
)

type GameSessionDAO interface {
	RecordSession(ctx context.Context, actor, sessionID string, donatorIDs []uint, playedAt time.Time) ([]dao.GameSession, error)
	RecentSessionHeads(ctx context.Context, actor string, limit int) ([]dao.SessionHead, error)
	FindBySessionID(ctx context.Context, actor, sessionID string) ([]dao.GameSession, error)
}

type GameSessionRepository struct {
	dao GameSessionDAO
}

func NewGameSessionRepository(dao GameSessionDAO) *GameSessionRepository {
	return &GameSessionRepository{
		dao: dao,
	}
}

func (r *GameSessionRepository) RecordSession(ctx context.Context, actor, sessionID string, donatorIDs []uint, playedAt time.Time) ([]domain.GameSession, error) {
	created, err := r.dao.RecordSession(ctx, actor, sessionID, donatorIDs, playedAt)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RecordSession -> %w", err)
	}

	sessions := make([]domain.GameSession, 0, len(created))
	for _, s := range created {
		sessions = append(sessions, sessionDAOToDomain(s))
	}

	return sessions, nil
}

func (r *GameSessionRepository) RecentSessions(ctx context.Context, actor string, limit int) ([]domain.SessionGroup, error) {
	heads, err := r.dao.RecentSessionHeads(ctx, actor, limit)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RecentSessionHeads -> %w", err)
	}

	groups := make([]domain.SessionGroup, 0, len(heads))
	for _, head := range heads {
		rows, err := r.dao.FindBySessionID(ctx, actor, head.SessionID)
		if err != nil {
			return nil, fmt.Errorf("r.dao.FindBySessionID -> %w", err)
		}

		group := domain.SessionGroup{
			SessionID: head.SessionID,
			PlayedAt:  head.PlayedAt,
		}
		for _, row := range rows {
			group.Donators = append(group.Donators, domain.SessionParticipant{
				Donator:      donatorDAOToDomain(row.Donator),
				CategoryName: row.Donator.Category.Name,
			})
		}

		groups = append(groups, group)
	}

	return groups, nil
}

func sessionDAOToDomain(s dao.GameSession) domain.GameSession {
	return domain.GameSession{
		ID:        s.ID,
		SessionID: s.SessionID,
		DonatorID: s.DonatorID,
		Donator:   donatorDAOToDomain(s.Donator),
		PlayedAt:  s.PlayedAt,
		CreatedBy: s.CreatedBy,
	}
}
