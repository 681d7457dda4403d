package dao

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NoGamesRemainingError names the participant that blocked a session
// from being recorded.
type NoGamesRemainingError struct {
	DonatorID   uint
	DonatorName string
}

func (e *NoGamesRemainingError) Error() string {
	return fmt.Sprintf("donator %q has no remaining games", e.DonatorName)
}

type GameSession struct {
	ID uint `gorm:"primaryKey"`

	SessionID string  `gorm:"index;not null"`
	DonatorID uint    `gorm:"not null"`
	Donator   Donator `gorm:"foreignKey:DonatorID"`
	PlayedAt  time.Time `gorm:"index;not null"`

	CreatedBy string `gorm:"index;not null"`
}

type GameSessionDAO struct {
	db *gorm.DB
}

func NewGameSessionDAO(db *gorm.DB) *GameSessionDAO {
	return &GameSessionDAO{
		db: db,
	}
}

// RecordSession writes one row per participant under a shared session
// id and decrements each participant's total_game by one. The whole
// batch runs in a single transaction with the donator rows locked;
// a participant without remaining games rolls back everything.
func (d *GameSessionDAO) RecordSession(ctx context.Context, actor, sessionID string, donatorIDs []uint, playedAt time.Time) ([]GameSession, error) {
	// Lock in a stable order so two overlapping batches cannot deadlock.
	ids := make([]uint, len(donatorIDs))
	copy(ids, donatorIDs)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var sessions []GameSession

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, id := range ids {
			var donator Donator
			result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("created_by = ?", actor).
				First(&donator, id)
			if result.Error != nil {
				if errors.Is(result.Error, gorm.ErrRecordNotFound) {
					return ErrDonatorNotFound
				}

				return result.Error
			}

			if donator.TotalGame <= 0 {
				return &NoGamesRemainingError{DonatorID: donator.ID, DonatorName: donator.Name}
			}

			if err := tx.Model(&donator).Updates(map[string]interface{}{
				"total_game": donator.TotalGame - 1,
				"updated_by": actor,
			}).Error; err != nil {
				return err
			}

			session := GameSession{
				SessionID: sessionID,
				DonatorID: donator.ID,
				PlayedAt:  playedAt,
				CreatedBy: actor,
			}
			if err := tx.Create(&session).Error; err != nil {
				return err
			}

			sessions = append(sessions, session)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return sessions, nil
}

type SessionHead struct {
	SessionID string
	PlayedAt  time.Time
}

// RecentSessionHeads returns the latest distinct session ids for the
// actor, newest play first, capped at limit.
func (d *GameSessionDAO) RecentSessionHeads(ctx context.Context, actor string, limit int) ([]SessionHead, error) {
	var heads []SessionHead

	result := d.db.WithContext(ctx).
		Model(&GameSession{}).
		Select("session_id, MAX(played_at) AS played_at").
		Where("created_by = ?", actor).
		Group("session_id").
		Order("MAX(played_at) DESC").
		Limit(limit).
		Scan(&heads)
	if result.Error != nil {
		return nil, result.Error
	}

	return heads, nil
}

func (d *GameSessionDAO) FindBySessionID(ctx context.Context, actor, sessionID string) ([]GameSession, error) {
	var sessions []GameSession

	result := d.db.WithContext(ctx).
		Preload("Donator").
		Preload("Donator.Category").
		Where("created_by = ? AND session_id = ?", actor, sessionID).
		Find(&sessions)
	if result.Error != nil {
		return nil, result.Error
	}

	return sessions, nil
}
