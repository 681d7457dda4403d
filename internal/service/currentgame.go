package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

var ErrInvalidPosition = errors.New("position must be between 1 and 4")

type CurrentGameRepository interface {
	FindAll(ctx context.Context, actor string) ([]domain.CurrentGameSlot, error)
	Assign(ctx context.Context, actor string, donatorID uint, position int) (domain.CurrentGameSlot, error)
	Delete(ctx context.Context, actor string, id uint) error
	DeleteAll(ctx context.Context, actor string) error
}

// SlotDonatorFinder resolves the donator being placed on the roster so
// foreign or unknown donators are rejected before any slot is touched.
type SlotDonatorFinder interface {
	FindByID(ctx context.Context, actor string, id uint) (domain.Donator, error)
}

// CurrentGameService keeps the four-position roster of active players.
// For one actor a donator occupies at most one position and a position
// holds at most one donator; assigning over either evicts the old row.
type CurrentGameService struct {
	repo     CurrentGameRepository
	donators SlotDonatorFinder
}

func NewCurrentGameService(repo CurrentGameRepository, donators SlotDonatorFinder) *CurrentGameService {
	return &CurrentGameService{
		repo:     repo,
		donators: donators,
	}
}

// ListSlots returns the occupied slots ordered by position. The result
// is sparse; positions without a row are empty.
func (s *CurrentGameService) ListSlots(ctx context.Context, actor string) ([]domain.CurrentGameSlot, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	slots, err := s.repo.FindAll(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return slots, nil
}

func (s *CurrentGameService) AssignSlot(ctx context.Context, actor string, donatorID uint, position int) (domain.CurrentGameSlot, error) {
	if actor == "" {
		return domain.CurrentGameSlot{}, ErrAuthRequired
	}
	if position < domain.MinSlotPosition || position > domain.MaxSlotPosition {
		return domain.CurrentGameSlot{}, ErrInvalidPosition
	}

	if _, err := s.donators.FindByID(ctx, actor, donatorID); err != nil {
		return domain.CurrentGameSlot{}, fmt.Errorf("s.donators.FindByID -> %w", err)
	}

	slot, err := s.repo.Assign(ctx, actor, donatorID, position)
	if err != nil {
		return domain.CurrentGameSlot{}, fmt.Errorf("s.repo.Assign -> %w", err)
	}

	return slot, nil
}

func (s *CurrentGameService) UnassignSlot(ctx context.Context, actor string, slotID uint) error {
	if actor == "" {
		return ErrAuthRequired
	}

	if err := s.repo.Delete(ctx, actor, slotID); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

func (s *CurrentGameService) ClearSlots(ctx context.Context, actor string) error {
	if actor == "" {
		return ErrAuthRequired
	}

	if err := s.repo.DeleteAll(ctx, actor); err != nil {
		return fmt.Errorf("s.repo.DeleteAll -> %w", err)
	}

	return nil
}
