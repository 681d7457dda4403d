package repository

import (
	"context"
	"fmt"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository/dao"
)

type CurrentGameDAO interface {
	FindAllByActor(ctx context.Context, actor string) ([]dao.CurrentGameSlot, error)
	Assign(ctx context.Context, actor string, donatorID uint, position int) (dao.CurrentGameSlot, error)
	Delete(ctx context.Context, actor string, id uint) error
	DeleteAllByActor(ctx context.Context, actor string) error
}

type CurrentGameRepository struct {
	dao CurrentGameDAO
}

func NewCurrentGameRepository(dao CurrentGameDAO) *CurrentGameRepository {
	return &CurrentGameRepository{
		dao: dao,
	}
}

func (r *CurrentGameRepository) FindAll(ctx context.Context, actor string) ([]domain.CurrentGameSlot, error) {
	found, err := r.dao.FindAllByActor(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByActor -> %w", err)
	}

	slots := make([]domain.CurrentGameSlot, 0, len(found))
	for _, s := range found {
		slots = append(slots, slotDAOToDomain(s))
	}

	return slots, nil
}

func (r *CurrentGameRepository) Assign(ctx context.Context, actor string, donatorID uint, position int) (domain.CurrentGameSlot, error) {
	created, err := r.dao.Assign(ctx, actor, donatorID, position)
	if err != nil {
		return domain.CurrentGameSlot{}, fmt.Errorf("r.dao.Assign -> %w", err)
	}

	return slotDAOToDomain(created), nil
}

func (r *CurrentGameRepository) Delete(ctx context.Context, actor string, id uint) error {
	if err := r.dao.Delete(ctx, actor, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CurrentGameRepository) DeleteAll(ctx context.Context, actor string) error {
	if err := r.dao.DeleteAllByActor(ctx, actor); err != nil {
		return fmt.Errorf("r.dao.DeleteAllByActor -> %w", err)
	}

	return nil
}

func slotDAOToDomain(s dao.CurrentGameSlot) domain.CurrentGameSlot {
	return domain.CurrentGameSlot{
		ID:        s.ID,
		DonatorID: s.DonatorID,
		Donator:   donatorDAOToDomain(s.Donator),
		Position:  s.Position,
		CreatedBy: s.CreatedBy,
		CreatedAt: s.CreatedAt,
	}
}
