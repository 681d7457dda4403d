package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository/dao"
)

var ErrDonatorNotFound = dao.ErrDonatorNotFound

type DonatorDAO interface {
	InsertWithHistory(ctx context.Context, donator dao.Donator, history dao.DonationHistory) (dao.Donator, error)
	FindByID(ctx context.Context, actor string, id uint) (dao.Donator, error)
	FindAllByActor(ctx context.Context, actor string) ([]dao.Donator, error)
	FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]dao.Donator, error)
	Update(ctx context.Context, donator dao.Donator) (dao.Donator, error)
	AddGames(ctx context.Context, actor string, id uint, gamesToAdd int) (dao.Donator, error)
	Delete(ctx context.Context, actor string, id uint) error
}

type DonatorRepository struct {
	dao DonatorDAO
}

func NewDonatorRepository(dao DonatorDAO) *DonatorRepository {
	return &DonatorRepository{
		dao: dao,
	}
}

func (r *DonatorRepository) Create(ctx context.Context, donator domain.Donator) (domain.Donator, error) {
	history := dao.DonationHistory{
		Amount:     donator.TotalDonation,
		EventType:  string(domain.DonationEventNewDonator),
		GamesAdded: donator.TotalGame,
		CreatedBy:  donator.CreatedBy,
	}

	created, err := r.dao.InsertWithHistory(ctx, dao.Donator{
		Name:          donator.Name,
		CategoryID:    donator.CategoryID,
		TotalGame:     donator.TotalGame,
		TotalDonation: donator.TotalDonation,
		CreatedBy:     donator.CreatedBy,
		UpdatedBy:     donator.UpdatedBy,
	}, history)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("r.dao.InsertWithHistory -> %w", err)
	}

	return donatorDAOToDomain(created), nil
}

func (r *DonatorRepository) FindByID(ctx context.Context, actor string, id uint) (domain.Donator, error) {
	found, err := r.dao.FindByID(ctx, actor, id)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return donatorDAOToDomain(found), nil
}

func (r *DonatorRepository) FindAll(ctx context.Context, actor string) ([]domain.Donator, error) {
	found, err := r.dao.FindAllByActor(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByActor -> %w", err)
	}

	donators := make([]domain.Donator, 0, len(found))
	for _, d := range found {
		donators = append(donators, donatorDAOToDomain(d))
	}

	return donators, nil
}

func (r *DonatorRepository) FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.Donator, error) {
	found, err := r.dao.FindByDateRange(ctx, actor, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDateRange -> %w", err)
	}

	donators := make([]domain.Donator, 0, len(found))
	for _, d := range found {
		donators = append(donators, donatorDAOToDomain(d))
	}

	return donators, nil
}

func (r *DonatorRepository) Update(ctx context.Context, donator domain.Donator) (domain.Donator, error) {
	updated, err := r.dao.Update(ctx, dao.Donator{
		ID:            donator.ID,
		Name:          donator.Name,
		CategoryID:    donator.CategoryID,
		TotalGame:     donator.TotalGame,
		TotalDonation: donator.TotalDonation,
		CreatedBy:     donator.CreatedBy,
		UpdatedBy:     donator.UpdatedBy,
	})
	if err != nil {
		return domain.Donator{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return donatorDAOToDomain(updated), nil
}

func (r *DonatorRepository) AddGames(ctx context.Context, actor string, id uint, gamesToAdd int) (domain.Donator, error) {
	updated, err := r.dao.AddGames(ctx, actor, id, gamesToAdd)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("r.dao.AddGames -> %w", err)
	}

	return donatorDAOToDomain(updated), nil
}

func (r *DonatorRepository) Delete(ctx context.Context, actor string, id uint) error {
	if err := r.dao.Delete(ctx, actor, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func donatorDAOToDomain(d dao.Donator) domain.Donator {
	return domain.Donator{
		ID:            d.ID,
		Name:          d.Name,
		CategoryID:    d.CategoryID,
		Category:      categoryDAOToDomain(d.Category),
		TotalGame:     d.TotalGame,
		TotalDonation: d.TotalDonation,
		CreatedBy:     d.CreatedBy,
		UpdatedBy:     d.UpdatedBy,
		CreatedAt:     d.CreatedAt,
		UpdatedAt:     d.UpdatedAt,
	}
}
