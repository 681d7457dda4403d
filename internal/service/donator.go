package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository"
)

var (
	ErrDonatorNotFound   = repository.ErrDonatorNotFound
	ErrInvalidGamesToAdd = errors.New("games to add must be at least 1")
	ErrNegativeGames     = errors.New("total games must not be negative")
)

type DonatorRepository interface {
	Create(ctx context.Context, donator domain.Donator) (domain.Donator, error)
	FindByID(ctx context.Context, actor string, id uint) (domain.Donator, error)
	FindAll(ctx context.Context, actor string) ([]domain.Donator, error)
	FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.Donator, error)
	Update(ctx context.Context, donator domain.Donator) (domain.Donator, error)
	AddGames(ctx context.Context, actor string, id uint, gamesToAdd int) (domain.Donator, error)
	Delete(ctx context.Context, actor string, id uint) error
}

type DonatorService struct {
	repo       DonatorRepository
	categories CategoryRepository
}

func NewDonatorService(repo DonatorRepository, categories CategoryRepository) *DonatorService {
	return &DonatorService{
		repo:       repo,
		categories: categories,
	}
}

func (s *DonatorService) ListDonators(ctx context.Context, actor string) ([]domain.Donator, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	donators, err := s.repo.FindAll(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return donators, nil
}

func (s *DonatorService) GetDonator(ctx context.Context, actor string, id uint) (domain.Donator, error) {
	if actor == "" {
		return domain.Donator{}, ErrAuthRequired
	}

	donator, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return donator, nil
}

// CreateDonator derives total_donation from the initial game count and
// the category's current price, then writes the donator together with
// its new_donator ledger entry.
func (s *DonatorService) CreateDonator(ctx context.Context, actor string, donator domain.Donator) (domain.Donator, error) {
	if actor == "" {
		return domain.Donator{}, ErrAuthRequired
	}
	if donator.TotalGame < 0 {
		return domain.Donator{}, ErrNegativeGames
	}

	category, err := s.categories.FindByID(ctx, actor, donator.CategoryID)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("s.categories.FindByID -> %w", err)
	}

	donator.TotalDonation = int64(donator.TotalGame) * category.Price
	donator.CreatedBy = actor
	donator.UpdatedBy = actor

	created, err := s.repo.Create(ctx, donator)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

// UpdateDonator recomputes total_donation from scratch against the
// category's current price. The recompute is intentionally not
// incremental: setting total_game from 3 to 5 at price 15000 yields
// 75000, not 45000 plus the delta.
func (s *DonatorService) UpdateDonator(ctx context.Context, actor string, donator domain.Donator) (domain.Donator, error) {
	if actor == "" {
		return domain.Donator{}, ErrAuthRequired
	}
	if donator.TotalGame < 0 {
		return domain.Donator{}, ErrNegativeGames
	}

	category, err := s.categories.FindByID(ctx, actor, donator.CategoryID)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("s.categories.FindByID -> %w", err)
	}

	donator.TotalDonation = int64(donator.TotalGame) * category.Price
	donator.CreatedBy = actor
	donator.UpdatedBy = actor

	updated, err := s.repo.Update(ctx, donator)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *DonatorService) AddGames(ctx context.Context, actor string, id uint, gamesToAdd int) (domain.Donator, error) {
	if actor == "" {
		return domain.Donator{}, ErrAuthRequired
	}
	if gamesToAdd < 1 {
		return domain.Donator{}, ErrInvalidGamesToAdd
	}

	updated, err := s.repo.AddGames(ctx, actor, id, gamesToAdd)
	if err != nil {
		return domain.Donator{}, fmt.Errorf("s.repo.AddGames -> %w", err)
	}

	return updated, nil
}

func (s *DonatorService) DeleteDonator(ctx context.Context, actor string, id uint) error {
	if actor == "" {
		return ErrAuthRequired
	}

	if err := s.repo.Delete(ctx, actor, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// GetDonationsByDateRange reshapes donators created in the range into
// flat chart points.
func (s *DonatorService) GetDonationsByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.DonationPoint, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	donators, err := s.repo.FindByDateRange(ctx, actor, start, end)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDateRange -> %w", err)
	}

	points := make([]domain.DonationPoint, 0, len(donators))
	for _, d := range donators {
		points = append(points, domain.DonationPoint{
			ID:           d.ID,
			Amount:       d.TotalDonation,
			CreatedAt:    d.CreatedAt,
			DonatorName:  d.Name,
			CategoryName: d.Category.Name,
			CreatedBy:    d.CreatedBy,
		})
	}

	return points, nil
}
