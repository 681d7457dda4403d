package service

import (
	"context"
	"fmt"
	"time"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

type DonationHistoryRepository interface {
	FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.DonationHistory, error)
}

// DonationHistoryService reads the append-only donation ledger. Writes
// happen only as side effects of the donator flows.
type DonationHistoryService struct {
	repo DonationHistoryRepository
}

func NewDonationHistoryService(repo DonationHistoryRepository) *DonationHistoryService {
	return &DonationHistoryService{
		repo: repo,
	}
}

func (s *DonationHistoryService) GetByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.DonationHistory, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	records, err := s.repo.FindByDateRange(ctx, actor, start, end)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindByDateRange -> %w", err)
	}

	return records, nil
}
