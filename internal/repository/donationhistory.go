package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository/dao"
)

// DonationHistoryDAO only reads. Ledger writes happen inside the
// donator transactions, never through this repository.
type DonationHistoryDAO interface {
	FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]dao.DonationHistory, error)
}

type DonationHistoryRepository struct {
	dao DonationHistoryDAO
}

func NewDonationHistoryRepository(dao DonationHistoryDAO) *DonationHistoryRepository {
	return &DonationHistoryRepository{
		dao: dao,
	}
}

func (r *DonationHistoryRepository) FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.DonationHistory, error) {
	found, err := r.dao.FindByDateRange(ctx, actor, start, end)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindByDateRange -> %w", err)
	}

	records := make([]domain.DonationHistory, 0, len(found))
	for _, rec := range found {
		records = append(records, historyDAOToDomain(rec))
	}

	return records, nil
}

func historyDAOToDomain(h dao.DonationHistory) domain.DonationHistory {
	return domain.DonationHistory{
		ID:         h.ID,
		DonatorID:  h.DonatorID,
		Amount:     h.Amount,
		EventType:  domain.DonationEventType(h.EventType),
		GamesAdded: h.GamesAdded,
		CreatedBy:  h.CreatedBy,
		CreatedAt:  h.CreatedAt,
	}
}
