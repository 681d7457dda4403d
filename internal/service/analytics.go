package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

const defaultLeaderboardLimit = 10

type AnalyticsHistoryRepository interface {
	FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]domain.DonationHistory, error)
}

type AnalyticsDonatorRepository interface {
	FindAll(ctx context.Context, actor string) ([]domain.Donator, error)
}

// AnalyticsService reshapes actor-scoped query results into the three
// dashboard aggregates. Grouping happens here rather than in SQL, the
// same way the dashboard aggregates on the client side.
type AnalyticsService struct {
	history  AnalyticsHistoryRepository
	donators AnalyticsDonatorRepository
}

func NewAnalyticsService(history AnalyticsHistoryRepository, donators AnalyticsDonatorRepository) *AnalyticsService {
	return &AnalyticsService{
		history:  history,
		donators: donators,
	}
}

// GetDailyTotals buckets donation-history amounts per calendar day
// (UTC), oldest day first.
func (s *AnalyticsService) GetDailyTotals(ctx context.Context, actor string, start, end time.Time) ([]domain.DailyTotal, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	records, err := s.history.FindByDateRange(ctx, actor, start, end)
	if err != nil {
		return nil, fmt.Errorf("s.history.FindByDateRange -> %w", err)
	}

	totals := make(map[string]int64)
	for _, rec := range records {
		day := rec.CreatedAt.UTC().Format("2006-01-02")
		totals[day] += rec.Amount
	}

	days := make([]string, 0, len(totals))
	for day := range totals {
		days = append(days, day)
	}
	sort.Strings(days)

	result := make([]domain.DailyTotal, 0, len(days))
	for _, day := range days {
		result = append(result, domain.DailyTotal{Day: day, Total: totals[day]})
	}

	return result, nil
}

// GetCategoryBreakdown sums donator lifetime donations per category,
// largest total first.
func (s *AnalyticsService) GetCategoryBreakdown(ctx context.Context, actor string) ([]domain.CategoryTotal, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	donators, err := s.donators.FindAll(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("s.donators.FindAll -> %w", err)
	}

	byCategory := make(map[uint]*domain.CategoryTotal)
	for _, d := range donators {
		entry, ok := byCategory[d.CategoryID]
		if !ok {
			entry = &domain.CategoryTotal{
				CategoryID:   d.CategoryID,
				CategoryName: d.Category.Name,
			}
			byCategory[d.CategoryID] = entry
		}
		entry.Total += d.TotalDonation
	}

	result := make([]domain.CategoryTotal, 0, len(byCategory))
	for _, entry := range byCategory {
		result = append(result, *entry)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].CategoryName < result[j].CategoryName
	})

	return result, nil
}

// GetLeaderboard ranks donators by lifetime donation total.
func (s *AnalyticsService) GetLeaderboard(ctx context.Context, actor string, limit int) ([]domain.LeaderboardEntry, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}
	if limit <= 0 {
		limit = defaultLeaderboardLimit
	}

	donators, err := s.donators.FindAll(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("s.donators.FindAll -> %w", err)
	}

	sort.Slice(donators, func(i, j int) bool {
		if donators[i].TotalDonation != donators[j].TotalDonation {
			return donators[i].TotalDonation > donators[j].TotalDonation
		}
		return donators[i].Name < donators[j].Name
	})

	if len(donators) > limit {
		donators = donators[:limit]
	}

	entries := make([]domain.LeaderboardEntry, 0, len(donators))
	for _, d := range donators {
		entries = append(entries, domain.LeaderboardEntry{
			DonatorID:     d.ID,
			Name:          d.Name,
			CategoryName:  d.Category.Name,
			TotalDonation: d.TotalDonation,
			TotalGame:     d.TotalGame,
		})
	}

	return entries, nil
}
