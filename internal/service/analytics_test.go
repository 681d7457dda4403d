package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

type fakeHistoryRepo struct {
	records []domain.DonationHistory
}

func (f *fakeHistoryRepo) FindByDateRange(_ context.Context, actor string, start, end time.Time) ([]domain.DonationHistory, error) {
	var out []domain.DonationHistory
	for _, r := range f.records {
		if r.CreatedBy != actor {
			continue
		}
		if r.CreatedAt.Before(start) || r.CreatedAt.After(end) {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

type fakeAnalyticsDonators struct {
	donators []domain.Donator
}

func (f *fakeAnalyticsDonators) FindAll(_ context.Context, actor string) ([]domain.Donator, error) {
	var out []domain.Donator
	for _, d := range f.donators {
		if d.CreatedBy == actor {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestAnalyticsService_GetDailyTotals(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	day1 := time.Date(2026, time.August, 10, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, time.August, 12, 21, 30, 0, 0, time.UTC)

	history := &fakeHistoryRepo{records: []domain.DonationHistory{
		{Amount: 45000, CreatedBy: actor, CreatedAt: day1},
		{Amount: 15000, CreatedBy: actor, CreatedAt: day1.Add(5 * time.Hour)},
		{Amount: 30000, CreatedBy: actor, CreatedAt: day2},
		{Amount: 99999, CreatedBy: "other@example.com", CreatedAt: day1},
	}}
	svc := NewAnalyticsService(history, &fakeAnalyticsDonators{})

	totals, err := svc.GetDailyTotals(ctx, actor, day1.AddDate(0, 0, -1), day2.AddDate(0, 0, 1))

	require.NoError(t, err)
	require.Len(t, totals, 2)
	assert.Equal(t, domain.DailyTotal{Day: "2026-08-10", Total: 60000}, totals[0])
	assert.Equal(t, domain.DailyTotal{Day: "2026-08-12", Total: 30000}, totals[1])
}

func TestAnalyticsService_GetCategoryBreakdown(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	donators := &fakeAnalyticsDonators{donators: []domain.Donator{
		{ID: 1, Name: "Alice", CategoryID: 1, Category: domain.Category{ID: 1, Name: "Gold"}, TotalDonation: 45000, CreatedBy: actor},
		{ID: 2, Name: "Bob", CategoryID: 2, Category: domain.Category{ID: 2, Name: "Silver"}, TotalDonation: 60000, CreatedBy: actor},
		{ID: 3, Name: "Carol", CategoryID: 1, Category: domain.Category{ID: 1, Name: "Gold"}, TotalDonation: 30000, CreatedBy: actor},
	}}
	svc := NewAnalyticsService(&fakeHistoryRepo{}, donators)

	breakdown, err := svc.GetCategoryBreakdown(ctx, actor)

	require.NoError(t, err)
	require.Len(t, breakdown, 2)
	assert.Equal(t, "Gold", breakdown[0].CategoryName)
	assert.Equal(t, int64(75000), breakdown[0].Total)
	assert.Equal(t, "Silver", breakdown[1].CategoryName)
	assert.Equal(t, int64(60000), breakdown[1].Total)
}

func TestAnalyticsService_GetLeaderboard(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	donators := &fakeAnalyticsDonators{donators: []domain.Donator{
		{ID: 1, Name: "Alice", TotalDonation: 45000, TotalGame: 3, CreatedBy: actor},
		{ID: 2, Name: "Bob", TotalDonation: 60000, TotalGame: 12, CreatedBy: actor},
		{ID: 3, Name: "Carol", TotalDonation: 45000, TotalGame: 9, CreatedBy: actor},
	}}
	svc := NewAnalyticsService(&fakeHistoryRepo{}, donators)

	t.Run("ranks by lifetime total, name breaks ties", func(t *testing.T) {
		entries, err := svc.GetLeaderboard(ctx, actor, 10)

		require.NoError(t, err)
		require.Len(t, entries, 3)
		assert.Equal(t, "Bob", entries[0].Name)
		assert.Equal(t, "Alice", entries[1].Name)
		assert.Equal(t, "Carol", entries[2].Name)
	})

	t.Run("caps at the requested limit", func(t *testing.T) {
		entries, err := svc.GetLeaderboard(ctx, actor, 2)

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "Bob", entries[0].Name)
	})

	t.Run("requires an actor", func(t *testing.T) {
		_, err := svc.GetLeaderboard(ctx, "", 10)

		require.ErrorIs(t, err, ErrAuthRequired)
	})
}
