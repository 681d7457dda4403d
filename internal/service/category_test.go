package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
)

func newCategoryFixture() (*CategoryService, *fakeCategoryRepo) {
	repo := &fakeCategoryRepo{categories: map[uint]domain.Category{}}
	return NewCategoryService(repo), repo
}

func TestCategoryService_CreateCategory(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	t.Run("stamps the actor on the new category", func(t *testing.T) {
		svc, _ := newCategoryFixture()

		created, err := svc.CreateCategory(ctx, actor, domain.Category{Name: "Gold", Price: 15000})

		require.NoError(t, err)
		assert.NotZero(t, created.ID)
		assert.Equal(t, actor, created.CreatedBy)
		assert.Equal(t, actor, created.UpdatedBy)
	})

	t.Run("rejects a negative price", func(t *testing.T) {
		svc, _ := newCategoryFixture()

		_, err := svc.CreateCategory(ctx, actor, domain.Category{Name: "Gold", Price: -1})

		require.ErrorIs(t, err, ErrNegativePrice)
	})

	t.Run("requires an actor", func(t *testing.T) {
		svc, _ := newCategoryFixture()

		_, err := svc.CreateCategory(ctx, "", domain.Category{Name: "Gold"})

		require.ErrorIs(t, err, ErrAuthRequired)
	})
}

func TestCategoryService_UpdateCategory(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	svc, _ := newCategoryFixture()

	created, err := svc.CreateCategory(ctx, actor, domain.Category{Name: "Gold", Price: 15000})
	require.NoError(t, err)

	created.Price = -5
	_, err = svc.UpdateCategory(ctx, actor, created)
	require.ErrorIs(t, err, ErrNegativePrice)

	created.Price = 20000
	updated, err := svc.UpdateCategory(ctx, actor, created)
	require.NoError(t, err)
	assert.Equal(t, int64(20000), updated.Price)
}

func TestCategoryService_GetCategory(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	svc, _ := newCategoryFixture()

	created, err := svc.CreateCategory(ctx, actor, domain.Category{Name: "Gold", Price: 15000})
	require.NoError(t, err)

	got, err := svc.GetCategory(ctx, actor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	// Another actor cannot see it.
	_, err = svc.GetCategory(ctx, "other@example.com", created.ID)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestCategoryService_DeleteCategory(t *testing.T) {
	ctx := context.Background()
	actor := "streamer@example.com"

	svc, _ := newCategoryFixture()

	created, err := svc.CreateCategory(ctx, actor, domain.Category{Name: "Gold", Price: 15000})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteCategory(ctx, actor, created.ID))

	err = svc.DeleteCategory(ctx, actor, created.ID)
	require.ErrorIs(t, err, ErrCategoryNotFound)
}
