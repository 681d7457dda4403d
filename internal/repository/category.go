package repository

import (
	"context"
	"fmt"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository/dao"
)

var ErrCategoryNotFound = dao.ErrCategoryNotFound

type CategoryDAO interface {
	Insert(ctx context.Context, category dao.Category) (dao.Category, error)
	FindByID(ctx context.Context, actor string, id uint) (dao.Category, error)
	FindAllByActor(ctx context.Context, actor string) ([]dao.Category, error)
	Update(ctx context.Context, category dao.Category) (dao.Category, error)
	Delete(ctx context.Context, actor string, id uint) error
}

type CategoryRepository struct {
	dao CategoryDAO
}

func NewCategoryRepository(dao CategoryDAO) *CategoryRepository {
	return &CategoryRepository{
		dao: dao,
	}
}

func (r *CategoryRepository) Create(ctx context.Context, category domain.Category) (domain.Category, error) {
	created, err := r.dao.Insert(ctx, dao.Category{
		Name:      category.Name,
		Price:     category.Price,
		CreatedBy: category.CreatedBy,
		UpdatedBy: category.UpdatedBy,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return categoryDAOToDomain(created), nil
}

func (r *CategoryRepository) FindByID(ctx context.Context, actor string, id uint) (domain.Category, error) {
	found, err := r.dao.FindByID(ctx, actor, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return categoryDAOToDomain(found), nil
}

func (r *CategoryRepository) FindAll(ctx context.Context, actor string) ([]domain.Category, error) {
	found, err := r.dao.FindAllByActor(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAllByActor -> %w", err)
	}

	categories := make([]domain.Category, 0, len(found))
	for _, c := range found {
		categories = append(categories, categoryDAOToDomain(c))
	}

	return categories, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category domain.Category) (domain.Category, error) {
	updated, err := r.dao.Update(ctx, dao.Category{
		ID:        category.ID,
		Name:      category.Name,
		Price:     category.Price,
		CreatedBy: category.CreatedBy,
		UpdatedBy: category.UpdatedBy,
	})
	if err != nil {
		return domain.Category{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return categoryDAOToDomain(updated), nil
}

func (r *CategoryRepository) Delete(ctx context.Context, actor string, id uint) error {
	if err := r.dao.Delete(ctx, actor, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func categoryDAOToDomain(c dao.Category) domain.Category {
	return domain.Category{
		ID:        c.ID,
		Name:      c.Name,
		Price:     c.Price,
		CreatedBy: c.CreatedBy,
		UpdatedBy: c.UpdatedBy,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
