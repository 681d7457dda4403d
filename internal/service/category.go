package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/streamheroes/stream-heroes-api/internal/domain"
	"github.com/streamheroes/stream-heroes-api/internal/repository"
)

var (
	ErrCategoryNotFound = repository.ErrCategoryNotFound
	ErrNegativePrice    = errors.New("category price must not be negative")
)

type CategoryRepository interface {
	Create(ctx context.Context, category domain.Category) (domain.Category, error)
	FindByID(ctx context.Context, actor string, id uint) (domain.Category, error)
	FindAll(ctx context.Context, actor string) ([]domain.Category, error)
	Update(ctx context.Context, category domain.Category) (domain.Category, error)
	Delete(ctx context.Context, actor string, id uint) error
}

type CategoryService struct {
	repo CategoryRepository
}

func NewCategoryService(repo CategoryRepository) *CategoryService {
	return &CategoryService{
		repo: repo,
	}
}

func (s *CategoryService) ListCategories(ctx context.Context, actor string) ([]domain.Category, error) {
	if actor == "" {
		return nil, ErrAuthRequired
	}

	categories, err := s.repo.FindAll(ctx, actor)
	if err != nil {
		return nil, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return categories, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, actor string, id uint) (domain.Category, error) {
	if actor == "" {
		return domain.Category{}, ErrAuthRequired
	}

	category, err := s.repo.FindByID(ctx, actor, id)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return category, nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, actor string, category domain.Category) (domain.Category, error) {
	if actor == "" {
		return domain.Category{}, ErrAuthRequired
	}
	if category.Price < 0 {
		return domain.Category{}, ErrNegativePrice
	}

	category.CreatedBy = actor
	category.UpdatedBy = actor

	created, err := s.repo.Create(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, actor string, category domain.Category) (domain.Category, error) {
	if actor == "" {
		return domain.Category{}, ErrAuthRequired
	}
	if category.Price < 0 {
		return domain.Category{}, ErrNegativePrice
	}

	category.CreatedBy = actor
	category.UpdatedBy = actor

	updated, err := s.repo.Update(ctx, category)
	if err != nil {
		return domain.Category{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, actor string, id uint) error {
	if actor == "" {
		return ErrAuthRequired
	}

	if err := s.repo.Delete(ctx, actor, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
