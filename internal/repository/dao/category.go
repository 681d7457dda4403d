package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrCategoryNotFound = errors.New("category not found")

type Category struct {
	ID uint `gorm:"primaryKey"`

	Name  string `gorm:"not null"`
	Price int64  `gorm:"not null"`

	CreatedBy string `gorm:"index;not null"`
	UpdatedBy string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CategoryDAO struct {
	db *gorm.DB
}

func NewCategoryDAO(db *gorm.DB) *CategoryDAO {
	return &CategoryDAO{
		db: db,
	}
}

func (d *CategoryDAO) Insert(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).Create(&category)
	if result.Error != nil {
		return Category{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindByID(ctx context.Context, actor string, id uint) (Category, error) {
	var category Category

	result := d.db.WithContext(ctx).
		Where("created_by = ?", actor).
		First(&category, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Category{}, ErrCategoryNotFound
		}

		return Category{}, result.Error
	}

	return category, nil
}

func (d *CategoryDAO) FindAllByActor(ctx context.Context, actor string) ([]Category, error) {
	var categories []Category

	result := d.db.WithContext(ctx).
		Where("created_by = ?", actor).
		Order("name").
		Find(&categories)
	if result.Error != nil {
		return nil, result.Error
	}

	return categories, nil
}

func (d *CategoryDAO) Update(ctx context.Context, category Category) (Category, error) {
	result := d.db.WithContext(ctx).
		Model(&Category{}).
		Where("id = ? AND created_by = ?", category.ID, category.CreatedBy).
		Updates(map[string]interface{}{
			"name":       category.Name,
			"price":      category.Price,
			"updated_by": category.UpdatedBy,
		})
	if result.Error != nil {
		return Category{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Category{}, ErrCategoryNotFound
	}

	return d.FindByID(ctx, category.CreatedBy, category.ID)
}

func (d *CategoryDAO) Delete(ctx context.Context, actor string, id uint) error {
	result := d.db.WithContext(ctx).
		Where("created_by = ?", actor).
		Delete(&Category{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}

	return nil
}
