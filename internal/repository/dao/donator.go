package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrDonatorNotFound = errors.New("donator not found")

type Donator struct {
	ID uint `gorm:"primaryKey"`

	Name          string   `gorm:"not null"`
	CategoryID    uint     `gorm:"not null"`
	Category      Category `gorm:"foreignKey:CategoryID"`
	TotalGame     int      `gorm:"not null"`
	TotalDonation int64    `gorm:"not null;default:0"`

	CreatedBy string `gorm:"index;not null"`
	UpdatedBy string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DonatorDAO struct {
	db *gorm.DB
}

func NewDonatorDAO(db *gorm.DB) *DonatorDAO {
	return &DonatorDAO{
		db: db,
	}
}

// InsertWithHistory creates the donator and its new_donator ledger
// entry in one transaction, so the audit trail cannot drift from the
// donator table.
func (d *DonatorDAO) InsertWithHistory(ctx context.Context, donator Donator, history DonationHistory) (Donator, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donator).Error; err != nil {
			return err
		}

		history.DonatorID = donator.ID
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return Donator{}, err
	}

	return d.FindByID(ctx, donator.CreatedBy, donator.ID)
}

func (d *DonatorDAO) FindByID(ctx context.Context, actor string, id uint) (Donator, error) {
	var donator Donator

	result := d.db.WithContext(ctx).
		Preload("Category").
		Where("created_by = ?", actor).
		First(&donator, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donator{}, ErrDonatorNotFound
		}

		return Donator{}, result.Error
	}

	return donator, nil
}

func (d *DonatorDAO) FindAllByActor(ctx context.Context, actor string) ([]Donator, error) {
	var donators []Donator

	result := d.db.WithContext(ctx).
		Preload("Category").
		Where("created_by = ?", actor).
		Order("name").
		Find(&donators)
	if result.Error != nil {
		return nil, result.Error
	}

	return donators, nil
}

func (d *DonatorDAO) FindByDateRange(ctx context.Context, actor string, start, end time.Time) ([]Donator, error) {
	var donators []Donator

	result := d.db.WithContext(ctx).
		Preload("Category").
		Where("created_by = ? AND created_at >= ? AND created_at <= ?", actor, start, end).
		Find(&donators)
	if result.Error != nil {
		return nil, result.Error
	}

	return donators, nil
}

func (d *DonatorDAO) Update(ctx context.Context, donator Donator) (Donator, error) {
	result := d.db.WithContext(ctx).
		Model(&Donator{}).
		Where("id = ? AND created_by = ?", donator.ID, donator.CreatedBy).
		Updates(map[string]interface{}{
			"name":           donator.Name,
			"category_id":    donator.CategoryID,
			"total_game":     donator.TotalGame,
			"total_donation": donator.TotalDonation,
			"updated_by":     donator.UpdatedBy,
		})
	if result.Error != nil {
		return Donator{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Donator{}, ErrDonatorNotFound
	}

	return d.FindByID(ctx, donator.CreatedBy, donator.ID)
}

// AddGames locks the donator row, raises total_game by gamesToAdd,
// recomputes total_donation against the category's current price and
// appends the add_games ledger entry, all in one transaction.
func (d *DonatorDAO) AddGames(ctx context.Context, actor string, id uint, gamesToAdd int) (Donator, error) {
	var updated Donator

	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donator Donator
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("created_by = ?", actor).
			First(&donator, id)
		if result.Error != nil {
			if errors.Is(result.Error, gorm.ErrRecordNotFound) {
				return ErrDonatorNotFound
			}

			return result.Error
		}

		var category Category
		if err := tx.Where("created_by = ?", actor).First(&category, donator.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCategoryNotFound
			}

			return err
		}

		newTotal := donator.TotalGame + gamesToAdd
		if err := tx.Model(&donator).Updates(map[string]interface{}{
			"total_game":     newTotal,
			"total_donation": int64(newTotal) * category.Price,
			"updated_by":     actor,
		}).Error; err != nil {
			return err
		}

		history := DonationHistory{
			DonatorID:  donator.ID,
			Amount:     int64(gamesToAdd) * category.Price,
			EventType:  "add_games",
			GamesAdded: gamesToAdd,
			CreatedBy:  actor,
		}
		if err := tx.Create(&history).Error; err != nil {
			return err
		}

		updated = donator
		return nil
	})
	if err != nil {
		return Donator{}, err
	}

	return d.FindByID(ctx, actor, updated.ID)
}

func (d *DonatorDAO) Delete(ctx context.Context, actor string, id uint) error {
	result := d.db.WithContext(ctx).
		Where("created_by = ?", actor).
		Delete(&Donator{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrDonatorNotFound
	}

	return nil
}
